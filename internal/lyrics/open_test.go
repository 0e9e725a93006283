package lyrics

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenFileLRC(t *testing.T) {
	content := "[00:05.00]hello world\n[00:10.00]second line\n"
	tmpDir := t.TempDir()
	lrcPath := filepath.Join(tmpDir, "test.lrc")
	if err := os.WriteFile(lrcPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tl, err := OpenFile(lrcPath, 30)
	if err != nil {
		t.Fatalf("failed to open LRC file: %v", err)
	}
	if tl.Len() != 4 {
		t.Fatalf("expected 4 words, got %d", tl.Len())
	}
	if d, ok := tl.Duration(); !ok || d != 30 {
		t.Errorf("duration = %v, %v, want 30, true", d, ok)
	}
}

func TestOpenFilePlainText(t *testing.T) {
	tmpDir := t.TempDir()
	txtPath := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(txtPath, []byte("hello world\nfoo"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tl, err := OpenFile(txtPath, 10)
	if err != nil {
		t.Fatalf("failed to open text file: %v", err)
	}
	if tl.Len() != 4 {
		t.Fatalf("expected 4 words, got %d", tl.Len())
	}
}

func TestOpenFileUnsupported(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := OpenFile(path, 0)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected 'unsupported' in error, got: %v", err)
	}
}

func TestWriteAndReopen(t *testing.T) {
	tmpDir := t.TempDir()
	src := FromLRC("[00:01.25]go <00:02.50> tell <00:04.75> everyone\n", 60)

	elrcPath := filepath.Join(tmpDir, "out", "lyrics.elrc")
	if err := WriteELRC(src, elrcPath); err != nil {
		t.Fatalf("WriteELRC failed: %v", err)
	}
	jsonPath := filepath.Join(tmpDir, "out", "lyrics.json")
	if err := WriteJSON(src, jsonPath); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	for _, path := range []string{elrcPath, jsonPath} {
		restored, err := OpenFile(path, 60)
		if err != nil {
			t.Fatalf("failed to reopen %s: %v", path, err)
		}
		if restored.Len() != src.Len() {
			t.Fatalf(
				"%s: word count %d, want %d",
				path, restored.Len(), src.Len(),
			)
		}
		for i := 0; i < src.Len(); i++ {
			a, _ := src.Word(i)
			b, _ := restored.Word(i)
			if a.DisplayText() != b.DisplayText() {
				t.Errorf(
					"%s word %d: got %q, want %q",
					path, i, b.DisplayText(), a.DisplayText(),
				)
			}
			if a.Timed != b.Timed || math.Abs(a.Time-b.Time) > 1e-9 {
				t.Errorf("%s word %d time: got %+v, want %+v", path, i, b, a)
			}
		}
	}
}
