package lyrics

import (
	"testing"
)

func TestFromPlainText(t *testing.T) {
	tl := FromPlainText("hello world\nfoo", 10)

	want := []string{"hello", "world", LineBreak, "foo"}
	if tl.Len() != len(want) {
		t.Fatalf("expected %d words, got %d: %v", len(want), tl.Len(), wordTexts(tl))
	}
	for i, text := range want {
		w, _ := tl.Word(i)
		if w.Text != text {
			t.Errorf("word %d: got %q, want %q", i, w.Text, text)
		}
		// every imported word starts parked at the track end
		if !w.Timed || w.Time != 10 {
			t.Errorf("word %d: got %+v, want placeholder time 10", i, w)
		}
	}

	if d, ok := tl.Duration(); !ok || d != 10 {
		t.Errorf("duration = %v, %v, want 10, true", d, ok)
	}

	br, _ := tl.Word(2)
	if !br.HasBreak() || br.DisplayText() != "" {
		t.Errorf("word 2 should be a bare line-break marker, got %+v", br)
	}
}

func TestFromPlainTextNormalizesWhitespace(t *testing.T) {
	tl := FromPlainText("  a   b \t c  \r\nd  ", 5)

	want := []string{"a", "b", "c", LineBreak, "d"}
	got := wordTexts(tl)
	if tl.Len() != len(want) {
		t.Fatalf("expected %d words, got %d: %v", len(want), tl.Len(), got)
	}
	for i, text := range want {
		w, _ := tl.Word(i)
		if w.Text != text {
			t.Errorf("word %d: got %q, want %q", i, w.Text, text)
		}
	}
}

func TestFromPlainTextWithoutDuration(t *testing.T) {
	tl := FromPlainText("no timing yet", 0)

	if tl.Len() != 3 {
		t.Fatalf("expected 3 words, got %d", tl.Len())
	}
	for i := 0; i < tl.Len(); i++ {
		w, _ := tl.Word(i)
		if w.Timed {
			t.Errorf("word %d should be untimed without a duration, got %+v", i, w)
		}
	}
	if _, ok := tl.Duration(); ok {
		t.Errorf("duration should be unset")
	}
}
