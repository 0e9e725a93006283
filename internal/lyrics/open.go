package lyrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OpenFile loads a lyrics file, choosing the codec from the file extension.
func OpenFile(path string, duration float64) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lyrics file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return FromPlainText(string(data), duration), nil
	case ".lrc", ".elrc":
		return FromLRC(string(data), duration), nil
	case ".json":
		return FromJSON(data, duration)
	default:
		return nil, fmt.Errorf("unsupported lyrics format: %s", ext)
	}
}

// WriteELRC exports the timeline as an Enhanced LRC file.
func WriteELRC(t *Timeline, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(ToELRC(t)+"\n"), 0644)
}

// WriteJSON exports the timeline as a JSON snapshot file.
func WriteJSON(t *Timeline, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	data, err := ToJSON(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
