package lyrics

import (
	"encoding/json"
	"fmt"
)

// snapshot entry; a null time means the word is untimed
type wordJSON struct {
	Text string   `json:"text"`
	Time *float64 `json:"time"`
}

// ToJSON renders the timeline as an ordered {text, time} snapshot.
func ToJSON(t *Timeline) ([]byte, error) {
	snapshot := make([]wordJSON, 0, t.Len())
	for _, w := range t.words {
		entry := wordJSON{Text: w.Text}
		if w.Timed {
			seconds := w.Time
			entry.Time = &seconds
		}
		snapshot = append(snapshot, entry)
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// FromJSON rebuilds a timeline from a snapshot produced by ToJSON.
// duration <= 0 means the media length is not yet known.
func FromJSON(data []byte, duration float64) (*Timeline, error) {
	var snapshot []wordJSON
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse lyrics snapshot: %w", err)
	}

	t := New()
	if duration > 0 {
		t.SetDuration(duration)
	}
	for _, entry := range snapshot {
		w := Word{Text: entry.Text}
		if entry.Time != nil {
			w.Time = *entry.Time
			w.Timed = true
		}
		t.appendWord(w)
	}
	return t, nil
}
