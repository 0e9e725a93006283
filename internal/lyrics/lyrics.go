package lyrics

import (
	"errors"
	"strings"
)

// LineBreak marks the end of a display line. It appears either as a word of
// its own or embedded at the end of a word's text.
const LineBreak = "\n"

var (
	ErrIndexOutOfRange    = errors.New("word index out of range")
	ErrMissingDuration    = errors.New("media duration is not set")
	ErrInvalidIndex       = errors.New("invalid word index")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
)

// Word is the atomic unit of a lyrics timeline. Time is an offset in seconds
// from the start of the media and is meaningful only when Timed is true.
type Word struct {
	Text  string
	Time  float64
	Timed bool
}

// reports whether the word closes a display line
func (w Word) HasBreak() bool {
	return strings.HasSuffix(w.Text, LineBreak)
}

// the word text without its line-break marker
func (w Word) DisplayText() string {
	return strings.TrimSuffix(w.Text, LineBreak)
}

// Change signals that the time of the word at Index changed. Timed false
// means the timestamp was cleared.
type Change struct {
	Index int
	Time  float64
	Timed bool
}
