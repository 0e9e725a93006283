package lyrics

import (
	"fmt"
	"math"
)

// Timeline is an ordered sequence of words with partial timestamp coverage.
// It maintains the invariant that explicit timestamps never decrease along
// the sequence: assigning a time clears any neighboring timestamps that
// would contradict it.
//
// The timeline owns its words; indexed access returns copies. All operations
// are synchronous and change notifications are delivered in emission order
// within the mutating call.
type Timeline struct {
	words       []Word
	duration    float64
	hasDuration bool
	subs        []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Change)
}

func New() *Timeline {
	return &Timeline{}
}

func (t *Timeline) Len() int {
	return len(t.words)
}

// Word returns a copy of the word at index.
func (t *Timeline) Word(index int) (Word, error) {
	if index < 0 || index >= len(t.words) {
		return Word{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return t.words[index], nil
}

// Words returns a copy of the word sequence.
func (t *Timeline) Words() []Word {
	out := make([]Word, len(t.words))
	copy(out, t.words)
	return out
}

// Duration returns the media length in seconds, if known.
func (t *Timeline) Duration() (float64, bool) {
	return t.duration, t.hasDuration
}

// SetDuration records the media length once its metadata is available.
func (t *Timeline) SetDuration(seconds float64) {
	t.duration = seconds
	t.hasDuration = true
}

// Subscribe registers a callback for change notifications and returns an id
// for Unsubscribe. Callbacks run synchronously during the mutation.
func (t *Timeline) Subscribe(fn func(Change)) int {
	t.nextSubID++
	t.subs = append(t.subs, subscriber{id: t.nextSubID, fn: fn})
	return t.nextSubID
}

func (t *Timeline) Unsubscribe(id int) {
	for i, s := range t.subs {
		if s.id == id {
			t.subs = append(t.subs[:i], t.subs[i+1:]...)
			return
		}
	}
}

func (t *Timeline) notify(c Change) {
	for _, s := range t.subs {
		s.fn(c)
	}
}

// SetTime stamps the word at index with a time in seconds, then repairs
// monotonicity: a single forward pass clears later words stamped at or
// before the new time, a single backward pass clears earlier words stamped
// at or after it. Cleared words never trigger further repair, since a clear
// cannot introduce a new violation.
func (t *Timeline) SetTime(index int, seconds float64) error {
	if index < 0 || index >= len(t.words) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	w := &t.words[index]
	if !w.Timed || w.Time != seconds {
		w.Time = seconds
		w.Timed = true
		t.notify(Change{Index: index, Time: seconds, Timed: true})
	}
	for i := index + 1; i < len(t.words); i++ {
		if t.words[i].Timed && t.words[i].Time <= seconds {
			t.clear(i)
		}
	}
	for i := index - 1; i >= 0; i-- {
		if t.words[i].Timed && t.words[i].Time >= seconds {
			t.clear(i)
		}
	}
	return nil
}

// ClearTime marks the word at index as untimed. No repair pass runs.
func (t *Timeline) ClearTime(index int) error {
	if index < 0 || index >= len(t.words) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if t.words[index].Timed {
		t.clear(index)
	}
	return nil
}

func (t *Timeline) clear(index int) {
	t.words[index].Time = 0
	t.words[index].Timed = false
	t.notify(Change{Index: index})
}

// IndexForTime maps a playback position to the word that should be active.
// It walks the sequence keeping the most recent timed word as an anchor; the
// first word whose explicit (or, for an untimed final word, duration-implied)
// time reaches seconds closes the search, and the fractional index between
// anchor and closing word is interpolated proportionally. Spans of untimed
// words between two anchors therefore map evenly across the span.
func (t *Timeline) IndexForTime(seconds float64) (int, error) {
	if !t.hasDuration {
		return 0, ErrMissingDuration
	}
	if len(t.words) == 0 {
		return 0, fmt.Errorf("%w: timeline is empty", ErrIndexOutOfRange)
	}

	anchorIdx := 0
	anchorTime := 0.0
	last := len(t.words) - 1
	for i, w := range t.words {
		wt, timed := w.Time, w.Timed
		if i == last && !timed {
			wt, timed = t.duration, true
		}
		if (timed && wt >= seconds) || i == last {
			if wt <= anchorTime {
				return i, nil
			}
			frac := (seconds - anchorTime) / (wt - anchorTime)
			idx := int(math.Floor(float64(anchorIdx) + frac*float64(i-anchorIdx)))
			if idx < anchorIdx {
				idx = anchorIdx
			}
			if idx > i {
				idx = i
			}
			return idx, nil
		}
		if timed {
			anchorIdx, anchorTime = i, wt
		}
	}
	return last, nil
}

// ApproximateTime estimates the time of a single, possibly untimed, word by
// interpolating between its nearest timed neighbors. When no timed word
// exists before the index the anchor is time 0 at index 0; when none exists
// after it, the anchor is the media duration at the last index.
func (t *Timeline) ApproximateTime(index int) (float64, error) {
	if index < 0 || index >= len(t.words) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}

	earlierIdx, earlierTime := 0, 0.0
	for i := index - 1; i >= 0; i-- {
		if t.words[i].Timed {
			earlierIdx, earlierTime = i, t.words[i].Time
			break
		}
	}

	laterIdx := -1
	laterTime := 0.0
	for i := index + 1; i < len(t.words); i++ {
		if t.words[i].Timed {
			laterIdx, laterTime = i, t.words[i].Time
			break
		}
	}
	if laterIdx < 0 {
		if !t.hasDuration {
			return 0, ErrMissingDuration
		}
		laterIdx, laterTime = len(t.words)-1, t.duration
	}

	if laterIdx == earlierIdx {
		return earlierTime, nil
	}
	frac := float64(index-earlierIdx) / float64(laterIdx-earlierIdx)
	return earlierTime + frac*(laterTime-earlierTime), nil
}

func (t *Timeline) appendWord(w Word) {
	t.words = append(t.words, w)
}
