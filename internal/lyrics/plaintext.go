package lyrics

import (
	"regexp"
	"strings"
)

var spaceRunRegexp = regexp.MustCompile(`[ \t]+`)

// FromPlainText imports untimed lyrics from raw text. Whitespace runs are
// collapsed and each line break becomes a standalone marker word, so the
// display-line structure survives timing and export. Every word starts out
// stamped at the media duration, a placeholder meaning "untimed, pending";
// with no duration known the words are simply left untimed.
func FromPlainText(text string, duration float64) *Timeline {
	t := New()
	if duration > 0 {
		t.SetDuration(duration)
	}

	text = normalizeWhitespace(text)
	text = strings.ReplaceAll(text, LineBreak, " "+LineBreak+" ")
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r'
	})
	for _, token := range tokens {
		w := Word{Text: token}
		if duration > 0 {
			w.Time = duration
			w.Timed = true
		}
		t.appendWord(w)
	}
	return t
}

func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRunRegexp.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, " \n", "\n")
	return strings.TrimSpace(text)
}
