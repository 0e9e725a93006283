package lyrics

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leadTagRegexp   = regexp.MustCompile(`^\[\d{1,3}:\d{1,2}(?:\.\d{1,3})?\]`)
	inlineTagRegexp = regexp.MustCompile(`<\d{1,3}:\d{1,2}(?:\.\d{1,3})?>`)
	offsetRegexp    = regexp.MustCompile(`^\[offset:\s*([+-]?\d+)\]`)
)

// FromLRC parses classic or Enhanced LRC text into a timeline. A single
// up-front scan decides whether the file carries inline word-level tags;
// that classification governs the parsing of every line. Lines without a
// leading timestamp contribute nothing, matching how loosely LRC files in
// the wild are validated. An [offset:ms] directive (milliseconds, possibly
// negative) shifts every parsed timestamp.
//
// duration <= 0 means the media length is not yet known.
func FromLRC(text string, duration float64) *Timeline {
	t := New()
	if duration > 0 {
		t.SetDuration(duration)
	}

	text = strings.TrimPrefix(text, "\ufeff")
	lines := strings.Split(text, "\n")

	enhanced := false
	offset := 0.0
	for _, line := range lines {
		if inlineTagRegexp.MatchString(line) {
			enhanced = true
		}
		if m := offsetRegexp.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			ms, _ := strconv.Atoi(m[1])
			offset = float64(ms) / 1000
		}
	}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		lead := leadTagRegexp.FindString(line)
		if lead == "" {
			continue
		}
		lineTime, err := ParseTag(lead)
		if err != nil {
			continue
		}
		lineTime += offset
		rest := line[len(lead):]

		start := t.Len()
		if enhanced {
			parseEnhancedLine(t, lineTime, rest, offset)
		} else {
			for _, token := range strings.Fields(rest) {
				t.appendWord(Word{Text: token, Time: lineTime, Timed: true})
			}
		}
		// the last word of each source line closes a display line
		if t.Len() > start {
			t.words[t.Len()-1].Text += LineBreak
		}
	}
	return t
}

// parseEnhancedLine splits one line's text on its inline tags. Text before
// the first tag is a word at the line's leading timestamp; each tag times
// the text that follows it. A trailing tag with nothing after it is the
// line's closing timestamp and yields no word.
func parseEnhancedLine(t *Timeline, lineTime float64, rest string, offset float64) {
	tags := inlineTagRegexp.FindAllStringIndex(rest, -1)

	lead := rest
	if len(tags) > 0 {
		lead = rest[:tags[0][0]]
	}
	if text := strings.TrimSpace(lead); text != "" {
		t.appendWord(Word{Text: text, Time: lineTime, Timed: true})
	}

	for i, tag := range tags {
		tagTime, err := ParseTag(rest[tag[0]:tag[1]])
		if err != nil {
			continue
		}
		end := len(rest)
		if i+1 < len(tags) {
			end = tags[i+1][0]
		}
		text := strings.TrimSpace(rest[tag[1]:end])
		if text == "" {
			continue
		}
		t.appendWord(Word{Text: text, Time: tagTime + offset, Timed: true})
	}
}

// ToELRC serializes the timeline as Enhanced LRC text. A word opening a
// display line carries a bracketed timestamp, later timed words an inline
// angle-bracketed one; untimed words are written bare. A timed word whose
// text carries a line-break marker starts a new output line for the word
// that follows it.
func ToELRC(t *Timeline) string {
	var sb strings.Builder
	newLine := true
	for _, w := range t.words {
		if newLine {
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			if w.Timed {
				sb.WriteString("[" + timeTag(w.Time) + "]")
			}
			sb.WriteString(w.DisplayText())
		} else if w.Timed {
			sb.WriteString(" <" + timeTag(w.Time) + "> " + w.DisplayText())
		} else {
			sb.WriteString(" " + w.DisplayText())
		}
		newLine = w.Timed && w.HasBreak()
	}
	return sb.String()
}
