package lyrics

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var clockRegexp = regexp.MustCompile(`^(\d{1,3}):(\d{1,2}(?:\.\d{1,3})?)$`)

// FormatTimer renders a seconds offset as mm:ss.fff, or hh:mm:ss when
// includeHours is set. Milliseconds are truncated toward zero. NaN renders
// every field as dashes, for readouts where the position is not yet known.
func FormatTimer(seconds float64, includeHours bool) string {
	if math.IsNaN(seconds) {
		if includeHours {
			return "--:--:--"
		}
		return "--:--.---"
	}
	if seconds < 0 {
		seconds = 0
	}

	total := int(seconds)
	millis := int((seconds - float64(total)) * 1000)
	if includeHours {
		return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
	}
	return fmt.Sprintf("%02d:%02d.%03d", total/60, total%60, millis)
}

// ParseTag converts a bracketed [mm:ss.ff] or angle-bracketed <mm:ss.ff>
// timestamp token to seconds.
func ParseTag(token string) (float64, error) {
	trimmed := strings.TrimSpace(token)
	n := len(trimmed)
	bracketed := n >= 2 &&
		((trimmed[0] == '[' && trimmed[n-1] == ']') ||
			(trimmed[0] == '<' && trimmed[n-1] == '>'))
	if !bracketed {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, token)
	}

	m := clockRegexp.FindStringSubmatch(trimmed[1 : n-1])
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, token)
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.ParseFloat(m[2], 64)
	return float64(minutes)*60 + seconds, nil
}

// timeTag renders seconds in the mm:ss.ff form used inside LRC timestamps.
func timeTag(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	centis := int(math.Round(seconds * 100))
	return fmt.Sprintf("%02d:%05.2f", centis/6000, float64(centis%6000)/100)
}
