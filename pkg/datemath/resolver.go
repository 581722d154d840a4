package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver converts natural-language date and time phrases into absolute
// calendar dates and clock times. It holds only a timezone and is safe for
// concurrent use.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "America/New_York". An empty timezone means UTC.
func NewResolver(timezone string) (*Resolver, error) {
	if timezone == "" {
		return &Resolver{location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var inDaysRe = regexp.MustCompile(`in (\d+) days?`)

// weekdayNames is scanned in this order when resolving "next <weekday>".
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"sunday", time.Sunday},
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
}

// calendarLayouts are tried in order when the hint is not a relative phrase.
// Year-less layouts are completed with the base year.
var calendarLayouts = []struct {
	layout   string
	yearless bool
}{
	{"2006-01-02", false},
	{"January 2, 2006", false},
	{"January 2 2006", false},
	{"Jan 2, 2006", false},
	{"Jan 2 2006", false},
	{"01/02/2006", false},
	{"January 2", true},
	{"Jan 2", true},
}

// ResolveDate turns a date hint plus the surrounding transcript into a
// calendar date (midnight in the resolver's timezone). Relative phrases are
// searched in the lowercased concatenation of hint and transcript; generic
// calendar parsing applies to the hint alone. The second return value is
// false when no date could be resolved.
func (r *Resolver) ResolveDate(hint, transcript string, base time.Time) (time.Time, bool) {
	text := strings.ToLower(strings.TrimSpace(hint + " " + transcript))
	today := r.startOfDay(base)

	if strings.Contains(text, "today") {
		return today, true
	}
	if strings.Contains(text, "tomorrow") {
		return today.AddDate(0, 0, 1), true
	}

	if m := inDaysRe.FindStringSubmatch(text); m != nil {
		days, _ := strconv.Atoi(m[1])
		return today.AddDate(0, 0, days), true
	}

	if strings.Contains(text, "next") {
		for _, w := range weekdayNames {
			if !strings.Contains(text, w.name) {
				continue
			}
			daysUntil := int(w.day - today.Weekday())
			// "next X" never resolves to today itself.
			if daysUntil <= 0 {
				daysUntil += 7
			}
			return today.AddDate(0, 0, daysUntil), true
		}
	}

	return r.parseCalendarDate(hint, base)
}

// parseCalendarDate attempts generic calendar-date parsing of the hint text.
func (r *Resolver) parseCalendarDate(hint string, base time.Time) (time.Time, bool) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return time.Time{}, false
	}

	for _, cl := range calendarLayouts {
		t, err := time.ParseInLocation(cl.layout, hint, r.location)
		if err != nil {
			continue
		}
		if cl.yearless {
			t = time.Date(base.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
		}
		return r.startOfDay(t), true
	}
	return time.Time{}, false
}

// startOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
