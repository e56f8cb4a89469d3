package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time with minute resolution
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a zero-padded "HH:mm" string
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:mm", s)
	}
	for _, i := range [...]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:mm", s)
		}
	}

	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}

	minute, err := strconv.Atoi(s[3:])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats the time of day as "HH:mm"
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// On returns the instant of t on the calendar day of day, in day's location
func On(day time.Time, t TimeOfDay) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour, t.Minute, 0, 0, day.Location())
}

// StartOfDay returns local midnight of the day containing t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the day containing t
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DaysAgo returns the calendar day n days before t, keeping t's clock time
func DaysAgo(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// SameDay reports whether a and b fall on the same calendar day in a's location
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Span is a calendar length expressed the way AddDate consumes it
type Span struct {
	Years  int
	Months int
	Days   int
}

// EndDate returns start shifted by the span
func (s Span) EndDate(start time.Time) time.Time {
	return start.AddDate(s.Years, s.Months, s.Days)
}

// ParseDurationDescriptor parses schedule durations such as "1 day", "2 weeks",
// "fortnight" or "3 months"
func ParseDurationDescriptor(s string) (Span, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(fields) == 0 {
		return Span{}, fmt.Errorf("empty duration")
	}

	if len(fields) == 1 {
		if fields[0] == "fortnight" {
			return Span{Days: 14}, nil
		}
		return Span{}, fmt.Errorf("invalid duration %q", s)
	}

	if len(fields) != 2 {
		return Span{}, fmt.Errorf("invalid duration %q", s)
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return Span{}, fmt.Errorf("invalid duration count in %q", s)
	}

	switch strings.TrimSuffix(fields[1], "s") {
	case "day":
		return Span{Days: n}, nil
	case "week":
		return Span{Days: 7 * n}, nil
	case "fortnight":
		return Span{Days: 14 * n}, nil
	case "month":
		return Span{Months: n}, nil
	case "year":
		return Span{Years: n}, nil
	}

	return Span{}, fmt.Errorf("invalid duration unit in %q", s)
}
