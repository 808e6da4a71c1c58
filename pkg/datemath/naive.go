package datemath

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO calendar date layout.
	DateLayout = "2006-01-02"

	naiveLayout      = "2006-01-02T15:04:05"
	naiveMicroLayout = "2006-01-02T15:04:05.000000"
)

// inputLayouts are tried in order by ParseNaive. Layouts carrying a zone are
// accepted but the zone is discarded, keeping the wall clock.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	DateLayout,
}

// Naive drops the zone of t and returns the same wall clock in UTC,
// truncated to microseconds.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond()/1000*1000, time.UTC)
}

// ParseNaive parses an ISO-8601 date-time into a naive local instant.
func ParseNaive(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Naive(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q", s)
}

// ParseDate parses a YYYY-MM-DD date into midnight of that day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

// FormatNaive renders t without zone offset; the fraction is printed as six
// digits and only when non-zero.
func FormatNaive(t time.Time) string {
	if t.Nanosecond()/1000 == 0 {
		return t.Format(naiveLayout)
	}
	return t.Format(naiveMicroLayout)
}

// FormatDate renders the calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
