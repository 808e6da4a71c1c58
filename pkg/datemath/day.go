package datemath

import "time"

// lastInstant is the offset of the last representable microsecond of a day.
const lastInstant = 24*time.Hour - time.Microsecond

// StartOfDay returns midnight of the day of t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999999 of the day of t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(lastInstant)
}

// DateOf returns the calendar date of t as midnight, for date comparisons.
func DateOf(t time.Time) time.Time {
	return StartOfDay(t)
}

// DaysIn returns the number of days in month m of year y.
func DaysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeap reports whether y is a leap year.
func IsLeap(y int) bool {
	return DaysIn(y, time.February) == 29
}
