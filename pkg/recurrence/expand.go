package recurrence

import (
	"fmt"
	"time"

	"mcal/pkg/datemath"
)

// Expander turns a Series into the concrete occurrences overlapping a date
// window. The zero value is not usable; build one with NewExpander.
// An Expander is immutable and safe for concurrent use.
type Expander struct {
	maxOccurrences int
	clamp          ClampMode
}

// Option configures an Expander.
type Option func(*Expander)

// WithMaxOccurrences overrides the step cap. Values below 1 are ignored.
func WithMaxOccurrences(n int) Option {
	return func(e *Expander) {
		if n > 0 {
			e.maxOccurrences = n
		}
	}
}

// WithClampMode selects the day-of-month clamp reference.
func WithClampMode(m ClampMode) Option {
	return func(e *Expander) {
		e.clamp = m
	}
}

// NewExpander returns an Expander with MaxOccurrences and ClampRolling unless
// overridden.
func NewExpander(opts ...Option) Expander {
	e := Expander{
		maxOccurrences: MaxOccurrences,
		clamp:          ClampRolling,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// MaxOccurrences reports the step cap of e.
func (e Expander) MaxOccurrences() int {
	return e.maxOccurrences
}

// Expand expands s with the default Expander.
func Expand(s Series, from, to time.Time) Result {
	return NewExpander().Expand(s, from, to)
}

// Expand returns the occurrences of s that overlap the closed window from
// midnight of from to the last instant of to, in increasing start order.
// The caller guarantees from <= to.
func (e Expander) Expand(s Series, from, to time.Time) Result {
	rangeStart := datemath.StartOfDay(from)
	rangeEnd := datemath.EndOfDay(to)

	until, bounded := s.Rule.Until.Get()
	recurring := s.Rule.Frequency.IsRecurring()
	duration := s.End.Sub(s.Start)
	anchorDay := s.Start.Day()
	current := s.Start
	capped := true

	var res Result

	for step := 0; step < e.maxOccurrences; step++ {
		currentEnd := current.Add(duration)

		if recurring {
			if bounded && datemath.DateOf(current).After(datemath.DateOf(until)) {
				capped = false
				break
			}
			// Steps only move forward, nothing later can overlap.
			if current.After(rangeEnd) {
				capped = false
				break
			}
		}

		if !current.After(rangeEnd) && !currentEnd.Before(rangeStart) {
			res.Spans = append(res.Spans, Span{Start: current, End: currentEnd})
		}

		if !recurring {
			capped = false
			break
		}

		next, err := e.advance(current, s.Rule.Frequency, anchorDay)
		if err != nil {
			res.Err = err
			capped = false
			break
		}
		current = next
	}

	res.Truncated = capped && recurring && !bounded
	return res
}

// advance moves t one step forward according to f.
func (e Expander) advance(t time.Time, f Frequency, anchorDay int) (time.Time, error) {
	switch f {
	case Daily:
		return t.AddDate(0, 0, 1), nil
	case Weekly:
		return t.AddDate(0, 0, 7), nil
	case Monthly:
		return e.addMonth(t, anchorDay)
	case Yearly:
		return e.addYear(t, anchorDay)
	case None:
		return t, fmt.Errorf("%w: advance requested for a non-repeating series", ErrInvariantViolation)
	default:
		return t, fmt.Errorf("%w: unknown frequency %s", ErrInvariantViolation, f)
	}
}

// addMonth steps into the next month, clamping the day to the month length.
func (e Expander) addMonth(t time.Time, anchorDay int) (time.Time, error) {
	year, month := t.Year(), t.Month()+1
	if month > time.December {
		month = time.January
		year++
	}

	day := e.referenceDay(t, anchorDay)
	if n := datemath.DaysIn(year, month); day > n {
		day = n
	}
	return e.build(t, year, month, day)
}

// addYear keeps month and day; Feb 29 falls back to Feb 28 in common years.
func (e Expander) addYear(t time.Time, anchorDay int) (time.Time, error) {
	year, month := t.Year()+1, t.Month()

	day := e.referenceDay(t, anchorDay)
	if n := datemath.DaysIn(year, month); day > n {
		day = n
	}
	return e.build(t, year, month, day)
}

func (e Expander) referenceDay(t time.Time, anchorDay int) int {
	if e.clamp == ClampAnchored {
		return anchorDay
	}
	return t.Day()
}

// build keeps the clock of t on the given date.
func (e Expander) build(t time.Time, year int, month time.Month, day int) (time.Time, error) {
	if year > maxYear {
		return t, fmt.Errorf("%w: year %d is out of range", ErrInvariantViolation, year)
	}

	next := time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if next.Year() != year || next.Month() != month || next.Day() != day {
		return t, fmt.Errorf("%w: %04d-%02d-%02d is not a valid date", ErrInvariantViolation, year, month, day)
	}
	return next, nil
}
