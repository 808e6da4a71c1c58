package recurrence

import (
	"time"

	"github.com/samber/mo"
)

// MaxOccurrences bounds the number of steps evaluated for a single series.
const MaxOccurrences = 500

// maxYear is the last year an advanced occurrence may fall in.
const maxYear = 9999

// Rule describes how a series repeats.
type Rule struct {
	Frequency Frequency
	// Until is an inclusive bound on the start date of occurrences.
	Until mo.Option[time.Time]
}

// Series is the time shape of a stored event: its first occurrence and rule.
// End must be after Start.
type Series struct {
	Start time.Time
	End   time.Time
	Rule  Rule
}

// Span is one concrete occurrence of a series.
type Span struct {
	Start time.Time
	End   time.Time
}

// Result is the outcome of expanding one series.
type Result struct {
	Spans []Span

	// Truncated is set when the step cap was reached on a recurring series
	// with no Until bound.
	Truncated bool

	// Err is set, wrapping ErrInvariantViolation, when expansion stopped
	// early. Spans still holds what was collected before the fault.
	Err error
}
