package recurrence

import "errors"

var (
	// ErrUnknownFrequency is returned when parsing a frequency name fails.
	ErrUnknownFrequency = errors.New("recurrence: unknown frequency")

	// ErrInvariantViolation marks an expansion that stopped early because the
	// series could not be advanced.
	ErrInvariantViolation = errors.New("recurrence: invariant violation")
)
