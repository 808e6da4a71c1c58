package recurrence

import (
	"fmt"
	"strings"
)

// Frequency is the step rule of a recurring series.
type Frequency uint8

const (
	None Frequency = iota
	Daily
	Weekly
	Monthly
	Yearly
)

var frequencyNames = [...]string{
	None:    "none",
	Daily:   "daily",
	Weekly:  "weekly",
	Monthly: "monthly",
	Yearly:  "yearly",
}

// ParseFrequency parses the persisted/wire name of a frequency.
// An empty string is None.
func ParseFrequency(s string) (Frequency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	for f, name := range frequencyNames {
		if name == s {
			return Frequency(f), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

func (f Frequency) String() string {
	if f.Valid() {
		return frequencyNames[f]
	}
	return fmt.Sprintf("Frequency(%d)", uint8(f))
}

// Valid reports whether f is one of the declared frequencies.
func (f Frequency) Valid() bool {
	return int(f) < len(frequencyNames)
}

// IsRecurring reports whether f produces more than one occurrence.
func (f Frequency) IsRecurring() bool {
	return f != None
}

// MarshalText implements encoding.TextMarshaler.
func (f Frequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFrequency, uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ClampMode selects which day-of-month a monthly or yearly step clamps against
// when the target month is too short.
type ClampMode uint8

const (
	// ClampRolling clamps against the current occurrence's day. After a short
	// month the series stays on the clamped day (Jan 31 -> Feb 29 -> Mar 29).
	ClampRolling ClampMode = iota
	// ClampAnchored clamps against the series' original day
	// (Jan 31 -> Feb 29 -> Mar 31).
	ClampAnchored
)

// ParseClampMode parses "rolling" or "anchored". Empty selects ClampRolling.
func ParseClampMode(s string) (ClampMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rolling":
		return ClampRolling, nil
	case "anchored":
		return ClampAnchored, nil
	}
	return ClampRolling, fmt.Errorf("recurrence: unknown clamp mode %q", s)
}

func (m ClampMode) String() string {
	if m == ClampAnchored {
		return "anchored"
	}
	return "rolling"
}
