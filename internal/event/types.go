package event

import (
	"time"

	"github.com/samber/mo"

	"mcal/internal/model"
	"mcal/pkg/recurrence"
)

// --- UseCase Inputs ---

// Fields are the user-editable attributes of an event.
type Fields struct {
	Title           string
	Description     *string
	Location        *string
	StartTime       time.Time
	EndTime         time.Time
	IsAllDay        bool
	RepeatFrequency recurrence.Frequency
	RepeatUntil     mo.Option[time.Time]
}

type CreateInput struct {
	CalendarID int64
	Fields     Fields
}

type UpdateInput struct {
	ID     int64
	Fields Fields
}

// ListExpandedInput selects the occurrences overlapping the closed date range
// StartDate..EndDate, optionally within one calendar.
type ListExpandedInput struct {
	StartDate  time.Time
	EndDate    time.Time
	CalendarID mo.Option[int64]
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Event model.Event
}

type DetailOutput struct {
	Event model.Event
}

type UpdateOutput struct {
	Event model.Event
}

// ListExpandedOutput holds the occurrences sorted by start time and the
// non-fatal problems met while expanding them.
type ListExpandedOutput struct {
	Occurrences []model.Occurrence
	Warnings    []Diagnostic
}

type ExportOutput struct {
	Calendar model.Calendar
	Events   []model.Event
	// Expander is the one ListExpanded uses, so the feed clamps the same way.
	Expander recurrence.Expander
}

// --- Diagnostics ---

// DiagnosticKind classifies a non-fatal expansion problem.
type DiagnosticKind string

const (
	// DiagnosticLimitExceeded: the step cap was reached on an unbounded
	// recurring event, later occurrences are missing.
	DiagnosticLimitExceeded DiagnosticKind = "recurrence_limit_exceeded"
	// DiagnosticInvariantViolation: expansion of one event stopped early.
	DiagnosticInvariantViolation DiagnosticKind = "recurrence_invariant_violation"
)

// Diagnostic reports a problem with one event's expansion.
type Diagnostic struct {
	EventID int64
	Kind    DiagnosticKind
	Message string
}
