package repository

import (
	"time"

	"github.com/samber/mo"

	"mcal/internal/model"
)

// CreateEventOptions holds parameters for inserting a new Event.
// Event.ID is ignored.
type CreateEventOptions struct {
	Event model.Event
}

// UpdateEventOptions replaces every editable column of an Event.
// Event.CalendarID is ignored.
type UpdateEventOptions struct {
	Event model.Event
}

// ListEventsOptions filters stored events.
type ListEventsOptions struct {
	CalendarID int64
}

// ListCandidatesOptions bounds the candidate pre-filter. From and To are
// calendar dates; only their date part is used.
type ListCandidatesOptions struct {
	From       time.Time
	To         time.Time
	CalendarID mo.Option[int64]
}
