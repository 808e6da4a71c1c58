package repository

import (
	"context"

	"mcal/internal/model"
)

// Repository is the composed interface for the event domain data store.
type Repository interface {
	EventRepository
	CandidateRepository
}

// EventRepository defines all data access methods for the Event entity.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, id int64) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	// DeleteEvent reports false when no row had the id. It does not decode
	// the row, so invalid rows can still be removed.
	DeleteEvent(ctx context.Context, id int64) (bool, error)
}

// CandidateRepository serves the range query pre-filter.
type CandidateRepository interface {
	// ListCandidates returns, in store order, the events whose own start date
	// is on or before To and that are either non-repeating, unbounded, or
	// repeat until on or after From. Rows that cannot be expanded are skipped.
	ListCandidates(ctx context.Context, opt ListCandidatesOptions) ([]Candidate, error)
}

// Candidate is an event together with the display color of its calendar.
type Candidate struct {
	Event model.Event
	Color *string
}
