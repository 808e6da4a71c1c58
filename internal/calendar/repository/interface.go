package repository

import (
	"context"

	"mcal/internal/model"
)

// Repository is the composed interface for the calendar domain data store.
type Repository interface {
	CalendarRepository
}

// CalendarRepository defines all data access methods for the Calendar entity.
type CalendarRepository interface {
	CreateCalendar(ctx context.Context, opt CreateCalendarOptions) (model.Calendar, error)
	GetOneCalendar(ctx context.Context, opt GetOneCalendarOptions) (model.Calendar, error)
	ListCalendars(ctx context.Context) ([]model.Calendar, error)
	UpdateCalendar(ctx context.Context, opt UpdateCalendarOptions) (model.Calendar, error)
	DeleteCalendar(ctx context.Context, id int64) error
}
