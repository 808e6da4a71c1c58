package usecase

import (
	"strings"

	"github.com/samber/mo"

	"mcal/internal/event"
	"mcal/internal/model"
	"mcal/pkg/datemath"
)

// normalize validates f and returns it in stored form: trimmed title and,
// for all-day events, start and end stretched to the bounds of their days.
func normalize(f event.Fields) (event.Fields, error) {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return f, event.ErrTitleRequired
	}
	if !f.RepeatFrequency.Valid() {
		return f, event.ErrInvalidFrequency
	}

	f.StartTime = datemath.Naive(f.StartTime)
	f.EndTime = datemath.Naive(f.EndTime)
	if f.IsAllDay {
		f.StartTime = datemath.StartOfDay(f.StartTime)
		f.EndTime = datemath.EndOfDay(f.EndTime)
	}
	if !f.EndTime.After(f.StartTime) {
		return f, event.ErrInvalidTimeRange
	}

	if until, ok := f.RepeatUntil.Get(); ok {
		f.RepeatUntil = mo.Some(datemath.DateOf(datemath.Naive(until)))
	}
	return f, nil
}

func toModel(id, calendarID int64, f event.Fields) model.Event {
	return model.Event{
		ID:              id,
		CalendarID:      calendarID,
		Title:           f.Title,
		Description:     f.Description,
		Location:        f.Location,
		StartTime:       f.StartTime,
		EndTime:         f.EndTime,
		IsAllDay:        f.IsAllDay,
		RepeatFrequency: f.RepeatFrequency,
		RepeatUntil:     f.RepeatUntil,
	}
}
