package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/mo"

	"mcal/internal/model"
	"mcal/pkg/datemath"
	"mcal/pkg/recurrence"
)

// eventRow is the persisted shape of an event. Timestamps are ISO-8601
// strings without offset, repeat_until an ISO date or NULL.
type eventRow struct {
	ID              int64   `gorm:"column:id;primaryKey"`
	CalendarID      int64   `gorm:"column:calendar_id"`
	Title           string  `gorm:"column:title"`
	Description     *string `gorm:"column:description"`
	Location        *string `gorm:"column:location"`
	StartTime       string  `gorm:"column:start_time"`
	EndTime         string  `gorm:"column:end_time"`
	IsAllDay        bool    `gorm:"column:is_all_day"`
	RepeatFrequency string  `gorm:"column:repeat_frequency"`
	RepeatUntil     *string `gorm:"column:repeat_until"`
}

func (eventRow) TableName() string { return "events" }

// candidateRow is an event row joined with its calendar's color.
type candidateRow struct {
	Event         eventRow `gorm:"embedded"`
	CalendarColor *string  `gorm:"column:calendar_color"`
}

func newEventRow(e model.Event) eventRow {
	row := eventRow{
		ID:              e.ID,
		CalendarID:      e.CalendarID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		StartTime:       datemath.FormatNaive(e.StartTime),
		EndTime:         datemath.FormatNaive(e.EndTime),
		IsAllDay:        e.IsAllDay,
		RepeatFrequency: e.RepeatFrequency.String(),
	}
	if until, ok := e.RepeatUntil.Get(); ok {
		s := datemath.FormatDate(until)
		row.RepeatUntil = &s
	}
	return row
}

// toModel converts a stored row. It fails for rows the expander must never
// see: unparsable timestamps, end not after start, unknown frequency. An
// unparsable repeat_until is dropped and reported through warn.
func (row eventRow) toModel(warn func(string)) (model.Event, error) {
	start, err := datemath.ParseNaive(row.StartTime)
	if err != nil {
		return model.Event{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := datemath.ParseNaive(row.EndTime)
	if err != nil {
		return model.Event{}, fmt.Errorf("end_time: %w", err)
	}
	if !end.After(start) {
		return model.Event{}, fmt.Errorf("end_time %s is not after start_time %s", row.EndTime, row.StartTime)
	}
	freq, err := recurrence.ParseFrequency(row.RepeatFrequency)
	if err != nil {
		return model.Event{}, err
	}

	until := mo.None[time.Time]()
	if row.RepeatUntil != nil && *row.RepeatUntil != "" {
		if t, err := datemath.ParseDate(*row.RepeatUntil); err == nil {
			until = mo.Some(t)
		} else {
			warn(fmt.Sprintf("event %d: ignoring repeat_until: %v", row.ID, err))
		}
	}

	return model.Event{
		ID:              row.ID,
		CalendarID:      row.CalendarID,
		Title:           row.Title,
		Description:     row.Description,
		Location:        row.Location,
		StartTime:       start,
		EndTime:         end,
		IsAllDay:        row.IsAllDay,
		RepeatFrequency: freq,
		RepeatUntil:     until,
	}, nil
}

// toEvents converts rows, logging and skipping the invalid ones.
func (r *implRepository) toEvents(ctx context.Context, method string, rows []eventRow) []model.Event {
	warn := r.warner(ctx, method)
	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		ev, err := row.toModel(warn)
		if err != nil {
			warn(fmt.Sprintf("skipping event %d: %v", row.ID, err))
			continue
		}
		events = append(events, ev)
	}
	return events
}

func (r *implRepository) warner(ctx context.Context, method string) func(string) {
	return func(msg string) {
		r.l.Warnf(ctx, "%s: %s", r.dsn(method), msg)
	}
}
