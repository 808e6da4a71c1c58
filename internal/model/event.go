package model

import (
	"time"

	"github.com/samber/mo"

	"mcal/pkg/recurrence"
)

// Event is a stored event definition. StartTime and EndTime are naive local
// instants and EndTime is always after StartTime.
type Event struct {
	ID              int64
	CalendarID      int64
	Title           string
	Description     *string
	Location        *string
	StartTime       time.Time
	EndTime         time.Time
	IsAllDay        bool
	RepeatFrequency recurrence.Frequency
	// RepeatUntil is an inclusive bound on the start date of occurrences.
	RepeatUntil mo.Option[time.Time]
}

// Series returns the time shape of e for expansion.
func (e Event) Series() recurrence.Series {
	return recurrence.Series{
		Start: e.StartTime,
		End:   e.EndTime,
		Rule: recurrence.Rule{
			Frequency: e.RepeatFrequency,
			Until:     e.RepeatUntil,
		},
	}
}

// Occurrence is one concrete instance of an event, built for a single range
// query and never persisted.
type Occurrence struct {
	OriginalEventID int64
	CalendarID      int64
	Title           string
	Description     *string
	Location        *string
	StartTime       time.Time
	EndTime         time.Time
	IsAllDay        bool
	Color           *string
}

// NewOccurrence copies the display fields of e onto span.
func NewOccurrence(e Event, color *string, span recurrence.Span) Occurrence {
	return Occurrence{
		OriginalEventID: e.ID,
		CalendarID:      e.CalendarID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		StartTime:       span.Start,
		EndTime:         span.End,
		IsAllDay:        e.IsAllDay,
		Color:           color,
	}
}
