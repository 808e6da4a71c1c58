package http

import (
	"github.com/samber/mo"

	"mcal/internal/event"
	"mcal/internal/model"
	"mcal/pkg/icalfeed"
	"mcal/pkg/recurrence"
	"mcal/pkg/response"
)

// --- Request DTOs ---

// eventReq is the body of create and update. Date-times are ISO-8601; any
// zone offset is dropped and the wall clock kept.
type eventReq struct {
	Title           string  `json:"title"            binding:"required,max=255"`
	Description     *string `json:"description"`
	Location        *string `json:"location"         binding:"omitempty,max=255"`
	StartTime       string  `json:"start_time"       binding:"required"`
	EndTime         string  `json:"end_time"         binding:"required"`
	IsAllDay        bool    `json:"is_all_day"`
	RepeatFrequency string  `json:"repeat_frequency"`
	RepeatUntil     *string `json:"repeat_until"`
}

type createReq struct {
	CalendarID int64
	Fields     event.Fields
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{CalendarID: r.CalendarID, Fields: r.Fields}
}

type updateReq struct {
	ID     int64
	Fields event.Fields
}

func (r updateReq) toInput() event.UpdateInput {
	return event.UpdateInput{ID: r.ID, Fields: r.Fields}
}

type listExpandedReq struct {
	StartDate  string `form:"start_date"  binding:"required"`
	EndDate    string `form:"end_date"    binding:"required"`
	CalendarID *int64 `form:"calendar_id" binding:"omitempty,gt=0"`
}

// --- Response DTOs ---

type eventResp struct {
	ID              int64                `json:"id"`
	CalendarID      int64                `json:"calendar_id"`
	Title           string               `json:"title"`
	Description     *string              `json:"description"`
	Location        *string              `json:"location"`
	StartTime       response.DateTime    `json:"start_time"  swaggertype:"string" example:"2024-01-31T09:00:00"`
	EndTime         response.DateTime    `json:"end_time"    swaggertype:"string" example:"2024-01-31T10:00:00"`
	IsAllDay        bool                 `json:"is_all_day"`
	RepeatFrequency recurrence.Frequency `json:"repeat_frequency" swaggertype:"string" enums:"none,daily,weekly,monthly,yearly"`
	RepeatUntil     *response.Date       `json:"repeat_until" swaggertype:"string" example:"2024-12-31"`
}

func newEventResp(e model.Event) eventResp {
	resp := eventResp{
		ID:              e.ID,
		CalendarID:      e.CalendarID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		StartTime:       response.DateTime(e.StartTime),
		EndTime:         response.DateTime(e.EndTime),
		IsAllDay:        e.IsAllDay,
		RepeatFrequency: e.RepeatFrequency,
	}
	if until, ok := e.RepeatUntil.Get(); ok {
		d := response.Date(until)
		resp.RepeatUntil = &d
	}
	return resp
}

type occurrenceResp struct {
	OriginalEventID int64             `json:"original_event_id"`
	CalendarID      int64             `json:"calendar_id"`
	Title           string            `json:"title"`
	Description     *string           `json:"description"`
	Location        *string           `json:"location"`
	StartTime       response.DateTime `json:"start_time" swaggertype:"string" example:"2024-02-29T09:00:00"`
	EndTime         response.DateTime `json:"end_time"   swaggertype:"string" example:"2024-02-29T10:00:00"`
	IsAllDay        bool              `json:"is_all_day"`
	Color           *string           `json:"color"`
}

type diagnosticResp struct {
	EventID int64  `json:"event_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type listExpandedResp struct {
	Occurrences []occurrenceResp `json:"occurrences"`
	Warnings    []diagnosticResp `json:"warnings"`
}

func (h *handler) newListExpandedResp(out event.ListExpandedOutput) listExpandedResp {
	resp := listExpandedResp{
		Occurrences: make([]occurrenceResp, len(out.Occurrences)),
		Warnings:    make([]diagnosticResp, len(out.Warnings)),
	}
	for i, o := range out.Occurrences {
		resp.Occurrences[i] = occurrenceResp{
			OriginalEventID: o.OriginalEventID,
			CalendarID:      o.CalendarID,
			Title:           o.Title,
			Description:     o.Description,
			Location:        o.Location,
			StartTime:       response.DateTime(o.StartTime),
			EndTime:         response.DateTime(o.EndTime),
			IsAllDay:        o.IsAllDay,
			Color:           o.Color,
		}
	}
	for i, d := range out.Warnings {
		resp.Warnings[i] = diagnosticResp{EventID: d.EventID, Kind: string(d.Kind), Message: d.Message}
	}
	return resp
}

func newFeed(out event.ExportOutput, domain string) icalfeed.Feed {
	feed := icalfeed.Feed{
		Name:     out.Calendar.Name,
		Color:    out.Calendar.Color,
		Domain:   domain,
		Events:   make([]icalfeed.Event, len(out.Events)),
		Expander: out.Expander,
	}
	for i, e := range out.Events {
		feed.Events[i] = icalfeed.Event{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Location:    e.Location,
			Start:       e.StartTime,
			End:         e.EndTime,
			AllDay:      e.IsAllDay,
			Frequency:   e.RepeatFrequency,
			Until:       e.RepeatUntil,
		}
	}
	return feed
}

func optionalID(id *int64) mo.Option[int64] {
	if id == nil {
		return mo.None[int64]()
	}
	return mo.Some(*id)
}
