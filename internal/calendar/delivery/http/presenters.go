package http

import (
	"mcal/internal/calendar"
	"mcal/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name  string  `json:"name"  binding:"required,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

func (r createReq) toInput() calendar.CreateInput {
	return calendar.CreateInput{Name: r.Name, Color: r.Color}
}

type updateReq struct {
	ID    int64   `json:"-"`
	Name  string  `json:"name"  binding:"required,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

func (r updateReq) toInput() calendar.UpdateInput {
	return calendar.UpdateInput{ID: r.ID, Name: r.Name, Color: r.Color}
}

// --- Response DTOs ---

type calendarResp struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

func newCalendarResp(c model.Calendar) calendarResp {
	return calendarResp{ID: c.ID, Name: c.Name, Color: c.Color}
}

func (h *handler) newListResp(out calendar.ListOutput) []calendarResp {
	resp := make([]calendarResp, len(out.Calendars))
	for i, c := range out.Calendars {
		resp[i] = newCalendarResp(c)
	}
	return resp
}
