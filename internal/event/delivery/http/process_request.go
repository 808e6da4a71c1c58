package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/mo"

	"mcal/internal/event"
	"mcal/pkg/datemath"
	"mcal/pkg/recurrence"
	pkgErrors "mcal/pkg/errors"
)

func parsePathID(c *gin.Context, invalid *pkgErrors.HTTPError) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}
	return id, nil
}

// parseEventID reads the :id path parameter of /events routes.
func (h *handler) parseEventID(c *gin.Context) (int64, error) {
	return parsePathID(c, errInvalidEventID)
}

// parseCalendarID reads the :id path parameter of /calendars routes.
func (h *handler) parseCalendarID(c *gin.Context) (int64, error) {
	return parsePathID(c, errInvalidCalendarID)
}

// processEventBody binds the event body and converts it to domain fields.
// Semantic checks (title, end after start) are left to the use case.
func (h *handler) processEventBody(c *gin.Context) (event.Fields, error) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.Fields{}, err
	}

	start, err := datemath.ParseNaive(req.StartTime)
	if err != nil {
		return event.Fields{}, errInvalidDateTime
	}
	end, err := datemath.ParseNaive(req.EndTime)
	if err != nil {
		return event.Fields{}, errInvalidDateTime
	}
	freq, err := recurrence.ParseFrequency(req.RepeatFrequency)
	if err != nil {
		return event.Fields{}, event.ErrInvalidFrequency
	}

	until := mo.None[time.Time]()
	if req.RepeatUntil != nil && *req.RepeatUntil != "" {
		t, err := datemath.ParseDate(*req.RepeatUntil)
		if err != nil {
			return event.Fields{}, errInvalidUntil
		}
		until = mo.Some(t)
	}

	return event.Fields{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		StartTime:       start,
		EndTime:         end,
		IsAllDay:        req.IsAllDay,
		RepeatFrequency: freq,
		RepeatUntil:     until,
	}, nil
}

// processCreateReq binds the create event request body + URI param.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	id, err := h.parseCalendarID(c)
	if err != nil {
		return req, err
	}
	fields, err := h.processEventBody(c)
	if err != nil {
		return req, err
	}
	req.CalendarID = id
	req.Fields = fields
	return req, nil
}

// processUpdateReq binds the update event request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.parseEventID(c)
	if err != nil {
		return req, err
	}
	fields, err := h.processEventBody(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	req.Fields = fields
	return req, nil
}

// processListExpandedReq binds and validates the range query string.
func (h *handler) processListExpandedReq(c *gin.Context) (event.ListExpandedInput, error) {
	var req listExpandedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return event.ListExpandedInput{}, err
	}

	start, err := datemath.ParseDate(req.StartDate)
	if err != nil {
		return event.ListExpandedInput{}, errInvalidDate
	}
	end, err := datemath.ParseDate(req.EndDate)
	if err != nil {
		return event.ListExpandedInput{}, errInvalidDate
	}

	return event.ListExpandedInput{
		StartDate:  start,
		EndDate:    end,
		CalendarID: optionalID(req.CalendarID),
	}, nil
}
