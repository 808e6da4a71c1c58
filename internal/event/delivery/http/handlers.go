package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mcal/pkg/icalfeed"
	"mcal/pkg/response"
)

const icalContentType = "text/calendar; charset=utf-8"

// Create godoc
// @Summary     Create an event in a calendar
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path int      true "Calendar ID"
// @Param       body body eventReq true "Event data"
// @Success     201  {object} eventResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Calendar not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /calendars/{id}/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "event.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newEventResp(output.Event))
}

// Detail godoc
// @Summary     Get an event
// @Tags        Events
// @Produce     json
// @Param       id path int true "Event ID"
// @Success     200 {object} eventResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.parseEventID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "event.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(output.Event))
}

// Update godoc
// @Summary     Replace an event
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       id   path int      true "Event ID"
// @Param       body body eventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "event.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(output.Event))
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Param       id path int true "Event ID"
// @Success     204
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.parseEventID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "event.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}

// ListExpanded godoc
// @Summary     List occurrences in a date range
// @Description Expands recurring events into the occurrences overlapping start_date..end_date (both inclusive), sorted by start time.
// @Tags        Events
// @Produce     json
// @Param       start_date  query string true  "First day, YYYY-MM-DD"
// @Param       end_date    query string true  "Last day, YYYY-MM-DD"
// @Param       calendar_id query int    false "Only this calendar"
// @Success     200 {object} listExpandedResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /events/expanded [GET]
func (h *handler) ListExpanded(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListExpandedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListExpanded(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "event.http.ListExpanded: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListExpandedResp(output))
}

// Export godoc
// @Summary     Export a calendar as iCalendar
// @Tags        Calendars
// @Produce     text/calendar
// @Param       id path int true "Calendar ID"
// @Success     200 {string} string "VCALENDAR"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /calendars/{id}/export.ics [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.parseCalendarID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "event.http.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	var buf bytes.Buffer
	if err := icalfeed.Encode(&buf, newFeed(output, hostname(c.Request.Host)), h.now()); err != nil {
		h.l.Errorf(ctx, "event.http.Export Encode: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="calendar-%d.ics"`, id))
	c.Data(http.StatusOK, icalContentType, buf.Bytes())
}

func hostname(host string) string {
	if i := strings.LastIndexByte(host, ':'); i > 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	if host == "" {
		return "mcal.local"
	}
	return host
}
