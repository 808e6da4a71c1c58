package http

import (
	"github.com/gin-gonic/gin"

	"mcal/pkg/response"
)

// Create godoc
// @Summary     Create a calendar
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Calendar data"
// @Success     201  {object} calendarResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - name already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /calendars [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCalendarResp(output.Calendar))
}

// List godoc
// @Summary     List calendars
// @Tags        Calendars
// @Produce     json
// @Success     200 {array}  calendarResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /calendars [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "calendar.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a calendar
// @Tags        Calendars
// @Produce     json
// @Param       id path int true "Calendar ID"
// @Success     200 {object} calendarResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /calendars/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCalendarResp(output.Calendar))
}

// Update godoc
// @Summary     Replace a calendar's name and color
// @Tags        Calendars
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Calendar ID"
// @Param       body body updateReq true "Calendar data"
// @Success     200 {object} calendarResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Router      /calendars/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "calendar.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCalendarResp(output.Calendar))
}

// Delete godoc
// @Summary     Delete a calendar and all of its events
// @Tags        Calendars
// @Param       id path int true "Calendar ID"
// @Success     204
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /calendars/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "calendar.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
