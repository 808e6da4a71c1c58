package http

import (
	"github.com/gin-gonic/gin"

	"mcal/pkg/response"
)

// Suggest godoc
// @Summary     Suggest events from text or a screenshot
// @Description Sends the text and/or PNG image to the configured AI provider and returns the proposed events. Nothing is stored.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Text and/or base64 PNG"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Malformed AI reply"
// @Failure     503 {object} response.Resp "No AI provider configured"
// @Router      /events/ai-suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "suggestion.http.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSuggestResp(output))
}
