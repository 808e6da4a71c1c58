package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the suggestion endpoint on the /events group. mw runs
// before the handler, typically a rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	rg.POST("/ai-suggest", append(mw, h.Suggest)...)
}
