package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods. calendars is
// the /calendars group, events the /events group.
func RegisterRoutes(calendars, events *gin.RouterGroup, h Handler) {
	calendars.POST("/:id/events", h.Create)
	calendars.GET("/:id/export.ics", h.Export)

	events.GET("/expanded", h.ListExpanded)
	events.GET("/:id", h.Detail)
	events.PUT("/:id", h.Update)
	events.DELETE("/:id", h.Delete)
}
