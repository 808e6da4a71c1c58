package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"mcal/internal/event"
	"mcal/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ListExpanded(c *gin.Context)
	Export(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  event.UseCase
	now func() time.Time
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		now: time.Now,
	}
}
