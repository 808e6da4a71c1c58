package http

import (
	"github.com/gin-gonic/gin"

	"mcal/internal/calendar"
	"mcal/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
