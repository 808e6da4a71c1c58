package http

import (
	"github.com/gin-gonic/gin"

	"mcal/internal/suggestion"
	"mcal/pkg/log"
)

// Handler is the public interface for the suggestion HTTP delivery layer.
type Handler interface {
	Suggest(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for AI event suggestions.
func New(l log.Logger, uc suggestion.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
