package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mcal/internal/calendar"
	eventHTTP "mcal/internal/event/delivery/http"
	eventRepo "mcal/internal/event/repository/postgre"
	eventUC "mcal/internal/event/usecase"
)

// setupEventDomain wires the event domain: CRUD, range expansion and
// iCalendar export.
func (srv HTTPServer) setupEventDomain(ctx context.Context, calendars, events *gin.RouterGroup, calendarUC calendar.UseCase) error {
	// 1. Repository
	repo := eventRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := eventUC.New(repo, calendarUC, srv.expander, srv.expanded, srv.l)

	// 3. HTTP Handler
	h := eventHTTP.New(srv.l, uc)

	// 4. Routes
	eventHTTP.RegisterRoutes(calendars, events, h)

	srv.l.Infof(ctx, "Event domain registered (max occurrences %d)", srv.expander.MaxOccurrences())
	return nil
}
