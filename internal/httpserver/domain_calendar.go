package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mcal/internal/calendar"
	calendarHTTP "mcal/internal/calendar/delivery/http"
	calendarRepo "mcal/internal/calendar/repository/postgre"
	calendarUC "mcal/internal/calendar/usecase"
)

// setupCalendarDomain wires the calendar domain and registers /calendars.
// The use case is returned for domains that need to look up calendars.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, rg *gin.RouterGroup) (calendar.UseCase, error) {
	// 1. Repository
	repo := calendarRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := calendarUC.New(repo, srv.expanded, srv.l)

	// 3. HTTP Handler
	h := calendarHTTP.New(srv.l, uc)

	// 4. Routes
	calendarHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Calendar domain registered")
	return uc, nil
}
