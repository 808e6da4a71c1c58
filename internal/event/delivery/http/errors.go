package http

import (
	"errors"
	"net/http"

	"mcal/internal/event"
	pkgErrors "mcal/pkg/errors"
)

var (
	errInvalidEventID    = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event id")
	errInvalidCalendarID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid calendar id")
	errInvalidDate       = pkgErrors.NewHTTPError(http.StatusBadRequest, "dates must be formatted as YYYY-MM-DD")
	errInvalidDateTime   = pkgErrors.NewHTTPError(http.StatusBadRequest, "start_time and end_time must be ISO-8601 date-times")
	errInvalidUntil      = pkgErrors.NewHTTPError(http.StatusBadRequest, "repeat_until must be formatted as YYYY-MM-DD")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "event not found")
	case errors.Is(err, event.ErrCalendarNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "calendar not found")
	case errors.Is(err, event.ErrInvalidRange),
		errors.Is(err, event.ErrTitleRequired),
		errors.Is(err, event.ErrInvalidTimeRange),
		errors.Is(err, event.ErrInvalidFrequency):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
