package http

import (
	"errors"
	"net/http"

	"mcal/internal/calendar"
	pkgErrors "mcal/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid calendar id")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrCalendarNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "calendar not found")
	case errors.Is(err, calendar.ErrDuplicateName):
		return pkgErrors.NewHTTPError(http.StatusConflict, "calendar name already exists")
	case errors.Is(err, calendar.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "calendar name is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
