package http

import (
	"errors"
	"net/http"

	"mcal/internal/suggestion"
	pkgErrors "mcal/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are reported as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrEmptyInput),
		errors.Is(err, suggestion.ErrInvalidImage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, suggestion.ErrSuggestionUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, suggestion.ErrSuggestionUnavailable.Error())
	case errors.Is(err, suggestion.ErrMalformedSuggestion):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, suggestion.ErrMalformedSuggestion.Error())
	case errors.Is(err, suggestion.ErrProviderFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, suggestion.ErrProviderFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
