package suggestion

import "errors"

var (
	ErrEmptyInput            = errors.New("either text or image_b64 must be provided")
	ErrInvalidImage          = errors.New("image_b64 is not valid base64")
	ErrSuggestionUnavailable = errors.New("no AI provider is configured")
	ErrProviderFailed        = errors.New("AI provider request failed")
	ErrMalformedSuggestion   = errors.New("AI reply did not contain exactly one json block")
)
