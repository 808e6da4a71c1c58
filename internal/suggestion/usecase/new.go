package usecase

import (
	"time"

	"mcal/internal/suggestion"
	"mcal/pkg/log"
)

const (
	temperature = 1.0
	maxTokens   = 4096
	imageMime   = "image/png"
)

// implUseCase is the private implementation of suggestion.UseCase.
type implUseCase struct {
	gen    suggestion.Generator
	prompt string
	now    func() time.Time
	l      log.Logger
}

var _ suggestion.UseCase = (*implUseCase)(nil)

// New creates a new suggestion UseCase implementation. gen may be a nil
// *llmprovider.Manager, in which case every call reports
// ErrSuggestionUnavailable.
func New(gen suggestion.Generator, prompt string, l log.Logger) *implUseCase {
	return &implUseCase{
		gen:    gen,
		prompt: prompt,
		now:    time.Now,
		l:      l,
	}
}
