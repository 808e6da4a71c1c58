package usecase

import (
	"mcal/internal/calendar"
	"mcal/internal/calendar/repository"
	"mcal/pkg/cache"
	"mcal/pkg/log"
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	repo     repository.Repository
	expanded *cache.Namespace
	l        log.Logger
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a new calendar UseCase implementation. expanded may be nil;
// when set it is bumped whenever a change affects expanded occurrences.
func New(repo repository.Repository, expanded *cache.Namespace, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		expanded: expanded,
		l:        l,
	}
}
