package usecase

import (
	"mcal/internal/calendar"
	"mcal/internal/event"
	"mcal/internal/event/repository"
	"mcal/pkg/cache"
	"mcal/pkg/log"
	"mcal/pkg/recurrence"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo       repository.Repository
	calendarUC calendar.UseCase
	expander   recurrence.Expander
	expanded   *cache.Namespace
	l          log.Logger
}

var _ event.UseCase = (*implUseCase)(nil)

// New creates a new event UseCase implementation. expanded may be nil, which
// disables caching of range queries.
func New(
	repo repository.Repository,
	calendarUC calendar.UseCase,
	expander recurrence.Expander,
	expanded *cache.Namespace,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		repo:       repo,
		calendarUC: calendarUC,
		expander:   expander,
		expanded:   expanded,
		l:          l,
	}
}
