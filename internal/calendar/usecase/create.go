package usecase

import (
	"context"
	"errors"
	"strings"

	"mcal/internal/calendar"
	repo "mcal/internal/calendar/repository"
)

// Create creates a new Calendar after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input calendar.CreateInput) (calendar.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return calendar.CreateOutput{}, calendar.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneCalendar(ctx, repo.GetOneCalendarOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneCalendar: %v", err)
		return calendar.CreateOutput{}, err
	}
	if existing.ID != 0 {
		return calendar.CreateOutput{}, calendar.ErrDuplicateName
	}

	cal, err := uc.repo.CreateCalendar(ctx, repo.CreateCalendarOptions{
		Name:  name,
		Color: input.Color,
	})
	if errors.Is(err, repo.ErrDuplicateKey) {
		return calendar.CreateOutput{}, calendar.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCalendar: %v", err)
		return calendar.CreateOutput{}, err
	}

	return calendar.CreateOutput{Calendar: cal}, nil
}

// List returns every Calendar.
func (uc *implUseCase) List(ctx context.Context) (calendar.ListOutput, error) {
	cals, err := uc.repo.ListCalendars(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCalendars: %v", err)
		return calendar.ListOutput{}, err
	}
	return calendar.ListOutput{Calendars: cals}, nil
}
