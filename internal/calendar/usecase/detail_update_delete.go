package usecase

import (
	"context"
	"errors"
	"strings"

	"mcal/internal/calendar"
	repo "mcal/internal/calendar/repository"
)

// Detail retrieves a single Calendar by ID. Returns ErrCalendarNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (calendar.DetailOutput, error) {
	cal, err := uc.repo.GetOneCalendar(ctx, repo.GetOneCalendarOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneCalendar: %v", err)
		return calendar.DetailOutput{}, err
	}
	if cal.ID == 0 {
		return calendar.DetailOutput{}, calendar.ErrCalendarNotFound
	}
	return calendar.DetailOutput{Calendar: cal}, nil
}

// Update replaces name and color of an existing Calendar.
func (uc *implUseCase) Update(ctx context.Context, input calendar.UpdateInput) (calendar.UpdateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return calendar.UpdateOutput{}, calendar.ErrInvalidPayload
	}

	other, err := uc.repo.GetOneCalendar(ctx, repo.GetOneCalendarOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneCalendar: %v", err)
		return calendar.UpdateOutput{}, err
	}
	if other.ID != 0 && other.ID != input.ID {
		return calendar.UpdateOutput{}, calendar.ErrDuplicateName
	}

	cal, err := uc.repo.UpdateCalendar(ctx, repo.UpdateCalendarOptions{
		ID:    input.ID,
		Name:  name,
		Color: input.Color,
	})
	if errors.Is(err, repo.ErrDuplicateKey) {
		return calendar.UpdateOutput{}, calendar.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateCalendar: %v", err)
		return calendar.UpdateOutput{}, err
	}
	if cal.ID == 0 {
		return calendar.UpdateOutput{}, calendar.ErrCalendarNotFound
	}

	uc.invalidate(ctx, "uc.Update")
	return calendar.UpdateOutput{Calendar: cal}, nil
}

// Delete removes a Calendar and its events. Returns ErrCalendarNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteCalendar(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCalendar: %v", err)
		return err
	}

	uc.invalidate(ctx, "uc.Delete")
	return nil
}

// invalidate drops cached expansions. Failures are logged, not returned.
func (uc *implUseCase) invalidate(ctx context.Context, method string) {
	if err := uc.expanded.Bump(ctx); err != nil {
		uc.l.Warnf(ctx, "%s Bump: %v", method, err)
	}
}
