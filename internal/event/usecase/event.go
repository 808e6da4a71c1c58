package usecase

import (
	"context"
	"errors"

	"mcal/internal/calendar"
	"mcal/internal/event"
	repo "mcal/internal/event/repository"
)

// Create stores a new event in an existing calendar.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateInput) (event.CreateOutput, error) {
	fields, err := normalize(input.Fields)
	if err != nil {
		return event.CreateOutput{}, err
	}

	if err := uc.requireCalendar(ctx, input.CalendarID); err != nil {
		return event.CreateOutput{}, err
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{Event: toModel(0, input.CalendarID, fields)})
	if errors.Is(err, repo.ErrForeignKey) {
		return event.CreateOutput{}, event.ErrCalendarNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateOutput{}, err
	}

	uc.invalidate(ctx, "uc.Create")
	return event.CreateOutput{Event: ev}, nil
}

// Detail retrieves a single Event by ID. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (event.DetailOutput, error) {
	ev, err := uc.repo.GetOneEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return event.DetailOutput{}, err
	}
	if ev.ID == 0 {
		return event.DetailOutput{}, event.ErrEventNotFound
	}
	return event.DetailOutput{Event: ev}, nil
}

// Update replaces every editable field of an event. The calendar is kept.
func (uc *implUseCase) Update(ctx context.Context, input event.UpdateInput) (event.UpdateOutput, error) {
	fields, err := normalize(input.Fields)
	if err != nil {
		return event.UpdateOutput{}, err
	}

	ev, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{Event: toModel(input.ID, 0, fields)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateOutput{}, err
	}
	if ev.ID == 0 {
		return event.UpdateOutput{}, event.ErrEventNotFound
	}

	uc.invalidate(ctx, "uc.Update")
	return event.UpdateOutput{Event: ev}, nil
}

// Delete removes an event. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.DeleteEvent(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}
	if !deleted {
		return event.ErrEventNotFound
	}

	uc.invalidate(ctx, "uc.Delete")
	return nil
}

// Export returns a calendar with all of its valid stored events.
func (uc *implUseCase) Export(ctx context.Context, calendarID int64) (event.ExportOutput, error) {
	cal, err := uc.calendarUC.Detail(ctx, calendarID)
	if errors.Is(err, calendar.ErrCalendarNotFound) {
		return event.ExportOutput{}, event.ErrCalendarNotFound
	}
	if err != nil {
		return event.ExportOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{CalendarID: calendarID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Export ListEvents: %v", err)
		return event.ExportOutput{}, err
	}
	return event.ExportOutput{Calendar: cal.Calendar, Events: events, Expander: uc.expander}, nil
}

func (uc *implUseCase) requireCalendar(ctx context.Context, id int64) error {
	_, err := uc.calendarUC.Detail(ctx, id)
	if errors.Is(err, calendar.ErrCalendarNotFound) {
		return event.ErrCalendarNotFound
	}
	return err
}

// invalidate drops cached expansions. Failures are logged, not returned.
func (uc *implUseCase) invalidate(ctx context.Context, method string) {
	if err := uc.expanded.Bump(ctx); err != nil {
		uc.l.Warnf(ctx, "%s Bump: %v", method, err)
	}
}
