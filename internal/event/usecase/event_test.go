package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"

	"mcal/internal/event"
	"mcal/internal/model"
	"mcal/pkg/datemath"
	"mcal/pkg/recurrence"
)

func validFields() event.Fields {
	return event.Fields{
		Title:     "  Dentist ",
		StartTime: at(2024, 3, 4, 14, 0),
		EndTime:   at(2024, 3, 4, 15, 0),
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		calendarID int64
		mutate     func(*event.Fields)
		wantErr    error
	}{
		{name: "ok", calendarID: 1},
		{name: "blank title", calendarID: 1, mutate: func(f *event.Fields) { f.Title = " " }, wantErr: event.ErrTitleRequired},
		{name: "end before start", calendarID: 1, mutate: func(f *event.Fields) { f.EndTime = f.StartTime }, wantErr: event.ErrInvalidTimeRange},
		{name: "unknown frequency", calendarID: 1, mutate: func(f *event.Fields) { f.RepeatFrequency = recurrence.Frequency(42) }, wantErr: event.ErrInvalidFrequency},
		{name: "missing calendar", calendarID: 7, wantErr: event.ErrCalendarNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRepo()
			uc, _ := newTestUseCase(r)
			f := validFields()
			if tt.mutate != nil {
				tt.mutate(&f)
			}

			out, err := uc.Create(context.Background(), event.CreateInput{CalendarID: tt.calendarID, Fields: f})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if len(r.events) != 0 {
					t.Errorf("nothing should be stored, got %+v", r.events)
				}
				return
			}
			if out.Event.ID != 1 || out.Event.Title != "Dentist" || out.Event.CalendarID != 1 {
				t.Errorf("unexpected event: %+v", out.Event)
			}
		})
	}
}

func TestCreate_AllDayIsNormalized(t *testing.T) {
	uc, _ := newTestUseCase(newFakeRepo())
	f := validFields()
	f.IsAllDay = true
	f.EndTime = at(2024, 3, 5, 1, 0)
	f.RepeatFrequency = recurrence.Weekly
	f.RepeatUntil = mo.Some(at(2024, 6, 1, 13, 30))

	out, err := uc.Create(context.Background(), event.CreateInput{CalendarID: 1, Fields: f})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !out.Event.StartTime.Equal(day(2024, 3, 4)) {
		t.Errorf("start = %v, want midnight", out.Event.StartTime)
	}
	if !out.Event.EndTime.Equal(datemath.EndOfDay(day(2024, 3, 5))) {
		t.Errorf("end = %v, want end of day", out.Event.EndTime)
	}
	if until := out.Event.RepeatUntil.MustGet(); !until.Equal(day(2024, 6, 1)) {
		t.Errorf("repeat_until = %v, want a date", until)
	}
}

func TestUpdate(t *testing.T) {
	existing := model.Event{ID: 3, CalendarID: 2, Title: "Old",
		StartTime: at(2024, 3, 1, 9, 0), EndTime: at(2024, 3, 1, 10, 0)}

	t.Run("keeps the calendar", func(t *testing.T) {
		uc, _ := newTestUseCase(newFakeRepo(existing))
		out, err := uc.Update(context.Background(), event.UpdateInput{ID: 3, Fields: validFields()})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if out.Event.CalendarID != 2 || out.Event.Title != "Dentist" {
			t.Errorf("unexpected event: %+v", out.Event)
		}
	})

	t.Run("missing event", func(t *testing.T) {
		uc, _ := newTestUseCase(newFakeRepo())
		_, err := uc.Update(context.Background(), event.UpdateInput{ID: 3, Fields: validFields()})
		if !errors.Is(err, event.ErrEventNotFound) {
			t.Errorf("expected ErrEventNotFound, got %v", err)
		}
	})
}

func TestDetailAndDelete(t *testing.T) {
	r := newFakeRepo(model.Event{ID: 5, CalendarID: 1, Title: "x",
		StartTime: at(2024, 3, 1, 9, 0), EndTime: at(2024, 3, 1, 10, 0)})
	uc, _ := newTestUseCase(r)
	ctx := context.Background()

	if out, err := uc.Detail(ctx, 5); err != nil || out.Event.ID != 5 {
		t.Fatalf("Detail() = %+v, %v", out, err)
	}
	if err := uc.Delete(ctx, 5); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := uc.Detail(ctx, 5); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound after delete, got %v", err)
	}
	if err := uc.Delete(ctx, 5); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound on second delete, got %v", err)
	}
}

func TestExport(t *testing.T) {
	r := newFakeRepo(
		model.Event{ID: 1, CalendarID: 1, Title: "a", StartTime: at(2024, 3, 1, 9, 0), EndTime: at(2024, 3, 1, 10, 0)},
		model.Event{ID: 2, CalendarID: 2, Title: "b", StartTime: at(2024, 3, 1, 9, 0), EndTime: at(2024, 3, 1, 10, 0)},
	)
	uc, _ := newTestUseCase(r)

	out, err := uc.Export(context.Background(), 2)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if out.Calendar.ID != 2 || len(out.Events) != 1 || out.Events[0].ID != 2 {
		t.Errorf("unexpected export: %+v", out)
	}

	if _, err := uc.Export(context.Background(), 9); !errors.Is(err, event.ErrCalendarNotFound) {
		t.Errorf("expected ErrCalendarNotFound, got %v", err)
	}
}

func TestDeleteUndecodableEvent(t *testing.T) {
	r := newFakeRepo(model.Event{ID: 9, CalendarID: 1, Title: "broken",
		StartTime: at(2024, 3, 1, 10, 0), EndTime: at(2024, 3, 1, 9, 0)})
	r.corrupt = map[int64]bool{9: true}
	uc, _ := newTestUseCase(r)
	ctx := context.Background()

	if _, err := uc.Detail(ctx, 9); err == nil {
		t.Fatalf("expected Detail to fail on an undecodable row")
	}
	if err := uc.Delete(ctx, 9); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(r.events) != 0 {
		t.Errorf("expected the row to be gone, got %+v", r.events)
	}
}
