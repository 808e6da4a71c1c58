package postgre

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	repo "mcal/internal/calendar/repository"
	"mcal/internal/model"
)

// CreateCalendar inserts a new Calendar row and returns the created entity.
func (r *implRepository) CreateCalendar(ctx context.Context, opt repo.CreateCalendarOptions) (model.Calendar, error) {
	row := calendarRow{Name: opt.Name, Color: opt.Color}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Calendar{}, repo.ErrDuplicateKey
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCalendar"), err)
		return model.Calendar{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetOneCalendar retrieves a single Calendar by the provided filters (AND condition).
// Returns zero-value Calendar (ID == 0) when not found.
func (r *implRepository) GetOneCalendar(ctx context.Context, opt repo.GetOneCalendarOptions) (model.Calendar, error) {
	q := r.db.WithContext(ctx).Model(&calendarRow{})
	if opt.ID != 0 {
		q = q.Where("id = ?", opt.ID)
	}
	if opt.Name != "" {
		q = q.Where("name = ?", opt.Name)
	}

	var rows []calendarRow
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCalendar"), err)
		return model.Calendar{}, repo.ErrFailedToGet
	}
	if len(rows) == 0 {
		return model.Calendar{}, nil
	}
	return rows[0].toModel(), nil
}

// ListCalendars returns every Calendar ordered by id.
func (r *implRepository) ListCalendars(ctx context.Context) ([]model.Calendar, error) {
	var rows []calendarRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCalendars"), err)
		return nil, repo.ErrFailedToList
	}

	calendars := make([]model.Calendar, len(rows))
	for i, row := range rows {
		calendars[i] = row.toModel()
	}
	return calendars, nil
}

// UpdateCalendar replaces name and color and returns the updated entity.
// Returns zero-value Calendar when no row matched.
func (r *implRepository) UpdateCalendar(ctx context.Context, opt repo.UpdateCalendarOptions) (model.Calendar, error) {
	row := calendarRow{ID: opt.ID}
	res := r.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Select("name", "color").
		Updates(calendarRow{Name: opt.Name, Color: opt.Color})
	if err := res.Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.Calendar{}, repo.ErrDuplicateKey
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCalendar"), err)
		return model.Calendar{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Calendar{}, nil
	}
	return row.toModel(), nil
}

// DeleteCalendar removes a Calendar by ID. Its events go with it (ON DELETE CASCADE).
func (r *implRepository) DeleteCalendar(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&calendarRow{}, id).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCalendar"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
