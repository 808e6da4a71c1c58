package postgre

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	repo "mcal/internal/event/repository"
	"mcal/internal/model"
)

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	row := newEventRow(opt.Event)
	row.ID = 0

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return model.Event{}, repo.ErrForeignKey
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}

	ev := opt.Event
	ev.ID = row.ID
	return ev, nil
}

// GetOneEvent retrieves a single Event by ID.
// Returns zero-value Event (ID == 0) when not found.
func (r *implRepository) GetOneEvent(ctx context.Context, id int64) (model.Event, error) {
	var rows []eventRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	if len(rows) == 0 {
		return model.Event{}, nil
	}

	ev, err := rows[0].toModel(r.warner(ctx, "GetOneEvent"))
	if err != nil {
		r.l.Errorf(ctx, "%s: event %d: %v", r.dsn("GetOneEvent"), id, err)
		return model.Event{}, repo.ErrCorruptRecord
	}
	return ev, nil
}

// ListEvents returns the valid stored events of a calendar ordered by start.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	var rows []eventRow
	err := r.db.WithContext(ctx).
		Where("calendar_id = ?", opt.CalendarID).
		Order("start_time").Order("id").
		Find(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return r.toEvents(ctx, "ListEvents", rows), nil
}

// UpdateEvent replaces the editable columns of an Event and returns it with
// its stored calendar. Returns zero-value Event when no row matched.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (model.Event, error) {
	row := newEventRow(opt.Event)
	res := r.db.WithContext(ctx).
		Model(&eventRow{ID: opt.Event.ID}).
		Select("title", "description", "location", "start_time", "end_time",
			"is_all_day", "repeat_frequency", "repeat_until").
		Updates(&row)
	if err := res.Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return model.Event{}, repo.ErrFailedToUpdate
	}
	if res.RowsAffected == 0 {
		return model.Event{}, nil
	}

	return r.GetOneEvent(ctx, opt.Event.ID)
}

// DeleteEvent removes an Event by ID.
func (r *implRepository) DeleteEvent(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&eventRow{}, id)
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), res.Error)
		return false, repo.ErrFailedToDelete
	}
	return res.RowsAffected > 0, nil
}

// ListCandidates runs the range query pre-filter.
func (r *implRepository) ListCandidates(ctx context.Context, opt repo.ListCandidatesOptions) ([]repo.Candidate, error) {
	query, args := buildCandidateQuery(opt)

	var rows []candidateRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCandidates"), err)
		return nil, repo.ErrFailedToList
	}

	warn := r.warner(ctx, "ListCandidates")
	candidates := make([]repo.Candidate, 0, len(rows))
	for _, row := range rows {
		ev, err := row.Event.toModel(warn)
		if err != nil {
			warn(fmt.Sprintf("skipping event %d: %v", row.Event.ID, err))
			continue
		}
		candidates = append(candidates, repo.Candidate{Event: ev, Color: row.CalendarColor})
	}
	return candidates, nil
}
