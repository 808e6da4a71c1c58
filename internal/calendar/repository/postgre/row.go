package postgre

import "mcal/internal/model"

// calendarRow is the persisted shape of a calendar.
type calendarRow struct {
	ID    int64   `gorm:"column:id;primaryKey"`
	Name  string  `gorm:"column:name"`
	Color *string `gorm:"column:color"`
}

func (calendarRow) TableName() string { return "calendars" }

func (row calendarRow) toModel() model.Calendar {
	return model.Calendar{ID: row.ID, Name: row.Name, Color: row.Color}
}
