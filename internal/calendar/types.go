package calendar

import "mcal/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name  string
	Color *string
}

type UpdateInput struct {
	ID    int64
	Name  string
	Color *string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Calendar model.Calendar
}

type ListOutput struct {
	Calendars []model.Calendar
}

type DetailOutput struct {
	Calendar model.Calendar
}

type UpdateOutput struct {
	Calendar model.Calendar
}
