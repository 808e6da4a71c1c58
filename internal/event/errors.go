package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrInvalidRange     = errors.New("start_date must not be after end_date")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidTimeRange = errors.New("end_time must be after start_time")
	ErrInvalidFrequency = errors.New("invalid repeat_frequency")
)
