package calendar

import "errors"

var (
	ErrCalendarNotFound = errors.New("calendar not found")
	ErrDuplicateName    = errors.New("calendar name already exists")
	ErrInvalidPayload   = errors.New("invalid payload")
)
