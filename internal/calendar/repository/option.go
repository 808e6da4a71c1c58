package repository

// CreateCalendarOptions holds parameters for inserting a new Calendar.
type CreateCalendarOptions struct {
	Name  string
	Color *string
}

// GetOneCalendarOptions holds filter parameters for fetching a single Calendar.
// All non-zero fields are applied as AND conditions.
type GetOneCalendarOptions struct {
	ID   int64
	Name string
}

// UpdateCalendarOptions replaces name and color of an existing Calendar.
type UpdateCalendarOptions struct {
	ID    int64
	Name  string
	Color *string
}
