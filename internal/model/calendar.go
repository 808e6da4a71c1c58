package model

// Calendar groups events under a unique name and an optional display color.
type Calendar struct {
	ID    int64
	Name  string
	Color *string
}
