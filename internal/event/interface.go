package event

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id int64) error

	// ListExpanded returns every occurrence overlapping the requested range.
	ListExpanded(ctx context.Context, input ListExpandedInput) (ListExpandedOutput, error)

	// Export returns a calendar with all of its stored events.
	Export(ctx context.Context, calendarID int64) (ExportOutput, error)
}
