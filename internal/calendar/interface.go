package calendar

import "context"

type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	// Delete removes the calendar and, through the store, all its events.
	Delete(ctx context.Context, id int64) error
}
