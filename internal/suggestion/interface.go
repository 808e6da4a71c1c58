package suggestion

import (
	"context"

	"mcal/pkg/llmprovider"
)

type UseCase interface {
	// Suggest asks the configured model to turn input into event proposals.
	Suggest(ctx context.Context, input Input) (SuggestOutput, error)
}

// Generator is the subset of *llmprovider.Manager the use case needs.
type Generator interface {
	Available() bool
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
