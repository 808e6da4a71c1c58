package groq

import "context"

// IGroq defines the interface for the Groq chat completions client.
// Implementations are safe for concurrent use.
type IGroq interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
