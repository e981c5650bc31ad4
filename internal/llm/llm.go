package llm

import "context"

// Client is the boundary abstraction over the external model provider.
// Generate performs a single blocking call and returns the raw reply text;
// it does not parse or retry.
type Client interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
