package dify

import "context"

// IDify defines the interface for the Dify completion API client.
// Implementations are safe for concurrent use.
type IDify interface {
	// Complete sends one blocking completion request and returns the decoded
	// scheduling result. The call is terminal: no retry on any failure.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
}

// New creates a new Dify client with the given configuration
func New(cfg Config) (IDify, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDifyImpl(cfg), nil
}
