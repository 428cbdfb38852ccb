// Package embedder turns text into fixed-dimension embedding vectors via a
// hosted model API. Providers do not retry; API errors propagate unchanged
// to the caller.
package embedder

import "context"

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) (*BatchResult, error)
}

// BatchResult carries the vectors for a batch of inputs, in input order,
// plus the token usage the API reported.
type BatchResult struct {
	Vectors     [][]float32
	TotalTokens int
}
