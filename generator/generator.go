// Package generator produces chat completions from a hosted model API.
package generator

import "context"

type Generator interface {
	Generate(ctx context.Context, prompt string) (*Response, error)
}

// Response is a completed generation. TotalTokens is zero when the
// provider does not report usage.
type Response struct {
	Content     string
	TotalTokens int
}
