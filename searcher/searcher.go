// Package searcher provides pluggable backends for indexing embedding
// records and searching them by vector similarity.
package searcher

import (
	"context"

	"github.com/w-h-a/modelkit/ranker"
)

type Searcher interface {
	Index(ctx context.Context, records []ranker.Record) error
	Search(ctx context.Context, vector []float32, limit int) ([]ranker.Result, error)
}
