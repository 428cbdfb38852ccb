// Package ranker ranks stored texts by semantic closeness to a query
// embedding. It is a pure, in-memory computation: callers fetch vectors
// elsewhere and hand them in read-only.
package ranker

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	ErrDegenerateVector  = errors.New("zero-norm vector cannot be normalized")
)

// Record is one (text, embedding) pair of the search corpus.
type Record struct {
	Text   string    `json:"text"`
	Vector []float32 `json:"embedding"`
}

// Result is a ranked record. Score is a cosine similarity in [-1, 1].
type Result struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// CosineSimilarity computes the cosine similarity of two vectors of equal
// dimension, accumulating in float64. The result is clamped to [-1, 1] to
// absorb floating-point drift.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	return clamp(dot/(math.Sqrt(normA)*math.Sqrt(normB)), -1, 1), nil
}

// Rank scores every record in the store against the query and returns the
// min(k, |store|) best matches in descending score order. Ties keep the
// store's original order so output is deterministic. The store is not
// mutated; callers must not modify it while a call is in flight.
func Rank(query []float32, store *Store, k int) ([]Result, error) {
	if k < 1 {
		return nil, fmt.Errorf("top-k must be at least 1, got %d", k)
	}

	results := make([]Result, 0, len(store.Records))

	for i, rec := range store.Records {
		score, err := CosineSimilarity(query, rec.Vector)
		if err != nil {
			return nil, fmt.Errorf("record %d %q: %w", i, rec.Text, err)
		}
		results = append(results, Result{Text: rec.Text, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}

	return results, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
