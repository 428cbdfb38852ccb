package ranker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	stats := Summarize([]float32{1, 2, 3, 4})

	assert.InDelta(t, 2.5, stats.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(1.25), stats.StdDev, 1e-9)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 4.0, stats.Max)
	assert.InDelta(t, math.Sqrt(30), stats.Norm, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize(nil))
}
