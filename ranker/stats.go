package ranker

import "math"

// Stats summarizes the distribution of a single embedding vector.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Norm   float64
}

// Summarize reports mean, standard deviation, min, max, and L2 norm of the
// vector. A zero-length vector yields the zero Stats.
func Summarize(vec []float32) Stats {
	if len(vec) == 0 {
		return Stats{}
	}

	var sum, sumSquares, norm float64
	min := float64(vec[0])
	max := float64(vec[0])

	for _, v := range vec {
		f := float64(v)
		sum += f
		norm += f * f
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}

	mean := sum / float64(len(vec))

	for _, v := range vec {
		d := float64(v) - mean
		sumSquares += d * d
	}

	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(sumSquares / float64(len(vec))),
		Min:    min,
		Max:    max,
		Norm:   math.Sqrt(norm),
	}
}
