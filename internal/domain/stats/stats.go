// Package stats computes descriptive statistics over a price batch.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Quartile positions within the sorted batch.
const (
	q1Position = 0.25
	q3Position = 0.75
)

// Summary is a one-pass description of a numeric batch. StdDev is the
// population standard deviation (divide by n, not n-1).
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q1     float64
	Q3     float64
	IQR    float64
	N      int
}

// Describe computes a Summary over values. The input is not modified.
// An empty batch yields the zero Summary; a single element yields StdDev 0
// so downstream z-scores resolve to 0 instead of dividing by zero.
func Describe(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	mean, variance := stat.PopMeanVariance(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		median = sorted[n/2]
	}

	// Order statistics use direct indexing, no interpolation between ranks.
	q1 := sorted[int(math.Floor(float64(n)*q1Position))]
	q3 := sorted[int(math.Floor(float64(n)*q3Position))]

	return Summary{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
		Median: median,
		Q1:     q1,
		Q3:     q3,
		IQR:    q3 - q1,
		N:      n,
	}
}
