// Package pricescale converts a price into a [0,1] spectrum position by
// blending a distribution-relative estimate with fixed absolute price bands.
package pricescale

import (
	"math"

	"github.com/kassel/seatheat/internal/domain/stats"
)

// Default configuration constants.
const (
	defaultMinBatchSize = 5
	// minAbsoluteWeight floors the blend so absolute bands always contribute.
	minAbsoluteWeight = 0.2
	// weightDecayBatches is the batch-size span over which the absolute
	// weight decays from 1 toward the floor.
	weightDecayBatches = 20
)

// Thresholds are the absolute price anchors of the band estimate.
type Thresholds struct {
	VeryLow  float64
	Low      float64
	Medium   float64
	High     float64
	VeryHigh float64
}

// DefaultThresholds returns the stock price bands.
func DefaultThresholds() Thresholds {
	return Thresholds{VeryLow: 500, Low: 1500, Medium: 3500, High: 7000, VeryHigh: 15000}
}

// valid reports whether the anchors are positive and strictly increasing.
func (t Thresholds) valid() bool {
	return t.VeryLow > 0 &&
		t.VeryLow < t.Low &&
		t.Low < t.Medium &&
		t.Medium < t.High &&
		t.High < t.VeryHigh
}

// Option applies a configuration option to the Scaler.
type Option func(*Scaler)

// WithThresholds sets the absolute price bands. Invalid bands are ignored.
func WithThresholds(t Thresholds) Option {
	return func(s *Scaler) {
		if t.valid() {
			s.thresholds = t
		}
	}
}

// WithLogScale toggles the log1p transform applied before batch statistics.
func WithLogScale(enabled bool) Option {
	return func(s *Scaler) {
		s.logScale = enabled
	}
}

// WithMinBatchSize sets the smallest batch that gets distribution-relative
// normalization; smaller batches use the absolute bands only.
func WithMinBatchSize(n int) Option {
	return func(s *Scaler) {
		if n > 0 {
			s.minBatch = n
		}
	}
}

// Scaler computes spectrum positions for prices within a batch.
type Scaler struct {
	thresholds Thresholds
	logScale   bool
	minBatch   int
}

// New creates a Scaler with default thresholds, log scaling on, and the
// default minimum batch size.
func New(opts ...Option) *Scaler {
	s := &Scaler{
		thresholds: DefaultThresholds(),
		logScale:   true,
		minBatch:   defaultMinBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LogScale reports whether the log1p transform is enabled.
func (s *Scaler) LogScale() bool { return s.logScale }

// MinBatchSize returns the configured minimum batch size.
func (s *Scaler) MinBatchSize() int { return s.minBatch }

// Thresholds returns the configured absolute price bands.
func (s *Scaler) Thresholds() Thresholds { return s.thresholds }

// Transform maps a raw price into the space batch statistics are computed
// over: log1p when log scaling is enabled, identity otherwise.
func (s *Scaler) Transform(price float64) float64 {
	if s.logScale {
		return math.Log1p(price)
	}
	return price
}

// Normalize converts one price into a [0,1] position. transformed is the
// Transform of price; sum describes the transformed batch. Batches smaller
// than the minimum skip statistics entirely and use the absolute bands.
func (s *Scaler) Normalize(price, transformed float64, sum stats.Summary) float64 {
	absolute := s.AbsoluteEstimate(price)
	if sum.N < s.minBatch {
		return clamp01(absolute)
	}

	z := 0.0
	if sum.StdDev > 0 {
		z = (transformed - sum.Mean) / sum.StdDev
	}
	relative := NormalCDF(z)

	weight := 1 - float64(sum.N-s.minBatch)/weightDecayBatches
	if weight < minAbsoluteWeight {
		weight = minAbsoluteWeight
	}
	return clamp01(relative*(1-weight) + absolute*weight)
}

// AbsoluteEstimate maps a raw price onto [0,1] using the fixed anchors
// (0,0) (veryLow,0.1) (low,0.25) (medium,0.5) (high,0.75) (veryHigh,0.9),
// easing between anchors with a smoothstep to avoid visible banding. Above
// veryHigh the estimate approaches 1.0 asymptotically without overshoot.
func (s *Scaler) AbsoluteEstimate(price float64) float64 {
	t := s.thresholds
	if price <= 0 {
		return 0
	}
	if price >= t.VeryHigh {
		return 0.9 + 0.1*(1-t.VeryHigh/price)
	}

	anchors := [...]struct{ price, value float64 }{
		{0, 0},
		{t.VeryLow, 0.1},
		{t.Low, 0.25},
		{t.Medium, 0.5},
		{t.High, 0.75},
		{t.VeryHigh, 0.9},
	}
	for i := 1; i < len(anchors); i++ {
		if price <= anchors[i].price {
			lo, hi := anchors[i-1], anchors[i]
			f := (price - lo.price) / (hi.price - lo.price)
			return lo.value + (hi.value-lo.value)*smoothstep(f)
		}
	}
	return 0.9
}

// Abramowitz–Stegun rational approximation constants. The exact polynomial
// is reproduced for numerical compatibility with existing output.
const (
	asA1 = 0.254829592
	asA2 = -0.284496736
	asA3 = 1.421413741
	asA4 = -1.453152027
	asA5 = 1.061405429
	asP  = 0.3275911
)

// NormalCDF approximates the standard Gaussian cumulative distribution.
func NormalCDF(z float64) float64 {
	var sign float64
	switch {
	case z > 0:
		sign = 1
	case z < 0:
		sign = -1
	}
	u := math.Abs(z) / math.Sqrt2
	t := 1 / (1 + asP*u)
	y := 1 - (((((asA5*t+asA4)*t+asA3)*t+asA2)*t+asA1)*t)*math.Exp(-u*u)
	return 0.5 * (1 + sign*y)
}

// smoothstep is the cubic Hermite ease 3t²−2t³ on [0,1].
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
