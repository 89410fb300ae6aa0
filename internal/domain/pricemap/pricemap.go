// Package pricemap turns a batch of prices into an ordered color spectrum.
package pricemap

import (
	"context"
	"sort"

	"github.com/kassel/seatheat/internal/domain/colorspace"
	"github.com/kassel/seatheat/internal/domain/pricescale"
	"github.com/kassel/seatheat/internal/domain/stats"
)

// PriceColor is the color assignment computed for one price within a batch.
// Produced fresh per call; callers must treat it as immutable.
type PriceColor struct {
	Price           float64         `json:"price"`
	Color           string          `json:"color"`
	RGB             colorspace.RGB  `json:"color_rgb"`
	HSL             colorspace.HSL  `json:"color_hsl"`
	NormalizedValue float64         `json:"normalized_value"`
	Percentile      float64         `json:"percentile"`
}

// Option applies a configuration option to the Mapper.
type Option func(*Mapper)

// WithScaler sets the normalization scaler.
func WithScaler(s *pricescale.Scaler) Option {
	return func(m *Mapper) {
		if s != nil {
			m.scaler = s
		}
	}
}

// Mapper converts price batches into PriceColor batches. Mapping is pure:
// the same batch always yields the same colors.
type Mapper struct {
	scaler *pricescale.Scaler
}

// New creates a Mapper with a default scaler.
func New(opts ...Option) *Mapper {
	m := &Mapper{
		scaler: pricescale.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Scaler returns the mapper's normalization scaler.
func (m *Mapper) Scaler() *pricescale.Scaler { return m.scaler }

// Map computes a PriceColor for every price, in input order. An empty input
// yields an empty output. Context is accepted to satisfy the project-wide
// convention; mapping itself never blocks.
func (m *Mapper) Map(_ context.Context, prices []float64) []PriceColor {
	if len(prices) == 0 {
		return []PriceColor{}
	}

	transformed := make([]float64, len(prices))
	for i, p := range prices {
		transformed[i] = m.scaler.Transform(p)
	}
	summary := stats.Describe(transformed)

	sortedPrices := make([]float64, len(prices))
	copy(sortedPrices, prices)
	sort.Float64s(sortedPrices)

	out := make([]PriceColor, len(prices))
	for i, p := range prices {
		v := m.scaler.Normalize(p, transformed[i], summary)
		hsl := colorspace.ForValue(v)
		rgb := hsl.RGB()
		out[i] = PriceColor{
			Price:           p,
			Color:           rgb.Hex(),
			RGB:             rgb,
			HSL:             hsl,
			NormalizedValue: v,
			Percentile:      colorspace.PercentileIn(sortedPrices, p),
		}
	}
	return out
}

// SortByPrice returns a copy of colors sorted ascending by price. Ties keep
// their relative input order.
func SortByPrice(colors []PriceColor) []PriceColor {
	sorted := make([]PriceColor, len(colors))
	copy(sorted, colors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})
	return sorted
}
