package geometry

import (
	"math"

	"github.com/kassel/seatheat/internal/domain/pricemap"
)

// ApplyColors assigns each seat the price band matching its rank. The
// mapping deliberately inverts distance order: seats closest to the stage
// (rank near 0) get the most expensive band, the farthest get the cheapest.
// Colors are re-sorted ascending by price, so callers may pass batches in
// any order. Returns the number of seats colored; an empty color list
// assigns nothing.
func (b *Binding) ApplyColors(colors []pricemap.PriceColor) int {
	if len(colors) == 0 || len(b.seats) == 0 {
		return 0
	}
	if !b.ranked {
		b.RankByDistance()
	}

	sorted := pricemap.SortByPrice(colors)
	n := len(sorted)
	for _, s := range b.seats {
		idx := int(math.Round((1 - s.QuantileRank) * float64(n-1)))
		if idx < 0 {
			idx = 0
		}
		if idx > n-1 {
			idx = n - 1
		}
		s.AssignedPrice = sorted[idx].Price
		s.AssignedColor = sorted[idx].Color
		s.Fill = sorted[idx].Color
		s.Assigned = true
	}
	return len(b.seats)
}
