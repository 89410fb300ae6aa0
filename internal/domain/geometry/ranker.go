package geometry

import (
	"math"
	"sort"
)

// RankByDistance computes each seat's distance to the stage reference point
// and its quantile rank among all seats. The reference point is anisotropic:
// the stage center's x paired with the stage's bottom-edge y, so rows just
// past the stage lip rank closer than rows level with the stage center.
//
// Seats are reordered ascending by distance; quantileRank is index/(n-1),
// or 0 for a single seat. Ties keep their relative order.
func (b *Binding) RankByDistance() {
	ref := Point{X: b.stage.CenterX, Y: b.stage.BottomY}
	for _, s := range b.seats {
		dx := s.X - ref.X
		dy := s.Y - ref.Y
		s.DistanceFromStage = math.Hypot(dx, dy)
	}

	sort.SliceStable(b.seats, func(i, j int) bool {
		return b.seats[i].DistanceFromStage < b.seats[j].DistanceFromStage
	})

	n := len(b.seats)
	for i, s := range b.seats {
		if n > 1 {
			s.QuantileRank = float64(i) / float64(n-1)
		} else {
			s.QuantileRank = 0
		}
	}
	b.ranked = true
}

// Ranked reports whether RankByDistance has run on the current seat set.
func (b *Binding) Ranked() bool { return b.ranked }
