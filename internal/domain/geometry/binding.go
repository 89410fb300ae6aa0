package geometry

import (
	"github.com/google/uuid"
)

// Seat is one selectable place in the venue. Seats are owned by their
// Binding: the ranker and zone assigner mutate them in place, and the whole
// set is replaced when a new diagram is bound.
type Seat struct {
	ID                string
	X                 float64
	Y                 float64
	Fill              string
	DistanceFromStage float64
	QuantileRank      float64
	AssignedPrice     float64
	AssignedColor     string
	Assigned          bool
}

// Stage is the reference primitive seats are ranked against. BottomY is the
// lower edge used as the anisotropic distance reference.
type Stage struct {
	CenterX float64
	CenterY float64
	BottomY float64
}

// Binding is a session over one parsed diagram: cached geometry plus the
// current color assignments. All methods assume a single logical writer.
type Binding struct {
	id          string
	encoding    string
	width       float64
	seats       []*Seat
	stage       Stage
	neutralFill string
	ranked      bool
}

// Bind parses a diagram document and resolves its seats and stage. The
// rectangle encoding is preferred; the legacy path encoding is used only
// when no rectangle seats are present.
func (p *Parser) Bind(doc string) (*Binding, error) {
	prims, err := p.parse(doc)
	if err != nil {
		return nil, err
	}

	b := &Binding{
		id:          uuid.NewString(),
		width:       prims.width,
		neutralFill: p.neutralFill,
	}
	b.seats, b.encoding = p.extractSeats(prims)
	b.stage = p.findStage(prims)
	return b, nil
}

// extractSeats builds the seat list for whichever encoding the document
// uses. Rectangle seats center on their bounding box; legacy path seats
// offset the anchor by half the default seat size.
func (p *Parser) extractSeats(prims *parsed) ([]*Seat, string) {
	var seats []*Seat
	for _, prim := range prims.rects {
		if !prim.HasFillMarker(p.seatMarker) {
			continue
		}
		box, _ := prim.BoundingBox()
		center := box.Center()
		seats = append(seats, &Seat{
			ID:   prim.ID(),
			X:    center.X,
			Y:    center.Y,
			Fill: p.seatMarker,
		})
	}
	if len(seats) > 0 {
		return seats, EncodingRect
	}

	for _, prim := range prims.paths {
		if !prim.HasFillMarker(p.seatMarker) {
			continue
		}
		anchor, ok := prim.FirstAnchorPoint()
		if !ok {
			continue
		}
		seats = append(seats, &Seat{
			ID:   prim.ID(),
			X:    anchor.X + defaultSeatSize/2,
			Y:    anchor.Y + defaultSeatSize/2,
			Fill: p.seatMarker,
		})
	}
	return seats, EncodingLegacyPath
}

// findStage resolves the stage through the three-tier fallback:
//  1. rectangle with the stage marker: center and bottom edge from its box
//  2. legacy path with the stage marker (the second match when more than
//     one exists): x centered on the diagram, y from the anchor
//  3. fixed fallback position
//
// Older diagrams rely on each tier, so the order must not change.
func (p *Parser) findStage(prims *parsed) Stage {
	for _, prim := range prims.rects {
		if !prim.HasFillMarker(p.stageMarker) {
			continue
		}
		box, _ := prim.BoundingBox()
		center := box.Center()
		return Stage{CenterX: center.X, CenterY: center.Y, BottomY: box.Bottom()}
	}

	var matches []Primitive
	for _, prim := range prims.paths {
		if prim.HasFillMarker(p.stageMarker) {
			matches = append(matches, prim)
		}
	}
	if len(matches) > 0 {
		pick := matches[0]
		if len(matches) > 1 {
			pick = matches[1]
		}
		if anchor, ok := pick.FirstAnchorPoint(); ok {
			return Stage{CenterX: prims.width / 2, CenterY: anchor.Y, BottomY: anchor.Y}
		}
	}

	return Stage{CenterX: prims.width / 2, CenterY: fallbackStageY, BottomY: fallbackStageBottom}
}

// ID returns the binding identity.
func (b *Binding) ID() string { return b.id }

// Encoding reports which seat encoding the document used.
func (b *Binding) Encoding() string { return b.encoding }

// Width returns the diagram width.
func (b *Binding) Width() float64 { return b.width }

// Seats exposes the binding's seat set. Callers share ownership with the
// binding; mutating seats outside ApplyColors/Reset is not supported.
func (b *Binding) Seats() []*Seat { return b.seats }

// SeatCount returns the number of seats.
func (b *Binding) SeatCount() int { return len(b.seats) }

// Stage returns the resolved stage.
func (b *Binding) Stage() Stage { return b.stage }

// Reset restores every seat to the neutral fill and discards assignments.
// Geometry and rank state are kept.
func (b *Binding) Reset() {
	for _, s := range b.seats {
		s.Fill = b.neutralFill
		s.AssignedPrice = 0
		s.AssignedColor = ""
		s.Assigned = false
	}
}
