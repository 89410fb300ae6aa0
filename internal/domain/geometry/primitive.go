// Package geometry extracts seat and stage primitives from venue diagram
// documents and assigns price colors to seats by distance from the stage.
package geometry

import (
	"strings"
)

// Point is a position in diagram coordinates.
type Point struct {
	X float64
	Y float64
}

// Box is an axis-aligned bounding box.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the box midpoint.
func (b Box) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Bottom returns the y coordinate of the lower edge.
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// Primitive is the capability set shared by the two diagram encodings.
// Rectangle primitives expose a bounding box; legacy path primitives expose
// the anchor point read from their first move-to command.
type Primitive interface {
	ID() string
	HasFillMarker(marker string) bool
	BoundingBox() (Box, bool)
	FirstAnchorPoint() (Point, bool)
}

// rectPrimitive is a seat or stage drawn with rectangle attributes.
type rectPrimitive struct {
	id           string
	fill         string
	box          Box
	cornerRadius float64
}

func (r *rectPrimitive) ID() string { return r.id }

func (r *rectPrimitive) HasFillMarker(marker string) bool {
	return fillMatches(r.fill, marker)
}

func (r *rectPrimitive) BoundingBox() (Box, bool) {
	return r.box, true
}

func (r *rectPrimitive) FirstAnchorPoint() (Point, bool) {
	return Point{}, false
}

// pathPrimitive is a seat or stage from the legacy path encoding.
type pathPrimitive struct {
	id        string
	fill      string
	anchor    Point
	hasAnchor bool
}

func (p *pathPrimitive) ID() string { return p.id }

func (p *pathPrimitive) HasFillMarker(marker string) bool {
	return fillMatches(p.fill, marker)
}

func (p *pathPrimitive) BoundingBox() (Box, bool) {
	return Box{}, false
}

func (p *pathPrimitive) FirstAnchorPoint() (Point, bool) {
	return p.anchor, p.hasAnchor
}

// fillMatches compares fill values case-insensitively, ignoring whitespace.
func fillMatches(fill, marker string) bool {
	return marker != "" && strings.EqualFold(strings.TrimSpace(fill), strings.TrimSpace(marker))
}
