package geometry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Seat encoding names, also used as metric labels.
const (
	EncodingRect       = "rect"
	EncodingLegacyPath = "legacy-path"
)

// Fallback constants for malformed or missing attributes.
const (
	defaultSeatSize     = 16
	defaultCornerRadius = 6
	defaultDiagramWidth = 1000

	// Stage fallback position when no stage primitive matches.
	fallbackStageY      = 50
	fallbackStageBottom = 60
)

// Default fill markers. Diagrams produced by the simplification step mark
// seats and the stage with these fills.
const (
	DefaultSeatMarker  = "#cccccc"
	DefaultStageMarker = "#616161"
)

// firstMoveTo extracts the coordinate pair of the first move-to command in
// a path description, absolute or relative.
var firstMoveTo = regexp.MustCompile(`[Mm][\s,]*(-?\d*\.?\d+)[\s,]+(-?\d*\.?\d+)`)

// Option applies a configuration option to the Parser.
type Option func(*Parser)

// WithSeatMarker sets the fill value identifying seat primitives.
func WithSeatMarker(marker string) Option {
	return func(p *Parser) {
		if marker != "" {
			p.seatMarker = marker
		}
	}
}

// WithStageMarker sets the fill value identifying the stage primitive.
func WithStageMarker(marker string) Option {
	return func(p *Parser) {
		if marker != "" {
			p.stageMarker = marker
		}
	}
}

// WithNeutralFill sets the fill restored by Binding.Reset.
func WithNeutralFill(fill string) Option {
	return func(p *Parser) {
		if fill != "" {
			p.neutralFill = fill
		}
	}
}

// Parser extracts typed seat and stage records from diagram documents.
type Parser struct {
	seatMarker  string
	stageMarker string
	neutralFill string
}

// NewParser creates a Parser with the default markers.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		seatMarker:  DefaultSeatMarker,
		stageMarker: DefaultStageMarker,
		neutralFill: DefaultSeatMarker,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// parsed holds the raw primitive lists of one document.
type parsed struct {
	width float64
	rects []Primitive
	paths []Primitive
}

// parse reads the document into typed primitive lists. Only malformed XML
// fails; malformed attributes on individual primitives fall back to their
// documented defaults.
func (p *Parser) parse(doc string) (*parsed, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromString(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrParse)
	}

	out := &parsed{width: diagramWidth(root)}

	for i, el := range root.FindElements("//rect") {
		out.rects = append(out.rects, &rectPrimitive{
			id:   idOf(el, "rect", i),
			fill: fillOf(el),
			box: Box{
				X:      floatAttr(el, "x", 0),
				Y:      floatAttr(el, "y", 0),
				Width:  floatAttr(el, "width", defaultSeatSize),
				Height: floatAttr(el, "height", defaultSeatSize),
			},
			cornerRadius: floatAttr(el, "rx", defaultCornerRadius),
		})
	}

	for i, el := range root.FindElements("//path") {
		anchor, ok := parseFirstMoveTo(el.SelectAttrValue("d", ""))
		out.paths = append(out.paths, &pathPrimitive{
			id:        idOf(el, "path", i),
			fill:      fillOf(el),
			anchor:    anchor,
			hasAnchor: ok,
		})
	}

	return out, nil
}

// diagramWidth reads the document width from the width attribute, then the
// viewBox, then the fallback constant.
func diagramWidth(root *etree.Element) float64 {
	if raw := strings.TrimSuffix(strings.TrimSpace(root.SelectAttrValue("width", "")), "px"); raw != "" {
		if w, err := strconv.ParseFloat(raw, 64); err == nil && w > 0 {
			return w
		}
	}
	if vb := root.SelectAttrValue("viewBox", ""); vb != "" {
		fields := strings.FieldsFunc(vb, func(r rune) bool { return r == ' ' || r == ',' })
		if len(fields) == 4 {
			if w, err := strconv.ParseFloat(fields[2], 64); err == nil && w > 0 {
				return w
			}
		}
	}
	return defaultDiagramWidth
}

// fillOf reads the fill from the fill attribute or a style declaration.
func fillOf(el *etree.Element) string {
	if fill := el.SelectAttrValue("fill", ""); fill != "" {
		return fill
	}
	for _, decl := range strings.Split(el.SelectAttrValue("style", ""), ";") {
		name, value, found := strings.Cut(decl, ":")
		if found && strings.TrimSpace(name) == "fill" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// idOf returns the element id or a stable generated one.
func idOf(el *etree.Element, kind string, ordinal int) string {
	if id := el.SelectAttrValue("id", ""); id != "" {
		return id
	}
	return fmt.Sprintf("%s-%d", kind, ordinal)
}

// floatAttr parses a numeric attribute, falling back to def when the
// attribute is missing or malformed.
func floatAttr(el *etree.Element, name string, def float64) float64 {
	raw := strings.TrimSpace(el.SelectAttrValue(name, ""))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// parseFirstMoveTo reads the first move-to coordinate pair of a path
// description.
func parseFirstMoveTo(d string) (Point, bool) {
	m := firstMoveTo.FindStringSubmatch(d)
	if m == nil {
		return Point{}, false
	}
	x, errX := strconv.ParseFloat(m[1], 64)
	y, errY := strconv.ParseFloat(m[2], 64)
	if errX != nil || errY != nil {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}
