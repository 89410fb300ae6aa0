// Package colorspace maps normalized [0,1] positions onto a perceptually
// ordered hue spectrum and converts between HSL, RGB and hex notation.
package colorspace

import (
	"fmt"
	"math"
	"sort"
)

// Edge hues. The interpolation table spans 215..5 but the clamped edges are
// 220 (cold end) and 0 (hot end); the asymmetry is kept for output
// compatibility with previously rendered charts.
const (
	coldEdgeHue = 220
	hotEdgeHue  = 0
)

// hueStops is the fixed spectrum: position t in [0,1] to hue in degrees.
// Blue (cheap) through green and yellow to red (expensive).
var hueStops = [...]struct{ t, hue float64 }{
	{0, 215},
	{0.1, 205},
	{0.2, 190},
	{0.28, 170},
	{0.35, 150},
	{0.42, 120},
	{0.5, 90},
	{0.58, 70},
	{0.65, 55},
	{0.72, 45},
	{0.8, 35},
	{0.9, 20},
	{1, 5},
}

// HSL is a hue/saturation/lightness triple with H in [0,360) degrees and
// S, L in [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGB holds integer channels in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HueForValue interpolates the spectrum table with a smoothstep between
// stops. Values at or below 0 clamp to 220, at or above 1 to 0.
func HueForValue(v float64) float64 {
	if v <= 0 {
		return coldEdgeHue
	}
	if v >= 1 {
		return hotEdgeHue
	}
	for i := 1; i < len(hueStops); i++ {
		if v <= hueStops[i].t {
			lo, hi := hueStops[i-1], hueStops[i]
			f := (v - lo.t) / (hi.t - lo.t)
			return lo.hue + (hi.hue-lo.hue)*smoothstep(f)
		}
	}
	return hueStops[len(hueStops)-1].hue
}

// SaturationForValue boosts saturation toward both spectrum ends.
func SaturationForValue(v float64) float64 {
	return 45 + 25*math.Pow(math.Abs(v-0.5)*2, 0.7)
}

// LightnessForValue darkens slightly toward both spectrum ends.
func LightnessForValue(v float64) float64 {
	return 53 - 5*math.Pow(math.Abs(v-0.5)*2, 0.5)
}

// ForValue builds the full HSL triple for a normalized position.
func ForValue(v float64) HSL {
	clamped := math.Max(0, math.Min(1, v))
	return HSL{
		H: HueForValue(v),
		S: SaturationForValue(clamped),
		L: LightnessForValue(clamped),
	}
}

// RGB converts the triple with the standard piecewise hue-to-channel
// formula, rounding each channel to the nearest integer in [0,255].
func (h HSL) RGB() RGB {
	s := h.S / 100
	l := h.L / 100

	c := (1 - math.Abs(2*l-1)) * s
	hp := math.Mod(h.H, 360) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return RGB{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
	}
}

// Hex renders the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// PercentileIn returns the percentile of v within an ascending-sorted batch:
// the fraction of values strictly preceding the first value >= v, scaled to
// [0,100]. A singleton batch yields 100.
func PercentileIn(sorted []float64, v float64) float64 {
	n := len(sorted)
	if n <= 1 {
		return 100
	}
	idx := sort.SearchFloat64s(sorted, v)
	return float64(idx) / float64(n) * 100
}

// channel rounds a [0,1] channel value to an integer in [0,255].
func channel(v float64) int {
	r := int(math.Round(v * 255))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return r
}

// smoothstep is the cubic Hermite ease 3t²−2t³ on [0,1].
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
