package colorspace_test

import (
	"regexp"
	"testing"

	"github.com/kassel/seatheat/internal/domain/colorspace"
	. "github.com/smartystreets/goconvey/convey"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHueForValue(t *testing.T) {
	Convey("Given the spectrum hue table", t, func() {
		Convey("Then the edges clamp asymmetrically", func() {
			So(colorspace.HueForValue(0), ShouldEqual, 220)
			So(colorspace.HueForValue(-0.5), ShouldEqual, 220)
			So(colorspace.HueForValue(1), ShouldEqual, 0)
			So(colorspace.HueForValue(1.5), ShouldEqual, 0)
		})

		Convey("Then interior stops are hit exactly", func() {
			So(colorspace.HueForValue(0.1), ShouldAlmostEqual, 205, 1e-12)
			So(colorspace.HueForValue(0.5), ShouldAlmostEqual, 90, 1e-12)
			So(colorspace.HueForValue(0.9), ShouldAlmostEqual, 20, 1e-12)
		})

		Convey("Then the hue decreases monotonically across the interior", func() {
			prev := 220.0
			for v := 0.001; v < 1; v += 0.001 {
				h := colorspace.HueForValue(v)
				So(h, ShouldBeLessThanOrEqualTo, prev)
				prev = h
			}
		})
	})
}

func TestSaturationAndLightness(t *testing.T) {
	Convey("Given the saturation and lightness curves", t, func() {
		Convey("Then the middle of the spectrum is the flattest", func() {
			So(colorspace.SaturationForValue(0.5), ShouldAlmostEqual, 45, 1e-12)
			So(colorspace.LightnessForValue(0.5), ShouldAlmostEqual, 53, 1e-12)
		})

		Convey("Then both ends are more saturated and slightly darker", func() {
			So(colorspace.SaturationForValue(0), ShouldAlmostEqual, 70, 1e-12)
			So(colorspace.SaturationForValue(1), ShouldAlmostEqual, 70, 1e-12)
			So(colorspace.LightnessForValue(0), ShouldAlmostEqual, 48, 1e-12)
			So(colorspace.LightnessForValue(1), ShouldAlmostEqual, 48, 1e-12)
		})
	})
}

func TestRGBConversion(t *testing.T) {
	Convey("Given HSL to RGB conversion", t, func() {
		Convey("Then primary colors convert exactly", func() {
			So(colorspace.HSL{H: 0, S: 100, L: 50}.RGB(), ShouldResemble, colorspace.RGB{R: 255, G: 0, B: 0})
			So(colorspace.HSL{H: 120, S: 100, L: 50}.RGB(), ShouldResemble, colorspace.RGB{R: 0, G: 255, B: 0})
			So(colorspace.HSL{H: 240, S: 100, L: 50}.RGB(), ShouldResemble, colorspace.RGB{R: 0, G: 0, B: 255})
		})

		Convey("Then grayscale ignores hue", func() {
			So(colorspace.HSL{H: 137, S: 0, L: 100}.RGB(), ShouldResemble, colorspace.RGB{R: 255, G: 255, B: 255})
			So(colorspace.HSL{H: 12, S: 0, L: 0}.RGB(), ShouldResemble, colorspace.RGB{R: 0, G: 0, B: 0})
		})

		Convey("Then every sampled spectrum position is a valid color", func() {
			for v := 0.0; v <= 1.0001; v += 0.01 {
				rgb := colorspace.ForValue(v).RGB()
				So(rgb.R, ShouldBeBetweenOrEqual, 0, 255)
				So(rgb.G, ShouldBeBetweenOrEqual, 0, 255)
				So(rgb.B, ShouldBeBetweenOrEqual, 0, 255)
				So(hexPattern.MatchString(rgb.Hex()), ShouldBeTrue)
			}
		})

		Convey("Then conversion is deterministic", func() {
			for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
				first := colorspace.ForValue(v).RGB().Hex()
				second := colorspace.ForValue(v).RGB().Hex()
				So(first, ShouldEqual, second)
			}
		})
	})
}

func TestPercentileIn(t *testing.T) {
	Convey("Given a sorted batch", t, func() {
		sorted := []float64{100, 200, 300, 400}

		Convey("Then the minimum sits at 0", func() {
			So(colorspace.PercentileIn(sorted, 100), ShouldEqual, 0)
		})

		Convey("Then interior values report the fraction preceding them", func() {
			So(colorspace.PercentileIn(sorted, 200), ShouldEqual, 25)
			So(colorspace.PercentileIn(sorted, 300), ShouldEqual, 50)
			So(colorspace.PercentileIn(sorted, 400), ShouldEqual, 75)
		})

		Convey("Then a singleton batch yields 100", func() {
			So(colorspace.PercentileIn([]float64{42}, 42), ShouldEqual, 100)
		})
	})
}
