package swatch

import (
	"bytes"
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePrices(t *testing.T) {
	Convey("Given comma-separated price lists", t, func() {
		Convey("When the list is well-formed", func() {
			prices, err := ParsePrices("500, 1500,3500")

			Convey("Then every price is parsed", func() {
				So(err, ShouldBeNil)
				So(prices, ShouldResemble, []float64{500, 1500, 3500})
			})
		})

		Convey("When the list is empty", func() {
			_, err := ParsePrices("   ")
			So(err, ShouldEqual, ErrNoPrices)
		})

		Convey("When an entry is not a number", func() {
			_, err := ParsePrices("500,abc")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "invalid price list")
		})

		Convey("When an entry is negative", func() {
			_, err := ParsePrices("500,-10")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a preview run", t, func() {
		ctx := context.Background()

		Convey("When rendering a batch", func() {
			var out bytes.Buffer
			err := Run(ctx, &Config{
				Prices:        []float64{500, 1500, 3500, 7000, 15000},
				GradientSteps: 8,
				LogScale:      true,
				Out:           &out,
			})

			Convey("Then every price appears with its hex color", func() {
				So(err, ShouldBeNil)
				body := out.String()
				So(body, ShouldContainSubstring, "500.00")
				So(body, ShouldContainSubstring, "15000.00")
				So(body, ShouldContainSubstring, "#")
			})
		})

		Convey("When no prices are given", func() {
			var out bytes.Buffer
			err := Run(ctx, &Config{Out: &out})
			So(err, ShouldEqual, ErrNoPrices)
		})
	})
}
