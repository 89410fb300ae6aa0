package pricemap_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/kassel/seatheat/internal/domain/pricemap"
	"github.com/kassel/seatheat/internal/domain/pricescale"
	. "github.com/smartystreets/goconvey/convey"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestMapperMap(t *testing.T) {
	Convey("Given a mapper with defaults", t, func() {
		m := pricemap.New()
		ctx := context.Background()

		Convey("When mapping an empty batch", func() {
			out := m.Map(ctx, nil)

			Convey("Then the output is empty, not nil", func() {
				So(out, ShouldNotBeNil)
				So(out, ShouldBeEmpty)
			})
		})

		Convey("When mapping a realistic batch", func() {
			prices := []float64{450, 900, 1800, 3500, 5200, 8000, 12000, 21000}
			out := m.Map(ctx, prices)

			Convey("Then every price gets a well-formed color", func() {
				So(out, ShouldHaveLength, len(prices))
				for i, pc := range out {
					So(pc.Price, ShouldEqual, prices[i])
					So(pc.NormalizedValue, ShouldBeGreaterThanOrEqualTo, 0)
					So(pc.NormalizedValue, ShouldBeLessThanOrEqualTo, 1)
					So(hexPattern.MatchString(pc.Color), ShouldBeTrue)
					So(pc.Color, ShouldEqual, pc.RGB.Hex())
					So(pc.Percentile, ShouldBeGreaterThanOrEqualTo, 0)
					So(pc.Percentile, ShouldBeLessThanOrEqualTo, 100)
				}
			})

			Convey("Then higher prices never normalize below lower ones", func() {
				for i := 1; i < len(out); i++ {
					So(out[i].NormalizedValue, ShouldBeGreaterThanOrEqualTo, out[i-1].NormalizedValue)
				}
			})

			Convey("Then mapping is referentially transparent", func() {
				again := m.Map(ctx, prices)
				So(again, ShouldResemble, out)
			})
		})

		Convey("When mapping a singleton batch", func() {
			out := m.Map(ctx, []float64{3500})

			Convey("Then it uses the absolute bands and reports percentile 100", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].NormalizedValue, ShouldEqual, 0.5)
				So(out[0].Percentile, ShouldEqual, 100)
			})
		})
	})

	Convey("Given a mapper with a small-batch scaler", t, func() {
		m := pricemap.New(pricemap.WithScaler(pricescale.New(
			pricescale.WithMinBatchSize(2),
			pricescale.WithLogScale(false),
		)))

		Convey("When mapping two prices", func() {
			out := m.Map(context.Background(), []float64{1000, 9000})

			Convey("Then the batch qualifies for statistics", func() {
				So(out[0].NormalizedValue, ShouldBeLessThan, out[1].NormalizedValue)
			})
		})
	})
}

func TestSortByPrice(t *testing.T) {
	Convey("Given an unsorted color batch", t, func() {
		m := pricemap.New()
		out := m.Map(context.Background(), []float64{5200, 450, 12000, 1800})

		Convey("When sorting by price", func() {
			sorted := pricemap.SortByPrice(out)

			Convey("Then prices ascend and the input order is preserved", func() {
				So(sorted[0].Price, ShouldEqual, 450)
				So(sorted[1].Price, ShouldEqual, 1800)
				So(sorted[2].Price, ShouldEqual, 5200)
				So(sorted[3].Price, ShouldEqual, 12000)
				So(out[0].Price, ShouldEqual, 5200)
			})
		})
	})
}
