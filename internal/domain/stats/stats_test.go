package stats_test

import (
	"math"
	"testing"

	"github.com/kassel/seatheat/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDescribe(t *testing.T) {
	Convey("Given a batch with an even number of values", t, func() {
		sum := stats.Describe([]float64{4, 1, 3, 2})

		Convey("Then population statistics are computed", func() {
			So(sum.N, ShouldEqual, 4)
			So(sum.Mean, ShouldAlmostEqual, 2.5, 1e-12)
			// Population variance: ((1.5^2+0.5^2)*2)/4 = 1.25
			So(sum.StdDev, ShouldAlmostEqual, math.Sqrt(1.25), 1e-12)
			So(sum.Min, ShouldEqual, 1)
			So(sum.Max, ShouldEqual, 4)
		})

		Convey("Then the median averages the two central elements", func() {
			So(sum.Median, ShouldAlmostEqual, 2.5, 1e-12)
		})

		Convey("Then quartiles index the sorted batch directly", func() {
			// floor(4*0.25)=1 and floor(4*0.75)=3 in the sorted copy [1 2 3 4]
			So(sum.Q1, ShouldEqual, 2)
			So(sum.Q3, ShouldEqual, 4)
			So(sum.IQR, ShouldEqual, 2)
		})
	})

	Convey("Given a batch with an odd number of values", t, func() {
		sum := stats.Describe([]float64{50, 10, 30, 20, 40})

		Convey("Then the median is the central element", func() {
			So(sum.Median, ShouldEqual, 30)
			So(sum.Q1, ShouldEqual, 20)
			So(sum.Q3, ShouldEqual, 40)
		})
	})

	Convey("Given a single-element batch", t, func() {
		sum := stats.Describe([]float64{1200})

		Convey("Then the spread collapses to zero", func() {
			So(sum.N, ShouldEqual, 1)
			So(sum.Mean, ShouldEqual, 1200)
			So(sum.StdDev, ShouldEqual, 0)
			So(sum.Median, ShouldEqual, 1200)
			So(sum.IQR, ShouldEqual, 0)
		})
	})

	Convey("Given an empty batch", t, func() {
		sum := stats.Describe(nil)

		Convey("Then the zero summary is returned", func() {
			So(sum.N, ShouldEqual, 0)
			So(sum.StdDev, ShouldEqual, 0)
		})
	})

	Convey("Given identical values", t, func() {
		sum := stats.Describe([]float64{7, 7, 7, 7, 7, 7})

		Convey("Then the standard deviation is exactly zero", func() {
			So(sum.StdDev, ShouldEqual, 0)
			So(sum.Mean, ShouldEqual, 7)
		})
	})

	Convey("Given an unsorted input", t, func() {
		values := []float64{9, 3, 5, 1}
		_ = stats.Describe(values)

		Convey("Then the input slice is left untouched", func() {
			So(values, ShouldResemble, []float64{9, 3, 5, 1})
		})
	})
}
