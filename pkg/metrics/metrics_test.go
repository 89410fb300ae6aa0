package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithSubsystem("pricemap"),
			WithPrometheusRegistry(reg),
		)
		So(m, ShouldNotBeNil)

		Convey("When metrics are recorded", func() {
			m.priceBatches.Inc()
			m.pricesMapped.Add(12)
			m.seatsColored.Add(40)
			m.boundSeats.Set(40)
			m.diagramParses.WithLabelValues("rect").Inc()
			m.httpRequests.WithLabelValues("pricemap", "POST", "200").Inc()

			Convey("Then the registry gathers the expected families", func() {
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["test_pricemap_price_batches_total"], ShouldBeTrue)
				So(names["test_pricemap_prices_mapped_total"], ShouldBeTrue)
				So(names["test_pricemap_seats_colored_total"], ShouldBeTrue)
				So(names["test_pricemap_bound_seats"], ShouldBeTrue)
				So(names["test_pricemap_diagram_parses_total"], ShouldBeTrue)
				So(names["test_pricemap_http_requests_total"], ShouldBeTrue)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When the package-level helpers are called", func() {
			So(func() {
				RecordPriceBatch(10)
				RecordMappingDuration(1.5)
				RecordDiagramParse("legacy-path")
				RecordDiagramParseError()
				RecordDiagramFetch()
				RecordDiagramFetchError()
				RecordSeatsColored(8)
				UpdateBoundSeats(8)
				RecordParseDuration(0.3)
				RecordHTTPRequest("seatmap", "GET", "200")
				RecordHTTPRequestDuration("seatmap", "GET", "200", 2.0)
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(12)
			}, ShouldNotPanic)
		})

		Convey("Then the shared registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
