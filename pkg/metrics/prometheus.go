// Package metrics provides Prometheus metrics for the seatheat service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Price mapping metrics
	priceBatches    prometheus.Counter
	pricesMapped    prometheus.Counter
	mappingDuration prometheus.Histogram

	// Geometry metrics
	diagramParses       *prometheus.CounterVec
	diagramParseErrors  prometheus.Counter
	diagramFetches      prometheus.Counter
	diagramFetchErrors  prometheus.Counter
	seatsColored        prometheus.Counter
	boundSeats          prometheus.Gauge
	parseDuration       prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "seatheat",
		subsystem:        "pricemap",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.priceBatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "price_batches_total",
		Help:      "Total number of price batches mapped to colors",
	})

	m.pricesMapped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prices_mapped_total",
		Help:      "Total number of individual prices mapped to colors",
	})

	m.mappingDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mapping_duration_milliseconds",
		Help:      "Histogram of price-to-color mapping duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.diagramParses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "diagram_parses_total",
			Help:      "Total number of diagram parses by seat encoding",
		},
		[]string{"encoding"},
	)

	m.diagramParseErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "diagram_parse_errors_total",
		Help:      "Total number of diagram documents that could not be parsed",
	})

	m.diagramFetches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "diagram_fetches_total",
		Help:      "Total number of diagram retrieval attempts",
	})

	m.diagramFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "diagram_fetch_errors_total",
		Help:      "Total number of failed diagram retrievals",
	})

	m.seatsColored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "seats_colored_total",
		Help:      "Total number of seat color assignments applied",
	})

	m.boundSeats = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bound_seats",
		Help:      "Number of seats in the currently bound diagram",
	})

	m.parseDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_duration_milliseconds",
		Help:      "Histogram of diagram parse duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_usage_bytes",
		Help:      "Current memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers recording on the global manager.

// RecordPriceBatch records one mapped batch of the given size.
func RecordPriceBatch(size int) {
	globalManager.priceBatches.Inc()
	globalManager.pricesMapped.Add(float64(size))
}

// RecordMappingDuration records the duration of one mapping pass.
func RecordMappingDuration(ms float64) {
	globalManager.mappingDuration.Observe(ms)
}

// RecordDiagramParse records a successful parse with the encoding used.
func RecordDiagramParse(encoding string) {
	globalManager.diagramParses.WithLabelValues(encoding).Inc()
}

// RecordDiagramParseError records a parse failure.
func RecordDiagramParseError() {
	globalManager.diagramParseErrors.Inc()
}

// RecordDiagramFetch records a diagram retrieval attempt.
func RecordDiagramFetch() {
	globalManager.diagramFetches.Inc()
}

// RecordDiagramFetchError records a failed diagram retrieval.
func RecordDiagramFetchError() {
	globalManager.diagramFetchErrors.Inc()
}

// RecordSeatsColored records how many seats received a color assignment.
func RecordSeatsColored(count int) {
	globalManager.seatsColored.Add(float64(count))
}

// UpdateBoundSeats sets the seat count of the current binding.
func UpdateBoundSeats(count int) {
	globalManager.boundSeats.Set(float64(count))
}

// RecordParseDuration records the duration of one diagram parse.
func RecordParseDuration(ms float64) {
	globalManager.parseDuration.Observe(ms)
}

// RecordHTTPRequest records an HTTP request by endpoint, method and status.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records the duration of an HTTP request.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
