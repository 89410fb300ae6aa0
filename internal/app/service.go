// Package service provides the pricing session that implements the
// dependencies required by the HTTP API. The session owns the current
// price-color batch and the current geometry binding; operations go through
// it instead of reading ambient globals.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/kassel/seatheat/internal/adapters/fetch"
	"github.com/kassel/seatheat/internal/domain/geometry"
	"github.com/kassel/seatheat/internal/domain/pricemap"
	"github.com/kassel/seatheat/internal/domain/pricescale"
	"github.com/kassel/seatheat/internal/domain/types"
	"github.com/kassel/seatheat/pkg/logger"
	"github.com/kassel/seatheat/pkg/metrics"
)

// Service is the single-writer pricing session. Re-running the mapping
// stage is idempotent; re-running the coloring stage overwrites prior
// assignments in place.
type Service struct {
	mu sync.RWMutex

	// Core components
	mapper  *pricemap.Mapper
	parser  *geometry.Parser
	fetcher *fetch.Fetcher

	// Configuration
	thresholds   pricescale.Thresholds
	logScale     bool
	minBatch     int
	seatMarker   string
	stageMarker  string
	neutralFill  string
	fetchTimeout time.Duration

	// Session state
	priceColors []pricemap.PriceColor
	binding     *geometry.Binding

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithThresholds sets the absolute price bands.
func WithThresholds(t pricescale.Thresholds) Option {
	return func(s *Service) {
		s.thresholds = t
	}
}

// WithLogScale toggles the log1p transform before batch statistics.
func WithLogScale(enabled bool) Option {
	return func(s *Service) {
		s.logScale = enabled
	}
}

// WithMinBatchSize sets the smallest batch that gets distribution-relative
// normalization.
func WithMinBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minBatch = n
		}
	}
}

// WithMarkers sets the seat and stage fill markers.
func WithMarkers(seat, stage string) Option {
	return func(s *Service) {
		if seat != "" {
			s.seatMarker = seat
		}
		if stage != "" {
			s.stageMarker = stage
		}
	}
}

// WithNeutralFill sets the fill restored by Reset.
func WithNeutralFill(fill string) Option {
	return func(s *Service) {
		if fill != "" {
			s.neutralFill = fill
		}
	}
}

// WithFetchTimeout bounds diagram retrieval.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		thresholds:   pricescale.DefaultThresholds(),
		logScale:     true,
		minBatch:     5,
		seatMarker:   geometry.DefaultSeatMarker,
		stageMarker:  geometry.DefaultStageMarker,
		neutralFill:  geometry.DefaultSeatMarker,
		fetchTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the pipeline components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.mapper = pricemap.New(pricemap.WithScaler(pricescale.New(
		pricescale.WithThresholds(s.thresholds),
		pricescale.WithLogScale(s.logScale),
		pricescale.WithMinBatchSize(s.minBatch),
	)))
	s.parser = geometry.NewParser(
		geometry.WithSeatMarker(s.seatMarker),
		geometry.WithStageMarker(s.stageMarker),
		geometry.WithNeutralFill(s.neutralFill),
	)
	s.fetcher = fetch.New(fetch.WithTimeout(s.fetchTimeout))

	s.started = true
	s.logger.Info(ctx, "pricing session started",
		logger.Float64("mediumPrice", s.thresholds.Medium),
		logger.Int("minBatch", s.minBatch),
		logger.String("seatMarker", s.seatMarker),
	)
	return nil
}

// Stop releases the session state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.priceColors = nil
	s.binding = nil
	s.started = false
	s.logger.Info(context.Background(), "pricing session stopped")
}

// MapPrices maps a price batch onto the color spectrum and makes the batch
// the session's current one. Empty input yields empty output.
func (s *Service) MapPrices(ctx context.Context, prices []float64) ([]pricemap.PriceColor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	return s.mapLocked(ctx, prices), nil
}

// mapLocked runs the mapping stage. Caller holds mu.
func (s *Service) mapLocked(ctx context.Context, prices []float64) []pricemap.PriceColor {
	start := time.Now()
	colors := s.mapper.Map(ctx, prices)
	s.priceColors = colors

	metrics.RecordPriceBatch(len(prices))
	metrics.RecordMappingDuration(float64(time.Since(start).Microseconds()) / 1000)
	s.logger.Debug(ctx, "mapped price batch", logger.Int("prices", len(prices)))
	return colors
}

// BindDiagram parses a diagram document and makes it the session's current
// geometry binding. On failure the previous binding stays intact.
func (s *Service) BindDiagram(ctx context.Context, doc string) (types.BindingInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return types.BindingInfo{}, ErrNotStarted
	}

	start := time.Now()
	binding, err := s.parser.Bind(doc)
	if err != nil {
		metrics.RecordDiagramParseError()
		s.logger.Error(ctx, "diagram parse failed", logger.Error(err))
		return types.BindingInfo{}, err
	}
	binding.RankByDistance()
	s.binding = binding

	metrics.RecordDiagramParse(binding.Encoding())
	metrics.RecordParseDuration(float64(time.Since(start).Microseconds()) / 1000)
	metrics.UpdateBoundSeats(binding.SeatCount())

	info := bindingInfo(binding)
	s.logger.Info(ctx, "diagram bound",
		logger.String("binding", info.ID),
		logger.String("encoding", info.Encoding),
		logger.Int("seats", info.SeatCount),
	)
	return info, nil
}

// BindDiagramFromURL retrieves a diagram and binds it. Retrieval failures
// are logged and returned; they never corrupt already-computed price colors
// or a previously bound diagram.
func (s *Service) BindDiagramFromURL(ctx context.Context, url string) (types.BindingInfo, error) {
	s.mu.RLock()
	started := s.started
	fetcher := s.fetcher
	s.mu.RUnlock()
	if !started {
		return types.BindingInfo{}, ErrNotStarted
	}

	doc, err := fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warn(ctx, "diagram fetch failed; keeping current binding",
			logger.String("url", url),
			logger.Error(err),
		)
		return types.BindingInfo{}, err
	}
	return s.BindDiagram(ctx, doc)
}

// Colorize maps the batch and paints the bound seats with it, overwriting
// any prior assignment. An empty batch assigns nothing.
func (s *Service) Colorize(ctx context.Context, prices []float64) ([]types.SeatAssignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if s.binding == nil {
		return nil, ErrNoBinding
	}

	colors := s.mapLocked(ctx, prices)
	colored := s.binding.ApplyColors(colors)
	metrics.RecordSeatsColored(colored)
	s.logger.Info(ctx, "seats colored",
		logger.Int("seats", colored),
		logger.Int("bands", len(colors)),
	)
	return s.assignmentsLocked(), nil
}

// Seats returns the current seat assignments.
func (s *Service) Seats(_ context.Context) ([]types.SeatAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return nil, ErrNotStarted
	}
	if s.binding == nil {
		return nil, ErrNoBinding
	}
	return s.assignmentsLocked(), nil
}

// PriceColors returns the session's current color batch.
func (s *Service) PriceColors(_ context.Context) []pricemap.PriceColor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pricemap.PriceColor, len(s.priceColors))
	copy(out, s.priceColors)
	return out
}

// Reset restores every bound seat to the neutral fill, keeping geometry and
// rank state.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}
	if s.binding == nil {
		return ErrNoBinding
	}
	s.binding.Reset()
	s.logger.Info(ctx, "seat colors reset", logger.Int("seats", s.binding.SeatCount()))
	return nil
}

// GetStats returns session statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":    s.started,
		"priceCount": len(s.priceColors),
		"hasBinding": s.binding != nil,
	}
	if s.binding != nil {
		stats["bindingID"] = s.binding.ID()
		stats["encoding"] = s.binding.Encoding()
		stats["seatCount"] = s.binding.SeatCount()
	}
	return stats
}

// assignmentsLocked snapshots the bound seats. Caller holds mu.
func (s *Service) assignmentsLocked() []types.SeatAssignment {
	seats := s.binding.Seats()
	out := make([]types.SeatAssignment, len(seats))
	for i, seat := range seats {
		out[i] = types.SeatAssignment{
			SeatID:            seat.ID,
			X:                 seat.X,
			Y:                 seat.Y,
			DistanceFromStage: seat.DistanceFromStage,
			QuantileRank:      seat.QuantileRank,
			Price:             seat.AssignedPrice,
			Color:             seat.AssignedColor,
			Fill:              seat.Fill,
		}
	}
	return out
}

// bindingInfo summarizes a binding for API responses.
func bindingInfo(b *geometry.Binding) types.BindingInfo {
	return types.BindingInfo{
		ID:           b.ID(),
		Encoding:     b.Encoding(),
		SeatCount:    b.SeatCount(),
		DiagramWidth: b.Width(),
		StageCenterX: b.Stage().CenterX,
		StageBottomY: b.Stage().BottomY,
	}
}
