// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults; Load layers file/env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8480".
	Addr string `koanf:"addr"`

	// Absolute price band anchors used by the normalization blend.
	VeryLowPrice  float64 `koanf:"very_low_price"`
	LowPrice      float64 `koanf:"low_price"`
	MediumPrice   float64 `koanf:"medium_price"`
	HighPrice     float64 `koanf:"high_price"`
	VeryHighPrice float64 `koanf:"very_high_price"`

	// UseLogScale applies a log1p transform to prices before computing
	// batch statistics. Absolute bands always see the raw price.
	UseLogScale bool `koanf:"use_log_scale"`

	// MinPricesForStats is the smallest batch that gets distribution-relative
	// normalization; smaller batches use the absolute bands only.
	MinPricesForStats int `koanf:"min_prices_for_stats"`

	// SeatFillMarker and StageFillMarker identify seat and stage primitives
	// in diagram documents.
	SeatFillMarker  string `koanf:"seat_fill_marker"`
	StageFillMarker string `koanf:"stage_fill_marker"`

	// NeutralFill is the fill restored by a reset.
	NeutralFill string `koanf:"neutral_fill"`

	// FetchTimeoutMS bounds diagram retrieval.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// MaxPricesPerRequest caps POST /pricemap and /colorize batch sizes.
	MaxPricesPerRequest int `koanf:"max_prices_per_request"`
}

// Default configuration values.
const (
	defaultAddr              = ":8480"
	defaultVeryLowPrice      = 500
	defaultLowPrice          = 1500
	defaultMediumPrice       = 3500
	defaultHighPrice         = 7000
	defaultVeryHighPrice     = 15000
	defaultMinPricesForStats = 5
	defaultSeatFillMarker    = "#cccccc"
	defaultStageFillMarker   = "#616161"
	defaultFetchTimeoutMS    = 10_000
	defaultMaxPrices         = 1_000
)

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                defaultAddr,
		VeryLowPrice:        defaultVeryLowPrice,
		LowPrice:            defaultLowPrice,
		MediumPrice:         defaultMediumPrice,
		HighPrice:           defaultHighPrice,
		VeryHighPrice:       defaultVeryHighPrice,
		UseLogScale:         true,
		MinPricesForStats:   defaultMinPricesForStats,
		SeatFillMarker:      defaultSeatFillMarker,
		StageFillMarker:     defaultStageFillMarker,
		NeutralFill:         defaultSeatFillMarker,
		FetchTimeoutMS:      defaultFetchTimeoutMS,
		MaxPricesPerRequest: defaultMaxPrices,
	}
}
