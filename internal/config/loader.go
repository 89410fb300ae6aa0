package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if SEATHEAT_CONFIG is set
//  3. env (prefix SEATHEAT_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("SEATHEAT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SEATHEAT_ADDR, SEATHEAT_MEDIUM_PRICE, ...
	// Keys keep their underscores to match the koanf struct tags.
	envProvider := env.Provider("SEATHEAT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "seatheat_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipeline cannot run with.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if !(c.VeryLowPrice > 0 &&
		c.VeryLowPrice < c.LowPrice &&
		c.LowPrice < c.MediumPrice &&
		c.MediumPrice < c.HighPrice &&
		c.HighPrice < c.VeryHighPrice) {
		return fmt.Errorf("%w: price bands must be positive and strictly increasing", ErrInvalidConfig)
	}
	if c.MinPricesForStats < 1 {
		return fmt.Errorf("%w: min_prices_for_stats must be at least 1", ErrInvalidConfig)
	}
	if c.MaxPricesPerRequest < 1 {
		return fmt.Errorf("%w: max_prices_per_request must be at least 1", ErrInvalidConfig)
	}
	if c.FetchTimeoutMS < 1 {
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
