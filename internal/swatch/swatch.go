// Package swatch renders a price batch as a terminal color spectrum preview.
package swatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kassel/seatheat/internal/domain/colorspace"
	"github.com/kassel/seatheat/internal/domain/pricemap"
	"github.com/kassel/seatheat/internal/domain/pricescale"
)

// Sentinel kinds for swatch errors.
var (
	ErrNoPrices  = errors.New("no prices given")
	ErrBadPrices = errors.New("invalid price list")
)

// Config controls a single preview run.
type Config struct {
	// Prices is the batch to preview.
	Prices []float64

	// GradientSteps is the width of the spectrum bar, in cells.
	GradientSteps int

	// LogScale toggles the log1p transform before batch statistics.
	LogScale bool

	// Out receives the rendered preview.
	Out io.Writer
}

const defaultGradientSteps = 64

// ParsePrices parses a comma-separated price list.
func ParsePrices(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrNoPrices
	}
	parts := strings.Split(s, ",")
	prices := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPrices, p)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: %q is negative", ErrBadPrices, p)
		}
		prices = append(prices, v)
	}
	return prices, nil
}

// Run maps the batch and writes the rendered preview to cfg.Out.
func Run(ctx context.Context, cfg *Config) error {
	if len(cfg.Prices) == 0 {
		return ErrNoPrices
	}
	steps := cfg.GradientSteps
	if steps <= 0 {
		steps = defaultGradientSteps
	}

	mapper := pricemap.New(pricemap.WithScaler(pricescale.New(
		pricescale.WithLogScale(cfg.LogScale),
	)))
	colors := mapper.Map(ctx, cfg.Prices)

	var b strings.Builder
	b.WriteString(renderGradient(steps))
	b.WriteString("\n\n")
	for _, pc := range pricemap.SortByPrice(colors) {
		b.WriteString(renderRow(pc))
		b.WriteString("\n")
	}
	_, err := io.WriteString(cfg.Out, b.String())
	if err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

// renderGradient draws the full cold-to-hot spectrum as one bar.
func renderGradient(steps int) string {
	var b strings.Builder
	for i := 0; i < steps; i++ {
		v := float64(i) / float64(steps-1)
		hex := colorspace.ForValue(v).RGB().Hex()
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(" "))
	}
	return b.String()
}

var labelStyle = lipgloss.NewStyle().Faint(true)

// renderRow draws one price as a colored block plus its mapping details.
func renderRow(pc pricemap.PriceColor) string {
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(pc.Color)).
		Render(strings.Repeat(" ", 6))
	details := labelStyle.Render(fmt.Sprintf(
		"%s  v=%.3f  p%.0f", pc.Color, pc.NormalizedValue, pc.Percentile,
	))
	return fmt.Sprintf("%s  %10.2f  %s", block, pc.Price, details)
}
