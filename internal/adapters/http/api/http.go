// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kassel/seatheat/internal/domain/pricemap"
	"github.com/kassel/seatheat/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// MapPrices maps a price batch onto the color spectrum.
	MapPrices(ctx context.Context, prices []float64) ([]pricemap.PriceColor, error)

	// Diagram binding operations.
	BindDiagram(ctx context.Context, doc string) (types.BindingInfo, error)
	BindDiagramFromURL(ctx context.Context, url string) (types.BindingInfo, error)

	// Seat operations on the bound diagram.
	Colorize(ctx context.Context, prices []float64) ([]types.SeatAssignment, error)
	Seats(ctx context.Context) ([]types.SeatAssignment, error)
	Reset(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	pricemapHandler  *PricemapHandler
	diagramHandler   *DiagramHandler
	colorizeHandler  *ColorizeHandler
	seatmapHandler   *SeatmapHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxPrices int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		pricemapHandler:  NewPricemapHandler(deps, maxPrices),
		diagramHandler:   NewDiagramHandler(deps),
		colorizeHandler:  NewColorizeHandler(deps, maxPrices),
		seatmapHandler:   NewSeatmapHandler(deps),
		dashboardHandler: newdashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux, deps Dependencies) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/pricemap", MetricsMiddleware(s.pricemapHandler.HandleMapPrices, "pricemap"))
	mux.HandleFunc("/diagram", MetricsMiddleware(s.diagramHandler.HandleBindDiagram, "diagram"))
	mux.HandleFunc("/colorize", MetricsMiddleware(s.colorizeHandler.HandleColorize, "colorize"))
	mux.HandleFunc("/seatmap", MetricsMiddleware(s.seatmapHandler.HandleGetSeatmap, "seatmap"))
	mux.HandleFunc("/seatmap/reset", MetricsMiddleware(s.seatmapHandler.HandleReset, "seatmap_reset"))
}

// priceRequest mirrors the OpenAPI schema for POST /pricemap and POST /colorize.
type priceRequest struct {
	Prices []float64 `json:"prices"`
}

func (p priceRequest) validate(maxPrices int) error {
	if len(p.Prices) > maxPrices {
		return errors.New("too many prices")
	}
	for _, price := range p.Prices {
		if price < 0 {
			return errors.New("prices must be non-negative")
		}
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNoBinding allows the API to translate a missing-binding condition to 409.
// This stays generic to avoid tight coupling with specific packages.
func isNoBinding(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "no diagram bound")
}

// isNotStarted maps a stopped session to 503.
func isNotStarted(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not started")
}
