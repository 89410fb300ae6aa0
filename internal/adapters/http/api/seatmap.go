// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SeatmapHandler handles seat map read and reset requests.
type SeatmapHandler struct {
	deps Dependencies
}

// NewSeatmapHandler creates a new seatmap handler.
func NewSeatmapHandler(deps Dependencies) *SeatmapHandler {
	return &SeatmapHandler{deps: deps}
}

// HandleGetSeatmap handles GET /seatmap requests.
func (h *SeatmapHandler) HandleGetSeatmap(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_seatmap"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seats, err := h.deps.Seats(r.Context())
	if err != nil {
		h.writeSeatmapError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, seats)
}

// HandleReset handles POST /seatmap/reset requests. Every bound seat goes
// back to the neutral fill; geometry and rank state survive.
func (h *SeatmapHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	const op = "api.reset_seatmap"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.Reset(r.Context()); err != nil {
		h.writeSeatmapError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *SeatmapHandler) writeSeatmapError(w http.ResponseWriter, op string, err error) {
	switch {
	case isNoBinding(err):
		writeError(w, http.StatusConflict, "no_binding", Wrap(op, err))
	case isNotStarted(err):
		writeError(w, http.StatusServiceUnavailable, "not_started", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
