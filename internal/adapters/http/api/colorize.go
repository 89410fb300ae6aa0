// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// ColorizeHandler handles seat coloring requests.
type ColorizeHandler struct {
	deps      Dependencies
	maxPrices int
}

// NewColorizeHandler creates a new colorize handler.
func NewColorizeHandler(deps Dependencies, maxPrices int) *ColorizeHandler {
	return &ColorizeHandler{deps: deps, maxPrices: maxPrices}
}

// HandleColorize handles POST /colorize requests. The batch is mapped to the
// spectrum and painted onto the bound seats by distance rank, overwriting any
// prior assignment. Requires a bound diagram.
func (h *ColorizeHandler) HandleColorize(w http.ResponseWriter, r *http.Request) {
	const op = "api.colorize"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.maxPrices); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	seats, err := h.deps.Colorize(r.Context(), req.Prices)
	if err != nil {
		switch {
		case isNoBinding(err):
			writeError(w, http.StatusConflict, "no_binding", Wrap(op, err))
		case isNotStarted(err):
			writeError(w, http.StatusServiceUnavailable, "not_started", Wrap(op, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, seats)
}
