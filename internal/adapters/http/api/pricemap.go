// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// PricemapHandler handles price-to-color mapping requests.
type PricemapHandler struct {
	deps      Dependencies
	maxPrices int
}

// NewPricemapHandler creates a new pricemap handler.
func NewPricemapHandler(deps Dependencies, maxPrices int) *PricemapHandler {
	return &PricemapHandler{deps: deps, maxPrices: maxPrices}
}

// HandleMapPrices handles POST /pricemap requests. The batch becomes the
// session's current one; an empty batch yields an empty result.
func (h *PricemapHandler) HandleMapPrices(w http.ResponseWriter, r *http.Request) {
	const op = "api.map_prices"
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

	colors, err := h.deps.MapPrices(r.Context(), req.Prices)
	if err != nil {
		if isNotStarted(err) {
			writeError(w, http.StatusServiceUnavailable, "not_started", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, colors)
}
