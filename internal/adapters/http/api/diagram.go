// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxDiagramBytes bounds an inline diagram body.
const maxDiagramBytes = 10 << 20

// diagramRequest mirrors the OpenAPI schema for PUT /diagram with a JSON body.
type diagramRequest struct {
	URL string `json:"url"`
}

func (d diagramRequest) validate() error {
	u := strings.TrimSpace(d.URL)
	if u == "" {
		return errors.New("missing url")
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return errors.New("url must be http or https")
	}
	return nil
}

// DiagramHandler handles diagram binding requests.
type DiagramHandler struct {
	deps Dependencies
}

// NewDiagramHandler creates a new diagram handler.
func NewDiagramHandler(deps Dependencies) *DiagramHandler {
	return &DiagramHandler{deps: deps}
}

// HandleBindDiagram handles PUT /diagram requests. A JSON body names a URL to
// retrieve the diagram from; any other content type is treated as the inline
// diagram document itself.
func (h *DiagramHandler) HandleBindDiagram(w http.ResponseWriter, r *http.Request) {
	const op = "api.bind_diagram"
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req diagramRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		info, err := h.deps.BindDiagramFromURL(r.Context(), req.URL)
		if err != nil {
			h.writeBindError(w, op, err)
			return
		}
		writeJSON(w, http.StatusOK, info)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDiagramBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if strings.TrimSpace(string(body)) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	info, err := h.deps.BindDiagram(r.Context(), string(body))
	if err != nil {
		h.writeBindError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// writeBindError translates binding failures. Fetch failures point upstream,
// parse failures point at the document; the previous binding stays live in
// both cases.
func (h *DiagramHandler) writeBindError(w http.ResponseWriter, op string, err error) {
	switch {
	case isNotStarted(err):
		writeError(w, http.StatusServiceUnavailable, "not_started", Wrap(op, err))
	case strings.Contains(err.Error(), "fetch"):
		writeError(w, http.StatusBadGateway, "fetch_failed", Wrap(op, err))
	default:
		writeError(w, http.StatusUnprocessableEntity, "bad_diagram", WrapKind(op, ErrBadDiagram, err))
	}
}
