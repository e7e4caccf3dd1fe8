package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/msd/superintendent/internal/face"
	"github.com/msd/superintendent/internal/render"
	"github.com/msd/superintendent/internal/state"
)

// APIV1Deps are the collaborators of the preview API.
type APIV1Deps struct {
	Store  *state.Store
	Frames *FrameHolder
	// RenderSVG writes a vector frame of s. The SVG endpoint is unavailable when nil.
	RenderSVG func(w io.Writer, s state.State) error
	// PublicURL is encoded by the QR endpoint.
	PublicURL string
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type stateResponse struct {
	Expression string   `json:"expression"`
	Mode       string   `json:"mode"`
	Layers     []string `json:"layers"`
	Cycling    bool     `json:"cycling"`
	Version    uint64   `json:"version"`
}

type expressionRequest struct {
	Expression string `json:"expression"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type layersRequest struct {
	Layers []string `json:"layers"`
}

type cyclingRequest struct {
	Enabled *bool `json:"enabled"`
}

func apiV1Router(deps APIV1Deps) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "not_found", "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newStateResponse(deps.Store.Snapshot()))
	})
	r.Put("/expression", func(w http.ResponseWriter, r *http.Request) { handleExpression(w, r, deps) })
	r.Put("/mode", func(w http.ResponseWriter, r *http.Request) { handleMode(w, r, deps) })
	r.Put("/layers", func(w http.ResponseWriter, r *http.Request) { handleLayers(w, r, deps) })
	r.Put("/cycling", func(w http.ResponseWriter, r *http.Request) { handleCycling(w, r, deps) })
	r.Get("/frame.png", func(w http.ResponseWriter, r *http.Request) { handleFramePNG(w, r, deps) })
	r.Get("/frame.svg", func(w http.ResponseWriter, r *http.Request) { handleFrameSVG(w, r, deps) })
	r.Get("/qrcode.png", func(w http.ResponseWriter, r *http.Request) { handleQRCode(w, r, deps) })
	return r
}

func newStateResponse(s state.State) stateResponse {
	return stateResponse{
		Expression: s.Expression.String(),
		Mode:       s.Mode.String(),
		Layers:     s.Layers.Names(),
		Cycling:    s.Cycling,
		Version:    s.Version,
	}
}

func handleExpression(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	var req expressionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := face.ParseExpression(req.Expression)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "unknown_expression", err.Error())
		return
	}
	deps.Store.SetExpression(e)
	writeJSON(w, http.StatusOK, newStateResponse(deps.Store.Snapshot()))
}

func handleMode(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	var req modeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	m, err := render.ParseDrawMode(req.Mode)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "unknown_mode", err.Error())
		return
	}
	deps.Store.SetMode(m)
	writeJSON(w, http.StatusOK, newStateResponse(deps.Store.Snapshot()))
}

func handleLayers(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	var req layersRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Layers == nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_request", "layers is required")
		return
	}
	layers, err := render.ParseLayerSet(req.Layers)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "unknown_layer", err.Error())
		return
	}
	deps.Store.SetLayers(layers)
	writeJSON(w, http.StatusOK, newStateResponse(deps.Store.Snapshot()))
}

func handleCycling(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	var req cyclingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Enabled == nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_request", "enabled is required")
		return
	}
	deps.Store.SetCycling(*req.Enabled)
	writeJSON(w, http.StatusOK, newStateResponse(deps.Store.Snapshot()))
}

func handleFramePNG(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	var buf bytes.Buffer
	ok := false
	if deps.Frames != nil {
		var err error
		ok, err = deps.Frames.WritePNG(&buf)
		if err != nil {
			writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
			return
		}
	}
	if !ok {
		writeAPIError(w, http.StatusServiceUnavailable, "no_frame", "no frame presented yet")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

func handleFrameSVG(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.RenderSVG == nil {
		writeAPIError(w, http.StatusServiceUnavailable, "svg_unavailable", "vector rendering not configured")
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_ = deps.RenderSVG(w, deps.Store.Snapshot())
}

func handleQRCode(w http.ResponseWriter, r *http.Request, deps APIV1Deps) {
	if deps.PublicURL == "" {
		writeAPIError(w, http.StatusServiceUnavailable, "no_public_url", "public url not configured")
		return
	}
	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeAPIError(w, http.StatusBadRequest, "invalid_size", fmt.Sprintf("size %q is not a number", raw))
			return
		}
		size = parsed
	}
	data, err := qrPNG(deps.PublicURL, size)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_size", err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(data)
}

// decodeJSON reads a single JSON object into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "empty body"
		}
		writeAPIError(w, http.StatusBadRequest, "invalid_json", msg)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
