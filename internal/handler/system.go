package handler

import (
	"context"
	"net/http"
)

// Pinger is the upstream connectivity probe backing /api/test-gemini.
// *gemini.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) (string, error)
}

// SystemHandler handles health, upstream probe, and unmatched routes.
type SystemHandler struct {
	pinger Pinger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(pinger Pinger) *SystemHandler {
	return &SystemHandler{pinger: pinger}
}

// HandleHealth handles GET /api/health requests.
func (h *SystemHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleTestGemini handles GET /api/test-gemini requests with a single
// probe call to the generation endpoint.
func (h *SystemHandler) HandleTestGemini(w http.ResponseWriter, r *http.Request) {
	reply, err := h.pinger.Ping(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("gemini probe failed: "+err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}

// endpoints lists the valid routes, returned on unmatched paths.
var endpoints = []string{
	"POST /api/register",
	"POST /api/login",
	"POST /api/generate-prompt",
	"GET /api/prompts",
	"DELETE /api/prompts/{id}",
	"GET /api/health",
	"GET /api/test-gemini",
}

// HandleNotFound responds to unmatched routes with the endpoint listing.
func (h *SystemHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":     "route not found",
		"endpoints": endpoints,
	})
}
