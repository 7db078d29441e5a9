package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/promptforge/promptforge-go/internal/middleware"
	"github.com/promptforge/promptforge-go/internal/model"
	"github.com/promptforge/promptforge-go/internal/service"
)

// PromptHandler handles HTTP requests for prompt generation and management.
type PromptHandler struct {
	service *service.PromptService
}

// NewPromptHandler creates a new PromptHandler.
func NewPromptHandler(svc *service.PromptService) *PromptHandler {
	return &PromptHandler{service: svc}
}

// HandleGenerate handles POST /api/generate-prompt requests.
func (h *PromptHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	req, err := decodeValidBody[model.GeneratePromptRequest](w, r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	resp, err := h.service.Generate(r.Context(), identity.UserID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleList handles GET /api/prompts requests.
func (h *PromptHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	prompts, err := h.service.List(r.Context(), identity.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prompts)
}

// HandleDelete handles DELETE /api/prompts/{id} requests. A prompt owned by
// another user is reported exactly like a missing one.
func (h *PromptHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	promptID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse(service.ErrPromptNotFound.Error()))
		return
	}

	if err := h.service.Delete(r.Context(), identity.UserID, promptID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "prompt deleted"})
}
