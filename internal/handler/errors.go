package handler

import (
	"errors"
	"net/http"

	"github.com/promptforge/promptforge-go/internal/gemini"
	"github.com/promptforge/promptforge-go/internal/service"
)

// errorStatus is the single taxonomy-to-status translation table consulted
// at the router boundary. Anything not listed is a storage or internal
// failure and maps to a generic 500 with the detail suppressed.
var errorStatus = []struct {
	err    error
	status int
}{
	{service.ErrIdeaRequired, http.StatusBadRequest},
	{service.ErrDuplicateIdentity, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrPromptNotFound, http.StatusNotFound},
}

// writeServiceError translates a service-layer error into an HTTP response.
func writeServiceError(w http.ResponseWriter, err error) {
	for _, entry := range errorStatus {
		if errors.Is(err, entry.err) {
			writeJSON(w, entry.status, errorResponse(entry.err.Error()))
			return
		}
	}

	var upstream *gemini.UpstreamError
	if errors.As(err, &upstream) || errors.Is(err, gemini.ErrEmptyResponse) {
		writeJSON(w, http.StatusInternalServerError, errorResponse("prompt generation failed: "+err.Error()))
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
