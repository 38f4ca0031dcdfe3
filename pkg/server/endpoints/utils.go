package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"smmhub/pkg/identity"
	"smmhub/pkg/server/store"
)

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Reason string `json:"reason"`
}

func respondWithReason(w http.ResponseWriter, code int, reason string) {
	respondWithJSON(w, code, ErrorResponse{Reason: reason})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps the error taxonomy onto status codes and reasons.
func respondWithError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrOwnerGrant):
		respondWithReason(w, http.StatusConflict, "conflict when adding owner")
	case errors.Is(err, store.ErrConflict):
		respondWithReason(w, http.StatusConflict, "conflict")
	case errors.Is(err, store.ErrForbidden):
		respondWithReason(w, http.StatusForbidden, "Don't have required permissions")
	case errors.Is(err, store.ErrInvalidCredential):
		respondWithReason(w, http.StatusBadRequest, "Invalid token")
	case errors.Is(err, store.ErrNotFound):
		respondWithReason(w, http.StatusNotFound, "not found")
	case errors.Is(err, identity.ErrAuthFailure), errors.Is(err, identity.ErrInvalidToken):
		respondWithReason(w, http.StatusUnauthorized, "user not found")
	default:
		respondWithReason(w, http.StatusInternalServerError, "internal error")
	}
}
