package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"lentoflow/internal/domain"
	"lentoflow/internal/repository"
)

// errorBody is the uniform error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// writeError maps service errors onto HTTP statuses. Validation failures and
// same-day duplicates are client errors; unknown errors stay opaque.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, repository.ErrDuplicateCompletion):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeDetail(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeDetail(w, http.StatusInternalServerError, "internal server error")
	}
}
