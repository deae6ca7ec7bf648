package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/devlinkhq/devlink-api/internal/validation"
)

type errorMessage struct {
	Msg string `json:"msg"`
}

type errorResponse struct {
	Error []errorMessage `json:"error"`
}

type validationResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes the {error:[{msg}]} shape used for authorization and
// domain rejections.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: []errorMessage{{Msg: msg}}})
}

// respondValidationErrors writes the per-field {errors:[...]} shape.
func respondValidationErrors(w http.ResponseWriter, fieldErrors []validation.FieldError) {
	respondJSON(w, http.StatusBadRequest, validationResponse{Errors: fieldErrors})
}

// respondMessage writes a {msg} body with the given status.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorMessage{Msg: msg})
}

// respondServerError logs the cause and returns a generic body; internal error
// text never reaches the client.
func respondServerError(logger *zerolog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	respondError(w, http.StatusInternalServerError, "server error")
}
