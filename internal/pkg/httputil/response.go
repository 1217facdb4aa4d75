package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every JSON error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON encodes data as the response body with the given status.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Int("status", status).Msg("httputil: JSON encode failed")
	}
}

// OK writes data with status 200.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error writes message in an ErrorResponse. The message is sent verbatim;
// use SafeError for 5xx replies.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "unauthorized")
}

// maxBodyBytes bounds request bodies read by Decode. Form payloads are a
// handful of short fields.
const maxBodyBytes = 64 << 10

// Decode reads a JSON request body into dst. On failure it writes a 400
// and returns false; the handler should return without writing.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	switch {
	case err == nil:
		return true
	case errors.Is(err, io.EOF):
		BadRequest(w, "request body is empty")
	default:
		BadRequest(w, "invalid JSON: "+err.Error())
	}
	return false
}
