package httputil

import (
	"net/http"
	"strings"

	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// SafeError logs the full internal error and sends publicMsg to the client.
// Use it whenever a 5xx response would otherwise include err.Error().
func SafeError(w http.ResponseWriter, l logger.Logger, code int, internalErr error, publicMsg string) {
	if internalErr != nil {
		l.Error().
			Int("status", code).
			Str("err", logger.RedactText(internalErr.Error())).
			Msg(publicMsg)
	}
	Error(w, code, publicMsg)
}

// SafeMessage maps common internal error patterns to public-safe messages.
// For 4xx codes the error text is returned as is.
func SafeMessage(code int, internalErr error) string {
	if code < 500 {
		if internalErr != nil {
			return internalErr.Error()
		}
		return "Bad request"
	}
	if internalErr == nil {
		return "An internal error occurred"
	}

	errStr := strings.ToLower(internalErr.Error())
	switch {
	case strings.Contains(errStr, "actor not available") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "dial tcp"):
		return "Service temporarily unavailable"

	case strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") ||
		strings.Contains(errStr, "context canceled"):
		return "Request timed out"

	case strings.Contains(errStr, "not authorized") ||
		strings.Contains(errStr, "access denied"):
		return "Access denied"

	default:
		return "An internal error occurred"
	}
}
