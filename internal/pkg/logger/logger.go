// Package logger builds the service's zerolog logger and holds the PII
// helpers every log line with an email address must go through.
package logger

import (
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger aliases zerolog.Logger so packages can accept a logger without
// importing zerolog for the type alone.
type Logger = zerolog.Logger

// New constructs the service logger. Development gets a console writer and
// debug level unless level says otherwise; everything else logs JSON.
func New(appEnv, level string) Logger {
	return NewWithWriter(os.Stdout, appEnv, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, appEnv, level string) Logger {
	lvl := zerolog.InfoLevel
	if appEnv == "development" {
		lvl = zerolog.DebugLevel
	}
	if level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			lvl = parsed
		}
	}

	if appEnv == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() Logger {
	return zerolog.Nop()
}

// RedactEmail masks the local part of an address, keeping its first two
// characters when it has more than two: "jane@x.org" logs as "ja***@x.org".
// Anything that is not a single local@domain pair becomes "***@***".
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}
	if r := []rune(local); len(r) > 2 {
		return string(r[:2]) + "***@" + domain
	}
	return "***@" + domain
}

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// RedactText masks every email address embedded in free text, such as an
// error message echoed back by the remote actor.
func RedactText(s string) string {
	return emailRegex.ReplaceAllStringFunc(s, RedactEmail)
}
