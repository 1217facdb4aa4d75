package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john.doe@example.com", "jo***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"  jane@x.com ", "ja***@x.com"},
		{"bad-email", "***@***"},
		{"a@b@c", "***@***"},
		{"élodie@example.fr", "él***@example.fr"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactEmail(tt.in))
		})
	}
}

func TestRedactText(t *testing.T) {
	got := RedactText("duplicate pledge for jane.doe@example.org rejected")
	assert.Equal(t, "duplicate pledge for ja***@example.org rejected", got)
}

func TestNewWithWriter_JSONInProduction(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production", "")

	log.Debug().Msg("hidden")
	log.Info().Str("bucket", "contactMessages").Msg("invalidated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "contactMessages", entry["bucket"])
	assert.Equal(t, "invalidated", entry["message"])
}

func TestNewWithWriter_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "production", "WARN")

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}
