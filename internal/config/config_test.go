package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
app:
  env: "production"
  log_level: "warn"

server:
  port: 9090
  host: "0.0.0.0"

site:
  name: "Samarpan Trust"
  contact_email: "hello@example.org"
  allowed_origins: ["https://samarpantrust.org"]

actor:
  base_url: "https://actor.example.org"
  principal: "site-principal"
  signing_key: "secret"
  timeout_seconds: 45

redis:
  enabled: true
  addr: "redis:6379"
  key_prefix: "ngo"
  ttl_seconds: 120

notify:
  enabled: true
  region: "ap-south-1"
  from_email: "noreply@example.org"
  to: ["staff@example.org"]
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.Equal(t, "hello@example.org", cfg.Site.ContactEmail)
	assert.Equal(t, []string{"https://samarpantrust.org"}, cfg.Site.AllowedOrigins)

	assert.Equal(t, "https://actor.example.org", cfg.Actor.BaseURL)
	assert.Equal(t, "site-principal", cfg.Actor.Principal)
	assert.Equal(t, 45*time.Second, cfg.Actor.Timeout())

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "ngo", cfg.Redis.KeyPrefix)
	assert.Equal(t, 2*time.Minute, cfg.Redis.TTL())

	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, "ap-south-1", cfg.Notify.Region)
	assert.Equal(t, "Samarpan Trust", cfg.Notify.FromName)
	assert.Equal(t, []string{"staff@example.org"}, cfg.Notify.To)
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("site:\n  name: \"Test NGO\"\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout())
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout())
	assert.Equal(t, "samarpantrust2@gmail.com", cfg.Site.ContactEmail)
	assert.Zero(t, cfg.Actor.Timeout())
	assert.Equal(t, 5*time.Minute, cfg.Actor.TokenTTL())
	assert.Equal(t, 5*time.Second, cfg.Actor.ProbeInterval())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "outreach", cfg.Redis.KeyPrefix)
	assert.Equal(t, "Test NGO", cfg.Notify.FromName)
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
actor:
  base_url: "https://file-actor.example.org"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	t.Setenv("ACTOR_BASE_URL", "https://env-actor.example.org")
	t.Setenv("ACTOR_SIGNING_KEY", "env-secret")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("NOTIFY_TO", "a@example.org, b@example.org")
	t.Setenv("PORT", "9191")
	t.Setenv("SITE_ADMIN_TOKEN", "token-1")

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://env-actor.example.org", cfg.Actor.BaseURL)
	assert.Equal(t, "env-secret", cfg.Actor.SigningKey)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.True(t, cfg.Notify.Enabled)
	assert.Equal(t, []string{"a@example.org", "b@example.org"}, cfg.Notify.To)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "token-1", cfg.Site.AdminToken)
}

func TestLoadFromEnv_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ACTOR_PRINCIPAL", "env-principal")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "env-principal", cfg.Actor.Principal)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [not, a, map"), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}
