package config

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig    `yaml:"app"`
	Server ServerConfig `yaml:"server"`
	Site   SiteConfig   `yaml:"site"`
	Actor  ActorConfig  `yaml:"actor"`
	Redis  RedisConfig  `yaml:"redis"`
	Notify NotifyConfig `yaml:"notify"`
}

// AppConfig holds environment and logging settings
type AppConfig struct {
	Env      string `yaml:"env"`       // "development" or "production"
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port                int    `yaml:"port"`
	Host                string `yaml:"host"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// Addr returns the host:port the server listens on
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.GetHost(), strconv.Itoa(c.Port))
}

// ReadTimeout returns the configured read timeout as a duration
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout as a duration
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the configured idle timeout as a duration
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutSeconds) * time.Second
}

// SiteConfig holds public site settings
type SiteConfig struct {
	Name           string   `yaml:"name"`
	ContactEmail   string   `yaml:"contact_email"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AdminToken     string   `yaml:"admin_token"` // Empty disables the /api/admin listings
}

// ActorConfig holds the remote actor connection settings
type ActorConfig struct {
	BaseURL              string `yaml:"base_url"`
	Principal            string `yaml:"principal"`
	SigningKey           string `yaml:"signing_key"`
	TimeoutSeconds       int    `yaml:"timeout_seconds"` // 0 = no deadline
	TokenTTLSeconds      int    `yaml:"token_ttl_seconds"`
	ProbeIntervalSeconds int    `yaml:"probe_interval_seconds"`
}

// Timeout returns the actor call deadline. Zero, the default, means a call
// runs until the actor answers or the caller's context ends.
func (c ActorConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TokenTTL returns the lifetime of minted caller tokens
func (c ActorConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// ProbeInterval returns the delay between connection probes at startup
func (c ActorConfig) ProbeInterval() time.Duration {
	return time.Duration(c.ProbeIntervalSeconds) * time.Second
}

// RedisConfig holds the list cache backend settings
type RedisConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	KeyPrefix  string `yaml:"key_prefix"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// TTL returns the cached listing lifetime as a duration
func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// NotifyConfig holds AWS SES settings for staff notifications
type NotifyConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Region    string   `yaml:"region"`
	AccessKey string   `yaml:"access_key"`
	SecretKey string   `yaml:"secret_key"`
	FromName  string   `yaml:"from_name"`
	FromEmail string   `yaml:"from_email"`
	To        []string `yaml:"to"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 30
	}
	if cfg.Server.IdleTimeoutSeconds == 0 {
		cfg.Server.IdleTimeoutSeconds = 60
	}
	if cfg.Site.Name == "" {
		cfg.Site.Name = "Samarpan Trust"
	}
	if cfg.Site.ContactEmail == "" {
		cfg.Site.ContactEmail = "samarpantrust2@gmail.com"
	}
	if cfg.Actor.BaseURL == "" {
		cfg.Actor.BaseURL = "http://localhost:8090"
	}
	if cfg.Actor.Principal == "" {
		cfg.Actor.Principal = "outreach-site"
	}
	if cfg.Actor.TokenTTLSeconds == 0 {
		cfg.Actor.TokenTTLSeconds = 300
	}
	if cfg.Actor.ProbeIntervalSeconds == 0 {
		cfg.Actor.ProbeIntervalSeconds = 5
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "outreach"
	}
	if cfg.Redis.TTLSeconds == 0 {
		cfg.Redis.TTLSeconds = 300
	}
	if cfg.Notify.Region == "" {
		cfg.Notify.Region = "us-east-1"
	}
	if cfg.Notify.FromName == "" {
		cfg.Notify.FromName = cfg.Site.Name
	}
	if cfg.Notify.FromEmail == "" {
		cfg.Notify.FromEmail = cfg.Site.ContactEmail
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars.
// A missing config file is not an error: defaults plus environment apply.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &Config{}
		applyDefaults(cfg)
	} else if err != nil {
		return nil, err
	}

	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.App.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.App.LogLevel = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("SITE_ADMIN_TOKEN"); v != "" {
		cfg.Site.AdminToken = v
	}
	if v := os.Getenv("SITE_ALLOWED_ORIGINS"); v != "" {
		cfg.Site.AllowedOrigins = splitList(v)
	}

	if v := os.Getenv("ACTOR_BASE_URL"); v != "" {
		cfg.Actor.BaseURL = v
	}
	if v := os.Getenv("ACTOR_PRINCIPAL"); v != "" {
		cfg.Actor.Principal = v
	}
	if v := os.Getenv("ACTOR_SIGNING_KEY"); v != "" {
		cfg.Actor.SigningKey = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
		cfg.Redis.Enabled = true
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	if v := os.Getenv("AWS_SES_ACCESS_KEY"); v != "" {
		cfg.Notify.AccessKey = v
	}
	if v := os.Getenv("AWS_SES_SECRET_KEY"); v != "" {
		cfg.Notify.SecretKey = v
	}
	if v := os.Getenv("AWS_SES_REGION"); v != "" {
		cfg.Notify.Region = v
	}
	if v := os.Getenv("NOTIFY_TO"); v != "" {
		cfg.Notify.To = splitList(v)
		cfg.Notify.Enabled = true
	}

	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
