package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes read-only access to application configuration. Handlers
// and modules depend on this interface rather than the concrete struct so
// tests can substitute their own values.
type Provider interface {
	GetAppAddr() string
	GetAPIBaseURL() string
	GetAPITimeout() time.Duration
	GetSessionSecret() string
	GetProxyEnabled() bool
	GetProxyAllPaths() bool
	GetSummaryTTL() time.Duration
	GetLivePollInterval() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr          string
	APIBaseURL       string
	APITimeout       time.Duration
	SessionSecret    string
	ProxyEnabled     bool
	ProxyAllPaths    bool
	SummaryTTL       time.Duration
	LivePollInterval time.Duration
}

func (c *Config) GetAppAddr() string                 { return c.AppAddr }
func (c *Config) GetAPIBaseURL() string              { return c.APIBaseURL }
func (c *Config) GetAPITimeout() time.Duration       { return c.APITimeout }
func (c *Config) GetSessionSecret() string           { return c.SessionSecret }
func (c *Config) GetProxyEnabled() bool              { return c.ProxyEnabled }
func (c *Config) GetProxyAllPaths() bool             { return c.ProxyAllPaths }
func (c *Config) GetSummaryTTL() time.Duration       { return c.SummaryTTL }
func (c *Config) GetLivePollInterval() time.Duration { return c.LivePollInterval }

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		AppAddr:          getEnv("APP_ADDR", ":3000"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:8000"),
		APITimeout:       getDuration("API_TIMEOUT", 10*time.Second),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		ProxyEnabled:     getBool("PROXY_ENABLED", false),
		ProxyAllPaths:    getBool("PROXY_ALL_PATHS", false),
		SummaryTTL:       getDuration("SUMMARY_TTL", 30*time.Second),
		LivePollInterval: getDuration("LIVE_POLL_INTERVAL", 15*time.Second),
	}

	if cfg.SessionSecret == "" {
		log.Fatal("Required environment variable SESSION_SECRET is not set.")
	}

	// The poller ticks on this interval, so it must be positive.
	if cfg.LivePollInterval <= 0 {
		log.Printf("Non-positive LIVE_POLL_INTERVAL %s, using default", cfg.LivePollInterval)
		cfg.LivePollInterval = 15 * time.Second
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using default", key, v)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default", key, v)
		return fallback
	}
	return d
}
