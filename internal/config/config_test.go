package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("APP_ADDR", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("PROXY_ENABLED", "")
	t.Setenv("SUMMARY_TTL", "")

	cfg := New()

	assert.Equal(t, ":3000", cfg.GetAppAddr())
	assert.Equal(t, "http://localhost:8000", cfg.GetAPIBaseURL())
	assert.Equal(t, 10*time.Second, cfg.GetAPITimeout())
	assert.False(t, cfg.GetProxyEnabled())
	assert.Equal(t, 30*time.Second, cfg.GetSummaryTTL())
}

func TestNewRejectsNonPositivePollInterval(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	t.Setenv("LIVE_POLL_INTERVAL", "0s")
	assert.Equal(t, 15*time.Second, New().GetLivePollInterval())

	t.Setenv("LIVE_POLL_INTERVAL", "-30s")
	assert.Equal(t, 15*time.Second, New().GetLivePollInterval())
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("APP_ADDR", ":8080")
	t.Setenv("API_BASE_URL", "http://copilot.internal:9000")
	t.Setenv("API_TIMEOUT", "2s")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_ALL_PATHS", "true")
	t.Setenv("SUMMARY_TTL", "5s")
	t.Setenv("LIVE_POLL_INTERVAL", "1m")

	cfg := New()

	assert.Equal(t, ":8080", cfg.GetAppAddr())
	assert.Equal(t, "http://copilot.internal:9000", cfg.GetAPIBaseURL())
	assert.Equal(t, 2*time.Second, cfg.GetAPITimeout())
	assert.True(t, cfg.GetProxyEnabled())
	assert.True(t, cfg.GetProxyAllPaths())
	assert.Equal(t, 5*time.Second, cfg.GetSummaryTTL())
	assert.Equal(t, time.Minute, cfg.GetLivePollInterval())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("PROXY_ENABLED", "not-a-bool")
	t.Setenv("SUMMARY_TTL", "not-a-duration")

	cfg := New()

	assert.False(t, cfg.GetProxyEnabled())
	assert.Equal(t, 30*time.Second, cfg.GetSummaryTTL())
}
