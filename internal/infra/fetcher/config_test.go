package fetcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxBodySize)
	assert.Equal(t, 5, cfg.MaxRedirects)
	assert.True(t, cfg.DenyPrivateIPs)
	assert.NotEmpty(t, cfg.UserAgent)

	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "timeout"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"body size too small", func(c *Config) { c.MaxBodySize = 100 }, "body size"},
		{"body size too large", func(c *Config) { c.MaxBodySize = 200 * 1024 * 1024 }, "body size"},
		{"negative redirects", func(c *Config) { c.MaxRedirects = -1 }, "redirects"},
		{"too many redirects", func(c *Config) { c.MaxRedirects = 11 }, "redirects"},
		{"empty user agent", func(c *Config) { c.UserAgent = "" }, "user agent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "10s")
	t.Setenv("FETCH_MAX_BODY_SIZE", "2048")
	t.Setenv("FETCH_MAX_REDIRECTS", "2")
	t.Setenv("FETCH_DENY_PRIVATE_IPS", "false")
	t.Setenv("FETCH_USER_AGENT", "test-agent/1.0")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, int64(2048), cfg.MaxBodySize)
	assert.Equal(t, 2, cfg.MaxRedirects)
	assert.False(t, cfg.DenyPrivateIPs)
	assert.Equal(t, "test-agent/1.0", cfg.UserAgent)
}

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	// No FETCH_* variables set.
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromEnvRejectsInvalidValues(t *testing.T) {
	t.Setenv("FETCH_MAX_BODY_SIZE", "512") // below the minimum

	_, err := LoadConfigFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body size")
}
