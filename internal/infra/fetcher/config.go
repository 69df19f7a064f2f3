// Package fetcher provides the HTTP implementation of the dataset
// TableFetcher: one synchronous GET per call, JSON decoding, and
// normalization into tabular records.
package fetcher

import (
	"fmt"
	"time"

	"nbu-dashboard/pkg/config"
)

// Config holds the settings for dataset fetching.
//
// Security settings:
//   - DenyPrivateIPs: blocks URLs resolving to private addresses (SSRF)
//   - MaxBodySize: caps response reading to prevent memory exhaustion
//   - MaxRedirects: prevents redirect loops
//   - Timeout: bounds a single upstream request
type Config struct {
	// Timeout is the maximum duration of a single fetch.
	// Default: 30s, matching the upstream statdirectory's slow responses.
	Timeout time.Duration

	// MaxBodySize is the maximum response body size in bytes, enforced
	// while reading, not from the Content-Length header.
	// Default: 10MB.
	MaxBodySize int64

	// MaxRedirects is the maximum number of redirects to follow. Each
	// redirect target is re-validated. Default: 5.
	MaxRedirects int

	// DenyPrivateIPs blocks URLs whose host resolves to a private,
	// loopback, or link-local address. Should always be true in
	// production; tests against local servers disable it.
	// Default: true.
	DenyPrivateIPs bool

	// UserAgent is sent on every upstream request.
	UserAgent string
}

// DefaultConfig returns production-ready fetch settings.
func DefaultConfig() Config {
	return Config{
		Timeout:        30 * time.Second,
		MaxBodySize:    10 * 1024 * 1024,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "nbu-dashboard/1.0",
	}
}

// Validate checks that the configuration values are safe.
func (c *Config) Validate() error {
	if err := config.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}

	minBodySize := int64(1024)
	maxBodySize := int64(100 * 1024 * 1024)
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	if c.UserAgent == "" {
		return fmt.Errorf("user agent must not be empty")
	}

	return nil
}

// LoadConfigFromEnv loads the fetch configuration from environment
// variables, falling back to defaults for unset values:
//
//   - FETCH_TIMEOUT: duration string, e.g. "30s"
//   - FETCH_MAX_BODY_SIZE: bytes
//   - FETCH_MAX_REDIRECTS: integer
//   - FETCH_DENY_PRIVATE_IPS: "true" or "false"
//   - FETCH_USER_AGENT: string
//
// The loaded configuration is validated before being returned.
func LoadConfigFromEnv() (Config, error) {
	def := DefaultConfig()

	cfg := Config{
		Timeout:        config.GetEnvDuration("FETCH_TIMEOUT", def.Timeout),
		MaxBodySize:    int64(config.GetEnvInt("FETCH_MAX_BODY_SIZE", int(def.MaxBodySize))),
		MaxRedirects:   config.GetEnvInt("FETCH_MAX_REDIRECTS", def.MaxRedirects),
		DenyPrivateIPs: config.GetEnvBool("FETCH_DENY_PRIVATE_IPS", def.DenyPrivateIPs),
		UserAgent:      config.GetEnvString("FETCH_USER_AGENT", def.UserAgent),
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("fetch configuration validation failed: %w", err)
	}
	return cfg, nil
}
