package supadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/transcript-gateway/httpclient"
)

const (
	// DefaultBaseURL is the public Supadata API root.
	DefaultBaseURL = "https://api.supadata.ai/v1"

	defaultTimeout = 30 * time.Second
)

// Config holds configuration for the Supadata provider.
type Config struct {
	// APIKey is sent as the x-api-key header. Required; there is no default.
	APIKey  string        `yaml:"api_key" mapstructure:"api_key"`
	BaseURL string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// RateLimit throttles outbound calls to protect the key's quota.
	RateLimit httpclient.RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
	// UserAgent is filled in by the service at startup.
	UserAgent string `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	c.APIKey = strings.TrimSpace(c.APIKey)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("supadata.api_key is required (set SUPADATA_API_KEY)")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("supadata.base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	return nil
}
