package auth

import (
	"fmt"

	"github.com/kbukum/transcript-gateway/auth/jwt"
)

// Config holds authentication configuration.
type Config struct {
	// Enabled controls whether bearer tokens are required.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	JWT jwt.Config `yaml:",inline" mapstructure:",squash"`

	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string `yaml:"skip_paths" mapstructure:"skip_paths"`
}

// ApplyDefaults sets sensible defaults.
func (c *Config) ApplyDefaults() {
	c.JWT.ApplyDefaults()
	if len(c.SkipPaths) == 0 {
		c.SkipPaths = []string{"/health", "/ready", "/info"}
	}
}

// Validate checks the configuration. A disabled config is always valid.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if err := c.JWT.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	return nil
}

// Describe returns a one-liner for the startup summary.
func (c *Config) Describe() string {
	if !c.Enabled {
		return "disabled"
	}
	if c.JWT.Issuer != "" {
		return fmt.Sprintf("JWT(%s) issuer=%s", c.JWT.Method, c.JWT.Issuer)
	}
	return fmt.Sprintf("JWT(%s)", c.JWT.Method)
}
