package main

import (
	"fmt"

	"github.com/kbukum/transcript-gateway/auth"
	"github.com/kbukum/transcript-gateway/config"
	"github.com/kbukum/transcript-gateway/observability"
	"github.com/kbukum/transcript-gateway/server"
	"github.com/kbukum/transcript-gateway/transcript"
	"github.com/kbukum/transcript-gateway/transcription/supadata"
	"github.com/kbukum/transcript-gateway/version"
)

const serviceName = "transcript-gateway"

// Config is the full service configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Supadata      supadata.Config      `yaml:"supadata" mapstructure:"supadata"`
	Transcript    transcript.Config    `yaml:"transcript" mapstructure:"transcript"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Version == "" {
		c.Version = version.GetShortVersion()
	}
	c.Server.ApplyDefaults()
	c.Supadata.ApplyDefaults()
	c.Transcript.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Supadata.Validate(); err != nil {
		return err
	}
	if err := c.Transcript.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Observability.Validate(); err != nil {
		return err
	}
	return nil
}

// defaults seeds the loader. Every key listed here can be overridden by
// its UPPER_SNAKE environment variable, so secrets appear with empty
// values and no fallback.
func defaults() map[string]any {
	td := transcript.DefaultConfig()
	return map[string]any{
		"name":                                  serviceName,
		"environment":                           "development",
		"logging.level":                         "info",
		"logging.format":                        "console",
		"server.host":                           "0.0.0.0",
		"server.port":                           8080,
		"server.rate_limit.requests_per_second": 0,
		"server.rate_limit.burst":               0,
		"supadata.api_key":                      "",
		"supadata.base_url":                     supadata.DefaultBaseURL,
		"supadata.timeout":                      "30s",
		"supadata.rate_limit.rate":              0,
		"supadata.rate_limit.burst":             0,
		"transcript.default_language":           td.DefaultLanguage,
		"transcript.default_mode":               td.DefaultMode,
		"transcript.plain_text":                 td.PlainText,
		"transcript.normalize_youtube":          td.NormalizeYouTube,
		"auth.enabled":                          false,
		"auth.secret":                           "",
		"auth.issuer":                           "",
		"observability.tracing.enabled":         false,
		"observability.metrics.enabled":         false,
	}
}

// loadConfig reads config.yml, the environment and .env on top of defaults.
func loadConfig(opts ...config.LoaderOption) (*Config, error) {
	var cfg Config
	opts = append([]config.LoaderOption{config.WithDefaults(defaults())}, opts...)
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
