package transcript

import (
	"fmt"

	"github.com/kbukum/transcript-gateway/transcription"
)

// Config holds request defaults for the transcript handler.
type Config struct {
	// DefaultLanguage is used when a request carries no language.
	DefaultLanguage string `yaml:"default_language" mapstructure:"default_language"`
	// DefaultMode is used when a request carries no mode.
	DefaultMode string `yaml:"default_mode" mapstructure:"default_mode"`
	// PlainText is used when a request does not say whether it wants text.
	PlainText bool `yaml:"plain_text" mapstructure:"plain_text"`
	// NormalizeYouTube rewrites YouTube URLs to their canonical watch URL and
	// sends native-mode requests to the video-id operation.
	NormalizeYouTube bool `yaml:"normalize_youtube" mapstructure:"normalize_youtube"`
}

// DefaultConfig returns the handler defaults.
func DefaultConfig() Config {
	return Config{
		DefaultLanguage:  "en",
		DefaultMode:      string(transcription.ModeAuto),
		PlainText:        true,
		NormalizeYouTube: true,
	}
}

// ApplyDefaults fills empty string fields. Booleans are left alone since
// false is a valid setting; seed them through the config loader defaults.
func (c *Config) ApplyDefaults() {
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
	if c.DefaultMode == "" {
		c.DefaultMode = string(transcription.ModeAuto)
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !validMode(c.DefaultMode) {
		return fmt.Errorf("transcript.default_mode must be one of native, auto, generate (got: %q)", c.DefaultMode)
	}
	return nil
}

func validMode(mode string) bool {
	switch transcription.Mode(mode) {
	case transcription.ModeNative, transcription.ModeAuto, transcription.ModeGenerate:
		return true
	}
	return false
}
