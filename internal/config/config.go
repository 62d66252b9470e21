// Package config defines the service configuration and how it is loaded.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RulesFile points at a YAML or JSON rule table. Empty means built-in.
	RulesFile string `koanf:"rules_file"`

	// RulesURL is fetched at startup when set and takes precedence over RulesFile.
	RulesURL string `koanf:"rules_url"`

	// RulesPath is a JSONPath selecting the table inside the remote document.
	RulesPath string `koanf:"rules_path"`

	RulesTimeoutMS int `koanf:"rules_timeout_ms"`
	ReadTimeoutMS  int `koanf:"read_timeout_ms"`
	WriteTimeoutMS int `koanf:"write_timeout_ms"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int `koanf:"max_body_bytes"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":8080",
		RulesPath:      "$",
		RulesTimeoutMS: 2000,
		ReadTimeoutMS:  10_000,
		WriteTimeoutMS: 10_000,
		MaxBodyBytes:   1 << 20,
	}
}

func (c *Config) RulesTimeout() time.Duration {
	return time.Duration(c.RulesTimeoutMS) * time.Millisecond
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMS) * time.Millisecond
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.RulesTimeoutMS <= 0:
		return fmt.Errorf("%w: rules_timeout_ms must be positive", ErrInvalidConfig)
	case c.ReadTimeoutMS <= 0 || c.WriteTimeoutMS <= 0:
		return fmt.Errorf("%w: read and write timeouts must be positive", ErrInvalidConfig)
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
