package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server" validate:"required"`
	CORS      CORSConfig      `mapstructure:"cors" yaml:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                     int    `mapstructure:"port" yaml:"port" validate:"required,gt=0,lt=65536"`
	LogLevel                 string `mapstructure:"log_level" yaml:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat                string `mapstructure:"log_format" yaml:"log_format" validate:"required,oneof=json text"`
	APIPrefix                string `mapstructure:"api_prefix" yaml:"api_prefix" validate:"required,startswith=/"`
	ShutdownTimeoutSeconds   int    `mapstructure:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" validate:"gt=0"`
	ReadHeaderTimeoutSeconds int    `mapstructure:"read_header_timeout_seconds" yaml:"read_header_timeout_seconds" validate:"gt=0"`
}

// CORSConfig lists what cross-origin callers may do. "*" allows everything.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins" validate:"required,min=1"`
	AllowedMethods []string `mapstructure:"allowed_methods" yaml:"allowed_methods" validate:"required,min=1"`
	AllowedHeaders []string `mapstructure:"allowed_headers" yaml:"allowed_headers"`
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" yaml:"burst" validate:"gt=0"`
}

// Addr returns the listen address for the configured port.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// ShutdownTimeout returns how long graceful shutdown may take.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ReadHeaderTimeout returns the http.Server ReadHeaderTimeout.
func (c ServerConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutSeconds) * time.Second
}

// YAML renders the configuration in the same shape the config file uses.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return out, nil
}
