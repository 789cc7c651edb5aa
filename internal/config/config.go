package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	Retry     RetryConfig     `mapstructure:"retry" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the model integration settings.
type LLMConfig struct {
	ModelName        string `mapstructure:"model_name" validate:"required"`
	MaxSelectedFiles int    `mapstructure:"max_selected_files" validate:"gte=8,lte=15"`

	// APIKeys are read from GOOGLE_API_KEY and GOOGLE_API_KEY_2..9 in that
	// order. An empty list is valid: the service starts without a model.
	APIKeys []string `mapstructure:"-"`
}

// HasCredentials reports whether at least one API key was found.
func (c LLMConfig) HasCredentials() bool {
	return len(c.APIKeys) > 0
}

// RateLimitConfig bounds how often the model is called, process-wide.
type RateLimitConfig struct {
	RequestsPerMinute  int     `mapstructure:"requests_per_minute" validate:"gt=0"`
	MinIntervalSeconds float64 `mapstructure:"min_interval_seconds" validate:"gte=0"`
}

// MinInterval returns the minimum spacing between two model calls.
func (c RateLimitConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalSeconds * float64(time.Second))
}

// RetryConfig controls the retry loop around throttled model calls.
type RetryConfig struct {
	MaxAttempts           int     `mapstructure:"max_attempts" validate:"gt=0"`
	InitialBackoffSeconds float64 `mapstructure:"initial_backoff_seconds" validate:"gt=0"`
}

// InitialBackoff returns the delay after the first throttled attempt.
func (c RetryConfig) InitialBackoff() time.Duration {
	return time.Duration(c.InitialBackoffSeconds * float64(time.Second))
}
