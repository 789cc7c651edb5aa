package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "INTELLIDOC"

	// PrimaryKeyEnv holds the first API key. Further keys use the same name
	// with a numeric suffix, from _2 up to maxAPIKeys.
	PrimaryKeyEnv = "GOOGLE_API_KEY"
	maxAPIKeys    = 9
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files, and
// a .env file in the working directory is read first if present.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env file is the normal case in deployed environments.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	keyNames := apiKeyEnvNames()
	for i, name := range keyNames {
		if err := v.BindEnv(apiKeyConfigKey(i), name); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LLM.APIKeys = collectAPIKeys(v, len(keyNames))

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.model_name", "gemini-flash-latest")
	v.SetDefault("llm.max_selected_files", 15)
	v.SetDefault("rate_limit.requests_per_minute", 8)
	v.SetDefault("rate_limit.min_interval_seconds", 7.0)
	v.SetDefault("retry.max_attempts", 5)
	v.SetDefault("retry.initial_backoff_seconds", 8.0)
}

// apiKeyEnvNames returns GOOGLE_API_KEY, GOOGLE_API_KEY_2, ... GOOGLE_API_KEY_9.
func apiKeyEnvNames() []string {
	names := make([]string, 0, maxAPIKeys)
	names = append(names, PrimaryKeyEnv)
	for i := 2; i <= maxAPIKeys; i++ {
		names = append(names, PrimaryKeyEnv+"_"+strconv.Itoa(i))
	}
	return names
}

func apiKeyConfigKey(i int) string {
	return "credentials.key_" + strconv.Itoa(i+1)
}

// collectAPIKeys returns the non-blank keys in variable order.
func collectAPIKeys(v *viper.Viper, n int) []string {
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if key := strings.TrimSpace(v.GetString(apiKeyConfigKey(i))); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
