package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "CHATRELAY"

// Default values applied before any source is read.
const (
	DefaultPort          = 5000
	DefaultLogLevel      = "info"
	DefaultBackend       = BackendHuggingFace
	DefaultProviderURL   = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.3"
	DefaultGeminiModel   = "gemini-2.0-flash"
	DefaultTimeout       = 30 * time.Second
	DefaultClearInterval = 7 * time.Minute
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory, when present, seeds the environment
// without overriding variables that are already set.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("provider.backend", DefaultBackend)
	v.SetDefault("provider.url", DefaultProviderURL)
	v.SetDefault("provider.model", DefaultGeminiModel)
	v.SetDefault("provider.timeout", DefaultTimeout)
	v.SetDefault("cache.clear_interval", DefaultClearInterval)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The bare PORT and API_KEY names are what hosting platforms and the
	// widget's deployment scripts set.
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env: %w", err)
	}
	if err := v.BindEnv("provider.api_key", EnvPrefix+"_PROVIDER_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags on cfg and the cross-field rules the tags
// cannot express.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Provider.Backend == BackendHuggingFace && cfg.Provider.URL == "" {
		return fmt.Errorf("config validation failed: provider.url is required for the %s backend",
			BackendHuggingFace)
	}
	if cfg.Provider.Backend == BackendGemini && cfg.Provider.Model == "" {
		return fmt.Errorf("config validation failed: provider.model is required for the %s backend",
			BackendGemini)
	}
	return nil
}
