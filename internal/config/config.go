package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Provider ProviderConfig `mapstructure:"provider" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigins lists the browser origins permitted to call the relay.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// Backend names accepted in ProviderConfig.Backend.
const (
	BackendHuggingFace = "huggingface"
	BackendGemini      = "gemini"
)

// ProviderConfig contains the settings for the external inference provider.
type ProviderConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=huggingface gemini"`
	APIKey  string `mapstructure:"api_key" validate:"required"`
	// URL is the text-generation endpoint used by the huggingface backend.
	URL string `mapstructure:"url" validate:"omitempty,url"`
	// Model is the model name used by the gemini backend.
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// CacheConfig controls the in-memory response cache.
type CacheConfig struct {
	ClearInterval time.Duration `mapstructure:"clear_interval" validate:"gt=0"`
}
