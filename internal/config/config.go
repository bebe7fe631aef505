package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// Provider names accepted by LLMConfig.Primary.
const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Primary selects which provider receives every call.
	Primary string `mapstructure:"primary" validate:"required,oneof=openrouter gemini"`
	// Timeout bounds each outbound completion request.
	Timeout    time.Duration    `mapstructure:"timeout"    validate:"gt=0"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
}

// OpenRouterConfig configures the OpenRouter chat-completions backend.
// An empty APIKey is valid and leaves the backend unavailable.
type OpenRouterConfig struct {
	BaseURL  string `mapstructure:"base_url"  validate:"required,url"`
	Model    string `mapstructure:"model"     validate:"required"`
	APIKey   string `mapstructure:"api_key"`
	Referer  string `mapstructure:"referer"   validate:"omitempty,url"`
	AppTitle string `mapstructure:"app_title"`
}

// GeminiConfig configures the Gemini backend.
type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"    validate:"required"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}
