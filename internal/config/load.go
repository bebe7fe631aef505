package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable Load reads.
const EnvPrefix = "TUTOR"

// ErrValidation is wrapped by every error caused by invalid settings.
var ErrValidation = errors.New("validation failed")

var defaults = map[string]any{
	"server.port":             8080,
	"server.log_level":        "info",
	"server.shutdown_timeout": "10s",

	"llm.primary": ProviderOpenRouter,
	"llm.timeout": "30s",

	"llm.openrouter.base_url":  "https://openrouter.ai/api/v1",
	"llm.openrouter.model":     "meta-llama/llama-3.3-70b-instruct:free",
	"llm.openrouter.api_key":   "",
	"llm.openrouter.referer":   "https://ai-personal-tutor.com",
	"llm.openrouter.app_title": "AI Personal Tutor",

	"llm.gemini.api_key":  "",
	"llm.gemini.model":    "gemini-2.0-flash",
	"llm.gemini.base_url": "",
}

// Credentials may also come from the provider's conventional variable names.
// The TUTOR_ form wins when both are set.
var credentialEnvs = []struct {
	key     string
	envVars []string
}{
	{"llm.openrouter.api_key", []string{"TUTOR_LLM_OPENROUTER_API_KEY", "OPENROUTER_API_KEY"}},
	{"llm.gemini.api_key", []string{"TUTOR_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"}},
}

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from config files.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the config file at path. An empty path
// searches the working directory for config.yaml; a missing file is not an
// error in that case.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, env := range credentialEnvs {
		args := append([]string{env.key}, env.envVars...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", env.key, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.normalize()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Server.LogLevel = strings.ToLower(strings.TrimSpace(c.Server.LogLevel))
	c.LLM.Primary = strings.ToLower(strings.TrimSpace(c.LLM.Primary))
	c.LLM.OpenRouter.APIKey = strings.TrimSpace(c.LLM.OpenRouter.APIKey)
	c.LLM.Gemini.APIKey = strings.TrimSpace(c.LLM.Gemini.APIKey)
}
