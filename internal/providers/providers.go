// Package providers assembles generation providers from configuration.
package providers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/platform/gemini"
	"github.com/phrazzld/tutor-api/internal/platform/httpx"
	"github.com/phrazzld/tutor-api/internal/platform/openrouter"
)

// Build constructs one provider per configured backend, ordered so the
// configured primary comes first.
func Build(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) ([]generation.Provider, error) {
	orBackend, err := openrouter.New(openrouter.Config{
		BaseURL:  cfg.OpenRouter.BaseURL,
		Model:    cfg.OpenRouter.Model,
		APIKey:   cfg.OpenRouter.APIKey,
		Referer:  cfg.OpenRouter.Referer,
		AppTitle: cfg.OpenRouter.AppTitle,
	}, httpx.NewClient(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create openrouter backend: %w", err)
	}

	gmBackend, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Timeout,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini backend: %w", err)
	}

	backends := []generation.Backend{orBackend, gmBackend}
	if cfg.Primary == config.ProviderGemini {
		backends = []generation.Backend{gmBackend, orBackend}
	}

	providers := make([]generation.Provider, 0, len(backends))
	for _, b := range backends {
		p, err := generation.NewProvider(b, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s provider: %w", b.Name(), err)
		}
		logger.Debug("provider configured",
			"provider", b.Label(),
			"available", b.Available())
		providers = append(providers, p)
	}

	return providers, nil
}

// NewManager builds the providers for cfg and wraps them in a Manager.
func NewManager(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*generation.Manager, error) {
	providers, err := Build(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return generation.NewManager(logger, providers...)
}
