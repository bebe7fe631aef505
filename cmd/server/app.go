package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tutor-api/internal/api"
	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/providers"
)

// application holds the shared dependencies of the server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	content api.ContentService
}

// newApplication builds the generation stack described by cfg.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	manager, err := providers.NewManager(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation manager: %w", err)
	}

	return &application{
		config:  cfg,
		logger:  logger,
		content: manager,
	}, nil
}
