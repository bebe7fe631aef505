package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tutor-api/internal/api"
	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/platform/logger"
	"github.com/phrazzld/tutor-api/internal/providers"
	"github.com/spf13/cobra"
)

// serviceFactory builds the content service for a loaded configuration.
type serviceFactory func(ctx context.Context, cfg *config.Config, l *slog.Logger) (api.ContentService, error)

func defaultServiceFactory(ctx context.Context, cfg *config.Config, l *slog.Logger) (api.ContentService, error) {
	return providers.NewManager(ctx, cfg.LLM, l)
}

// cli carries state shared by every subcommand.
type cli struct {
	cfgFile  string
	logLevel string
	factory  serviceFactory

	logger  *slog.Logger
	service api.ContentService
}

func newRootCmd(factory serviceFactory) *cobra.Command {
	c := &cli{factory: factory}

	root := &cobra.Command{
		Use:           "tutorctl",
		Short:         "Generate tutoring content from the command line",
		Long:          "tutorctl runs lesson, chat, image, quiz and diagram generation against the configured LLM provider, falling back to built-in content when no provider is available.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is ./config.yaml when present)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	root.AddCommand(
		c.lessonCmd(),
		c.chatCmd(),
		c.imageCmd(),
		c.quizCmd(),
		c.diagramCmd(),
		c.statusCmd(),
	)

	return root
}

// setup loads configuration, logs to stderr and builds the content service.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFile(c.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if c.logLevel != "" {
		if _, ok := logger.ParseLevel(c.logLevel); !ok {
			return fmt.Errorf("invalid --log-level %q", c.logLevel)
		}
		cfg.Server.LogLevel = c.logLevel
	}

	l, err := logger.SetupWriter(cmd.ErrOrStderr(), cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	c.logger = l

	if c.factory == nil {
		return errors.New("no content service factory configured")
	}
	svc, err := c.factory(cmd.Context(), cfg, l)
	if err != nil {
		return fmt.Errorf("failed to create content service: %w", err)
	}
	c.service = svc

	return nil
}

// requestContext tags the command's context with a fresh request ID so
// provider logs for one invocation can be correlated.
func (c *cli) requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	id := uuid.NewString()
	c.logger.Debug("running command", "command", cmd.Name(), "trace_id", id)
	return shared.WithTraceID(ctx, id)
}
