package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/tutor-api/internal/generation"
	"google.golang.org/genai"
)

// Defaults applied by New for empty Config fields.
const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second
)

// Config holds the immutable Gemini settings.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty uses the genai default.
	BaseURL string
	Timeout time.Duration
}

// Backend implements generation.Backend for Gemini.
type Backend struct {
	config Config
	// client is nil when no API key is configured.
	client *genai.Client
}

var _ generation.Backend = (*Backend)(nil)

// New creates a Gemini backend. The genai client is only constructed when an
// API key is present; without one the backend is valid but unavailable.
// httpClient may be nil.
func New(ctx context.Context, config Config, httpClient *http.Client) (*Backend, error) {
	config.APIKey = strings.TrimSpace(config.APIKey)
	if strings.TrimSpace(config.Model) == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	b := &Backend{config: config}
	if config.APIKey == "" {
		return b, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     config.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: config.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	b.client = client

	return b, nil
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backendName }

// Label describes the backend and model for status reporting.
func (b *Backend) Label() string {
	return fmt.Sprintf("Google Gemini (%s)", b.config.Model)
}

// Available reports whether a client was constructed.
func (b *Backend) Available() bool { return b.client != nil }

// Capabilities reports no optional features.
func (b *Backend) Capabilities() generation.Capabilities {
	return generation.Capabilities{}
}

// Complete issues one GenerateContent call bounded by the configured timeout.
func (b *Backend) Complete(ctx context.Context, c generation.Completion) (string, error) {
	if !b.Available() {
		return "", generation.ErrNoCredential
	}

	ctx, cancel := context.WithTimeout(ctx, b.config.Timeout)
	defer cancel()

	resp, err := b.client.Models.GenerateContent(ctx, b.config.Model, genai.Text(c.Prompt.User), generateConfig(c))
	if err != nil {
		return "", mapError(err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrResponseShapeInvalid)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text candidates", generation.ErrResponseShapeInvalid)
	}

	return text, nil
}

func generateConfig(c generation.Completion) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.Temperature)),
		MaxOutputTokens: int32(c.MaxTokens),
	}
	if c.Prompt.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(c.Prompt.System, genai.RoleUser)
	}
	if c.TopP != nil {
		cfg.TopP = genai.Ptr(float32(*c.TopP))
	}
	return cfg
}
