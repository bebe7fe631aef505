package openrouter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/phrazzld/tutor-api/internal/platform/httpx"
)

// Defaults applied by New for empty Config fields.
const (
	DefaultBaseURL  = "https://openrouter.ai/api/v1"
	DefaultModel    = "meta-llama/llama-3.3-70b-instruct:free"
	DefaultReferer  = "https://ai-personal-tutor.com"
	DefaultAppTitle = "AI Personal Tutor"
)

// maxErrorBody caps how much of a failed response is kept on a StatusError.
const maxErrorBody = 512

// Config holds the immutable provider settings.
type Config struct {
	BaseURL  string
	Model    string
	APIKey   string
	Referer  string
	AppTitle string
}

// Backend implements generation.Backend for OpenRouter.
type Backend struct {
	config    Config
	transport httpx.Transport
}

var _ generation.Backend = (*Backend)(nil)

// New returns a Backend with defaults applied to empty config fields. An empty
// APIKey is allowed; the backend then reports itself unavailable.
func New(config Config, transport httpx.Transport) (*Backend, error) {
	if transport == nil {
		return nil, errors.New("transport cannot be nil")
	}

	config.BaseURL = strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(config.Model) == "" {
		config.Model = DefaultModel
	}
	if config.Referer == "" {
		config.Referer = DefaultReferer
	}
	if config.AppTitle == "" {
		config.AppTitle = DefaultAppTitle
	}
	config.APIKey = strings.TrimSpace(config.APIKey)

	return &Backend{config: config, transport: transport}, nil
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return "openrouter" }

// Label describes the backend and model for status reporting.
func (b *Backend) Label() string {
	return fmt.Sprintf("OpenRouter (%s)", b.config.Model)
}

// Available reports whether an API key is configured.
func (b *Backend) Available() bool { return b.config.APIKey != "" }

// Capabilities reports diagram support.
func (b *Backend) Capabilities() generation.Capabilities {
	return generation.Capabilities{Diagrams: true}
}

// Complete sends one chat-completions request and returns the first choice's
// content verbatim.
func (b *Backend) Complete(ctx context.Context, c generation.Completion) (string, error) {
	if !b.Available() {
		return "", generation.ErrNoCredential
	}

	resp, err := b.transport.Post(ctx, b.config.BaseURL+"/chat/completions", b.headers(), buildChatRequest(b.config.Model, c))
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrTransportUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &generation.StatusError{
			Backend:    b.Name(),
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(resp.Body)), maxErrorBody),
		}
	}

	return firstCompletion(resp.Body)
}

func (b *Backend) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+b.config.APIKey)
	h.Set("Content-Type", "application/json")
	h.Set("HTTP-Referer", b.config.Referer)
	h.Set("X-Title", b.config.AppTitle)
	return h
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
