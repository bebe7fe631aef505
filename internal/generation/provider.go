package generation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/tutor-api/internal/redact"
)

// Provider is a backend capable of turning content requests into generated
// content. Every method resolves to a usable value; failures are converted
// into fallback content before they leave the Provider.
type Provider interface {
	// Name is a short machine identifier such as "openrouter".
	Name() string
	// Label is the human-readable description reported by the status endpoint.
	Label() string
	// Available reports whether a credential is configured. It has no side effects.
	Available() bool
	// Supports reports whether the provider implements an optional capability.
	Supports(c Capability) bool

	GenerateLesson(ctx context.Context, req LessonRequest) string
	ChatResponse(ctx context.Context, req ChatRequest) string
	AnalyzeImage(ctx context.Context, req ImageRequest) ImageAnalysis
	GenerateQuiz(ctx context.Context, req QuizRequest) QuizResult
}

// DiagramGenerator is implemented by providers that advertise CapabilityDiagram.
type DiagramGenerator interface {
	GenerateDiagram(ctx context.Context, req DiagramRequest) string
}

// Capability names an optional provider feature.
type Capability string

const CapabilityDiagram Capability = "diagram"

// Capabilities describes what a Backend can do beyond plain completions.
type Capabilities struct {
	Diagrams bool
}

// Operation identifies which content operation a completion serves.
type Operation string

const (
	OpLesson  Operation = "lesson"
	OpChat    Operation = "chat"
	OpImage   Operation = "image"
	OpQuiz    Operation = "quiz"
	OpDiagram Operation = "diagram"
)

// Completion is a backend-neutral single-turn request.
type Completion struct {
	Operation   Operation
	Prompt      Prompt
	MaxTokens   int
	Temperature float64
	// TopP is omitted from the request when nil.
	TopP *float64
}

// Backend speaks one provider's wire protocol. Complete makes exactly one
// attempt and returns the first completion's text, or an error from the
// taxonomy in errors.go.
type Backend interface {
	Name() string
	Label() string
	Available() bool
	Capabilities() Capabilities
	Complete(ctx context.Context, c Completion) (string, error)
}

// Model parameters per operation. These are fixed; callers cannot tune them.
type modelParams struct {
	maxTokens   int
	temperature float64
	topP        *float64
}

func topP(v float64) *float64 { return &v }

var operationParams = map[Operation]modelParams{
	OpLesson:  {maxTokens: 1200, temperature: 0.7, topP: topP(0.9)},
	OpChat:    {maxTokens: 600, temperature: 0.7, topP: topP(0.9)},
	OpImage:   {maxTokens: 400, temperature: 0.6},
	OpQuiz:    {maxTokens: 1500, temperature: 0.5, topP: topP(0.9)},
	OpDiagram: {maxTokens: 500, temperature: 0.3},
}

// imageConcepts labels every successful image analysis.
var imageConcepts = []string{"Visual learning", "Critical thinking", "Image analysis", "Educational media"}

const imageSuggestion = "Use this uploaded image as a learning tool. Consider what details you notice, how they relate to your study topic, and what questions the image raises for further exploration."

type backendProvider struct {
	backend Backend
	logger  *slog.Logger
}

// NewProvider wraps backend into a Provider that builds prompts, applies the
// per-operation model parameters, interprets output and falls back to the
// deterministic generators on any failure.
func NewProvider(backend Backend, logger *slog.Logger) (Provider, error) {
	if backend == nil {
		return nil, errors.New("backend cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &backendProvider{
		backend: backend,
		logger:  logger.With("provider", backend.Name()),
	}, nil
}

func (p *backendProvider) Name() string    { return p.backend.Name() }
func (p *backendProvider) Label() string   { return p.backend.Label() }
func (p *backendProvider) Available() bool { return p.backend.Available() }

func (p *backendProvider) Supports(c Capability) bool {
	switch c {
	case CapabilityDiagram:
		return p.backend.Capabilities().Diagrams
	default:
		return false
	}
}

// complete sends one completion for op, returning its trimmed-non-empty text.
func (p *backendProvider) complete(ctx context.Context, op Operation, prompt Prompt) (string, error) {
	if !p.backend.Available() {
		return "", ErrNoCredential
	}

	params := operationParams[op]
	text, err := p.backend.Complete(ctx, Completion{
		Operation:   op,
		Prompt:      prompt,
		MaxTokens:   params.maxTokens,
		Temperature: params.temperature,
		TopP:        params.topP,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrResponseShapeInvalid
	}

	p.logger.DebugContext(ctx, "completion received",
		"operation", op,
		"response_length", len(text))

	return text, nil
}

func (p *backendProvider) logFallback(ctx context.Context, op Operation, err error) {
	level := slog.LevelWarn
	if errors.Is(err, ErrNoCredential) {
		level = slog.LevelDebug
	}
	p.logger.Log(ctx, level, "using fallback content",
		"operation", op,
		"error", redact.Error(err))
}

func (p *backendProvider) GenerateLesson(ctx context.Context, req LessonRequest) string {
	prompt, err := LessonPrompt(req)
	if err == nil {
		var text string
		if text, err = p.complete(ctx, OpLesson, prompt); err == nil {
			return text
		}
	}

	p.logFallback(ctx, OpLesson, err)
	return FallbackLesson(req.Topic, req.Difficulty)
}

func (p *backendProvider) ChatResponse(ctx context.Context, req ChatRequest) string {
	text, err := p.complete(ctx, OpChat, ChatPrompt(req))
	if err != nil {
		p.logFallback(ctx, OpChat, err)
		return FallbackChat(req.Message)
	}
	return text
}

func (p *backendProvider) AnalyzeImage(ctx context.Context, req ImageRequest) ImageAnalysis {
	prompt, err := ImagePrompt(req)
	if err == nil {
		var text string
		if text, err = p.complete(ctx, OpImage, prompt); err == nil {
			return ImageAnalysis{
				Description:      text,
				RelevantConcepts: append([]string(nil), imageConcepts...),
				Suggestions:      imageSuggestion,
			}
		}
	}

	p.logFallback(ctx, OpImage, err)
	return FallbackImageAnalysis()
}

func (p *backendProvider) GenerateQuiz(ctx context.Context, req QuizRequest) QuizResult {
	questions, err := p.quizQuestions(ctx, req)
	if err != nil {
		p.logFallback(ctx, OpQuiz, err)
		return QuizResult{QuizSet: FallbackQuiz(req.Topic), Error: QuizErrorTag(err)}
	}

	p.logger.InfoContext(ctx, "quiz generated",
		"topic_length", len(req.Topic),
		"question_count", len(questions))

	return QuizResult{QuizSet: QuizSet{Questions: questions}}
}

func (p *backendProvider) quizQuestions(ctx context.Context, req QuizRequest) ([]QuizQuestion, error) {
	// No prompt is built and no call is attempted without a credential.
	if !p.backend.Available() {
		return nil, ErrNoCredential
	}

	prompt, err := QuizPrompt(req)
	if err != nil {
		return nil, err
	}

	text, err := p.complete(ctx, OpQuiz, prompt)
	if err != nil {
		return nil, err
	}

	return ParseQuiz(text)
}

// GenerateDiagram asks the backend for a text diagram. Callers should check
// Supports(CapabilityDiagram) first; without it the static diagram is returned.
func (p *backendProvider) GenerateDiagram(ctx context.Context, req DiagramRequest) string {
	if !p.Supports(CapabilityDiagram) {
		return FallbackDiagram(req.Concept)
	}

	prompt, err := DiagramPrompt(req)
	if err == nil {
		var text string
		if text, err = p.complete(ctx, OpDiagram, prompt); err == nil {
			return text
		}
	}

	p.logFallback(ctx, OpDiagram, err)
	return FallbackDiagram(req.Concept)
}
