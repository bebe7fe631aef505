package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// FallbackOnly is reported by AvailableServices when the primary provider
// cannot be used.
const FallbackOnly = "Fallback responses"

// Manager is the public façade over an ordered list of providers. The first
// provider is primary and receives every call; the rest are held for
// reporting only. Manager methods never return an error and never panic on
// behalf of a provider.
//
// Manager is safe for concurrent use. It holds no mutable state after
// construction.
type Manager struct {
	providers []Provider
	logger    *slog.Logger
}

// NewManager builds a Manager. With no providers every operation resolves to
// fallback content.
func NewManager(logger *slog.Logger, providers ...Provider) (*Manager, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	for i, p := range providers {
		if p == nil {
			return nil, fmt.Errorf("provider %d is nil", i)
		}
	}

	m := &Manager{
		providers: append([]Provider(nil), providers...),
		logger:    logger,
	}

	if m.Available() {
		logger.Info("generation provider ready", "primary", m.primary().Label())
	} else {
		logger.Info("generation provider not available, using fallback responses")
	}

	return m, nil
}

func (m *Manager) primary() Provider {
	if len(m.providers) == 0 {
		return nil
	}
	return m.providers[0]
}

// PrimaryName returns the primary provider's machine name, or "fallback".
func (m *Manager) PrimaryName() string {
	if p := m.primary(); p != nil {
		return p.Name()
	}
	return "fallback"
}

// Available reports whether the primary provider has a credential.
func (m *Manager) Available() bool {
	p := m.primary()
	return p != nil && p.Available()
}

// AvailableServices reports the primary provider's label when it is
// available, otherwise the FallbackOnly marker.
func (m *Manager) AvailableServices() []string {
	if m.Available() {
		return []string{m.primary().Label()}
	}
	return []string{FallbackOnly}
}

// errProviderPanic marks a provider call that panicked.
var errProviderPanic = errors.New("provider panicked")

// guard runs call against the primary provider, substituting fallback when
// there is no provider or the call panics.
func guard[T any](
	ctx context.Context,
	m *Manager,
	op Operation,
	call func(Provider) T,
	fallback func(error) T,
) (result T) {
	p := m.primary()
	if p == nil {
		return fallback(ErrNoCredential)
	}

	defer func() {
		if r := recover(); r != nil {
			m.logger.ErrorContext(ctx, "provider panicked, using fallback content",
				"operation", op,
				"provider", p.Name(),
				"panic", fmt.Sprint(r))
			result = fallback(fmt.Errorf("%w: %v", errProviderPanic, r))
		}
	}()

	return call(p)
}

// GenerateLesson returns lesson markup for topic at difficulty.
func (m *Manager) GenerateLesson(ctx context.Context, topic string, difficulty int) string {
	req := NewLessonRequest(topic, difficulty)
	return guard(ctx, m, OpLesson,
		func(p Provider) string { return p.GenerateLesson(ctx, req) },
		func(error) string { return FallbackLesson(req.Topic, req.Difficulty) })
}

// ChatResponse answers message, optionally informed by lesson context.
func (m *Manager) ChatResponse(ctx context.Context, message, lessonContext string) string {
	req := ChatRequest{Message: message, Context: lessonContext}
	return guard(ctx, m, OpChat,
		func(p Provider) string { return p.ChatResponse(ctx, req) },
		func(error) string { return FallbackChat(req.Message) })
}

// AnalyzeImage returns learning guidance for an uploaded image described by
// its size and extension.
func (m *Manager) AnalyzeImage(ctx context.Context, sizeBytes int64, extension string) ImageAnalysis {
	req := NewImageRequest(sizeBytes, extension)
	return guard(ctx, m, OpImage,
		func(p Provider) ImageAnalysis { return p.AnalyzeImage(ctx, req) },
		func(error) ImageAnalysis { return FallbackImageAnalysis() })
}

// GenerateQuiz returns a validated quiz, or a placeholder with an error tag.
func (m *Manager) GenerateQuiz(ctx context.Context, topic string, difficulty int, content string) QuizResult {
	req := NewQuizRequest(topic, difficulty, content)
	return guard(ctx, m, OpQuiz,
		func(p Provider) QuizResult { return p.GenerateQuiz(ctx, req) },
		func(err error) QuizResult {
			return QuizResult{QuizSet: FallbackQuiz(req.Topic), Error: QuizErrorTag(err)}
		})
}

// GenerateDiagram returns a text diagram for concept. Providers without the
// diagram capability get the static boxed diagram.
func (m *Manager) GenerateDiagram(ctx context.Context, concept, kind string) string {
	req := NewDiagramRequest(concept, kind)
	return guard(ctx, m, OpDiagram,
		func(p Provider) string {
			if dg, ok := p.(DiagramGenerator); ok && p.Supports(CapabilityDiagram) {
				return dg.GenerateDiagram(ctx, req)
			}
			return FallbackDiagram(req.Concept)
		},
		func(error) string { return FallbackDiagram(req.Concept) })
}
