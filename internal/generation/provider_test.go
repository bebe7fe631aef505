package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/tutor-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeProvider(t *testing.T, b *fakeBackend) Provider {
	t.Helper()
	p, err := NewProvider(b, discardLogger())
	require.NoError(t, err)
	return p
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(nil, discardLogger())
	assert.Error(t, err)

	_, err = NewProvider(&fakeBackend{}, nil)
	assert.Error(t, err)

	p, err := NewProvider(&fakeBackend{name: "x", available: true, diagrams: true}, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "x", p.Name())
	assert.Equal(t, "Fake (x)", p.Label())
	assert.True(t, p.Available())
	assert.True(t, p.Supports(CapabilityDiagram))
	assert.False(t, p.Supports(Capability("vision")))
}

func TestProviderModelParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		call        func(Provider)
		op          Operation
		maxTokens   int
		temperature float64
		topP        *float64
	}{
		{
			name:        "lesson",
			call:        func(p Provider) { p.GenerateLesson(context.Background(), NewLessonRequest("t", 1)) },
			op:          OpLesson,
			maxTokens:   1200,
			temperature: 0.7,
			topP:        topP(0.9),
		},
		{
			name:        "chat",
			call:        func(p Provider) { p.ChatResponse(context.Background(), ChatRequest{Message: "m"}) },
			op:          OpChat,
			maxTokens:   600,
			temperature: 0.7,
			topP:        topP(0.9),
		},
		{
			name:        "image",
			call:        func(p Provider) { p.AnalyzeImage(context.Background(), NewImageRequest(10, "png")) },
			op:          OpImage,
			maxTokens:   400,
			temperature: 0.6,
		},
		{
			name:        "quiz",
			call:        func(p Provider) { p.GenerateQuiz(context.Background(), NewQuizRequest("t", 1, "")) },
			op:          OpQuiz,
			maxTokens:   1500,
			temperature: 0.5,
			topP:        topP(0.9),
		},
		{
			name: "diagram",
			call: func(p Provider) {
				p.(DiagramGenerator).GenerateDiagram(context.Background(), NewDiagramRequest("c", ""))
			},
			op:          OpDiagram,
			maxTokens:   500,
			temperature: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := &fakeBackend{available: true, diagrams: true, text: "ok"}
			tt.call(newFakeProvider(t, b))

			require.Equal(t, 1, b.callCount())
			c := b.lastCall()
			assert.Equal(t, tt.op, c.Operation)
			assert.Equal(t, tt.maxTokens, c.MaxTokens)
			assert.InDelta(t, tt.temperature, c.Temperature, 1e-9)
			if tt.topP == nil {
				assert.Nil(t, c.TopP)
			} else {
				require.NotNil(t, c.TopP)
				assert.InDelta(t, *tt.topP, *c.TopP, 1e-9)
			}
			assert.NotEmpty(t, c.Prompt.System)
			assert.NotEmpty(t, c.Prompt.User)
		})
	}
}

func TestProviderSuccessReturnsVerbatim(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{available: true, diagrams: true, text: "  <h1>Lesson</h1>\n"}
	p := newFakeProvider(t, b)

	assert.Equal(t, "  <h1>Lesson</h1>\n", p.GenerateLesson(context.Background(), NewLessonRequest("t", 2)))
	assert.Equal(t, "  <h1>Lesson</h1>\n", p.ChatResponse(context.Background(), ChatRequest{Message: "m"}))

	analysis := p.AnalyzeImage(context.Background(), NewImageRequest(10, "png"))
	assert.Equal(t, "  <h1>Lesson</h1>\n", analysis.Description)
	assert.Equal(t, imageConcepts, analysis.RelevantConcepts)
	assert.Equal(t, imageSuggestion, analysis.Suggestions)
}

func TestProviderFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	failures := []struct {
		name string
		b    *fakeBackend
	}{
		{name: "no credential", b: &fakeBackend{available: false, diagrams: true, text: "unused"}},
		{name: "transport", b: &fakeBackend{available: true, diagrams: true, err: fmt.Errorf("%w: dial tcp", ErrTransportUnavailable)}},
		{name: "status", b: &fakeBackend{available: true, diagrams: true, err: &StatusError{Backend: "fake", StatusCode: 500}}},
		{name: "blank text", b: &fakeBackend{available: true, diagrams: true, text: " \n\t"}},
		{name: "unexpected error", b: &fakeBackend{available: true, diagrams: true, err: errors.New("surprise")}},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newFakeProvider(t, tt.b)
			ctx := context.Background()

			assert.Equal(t, FallbackLesson("Photosynthesis", 2), p.GenerateLesson(ctx, NewLessonRequest("Photosynthesis", 2)))
			assert.Equal(t, FallbackChat("What is gravity?"), p.ChatResponse(ctx, ChatRequest{Message: "What is gravity?"}))
			assert.Equal(t, FallbackImageAnalysis(), p.AnalyzeImage(ctx, NewImageRequest(10, "png")))
			assert.Equal(t, FallbackDiagram("Cells"), p.(DiagramGenerator).GenerateDiagram(ctx, NewDiagramRequest("Cells", "")))

			quiz := p.GenerateQuiz(ctx, NewQuizRequest("Cells", 2, ""))
			assert.Equal(t, FallbackQuiz("Cells"), quiz.QuizSet)
			assert.NotEmpty(t, quiz.Error)
		})
	}
}

func TestProviderLessonOutOfRangeDifficulty(t *testing.T) {
	t.Parallel()

	p := newFakeProvider(t, &fakeBackend{available: false})

	got := p.GenerateLesson(context.Background(), NewLessonRequest("Tides", 42))
	assert.Equal(t, FallbackLesson("Tides", 3), got)
}

func TestProviderQuizWithoutCredential(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{available: false}
	p := newFakeProvider(t, b)

	result := p.GenerateQuiz(context.Background(), NewQuizRequest("Magnets", 2, ""))

	require.Len(t, result.Questions, 1)
	assert.Equal(t, 0, result.Questions[0].CorrectAnswer)
	assert.Len(t, result.Questions[0].Options, 4)
	assert.Equal(t, TagNoCredential, result.Error)
	assert.Zero(t, b.callCount())
}

func TestProviderQuiz(t *testing.T) {
	t.Parallel()

	valid := `Sure! {"questions":[
		{"question":"Q1","options":["a","b","c","d"],"correct_answer":1},
		{"question":"Q2","options":["a","b","c"],"correct_answer":1}
	]}`

	tests := []struct {
		name      string
		b         *fakeBackend
		wantError string
		wantLen   int
	}{
		{
			name:    "valid payload",
			b:       &fakeBackend{available: true, text: valid},
			wantLen: 1,
		},
		{
			name:      "no payload",
			b:         &fakeBackend{available: true, text: "I can't do that."},
			wantError: TagFormatInvalid,
			wantLen:   1,
		},
		{
			name:      "malformed payload",
			b:         &fakeBackend{available: true, text: `{"questions": [}`},
			wantError: TagParseFailed,
			wantLen:   1,
		},
		{
			name:      "no valid questions",
			b:         &fakeBackend{available: true, text: `{"questions": []}`},
			wantError: TagNoValidQuestions,
			wantLen:   1,
		},
		{
			name:      "status failure",
			b:         &fakeBackend{available: true, err: &StatusError{Backend: "fake", StatusCode: 429}},
			wantError: "API request failed: 429",
			wantLen:   1,
		},
		{
			name:      "empty completion",
			b:         &fakeBackend{available: true, text: ""},
			wantError: TagNoResponse,
			wantLen:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := newFakeProvider(t, tt.b).GenerateQuiz(context.Background(), NewQuizRequest("Topic", 3, ""))

			assert.Equal(t, tt.wantError, result.Error)
			assert.Len(t, result.Questions, tt.wantLen)
			for _, q := range result.Questions {
				assert.Len(t, q.Options, QuizOptionCount)
				assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
				assert.Less(t, q.CorrectAnswer, QuizOptionCount)
			}
		})
	}
}

func TestProviderDiagramWithoutCapability(t *testing.T) {
	t.Parallel()

	b := &fakeBackend{available: true, diagrams: false, text: "model diagram"}
	p := newFakeProvider(t, b)

	assert.False(t, p.Supports(CapabilityDiagram))
	assert.Equal(t, FallbackDiagram("Orbits"), p.(DiagramGenerator).GenerateDiagram(context.Background(), NewDiagramRequest("Orbits", "")))
	assert.Zero(t, b.callCount())
}

func TestProviderFallbackLogIsRedacted(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	b := &fakeBackend{available: true, err: &StatusError{
		Backend:    "fake",
		StatusCode: 401,
		Body:       "invalid key sk-or-v1-abcdef1234567890abcdef",
	}}
	p, err := NewProvider(b, log)
	require.NoError(t, err)

	p.ChatResponse(context.Background(), ChatRequest{Message: "hello"})

	logger.AssertLogContains(t, buf, "using fallback content")
	logger.AssertLogContains(t, buf, "[REDACTED_KEY]")
	logger.AssertLogNotContains(t, buf, "abcdef1234567890abcdef")
	logger.AssertLogField(t, buf, "level", "WARN")
	logger.AssertLogField(t, buf, "provider", "fake")
}

func TestProviderNoCredentialLogsAtDebug(t *testing.T) {
	t.Parallel()

	log, buf := logger.GetTestLogger(t)
	p, err := NewProvider(&fakeBackend{}, log)
	require.NoError(t, err)

	p.GenerateLesson(context.Background(), NewLessonRequest("t", 1))

	logger.AssertLogField(t, buf, "level", "DEBUG")
	logger.AssertLogNotContains(t, buf, `"level":"WARN"`)
}
