package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/tutor-api/internal/api"
	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/config"
	"github.com/phrazzld/tutor-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService records the last call and answers with canned content.
type fakeService struct {
	lastTopic      string
	lastDifficulty int
	lastContent    string
	lastKind       string
	lastSize       int64
	lastExt        string
	lastTraceID    string

	quiz generation.QuizResult
}

func (f *fakeService) GenerateLesson(ctx context.Context, topic string, difficulty int) string {
	f.lastTopic, f.lastDifficulty = topic, difficulty
	f.lastTraceID = shared.GetTraceID(ctx)
	return "lesson on " + topic
}

func (f *fakeService) ChatResponse(_ context.Context, message, lessonContext string) string {
	f.lastContent = lessonContext
	return "reply: " + message
}

func (f *fakeService) AnalyzeImage(_ context.Context, sizeBytes int64, extension string) generation.ImageAnalysis {
	f.lastSize, f.lastExt = sizeBytes, extension
	return generation.FallbackImageAnalysis()
}

func (f *fakeService) GenerateQuiz(_ context.Context, topic string, difficulty int, content string) generation.QuizResult {
	f.lastTopic, f.lastDifficulty, f.lastContent = topic, difficulty, content
	return f.quiz
}

func (f *fakeService) GenerateDiagram(_ context.Context, concept, kind string) string {
	f.lastKind = kind
	return "[" + concept + "]"
}

func (f *fakeService) PrimaryName() string         { return "openrouter" }
func (f *fakeService) AvailableServices() []string { return []string{generation.FallbackOnly} }
func (f *fakeService) Available() bool             { return false }

func execute(t *testing.T, svc api.ContentService, args ...string) (string, error) {
	t.Helper()

	factory := func(context.Context, *config.Config, *slog.Logger) (api.ContentService, error) {
		return svc, nil
	}

	root := newRootCmd(factory)
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestLessonCommand(t *testing.T) {
	svc := &fakeService{}

	out, err := execute(t, svc, "lesson", "Plate", "tectonics", "--difficulty", "7")
	require.NoError(t, err)

	assert.Equal(t, "lesson on Plate tectonics\n", out)
	assert.Equal(t, "Plate tectonics", svc.lastTopic)
	assert.Equal(t, 3, svc.lastDifficulty)
	assert.Len(t, svc.lastTraceID, 36)
}

func TestChatCommand(t *testing.T) {
	svc := &fakeService{}

	out, err := execute(t, svc, "chat", "What is gravity?", "--context", "physics lesson")
	require.NoError(t, err)

	assert.Equal(t, "reply: What is gravity?\n", out)
	assert.Equal(t, "physics lesson", svc.lastContent)
}

func TestQuizCommand(t *testing.T) {
	svc := &fakeService{quiz: generation.QuizResult{
		QuizSet: generation.FallbackQuiz("Cells"),
		Error:   generation.TagNoCredential,
	}}

	out, err := execute(t, svc, "quiz", "Cells", "-d", "2", "--content", "cell lesson")
	require.NoError(t, err)

	assert.Contains(t, out, "What is the main concept of Cells?")
	assert.Contains(t, out, "A) Option A")
	assert.Contains(t, out, "D) Option D")
	assert.Contains(t, out, "Placeholder quiz: "+generation.TagNoCredential)
	assert.Equal(t, 2, svc.lastDifficulty)
	assert.Equal(t, "cell lesson", svc.lastContent)
}

func TestDiagramCommand(t *testing.T) {
	svc := &fakeService{}

	out, err := execute(t, svc, "diagram", "Water", "Cycle")
	require.NoError(t, err)
	assert.Equal(t, "[Water Cycle]\n", out)
	assert.Equal(t, "flowchart", svc.lastKind)

	_, err = execute(t, svc, "diagram", "Water", "--type", "mindmap")
	require.NoError(t, err)
	assert.Equal(t, "mindmap", svc.lastKind)
}

func TestStatusCommand(t *testing.T) {
	out, err := execute(t, &fakeService{}, "status")
	require.NoError(t, err)

	assert.Contains(t, out, "openrouter")
	assert.Contains(t, out, generation.FallbackOnly)
	assert.Contains(t, out, "false")
}

func TestImageCommand(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "Diagram.PNG")
	require.NoError(t, os.WriteFile(png, bytes.Repeat([]byte{1}, 2048), 0o600))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("text"), 0o600))

	svc := &fakeService{}
	out, err := execute(t, svc, "image", png)
	require.NoError(t, err)
	assert.Contains(t, out, "Diagram.PNG")
	assert.Contains(t, out, "Visual learning")
	assert.Equal(t, int64(2048), svc.lastSize)
	assert.Equal(t, "png", svc.lastExt)

	_, err = execute(t, svc, "image", txt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file type")

	_, err = execute(t, svc, "image", filepath.Join(dir, "missing.png"))
	require.Error(t, err)
}

func TestRootCommandErrors(t *testing.T) {
	_, err := execute(t, &fakeService{}, "lesson")
	require.Error(t, err)

	_, err = execute(t, &fakeService{}, "status", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --log-level")

	_, err = execute(t, &fakeService{}, "status", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")

	failing := func(context.Context, *config.Config, *slog.Logger) (api.ContentService, error) {
		return nil, errors.New("boom")
	}
	root := newRootCmd(failing)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"status"})
	err = root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create content service")
}

func TestLetter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", letter(0))
	assert.Equal(t, "D", letter(3))
	assert.Equal(t, "?", letter(4))
	assert.Equal(t, "?", letter(-1))
}
