package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackLessonDeterministic(t *testing.T) {
	t.Parallel()

	for d := MinDifficulty; d <= MaxDifficulty; d++ {
		first := FallbackLesson("Photosynthesis", d)
		second := FallbackLesson("Photosynthesis", d)
		assert.Equal(t, first, second)
	}

	lesson := FallbackLesson("Photosynthesis", 2)
	assert.True(t, strings.HasPrefix(lesson, "\n# Learning About: Photosynthesis\n"))
	assert.Contains(t, lesson, "at difficulty level 2.")
	assert.Contains(t, lesson, "How does Photosynthesis relate to your personal interests?")
	assert.NotContains(t, lesson, "%!")
}

func TestClassifyChat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    ChatCategory
	}{
		{message: "What is gravity?", want: ChatQuestion},
		{message: "Can you explain entropy", want: ChatExplain},
		{message: "Please TELL ME about stars", want: ChatExplain},
		{message: "I'm stuck on fractions", want: ChatHelp},
		{message: "Explain why the sky is blue", want: ChatQuestion},
		{message: "I'm confused, can you explain?", want: ChatExplain},
		{message: "Photosynthesis is neat", want: ChatDefault},
		{message: "", want: ChatDefault},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyChat(tt.message))
		})
	}
}

func TestFallbackChat(t *testing.T) {
	t.Parallel()

	question := FallbackChat("What is gravity?")
	assert.True(t, strings.HasPrefix(question, "That's a great question about 'What is gravity?'."))

	explain := FallbackChat("Can you explain entropy")
	assert.True(t, strings.HasPrefix(explain, "I'd be happy to help explain that!"))
	assert.Contains(t, explain, "'Can you explain entropy'")

	help := FallbackChat("I need help")
	assert.NotContains(t, help, "I need help")
	assert.True(t, strings.HasPrefix(help, "I understand that learning can sometimes be challenging!"))

	def := FallbackChat("Plants are green")
	assert.True(t, strings.HasPrefix(def, "Thank you for sharing that thought about 'Plants are green'."))

	assert.Equal(t, question, FallbackChat("What is gravity?"))
}

func TestFallbackImageAnalysis(t *testing.T) {
	t.Parallel()

	a := FallbackImageAnalysis()
	assert.NotEmpty(t, a.Description)
	assert.NotEmpty(t, a.Suggestions)
	assert.Equal(t, []string{"Visual learning", "Image interpretation", "Multimedia education"}, a.RelevantConcepts)

	a.RelevantConcepts[0] = "mutated"
	assert.Equal(t, "Visual learning", FallbackImageAnalysis().RelevantConcepts[0])
}

func TestFallbackQuiz(t *testing.T) {
	t.Parallel()

	quiz := FallbackQuiz("Volcanoes")

	require.Len(t, quiz.Questions, 1)
	q := quiz.Questions[0]
	assert.Equal(t, "What is the main concept of Volcanoes?", q.Question)
	assert.Len(t, q.Options, QuizOptionCount)
	assert.Equal(t, 0, q.CorrectAnswer)
}

func TestFallbackDiagram(t *testing.T) {
	t.Parallel()

	d := FallbackDiagram("Water Cycle")
	assert.Contains(t, d, "│  Water Cycle   │")
	assert.Contains(t, d, "│   Details   │")
	assert.Equal(t, d, FallbackDiagram("Water Cycle"))
}
