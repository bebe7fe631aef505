package generation

import (
	"bytes"
	"fmt"
	"text/template"
)

// Prompt is a system/user message pair sent to a backend.
type Prompt struct {
	System string
	User   string
}

const (
	chatContextLimit = 400
	quizContentLimit = 500
)

const (
	lessonSystemPrompt  = "You are an expert educational content creator who makes engaging, personalized lessons. Create well-structured, informative content that helps students learn effectively."
	chatSystemPrompt    = "You are a helpful AI tutor. Answer questions clearly, educationally, and encouragingly. Provide explanations that help students understand concepts better."
	imageSystemPrompt   = "You are an educational AI that helps students understand how to learn from visual content."
	quizSystemPrompt    = "You are an expert quiz creator. Generate educational quiz questions in valid JSON format only."
	diagramSystemPrompt = "You are an educational diagram designer. Respond with a plain-text diagram only, using box-drawing characters and arrows, with no surrounding prose."
)

var (
	lessonTemplate = template.Must(template.New("lesson").Parse(
		`Create a comprehensive, visually engaging educational lesson about {{.Topic}} for a {{.Level}} learner.

Use rich HTML formatting to make the lesson visually appealing:

FORMATTING REQUIREMENTS:
- Use <h1>, <h2>, <h3> for clear headings hierarchy
- Use <strong> for important terms and <em> for emphasis
- Use <ul>/<ol> for organized lists
- Use <blockquote> for key quotes or important concepts
- Use <code> for technical terms or examples
- Use <div class="highlight"> for important information
- Use <div class="example"> for practical examples
- Use <div class="question"> for interactive questions
- Use <div class="visual-note"> for visual learning elements

STRUCTURE THE LESSON:
1. **Engaging Introduction** - Hook the learner with an interesting opening
2. **Learning Objectives** - Clear goals in a bulleted list
3. **Key Concepts** - Main content with visual hierarchy
4. **Visual Elements** - Include simple ASCII diagrams where helpful
5. **Practical Examples** - Real-world applications
6. **Interactive Questions** - Thought-provoking queries
7. **Summary & Next Steps** - Key takeaways and progression

VISUAL ENHANCEMENTS:
- Add emoji icons (📚 🎯 💡 ⭐ 🔍) to section headers
- Include simple ASCII art or diagrams where relevant (use <pre> tags for ASCII art)
- Use progress indicators like ▶️ for steps
- Add visual breaks with horizontal rules
- Include callout boxes for important information
- For complex topics, create simple ASCII diagrams or flowcharts
- Use tables for comparisons or structured data

EXAMPLE ASCII DIAGRAM (when relevant):
<pre>
    Input → [Process] → Output
      ↓        ↓         ↓
   Data    Analysis   Result
</pre>

Make it educational, visually rich, well-organized, and engaging. Target 600-900 words with rich formatting.`))

	imageTemplate = template.Must(template.New("image").Parse(
		`As an educational AI, provide an analysis for an uploaded image file (format: {{.Extension}}, size: {{.SizeBytes}} bytes). 

Since I cannot see the actual image content, provide a helpful educational response that:
1. Explains the educational value of visual learning
2. Suggests how images can enhance understanding of topics
3. Provides strategies for analyzing visual content
4. Encourages critical thinking about visual information

Make this response educational and encouraging for students.`))

	quizTemplate = template.Must(template.New("quiz").Parse(
		`Generate exactly 5 multiple choice questions about {{.Topic}} at {{.Level}} difficulty level.
{{if .Content}}Base the questions on this lesson content: {{.Content}}...{{end}}

Return ONLY a valid JSON object with this exact structure:
{
    "questions": [
        {
            "question": "Question text here",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0
        }
    ]
}

Requirements:
- Each question must have exactly 4 options
- correct_answer must be the index (0, 1, 2, or 3) of the correct option
- Questions should test understanding, not just memorization
- Make options plausible but clearly distinguishable
- Ensure one correct answer per question`))

	diagramTemplate = template.Must(template.New("diagram").Parse(
		`Draw a simple ASCII {{.Style}} that explains the concept "{{.Concept}}" to a student.

Requirements:
- Use boxes (┌ ┐ └ ┘ │ ─) for steps or components and arrows (→ ↓ ▼) for relationships
- Keep it under 25 lines and 70 characters wide
- Label every box with a short phrase`))
)

// LessonPrompt builds the prompt pair for a lesson request.
func LessonPrompt(req LessonRequest) (Prompt, error) {
	user, err := render(lessonTemplate, struct{ Topic, Level string }{
		Topic: req.Topic,
		Level: req.Difficulty.LessonPhrase(),
	})
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{System: lessonSystemPrompt, User: user}, nil
}

// ChatPrompt builds the prompt pair for a chat request. Lesson context is cut
// to its first 400 characters and appended to the system instruction.
func ChatPrompt(req ChatRequest) Prompt {
	system := chatSystemPrompt
	if req.Context != "" {
		system += " Current lesson context: " + truncateRunes(req.Context, chatContextLimit) + "..."
	}
	return Prompt{System: system, User: req.Message}
}

// ImagePrompt builds the prompt pair for an image request. Only the file's
// size and extension are described.
func ImagePrompt(req ImageRequest) (Prompt, error) {
	user, err := render(imageTemplate, req)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{System: imageSystemPrompt, User: user}, nil
}

// QuizPrompt builds the prompt pair for a quiz request. Source content is cut
// to its first 500 characters.
func QuizPrompt(req QuizRequest) (Prompt, error) {
	user, err := render(quizTemplate, struct{ Topic, Level, Content string }{
		Topic:   req.Topic,
		Level:   req.Difficulty.QuizPhrase(),
		Content: truncateRunes(req.Content, quizContentLimit),
	})
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{System: quizSystemPrompt, User: user}, nil
}

// DiagramPrompt builds the prompt pair for a diagram request.
func DiagramPrompt(req DiagramRequest) (Prompt, error) {
	user, err := render(diagramTemplate, req)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{System: diagramSystemPrompt, User: user}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
