package api

import "github.com/phrazzld/tutor-api/internal/generation"

// LessonRequest is the body of POST /api/lesson/generate.
type LessonRequest struct {
	Topic      string `json:"topic"      validate:"required,max=300"`
	Difficulty *int   `json:"difficulty"`
}

// LessonResponse carries generated lesson markup.
type LessonResponse struct {
	Success    bool   `json:"success"`
	Topic      string `json:"topic"`
	Content    string `json:"content"`
	Difficulty int    `json:"difficulty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=5000"`
	Context string `json:"context" validate:"max=50000"`
}

// ChatResponse carries a tutor reply.
type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// ImageResponse is returned by POST /api/image/analyze.
type ImageResponse struct {
	Success  bool                     `json:"success"`
	Filename string                   `json:"filename"`
	Analysis generation.ImageAnalysis `json:"analysis"`
}

// QuizRequest is the body of POST /api/quiz/generate.
type QuizRequest struct {
	Topic      string `json:"topic"      validate:"required,max=300"`
	Difficulty *int   `json:"difficulty"`
	Content    string `json:"content"    validate:"max=50000"`
}

// QuizResponse wraps a quiz outcome. Quiz.Error is set when the questions are
// a placeholder.
type QuizResponse struct {
	Success bool                  `json:"success"`
	Quiz    generation.QuizResult `json:"quiz"`
}

// DiagramRequest is the body of POST /api/diagram/generate.
type DiagramRequest struct {
	Concept string `json:"concept" validate:"required,max=300"`
	Type    string `json:"type"    validate:"max=40"`
}

// DiagramResponse carries a text diagram.
type DiagramResponse struct {
	Success bool   `json:"success"`
	Diagram string `json:"diagram"`
	Concept string `json:"concept"`
	Type    string `json:"type"`
}

// StatusResponse is returned by GET /api/ai/status.
type StatusResponse struct {
	Success           bool     `json:"success"`
	PrimaryService    string   `json:"primary_service"`
	AvailableServices []string `json:"available_services"`
	HasAI             bool     `json:"has_ai"`
}
