package generation

import "strings"

// ContentKind names the content type a request asks for.
type ContentKind string

const (
	KindLesson  ContentKind = "lesson"
	KindChat    ContentKind = "chat"
	KindImage   ContentKind = "image"
	KindQuiz    ContentKind = "quiz"
	KindDiagram ContentKind = "diagram"
)

// ContentRequest is the closed set of generation requests. Only the request
// types declared in this package implement it.
type ContentRequest interface {
	Kind() ContentKind
	contentRequest()
}

// LessonRequest asks for a lesson on Topic at a difficulty band.
type LessonRequest struct {
	Topic      string
	Difficulty Difficulty
}

// NewLessonRequest builds a LessonRequest, normalizing difficulty into a band.
func NewLessonRequest(topic string, difficulty int) LessonRequest {
	return LessonRequest{Topic: topic, Difficulty: NewDifficulty(difficulty)}
}

func (LessonRequest) Kind() ContentKind { return KindLesson }
func (LessonRequest) contentRequest()   {}

// ChatRequest carries a learner message and optional lesson context.
type ChatRequest struct {
	Message string
	Context string
}

func (ChatRequest) Kind() ContentKind { return KindChat }
func (ChatRequest) contentRequest()   {}

// ImageRequest describes an uploaded image by size and extension only. Pixel
// data never reaches the generation layer.
type ImageRequest struct {
	SizeBytes int64
	Extension string
}

// NewImageRequest builds an ImageRequest. The extension is lower-cased and
// stripped of any leading dot.
func NewImageRequest(sizeBytes int64, extension string) ImageRequest {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))
	return ImageRequest{SizeBytes: sizeBytes, Extension: ext}
}

func (ImageRequest) Kind() ContentKind { return KindImage }
func (ImageRequest) contentRequest()   {}

// QuizRequest asks for a multiple-choice quiz, optionally grounded on Content.
type QuizRequest struct {
	Topic      string
	Difficulty Difficulty
	Content    string
}

// NewQuizRequest builds a QuizRequest, normalizing difficulty into a band.
func NewQuizRequest(topic string, difficulty int, content string) QuizRequest {
	return QuizRequest{Topic: topic, Difficulty: NewDifficulty(difficulty), Content: content}
}

func (QuizRequest) Kind() ContentKind { return KindQuiz }
func (QuizRequest) contentRequest()   {}

// DiagramKind is the requested diagram style, e.g. "flowchart".
type DiagramKind string

// DefaultDiagramKind is used when a caller does not name a diagram style.
const DefaultDiagramKind DiagramKind = "flowchart"

// DiagramRequest asks for a text diagram of Concept.
type DiagramRequest struct {
	Concept string
	Style   DiagramKind
}

// NewDiagramRequest builds a DiagramRequest, defaulting an empty kind.
func NewDiagramRequest(concept string, kind string) DiagramRequest {
	k := DiagramKind(strings.TrimSpace(kind))
	if k == "" {
		k = DefaultDiagramKind
	}
	return DiagramRequest{Concept: concept, Style: k}
}

func (DiagramRequest) Kind() ContentKind { return KindDiagram }
func (DiagramRequest) contentRequest()   {}

// QuizQuestion is a single four-option question. Options order is significant
// and CorrectAnswer indexes into it.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

// QuizSet is an ordered collection of validated questions.
type QuizSet struct {
	Questions []QuizQuestion `json:"questions"`
}

// QuizResult is the outcome of quiz generation. Error is empty when the
// questions came from a validated model response.
type QuizResult struct {
	QuizSet
	Error string `json:"error,omitempty"`
}

// ImageAnalysis is the outcome of image analysis.
type ImageAnalysis struct {
	Description      string   `json:"description"`
	RelevantConcepts []string `json:"relevant_concepts"`
	Suggestions      string   `json:"suggestions"`
}
