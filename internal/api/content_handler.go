package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/phrazzld/tutor-api/internal/api/shared"
	"github.com/phrazzld/tutor-api/internal/generation"
)

// defaultDifficulty applies when a lesson or quiz request omits difficulty.
const defaultDifficulty = 1

// MaxImageBytes caps an image upload request.
const MaxImageBytes = 16 << 20

// allowedImageExtensions lists accepted upload types, without the dot.
var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// AllowedImageExtension reports whether ext, given without the dot and in any
// case, is an accepted upload type.
func AllowedImageExtension(ext string) bool {
	return allowedImageExtensions[strings.ToLower(ext)]
}

// ContentService is the generation surface the handlers depend on.
// *generation.Manager implements it.
type ContentService interface {
	GenerateLesson(ctx context.Context, topic string, difficulty int) string
	ChatResponse(ctx context.Context, message, lessonContext string) string
	AnalyzeImage(ctx context.Context, sizeBytes int64, extension string) generation.ImageAnalysis
	GenerateQuiz(ctx context.Context, topic string, difficulty int, content string) generation.QuizResult
	GenerateDiagram(ctx context.Context, concept, kind string) string
	PrimaryName() string
	AvailableServices() []string
	Available() bool
}

var _ ContentService = (*generation.Manager)(nil)

// ContentHandler serves the content generation endpoints.
type ContentHandler struct {
	content       ContentService
	logger        *slog.Logger
	now           func() time.Time
	maxImageBytes int64
}

// NewContentHandler creates a ContentHandler. A nil logger falls back to
// slog.Default().
func NewContentHandler(content ContentService, logger *slog.Logger) (*ContentHandler, error) {
	if content == nil {
		return nil, errors.New("content service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ContentHandler{
		content:       content,
		logger:        logger.With("component", "content_handler"),
		now:           time.Now,
		maxImageBytes: MaxImageBytes,
	}, nil
}

// decodeAndValidate reads a JSON body into req and validates it, writing the
// error response itself. It returns false when the handler should stop.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any, normalize func()) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		if errors.Is(err, shared.ErrBodyTooLarge) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	normalize()

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.ValidationMessage(err))
		return false
	}
	return true
}

func difficultyOrDefault(d *int) int {
	if d == nil {
		return defaultDifficulty
	}
	return *d
}

// GenerateLesson handles POST /api/lesson/generate requests.
func (h *ContentHandler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	var req LessonRequest
	if !decodeAndValidate(w, r, &req, func() { req.Topic = strings.TrimSpace(req.Topic) }) {
		return
	}

	difficulty := int(generation.NewDifficulty(difficultyOrDefault(req.Difficulty)))
	content := h.content.GenerateLesson(r.Context(), req.Topic, difficulty)

	h.logger.InfoContext(r.Context(), "lesson generated",
		"trace_id", shared.GetTraceID(r.Context()),
		"difficulty", difficulty,
		"content_length", len(content))

	shared.RespondWithJSON(w, r, http.StatusOK, LessonResponse{
		Success:    true,
		Topic:      req.Topic,
		Content:    content,
		Difficulty: difficulty,
	})
}

// Chat handles POST /api/chat requests.
func (h *ContentHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeAndValidate(w, r, &req, func() { req.Message = strings.TrimSpace(req.Message) }) {
		return
	}

	reply := h.content.ChatResponse(r.Context(), req.Message, req.Context)

	shared.RespondWithJSON(w, r, http.StatusOK, ChatResponse{
		Success:   true,
		Response:  reply,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// GenerateQuiz handles POST /api/quiz/generate requests.
func (h *ContentHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if !decodeAndValidate(w, r, &req, func() { req.Topic = strings.TrimSpace(req.Topic) }) {
		return
	}

	result := h.content.GenerateQuiz(r.Context(), req.Topic, difficultyOrDefault(req.Difficulty), req.Content)
	if result.Error != "" {
		h.logger.InfoContext(r.Context(), "placeholder quiz returned",
			"trace_id", shared.GetTraceID(r.Context()),
			"reason", result.Error)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuizResponse{Success: true, Quiz: result})
}

// GenerateDiagram handles POST /api/diagram/generate requests.
func (h *ContentHandler) GenerateDiagram(w http.ResponseWriter, r *http.Request) {
	var req DiagramRequest
	normalize := func() {
		req.Concept = strings.TrimSpace(req.Concept)
		req.Type = strings.TrimSpace(req.Type)
		if req.Type == "" {
			req.Type = string(generation.DefaultDiagramKind)
		}
	}
	if !decodeAndValidate(w, r, &req, normalize) {
		return
	}

	diagram := h.content.GenerateDiagram(r.Context(), req.Concept, req.Type)

	shared.RespondWithJSON(w, r, http.StatusOK, DiagramResponse{
		Success: true,
		Diagram: diagram,
		Concept: req.Concept,
		Type:    req.Type,
	})
}

// Status handles GET /api/ai/status requests.
func (h *ContentHandler) Status(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Success:           true,
		PrimaryService:    h.content.PrimaryName(),
		AvailableServices: h.content.AvailableServices(),
		HasAI:             h.content.Available(),
	})
}

// errImageTooLarge marks an upload that exceeded the size cap.
var errImageTooLarge = errors.New("image upload too large")

// AnalyzeImage handles POST /api/image/analyze requests. The multipart "image"
// part is streamed and counted; its bytes are never buffered or written to
// disk.
func (h *ContentHandler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes)

	upload, status, msg, err := readImageUpload(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, status, msg, err)
		return
	}

	analysis := h.content.AnalyzeImage(r.Context(), upload.size, upload.extension)

	h.logger.InfoContext(r.Context(), "image analyzed",
		"trace_id", shared.GetTraceID(r.Context()),
		"extension", upload.extension,
		"size_bytes", upload.size)

	shared.RespondWithJSON(w, r, http.StatusOK, ImageResponse{
		Success:  true,
		Filename: upload.filename,
		Analysis: analysis,
	})
}

type imageUpload struct {
	filename  string
	extension string
	size      int64
}

// readImageUpload finds the "image" part and measures it. On failure it
// returns the status and client message to respond with.
func readImageUpload(r *http.Request) (imageUpload, int, string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return imageUpload{}, http.StatusBadRequest, "No image uploaded", err
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return imageUpload{}, http.StatusBadRequest, "No image uploaded", errors.New("image part missing")
		}
		if err != nil {
			return uploadReadFailure(err)
		}

		if part.FormName() != "image" {
			_ = part.Close()
			continue
		}

		filename := secureFilename(part.FileName())
		if filename == "" {
			return imageUpload{}, http.StatusBadRequest, "No image selected", errors.New("empty filename")
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
		if !AllowedImageExtension(ext) {
			return imageUpload{}, http.StatusBadRequest, "Invalid file type", errors.New("extension not allowed: " + ext)
		}

		size, err := io.Copy(io.Discard, part)
		if err != nil {
			return uploadReadFailure(err)
		}

		return imageUpload{filename: filename, extension: ext, size: size}, 0, "", nil
	}
}

func uploadReadFailure(err error) (imageUpload, int, string, error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return imageUpload{}, http.StatusRequestEntityTooLarge, "File too large", errors.Join(errImageTooLarge, err)
	}
	return imageUpload{}, http.StatusBadRequest, "Invalid upload", err
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// secureFilename reduces a client-supplied name to a safe base name.
func secureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" || name == "." {
		return ""
	}
	return name
}
