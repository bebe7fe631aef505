package generation

import (
	"errors"
	"fmt"
)

// Failure taxonomy. None of these cross the Provider boundary; they are
// converted into fallback content and, for quizzes, an error tag.
var (
	// ErrTransportUnavailable is returned on connection failures, timeouts and
	// non-2xx responses from the backend.
	ErrTransportUnavailable = errors.New("generation backend unavailable")

	// ErrResponseShapeInvalid is returned when the backend answered with a
	// success status but the completion data is missing or empty.
	ErrResponseShapeInvalid = errors.New("invalid response shape from language model")

	// ErrPayloadMalformed is returned when an embedded structured payload
	// cannot be located or decoded.
	ErrPayloadMalformed = errors.New("structured payload malformed")

	// ErrPayloadInvalid is returned when a decoded payload fails validation.
	ErrPayloadInvalid = errors.New("structured payload invalid")

	// ErrNoCredential is returned when a backend has no credential configured.
	ErrNoCredential = errors.New("no credential configured")
)

// Parser outcomes, each wrapping one of the taxonomy errors above.
var (
	ErrNoPayload        = fmt.Errorf("%w: no payload found", ErrPayloadMalformed)
	ErrQuestionsMissing = fmt.Errorf("%w: questions field missing", ErrPayloadInvalid)
	ErrNoValidQuestions = fmt.Errorf("%w: no valid questions", ErrPayloadInvalid)
)

// StatusError reports a non-2xx answer from a backend. It unwraps to
// ErrTransportUnavailable.
type StatusError struct {
	Backend    string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s request failed: status %d", e.Backend, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: status %d: %s", e.Backend, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrTransportUnavailable
}

// Quiz error tags surfaced to callers alongside placeholder quizzes.
const (
	TagNoCredential     = "AI service not available"
	TagParseFailed      = "Failed to parse quiz JSON"
	TagFormatInvalid    = "Failed to parse quiz format"
	TagNoValidQuestions = "No valid quiz questions in response"
	TagNoResponse       = "No response from AI service"
)

// QuizErrorTag renders err as the descriptive tag attached to a placeholder
// quiz. It returns an empty string for a nil error.
func QuizErrorTag(err error) string {
	var statusErr *StatusError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoCredential):
		return TagNoCredential
	case errors.As(err, &statusErr):
		return fmt.Sprintf("API request failed: %d", statusErr.StatusCode)
	case errors.Is(err, ErrNoValidQuestions):
		return TagNoValidQuestions
	case errors.Is(err, ErrNoPayload), errors.Is(err, ErrQuestionsMissing):
		return TagFormatInvalid
	case errors.Is(err, ErrPayloadMalformed):
		return TagParseFailed
	case errors.Is(err, ErrResponseShapeInvalid):
		return TagNoResponse
	default:
		return "Quiz generation failed: " + err.Error()
	}
}
