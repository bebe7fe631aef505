package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/tutor-api/internal/generation"
	"google.golang.org/genai"
)

// backendName is reported on StatusErrors and logs.
const backendName = "gemini"

// maxErrorBody caps how much of an API error message is kept.
const maxErrorBody = 512

// mapError translates an error from the genai client into the generation
// taxonomy. API errors carrying an HTTP status become *generation.StatusError;
// everything else is treated as the transport being unavailable.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return statusError(apiErr)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && apiErrPtr.Code != 0 {
		return statusError(*apiErrPtr)
	}

	return fmt.Errorf("%w: %w", generation.ErrTransportUnavailable, err)
}

func statusError(apiErr genai.APIError) *generation.StatusError {
	body := apiErr.Message
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(apiErr.Code)
	}
	return &generation.StatusError{
		Backend:    backendName,
		StatusCode: apiErr.Code,
		Body:       body,
	}
}
