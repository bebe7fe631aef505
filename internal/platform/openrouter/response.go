package openrouter

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/tutor-api/internal/generation"
)

type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message      chatResponseMessage `json:"message"`
	FinishReason string              `json:"finish_reason"`
}

type chatResponseMessage struct {
	Content string `json:"content"`
}

// firstCompletion returns the first choice's message content.
func firstCompletion(body []byte) (string, error) {
	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", generation.ErrResponseShapeInvalid, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response choices", generation.ErrResponseShapeInvalid)
	}
	if parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty message content", generation.ErrResponseShapeInvalid)
	}
	return parsed.Choices[0].Message.Content, nil
}
