package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// QuizOptionCount is the exact number of options every question must carry.
const QuizOptionCount = 4

// ParseQuiz extracts and validates a quiz payload embedded in free-form model
// output.
//
// The candidate payload runs from the first '{' to the last '}' in text. It
// must decode as an object whose "questions" field is an array. Elements that
// are not objects, lack a non-blank question string, do not carry exactly four
// string options, or whose correct_answer is not an integer in [0,3] are
// dropped; the survivors are returned in their original order.
//
// Errors: ErrNoPayload when no brace pair exists, ErrPayloadMalformed when the
// candidate does not decode, ErrQuestionsMissing when the questions array is
// absent, and ErrNoValidQuestions when nothing survives validation.
func ParseQuiz(text string) ([]QuizQuestion, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 || start >= end {
		return nil, ErrNoPayload
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadMalformed, err)
	}

	rawQuestions, ok := root["questions"]
	if !ok {
		return nil, ErrQuestionsMissing
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(rawQuestions, &elements); err != nil || elements == nil {
		return nil, ErrQuestionsMissing
	}

	questions := make([]QuizQuestion, 0, len(elements))
	for _, element := range elements {
		if q, ok := decodeQuestion(element); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}

	return questions, nil
}

func decodeQuestion(raw json.RawMessage) (QuizQuestion, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return QuizQuestion{}, false
	}

	question, ok := decodeString(fields["question"])
	if !ok || strings.TrimSpace(question) == "" {
		return QuizQuestion{}, false
	}

	var rawOptions []json.RawMessage
	if err := json.Unmarshal(fields["options"], &rawOptions); err != nil ||
		len(rawOptions) != QuizOptionCount {
		return QuizQuestion{}, false
	}

	options := make([]string, 0, QuizOptionCount)
	for _, rawOption := range rawOptions {
		option, ok := decodeString(rawOption)
		if !ok {
			return QuizQuestion{}, false
		}
		options = append(options, option)
	}

	// Integer literals only: 2.0, "2" and true are all rejected.
	correct, err := strconv.Atoi(string(bytes.TrimSpace(fields["correct_answer"])))
	if err != nil || correct < 0 || correct >= QuizOptionCount {
		return QuizQuestion{}, false
	}

	return QuizQuestion{
		Question:      question,
		Options:       options,
		CorrectAnswer: correct,
	}, true
}

func decodeString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
