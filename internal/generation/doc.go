// Package generation is the content-generation orchestration layer of the
// tutor API. It turns short topic prompts into lessons, chat answers, quizzes,
// image guidance and diagrams by delegating to a remote LLM backend, and it
// guarantees that every public operation resolves to a usable value even when
// the backend is slow, unreachable or returns malformed output.
//
// The package is organised leaf-first:
//
//   - ParseQuiz is the Structured-Output Parser. It extracts the first-brace to
//     last-brace payload from free-form model text and keeps only questions with
//     exactly four options and a correct index in [0,3].
//   - The Fallback* functions are deterministic, input-only substitutes used
//     whenever a backend is unavailable or its output is unusable.
//   - Backend is the narrow interface a wire adapter (OpenRouter, Gemini)
//     implements. NewProvider wraps a Backend into a Provider that owns prompt
//     construction, per-operation model parameters and the fallback policy.
//   - Manager is the façade handed to the HTTP and CLI layers. It delegates to
//     its primary Provider and never surfaces a transport or parse failure.
//
// Errors in errors.go describe the internal failure taxonomy. They are logged
// and swallowed at the Provider boundary; the only failure information a
// caller ever sees is the optional error tag on a QuizResult.
package generation
