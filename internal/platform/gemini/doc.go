// Package gemini implements generation.Backend on top of Google's Gemini API
// using the google.golang.org/genai client.
//
// This package is an infrastructure adapter: it maps a generation.Completion
// onto a single GenerateContent call and translates genai failures into the
// generation error taxonomy. It makes exactly one attempt per completion.
//
// The Gemini backend does not advertise the diagram capability; diagram
// requests routed to it resolve to the static fallback diagram.
package gemini
