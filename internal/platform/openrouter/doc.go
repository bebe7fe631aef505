// Package openrouter implements generation.Backend against the OpenRouter
// chat-completions API.
//
// The backend is an infrastructure adapter: it translates a
// generation.Completion into OpenRouter's wire payload, sends it through an
// httpx.Transport exactly once, and maps the answer onto the generation error
// taxonomy:
//
//   - transport failures wrap generation.ErrTransportUnavailable
//   - non-200 answers become *generation.StatusError
//   - undecodable bodies, empty choices and empty content wrap
//     generation.ErrResponseShapeInvalid
//
// Prompt wording, model parameters and fallback behaviour live in the
// generation package; this package only speaks the protocol.
package openrouter
