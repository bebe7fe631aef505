// Package api exposes the content generation operations over HTTP. Handlers
// decode and validate JSON or multipart requests, delegate to a
// ContentService, and write JSON responses. Generation itself never fails at
// this layer: only malformed input produces an error status.
package api
