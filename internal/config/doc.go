// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Environment variables use the TUTOR_ prefix with dots replaced by
// underscores, e.g. TUTOR_LLM_OPENROUTER_API_KEY. Provider credentials are
// optional: an empty key leaves that provider unavailable and every content
// operation resolves to fallback content.
package config
