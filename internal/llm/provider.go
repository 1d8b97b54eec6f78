// Package llm abstracts the AI text providers behind a single-turn
// structured-generation interface. Adapters exist for Anthropic, OpenAI
// (and compatible endpoints) and Gemini; decorators add retry and event
// logging; a mock provider serves tests.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for AI text generation.
type Provider interface {
	// Generate sends a single-turn prompt and returns the response.
	// When the request carries a Schema, the provider uses its native
	// structured output mechanism and the Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider uses.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Lookups are single-turn, so there is
	// no conversation history.
	Prompt string

	// Schema is the JSON Schema the response must conform to. Nil means
	// raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero when not set.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "word-entry").
	Name string

	// Description guides the model's generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output. Validated JSON when a Schema was
	// requested.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
