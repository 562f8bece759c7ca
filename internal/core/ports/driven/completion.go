package driven

import "context"

// CompletionService provides synchronous text completion over a network
// boundary. The core treats it as opaque: one prompt in, one block of
// generated text out.
//
// Implementations may include:
//   - Ollama (local models, /api/generate)
//   - OpenAI (chat completions)
type CompletionService interface {
	// Generate produces a text completion from a prompt. A transport
	// failure, timeout, or non-success status returns an error; the
	// caller surfaces it as a generation failure rather than retrying.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the identifier of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64

	// StopWords are sequences that stop generation when encountered.
	StopWords []string
}
