package domain

// LLMBackend identifies a completion service provider.
type LLMBackend string

// Available completion backends.
const (
	// BackendOllama is a local Ollama instance.
	BackendOllama LLMBackend = "ollama"

	// BackendOpenAI is the OpenAI cloud API.
	BackendOpenAI LLMBackend = "openai"
)

// IsValid returns true if the backend is recognised.
func (b LLMBackend) IsValid() bool {
	switch b {
	case BackendOllama, BackendOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this backend needs an API key.
func (b LLMBackend) RequiresAPIKey() bool {
	return b == BackendOpenAI
}

// String returns the string representation.
func (b LLMBackend) String() string {
	return string(b)
}

// LLMSettings holds completion backend configuration.
type LLMSettings struct {
	// Backend selects the provider (default: ollama).
	Backend LLMBackend

	// Model is the model identifier. Empty uses the backend default.
	Model string

	// BaseURL overrides the backend API URL.
	BaseURL string

	// APIKey authenticates against cloud backends. Ignored by Ollama.
	APIKey string

	// RequestsPerMinute throttles calls to the backend. Zero disables
	// throttling.
	RequestsPerMinute int
}
