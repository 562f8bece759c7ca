// Package llm provides factory functions for creating completion
// service adapters.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/planqa-cli/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/planqa-cli/internal/adapters/driven/llm/openai"
	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// Create builds a completion service for the configured backend. An
// empty backend defaults to Ollama. When RequestsPerMinute is set the
// service is wrapped with a rate limiter.
func Create(settings domain.LLMSettings) (driven.CompletionService, error) {
	if settings.Backend == "" {
		settings.Backend = domain.BackendOllama
	}

	var (
		svc driven.CompletionService
		err error
	)
	switch settings.Backend {
	case domain.BackendOllama:
		svc = ollama.New(ollama.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	case domain.BackendOpenAI:
		svc, err = openai.New(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unsupported completion backend: %s", settings.Backend)
	}

	if settings.RequestsPerMinute > 0 {
		svc = Throttled(svc, settings.RequestsPerMinute)
	}
	return svc, nil
}

// CreateAndValidate builds a completion service and validates
// connectivity with a short ping.
func CreateAndValidate(settings domain.LLMSettings) (driven.CompletionService, error) {
	svc, err := Create(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCompletionUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := svc.Ping(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)", domain.ErrCompletionUnavailable, err)
	}
	return svc, nil
}
