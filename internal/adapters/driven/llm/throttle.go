package llm

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
)

// Ensure throttledService implements the interface.
var _ driven.CompletionService = (*throttledService)(nil)

// throttledService wraps a completion service with a token bucket so
// batch operations like eval runs do not hammer a shared backend.
type throttledService struct {
	inner   driven.CompletionService
	limiter *rate.Limiter
}

// Throttled wraps svc with a requests-per-minute rate limit. Generate
// blocks until a slot is available or the context is cancelled.
func Throttled(svc driven.CompletionService, requestsPerMinute int) driven.CompletionService {
	return &throttledService{
		inner:   svc,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1),
	}
}

func (s *throttledService) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return s.inner.Generate(ctx, prompt, opts)
}

func (s *throttledService) ModelName() string {
	return s.inner.ModelName()
}

func (s *throttledService) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

func (s *throttledService) Close() error {
	return s.inner.Close()
}
