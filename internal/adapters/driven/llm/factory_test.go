package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
)

func TestCreateDefaultsToOllama(t *testing.T) {
	svc, err := Create(domain.LLMSettings{})

	require.NoError(t, err)
	defer svc.Close()
	assert.Equal(t, "llama3", svc.ModelName())
}

func TestCreateOpenAIRequiresKey(t *testing.T) {
	_, err := Create(domain.LLMSettings{Backend: domain.BackendOpenAI})

	assert.Error(t, err)
}

func TestCreateOpenAI(t *testing.T) {
	svc, err := Create(domain.LLMSettings{
		Backend: domain.BackendOpenAI,
		APIKey:  "sk-test",
		Model:   "gpt-4o",
	})

	require.NoError(t, err)
	defer svc.Close()
	assert.Equal(t, "gpt-4o", svc.ModelName())
}

func TestCreateUnknownBackend(t *testing.T) {
	_, err := Create(domain.LLMSettings{Backend: "bedrock"})

	assert.Error(t, err)
}

type countingService struct {
	calls int
}

func (c *countingService) Generate(context.Context, string, driven.GenerateOptions) (string, error) {
	c.calls++
	return "ok", nil
}

func (c *countingService) ModelName() string          { return "counting" }
func (c *countingService) Ping(context.Context) error { return nil }
func (c *countingService) Close() error               { return nil }

func TestThrottledPassesThrough(t *testing.T) {
	inner := &countingService{}
	svc := Throttled(inner, 600)

	out, err := svc.Generate(context.Background(), "hi", driven.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "counting", svc.ModelName())
}

func TestThrottledHonoursCancellation(t *testing.T) {
	svc := Throttled(&countingService{}, 1)

	// Drain the single burst slot.
	_, err := svc.Generate(context.Background(), "first", driven.GenerateOptions{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = svc.Generate(ctx, "second", driven.GenerateOptions{})

	assert.Error(t, err)
}
