package driving

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// EvalService runs the built-in evaluation queries through the real
// pipeline and grades the answers by expected-keyword presence.
type EvalService interface {
	Run(ctx context.Context) (domain.EvalReport, error)
}
