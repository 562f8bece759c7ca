package driving

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// IndexService manages the page index lifecycle.
type IndexService interface {
	// Build performs a full rebuild from the corpus directory and
	// persists the result, replacing any prior snapshot on success.
	// An empty corpus yields an empty index, not an error.
	Build(ctx context.Context) (domain.IndexStats, error)

	// Load reads the most recent persisted snapshot into memory.
	// Returns domain.ErrIndexMissing when no snapshot exists.
	Load(ctx context.Context) error

	// Ensure makes an index available: in-memory snapshot, then
	// persisted snapshot, then a fresh build, in that order.
	Ensure(ctx context.Context) error

	// Snapshot returns the current in-memory index, or nil when none
	// has been loaded or built yet. The returned index is never
	// mutated; rebuilds swap in a fresh one.
	Snapshot() *domain.Index
}
