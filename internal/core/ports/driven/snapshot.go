package driven

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// SnapshotStore persists the page index between runs.
// The snapshot format is a single JSON array of page records, so an
// operator can diff two corpus builds with standard tools.
type SnapshotStore interface {
	// Save atomically replaces the persisted snapshot with the given
	// records. On failure the previous snapshot remains valid.
	Save(ctx context.Context, records []domain.PageRecord) error

	// Load reads the most recent snapshot. Returns
	// domain.ErrIndexMissing when none has ever been saved.
	Load(ctx context.Context) ([]domain.PageRecord, error)

	// Exists reports whether a persisted snapshot is present.
	Exists() bool

	// Path returns the snapshot file path.
	Path() string
}
