// Package file provides a file-based implementation of the
// SnapshotStore driven port. The index persists as a single JSON array
// of page records, so two corpus builds can be diffed with standard
// tools.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// DefaultFileName is the snapshot file name used under the config
// directory when no explicit path is given.
const DefaultFileName = "index.json"

// SnapshotStore persists the page index as a JSON file. Saves go
// through a temp file and rename, so a crash mid-write never leaves a
// truncated snapshot behind.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a store writing to the given path. The
// parent directory is created on first save.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save atomically replaces the persisted snapshot.
func (s *SnapshotStore) Save(_ context.Context, records []domain.PageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []domain.PageRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".index-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the most recent snapshot.
func (s *SnapshotStore) Load(_ context.Context) ([]domain.PageRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrIndexMissing
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var records []domain.PageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return records, nil
}

// Exists reports whether a persisted snapshot is present.
func (s *SnapshotStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.path)
	return err == nil
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.path
}
