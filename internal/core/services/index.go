package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/planqa-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService owns the page index snapshot. A rebuild extracts the
// whole corpus aside, persists it with replace-on-success semantics and
// swaps the in-memory snapshot atomically; readers holding the previous
// snapshot are never affected mid-query.
type IndexService struct {
	corpusDir string
	loaders   driven.LoaderRegistry
	store     driven.SnapshotStore

	mu       sync.RWMutex
	snapshot *domain.Index
}

// NewIndexService creates an index service over the given corpus
// directory. corpusDir may be empty when only a persisted snapshot is
// available; building then fails with domain.ErrIndexMissing.
func NewIndexService(corpusDir string, loaders driven.LoaderRegistry, store driven.SnapshotStore) *IndexService {
	return &IndexService{
		corpusDir: corpusDir,
		loaders:   loaders,
		store:     store,
	}
}

// Build performs a full rebuild from the corpus directory.
func (s *IndexService) Build(ctx context.Context) (domain.IndexStats, error) {
	logger.Section("Index Build")

	if s.corpusDir == "" {
		return domain.IndexStats{}, fmt.Errorf("no corpus directory configured: %w", domain.ErrIndexMissing)
	}

	entries, err := os.ReadDir(s.corpusDir)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing corpus directory indexes as an empty corpus.
			logger.Warn("corpus directory %s not found, building empty index", s.corpusDir)
			entries = nil
		} else {
			return domain.IndexStats{}, fmt.Errorf("read corpus directory: %w", err)
		}
	}

	var stats domain.IndexStats
	records := make([]domain.PageRecord, 0, len(entries))

	// os.ReadDir returns entries sorted by name, so index order and
	// therefore tie-breaking in retrieval is deterministic.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !s.loaders.Recognized(name) {
			logger.Debug("skipping %s: unrecognized extension", name)
			continue
		}

		loader, _ := s.loaders.For(name)
		pages, err := loader.LoadPages(ctx, filepath.Join(s.corpusDir, name))
		if err != nil {
			logger.Warn("skipping unreadable file %s: %v", name, err)
			stats.Skipped++
			continue
		}

		stats.Files++
		for i, text := range pages {
			text = strings.TrimSpace(text)
			if text == "" {
				// Blank or scanned pages keep their number but are
				// excluded from the index.
				continue
			}
			records = append(records, domain.PageRecord{
				FileName: name,
				Page:     i + 1,
				Text:     text,
			})
		}
	}
	stats.Pages = len(records)

	if s.store != nil {
		if err := s.store.Save(ctx, records); err != nil {
			// The previous persisted snapshot is still intact.
			return domain.IndexStats{}, fmt.Errorf("persist index snapshot: %w", err)
		}
	}

	s.swap(domain.NewIndex(records))
	logger.Info("indexed %d pages from %d files (%d skipped)", stats.Pages, stats.Files, stats.Skipped)

	return stats, nil
}

// Load reads the most recent persisted snapshot into memory.
func (s *IndexService) Load(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrIndexMissing
	}

	records, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load index snapshot: %w", err)
	}

	s.swap(domain.NewIndex(records))
	logger.Debug("loaded %d pages from snapshot %s", len(records), s.store.Path())
	return nil
}

// Ensure makes an index available, preferring what already exists:
// the in-memory snapshot, then the persisted one, then a fresh build.
func (s *IndexService) Ensure(ctx context.Context) error {
	if s.Snapshot() != nil {
		return nil
	}

	if s.store != nil && s.store.Exists() {
		if err := s.Load(ctx); err == nil {
			return nil
		}
		logger.Warn("persisted snapshot unreadable, rebuilding")
	}

	if s.corpusDir == "" {
		return domain.ErrIndexMissing
	}

	_, err := s.Build(ctx)
	return err
}

// Snapshot returns the current in-memory index, or nil.
func (s *IndexService) Snapshot() *domain.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *IndexService) swap(idx *domain.Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = idx
}
