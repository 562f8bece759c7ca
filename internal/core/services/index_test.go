package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
)

// lineLoader treats each line of a .txt file as one page, failing on
// files whose content is exactly "unreadable".
type lineLoader struct{}

func (lineLoader) Extensions() []string { return []string{".txt"} }

func (lineLoader) LoadPages(_ context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "unreadable" {
		return nil, errors.New("extraction failed")
	}
	return strings.Split(string(data), "\n"), nil
}

type testRegistry struct{}

func (testRegistry) For(path string) (driven.PageLoader, bool) {
	if filepath.Ext(path) == ".txt" {
		return lineLoader{}, true
	}
	return nil, false
}

func (testRegistry) Recognized(path string) bool {
	_, ok := testRegistry{}.For(path)
	return ok
}

type memStore struct {
	records []domain.PageRecord
	saved   bool
	saveErr error
	loadErr error
}

func (m *memStore) Save(_ context.Context, records []domain.PageRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = records
	m.saved = true
	return nil
}

func (m *memStore) Load(context.Context) ([]domain.PageRecord, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if !m.saved {
		return nil, domain.ErrIndexMissing
	}
	return m.records, nil
}

func (m *memStore) Exists() bool { return m.saved }
func (m *memStore) Path() string { return "mem" }

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestBuildIndexesRecognizedFiles(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "spec.txt", "General notes.\nFire rated door FD1.")
	writeCorpusFile(t, dir, "photo.jpg", "binary")

	store := &memStore{}
	svc := NewIndexService(dir, testRegistry{}, store)

	stats, err := svc.Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 2, stats.Pages)
	assert.Zero(t, stats.Skipped)
	assert.True(t, store.saved)

	snapshot := svc.Snapshot()
	require.NotNil(t, snapshot)
	require.Equal(t, 2, snapshot.Len())
	assert.Equal(t, domain.PageRecord{FileName: "spec.txt", Page: 1, Text: "General notes."}, snapshot.Records[0])
	assert.Equal(t, 2, snapshot.Records[1].Page)
}

func TestBuildSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "bad.txt", "unreadable")
	writeCorpusFile(t, dir, "good.txt", "Door hardware notes.")

	svc := NewIndexService(dir, testRegistry{}, &memStore{})

	stats, err := svc.Build(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Files)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Pages)
}

func TestBuildDropsBlankPagesKeepingNumbers(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "spec.txt", "Cover page.\n\nSection two.")

	svc := NewIndexService(dir, testRegistry{}, &memStore{})

	_, err := svc.Build(context.Background())

	require.NoError(t, err)
	snapshot := svc.Snapshot()
	require.Equal(t, 2, snapshot.Len())
	assert.Equal(t, 1, snapshot.Records[0].Page)
	assert.Equal(t, 3, snapshot.Records[1].Page)
}

func TestBuildEmptyCorpusYieldsEmptyIndex(t *testing.T) {
	svc := NewIndexService(t.TempDir(), testRegistry{}, &memStore{})

	stats, err := svc.Build(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Pages)
	require.NotNil(t, svc.Snapshot())
	assert.True(t, svc.Snapshot().Empty())
}

func TestBuildMissingCorpusDirYieldsEmptyIndex(t *testing.T) {
	svc := NewIndexService(filepath.Join(t.TempDir(), "nope"), testRegistry{}, &memStore{})

	stats, err := svc.Build(context.Background())

	require.NoError(t, err)
	assert.Zero(t, stats.Pages)
	require.NotNil(t, svc.Snapshot())
}

func TestBuildNoCorpusDirConfigured(t *testing.T) {
	svc := NewIndexService("", testRegistry{}, &memStore{})

	_, err := svc.Build(context.Background())

	assert.ErrorIs(t, err, domain.ErrIndexMissing)
}

func TestBuildKeepsSnapshotOnSaveFailure(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "spec.txt", "Door notes.")

	svc := NewIndexService(dir, testRegistry{}, &memStore{saveErr: errors.New("disk full")})

	_, err := svc.Build(context.Background())

	require.Error(t, err)
	assert.Nil(t, svc.Snapshot())
}

func TestLoadReadsPersistedSnapshot(t *testing.T) {
	store := &memStore{}
	require.NoError(t, store.Save(context.Background(), []domain.PageRecord{
		{FileName: "spec.pdf", Page: 1, Text: "door"},
	}))

	svc := NewIndexService("", testRegistry{}, store)

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, 1, svc.Snapshot().Len())
}

func TestLoadMissingSnapshot(t *testing.T) {
	svc := NewIndexService("", testRegistry{}, &memStore{})

	err := svc.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrIndexMissing)
}

func TestEnsurePrefersMemoryThenStoreThenBuild(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "spec.txt", "Door notes.")

	// Fresh service with a saved snapshot: Ensure loads, no rebuild.
	store := &memStore{}
	require.NoError(t, store.Save(context.Background(), []domain.PageRecord{
		{FileName: "old.pdf", Page: 1, Text: "old"},
	}))
	svc := NewIndexService(dir, testRegistry{}, store)

	require.NoError(t, svc.Ensure(context.Background()))
	assert.Equal(t, "old.pdf", svc.Snapshot().Records[0].FileName)

	// With the snapshot already in memory, Ensure is a no-op.
	before := svc.Snapshot()
	require.NoError(t, svc.Ensure(context.Background()))
	assert.Same(t, before, svc.Snapshot())
}

func TestEnsureBuildsWhenNothingPersisted(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "spec.txt", "Door notes.")

	store := &memStore{}
	svc := NewIndexService(dir, testRegistry{}, store)

	require.NoError(t, svc.Ensure(context.Background()))
	assert.Equal(t, 1, svc.Snapshot().Len())
	assert.True(t, store.saved)
}

func TestEnsureRebuildsOnUnreadableSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "spec.txt", "Door notes.")

	store := &memStore{saved: true, loadErr: errors.New("corrupt")}
	svc := NewIndexService(dir, testRegistry{}, store)

	require.NoError(t, svc.Ensure(context.Background()))
	require.NotNil(t, svc.Snapshot())
	assert.Equal(t, "spec.txt", svc.Snapshot().Records[0].FileName)
}
