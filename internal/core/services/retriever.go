package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/logger"
)

const (
	// SnippetLimit bounds the text carried per hit into the prompt.
	SnippetLimit = 2000

	// DefaultTopK is the number of hits retrieved when the caller does
	// not say otherwise.
	DefaultTopK = 5

	// minWordLen filters short query words ("a", "of", "is") without a
	// stop-word list.
	minWordLen = 3
)

// SnapshotProvider supplies the current index snapshot.
type SnapshotProvider interface {
	Snapshot() *domain.Index
}

// PageRetriever scores indexed pages against a query.
type PageRetriever interface {
	Retrieve(query string, k int) []domain.RetrievalHit
}

// Ensure Retriever implements the interface.
var _ PageRetriever = (*Retriever)(nil)

// Retriever ranks index pages by term-frequency overlap with the query.
// Scoring is deterministic and needs no model or vector infrastructure:
// exact terminology (door, fire rating, glazing) recurs in short
// technical documents, so occurrence counts are a workable relevance
// proxy.
type Retriever struct {
	index SnapshotProvider
}

// NewRetriever creates a retriever over the given snapshot provider.
func NewRetriever(index SnapshotProvider) *Retriever {
	return &Retriever{index: index}
}

// Retrieve scores every indexed page against the query and returns the
// top k hits. A page scores the sum, over lower-cased query words of
// length >2, of the word's occurrence count in the page text. Zero
// scores are dropped; ties keep index order, so the first-indexed page
// wins and repeated calls against the same snapshot return identical
// output.
func (r *Retriever) Retrieve(query string, k int) []domain.RetrievalHit {
	if k <= 0 {
		k = DefaultTopK
	}

	snapshot := r.index.Snapshot()
	if snapshot.Empty() {
		logger.Debug("retrieve: empty index")
		return []domain.RetrievalHit{}
	}

	words := queryWords(query)
	if len(words) == 0 {
		return []domain.RetrievalHit{}
	}
	logger.Debug("retrieve: %d query words over %d pages", len(words), snapshot.Len())

	hits := make([]domain.RetrievalHit, 0, k)
	for _, rec := range snapshot.Records {
		textLower := strings.ToLower(rec.Text)
		score := 0
		for _, w := range words {
			score += strings.Count(textLower, w)
		}
		if score == 0 {
			continue
		}
		hits = append(hits, domain.RetrievalHit{
			Record:  rec,
			Score:   score,
			Snippet: truncate(rec.Text, SnippetLimit),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	logger.Debug("retrieve: %d hits", len(hits))
	return hits
}

// queryWords lower-cases and splits the query, keeping words long
// enough to carry meaning.
func queryWords(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	words := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) >= minWordLen {
			words = append(words, w)
		}
	}
	return words
}

// truncate bounds s to max bytes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
