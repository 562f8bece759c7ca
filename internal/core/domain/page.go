package domain

// PageRecord is one page of text extracted from a corpus document.
// Records are produced once at index-build time and never mutated;
// identity is the (FileName, Page) pair.
type PageRecord struct {
	// FileName is the base name of the source document.
	FileName string `json:"file_name"`

	// Page is the 1-based page number within the document.
	Page int `json:"page"`

	// Text is the extracted page text. It may be empty for scanned or
	// blank pages; empty records are excluded from retrieval scoring.
	Text string `json:"text"`
}

// Source returns the provenance projection of the record.
func (r PageRecord) Source() SourceRef {
	return SourceRef{FileName: r.FileName, Page: r.Page}
}

// SourceRef identifies where a piece of retrieved text originated.
// Every answer or structured record returned to a caller carries at
// least one SourceRef, or an explicit empty-context fallback.
type SourceRef struct {
	FileName string `json:"file_name"`
	Page     int    `json:"page"`
}

// RetrievalHit is a page matched against a query. Hits are transient:
// computed per query, never persisted.
type RetrievalHit struct {
	// Record is the matched page.
	Record PageRecord

	// Score is the term-frequency relevance score (always > 0 for a hit).
	Score int

	// Snippet is Record.Text truncated for prompt assembly.
	Snippet string
}

// Source returns the provenance of the hit.
func (h RetrievalHit) Source() SourceRef {
	return h.Record.Source()
}

// Index is an ordered snapshot of page records for one corpus build.
// A rebuild produces a fresh Index; an existing one is never mutated,
// so readers can hold a snapshot across a concurrent rebuild.
type Index struct {
	Records []PageRecord
}

// NewIndex creates an index over the given records.
func NewIndex(records []PageRecord) *Index {
	return &Index{Records: records}
}

// Len returns the number of indexed pages.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.Records)
}

// Empty reports whether the index holds no pages.
func (idx *Index) Empty() bool {
	return idx.Len() == 0
}

// IndexStats summarises one index build.
type IndexStats struct {
	// Files is the number of corpus files successfully processed.
	Files int

	// Pages is the number of non-empty pages indexed.
	Pages int

	// Skipped is the number of unreadable files that were passed over.
	Skipped int
}
