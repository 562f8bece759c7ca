package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// BuildContext formats retrieval hits into a numbered context block for
// the prompt and returns the source references in the same order. Each
// hit is labelled with its file and page so the model can cite where an
// answer came from.
func BuildContext(hits []domain.RetrievalHit) (string, []domain.SourceRef) {
	if len(hits) == 0 {
		return "", []domain.SourceRef{}
	}

	var b strings.Builder
	sources := make([]domain.SourceRef, 0, len(hits))
	for i, hit := range hits {
		fmt.Fprintf(&b, "[%d] (file=%s, page=%d)\n%s\n\n", i+1, hit.Record.FileName, hit.Record.Page, hit.Snippet)
		sources = append(sources, hit.Source())
	}
	return b.String(), sources
}
