package plaintext

import (
	"context"
	"os"
	"strings"

	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.PageLoader = (*Loader)(nil)

// Loader handles plain text documents. Form feeds split a file into
// pages; a file without them is a single page.
type Loader struct{}

// New creates a new plain text loader.
func New() *Loader {
	return &Loader{}
}

// Extensions returns the file extensions this loader handles.
func (l *Loader) Extensions() []string {
	return []string{".txt", ".md"}
}

// LoadPages reads the file and splits it on form feed characters.
func (l *Loader) LoadPages(_ context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\f"), nil
}
