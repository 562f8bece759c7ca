package loaders

import (
	"path/filepath"
	"strings"

	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/planqa-cli/internal/loaders/pdf"
	"github.com/custodia-labs/planqa-cli/internal/loaders/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.LoaderRegistry = (*Registry)(nil)

// Registry resolves a PageLoader by file extension.
type Registry struct {
	byExt map[string]driven.PageLoader
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]driven.PageLoader)}
}

// Default returns a registry with the standard corpus loaders
// registered: PDF and plain text.
func Default() *Registry {
	r := NewRegistry()
	r.Register(pdf.New())
	r.Register(plaintext.New())
	return r
}

// Register adds a loader for each extension it reports. Later
// registrations win on conflict.
func (r *Registry) Register(loader driven.PageLoader) {
	for _, ext := range loader.Extensions() {
		r.byExt[strings.ToLower(ext)] = loader
	}
}

// For returns the loader registered for the path's extension.
func (r *Registry) For(path string) (driven.PageLoader, bool) {
	loader, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return loader, ok
}

// Recognized reports whether any loader handles the path.
func (r *Registry) Recognized(path string) bool {
	_, ok := r.For(path)
	return ok
}
