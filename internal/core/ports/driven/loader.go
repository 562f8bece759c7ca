package driven

import "context"

// PageLoader extracts per-page text from one document format.
// Implementations exist for PDF and plain text; a registry selects the
// loader by file extension.
type PageLoader interface {
	// Extensions returns the lower-cased file extensions this loader
	// handles, including the leading dot (e.g. ".pdf").
	Extensions() []string

	// LoadPages extracts the text of every page of the file at path,
	// in page order. A page with no extractable text layer (scanned or
	// blank) yields an empty string at its position, so page numbering
	// is preserved.
	LoadPages(ctx context.Context, path string) ([]string, error)
}

// LoaderRegistry resolves a PageLoader for a given file path.
type LoaderRegistry interface {
	// For returns the loader registered for the path's extension.
	For(path string) (PageLoader, bool)

	// Recognized reports whether any loader handles the path.
	Recognized(path string) bool
}
