package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrIndexMissing indicates no index snapshot exists and no corpus
	// directory is configured to build one from. Recoverable by running
	// an index build against a configured corpus.
	ErrIndexMissing = errors.New("index missing")

	// ErrGenerationFailed indicates the completion service was
	// unreachable, timed out, or returned a non-success status. It is
	// surfaced to the caller and never converted into a fabricated answer.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrCompletionUnavailable indicates no completion service is
	// configured. Answering and extraction are disabled without one.
	ErrCompletionUnavailable = errors.New("completion service unavailable")

	// ErrUnsupportedFormat indicates a file has no registered page loader.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
