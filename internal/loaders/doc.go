// Package loaders provides implementations of the PageLoader interface
// for the document formats found in a project corpus. Each loader knows
// how to extract per-page text from a specific file extension.
//
// Loaders are registered with the Registry at startup.
package loaders
