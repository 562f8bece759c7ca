// Package domain defines the core business entities for PlanQA.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PageRecord: One page of extracted document text
//   - Index: An immutable, corpus-wide snapshot of page records
//   - RetrievalHit: A page matched against a query, with its score
//   - SourceRef: The (file, page) provenance attached to every answer
//   - DoorRecord: One row of an extracted door schedule
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
