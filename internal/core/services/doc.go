// Package services implements the core use cases: index lifecycle,
// keyword retrieval, context assembly, grounded answering, door-schedule
// extraction, mode-routed chat, and the built-in evaluation harness.
//
// Services depend on domain types and driven ports only; adapters wire
// them to the filesystem, the completion backends, and the surfaces
// (CLI, HTTP, MCP).
package services
