// Package driving provides interfaces for external actors (primary/inbound ports).
//
// The CLI, HTTP API, and MCP server depend on these interfaces; the
// implementations live in internal/core/services.
package driving
