// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It enables AI assistants to query indexed construction documents and
// extract door schedules from them.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")

// ErrMissingScheduleService is returned when the schedule service is not provided.
var ErrMissingScheduleService = errors.New("mcp: schedule service is required")
