package mcp

import (
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer provides grounded question answering.
	Answer driving.AnswerService

	// Schedule provides structured door schedule extraction.
	Schedule driving.ScheduleService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	if p.Schedule == nil {
		return ErrMissingScheduleService
	}
	return nil
}
