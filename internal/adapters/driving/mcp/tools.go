package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed project documents"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string         `json:"answer"`
	Sources []SourceOutput `json:"sources"`
}

// DoorScheduleInput is the input schema for the door_schedule tool.
type DoorScheduleInput struct {
	Request string `json:"request,omitempty" jsonschema:"optional free-text request to include in the extraction prompt"`
}

// DoorScheduleOutput is the output schema for the door_schedule tool.
type DoorScheduleOutput struct {
	Doors   []DoorOutput   `json:"doors"`
	Count   int            `json:"count"`
	Sources []SourceOutput `json:"sources"`
}

// DoorOutput represents a single extracted door.
type DoorOutput struct {
	Mark       string   `json:"mark"`
	Location   string   `json:"location"`
	WidthMM    *float64 `json:"width_mm"`
	HeightMM   *float64 `json:"height_mm"`
	FireRating *string  `json:"fire_rating"`
	Material   *string  `json:"material"`
}

// SourceOutput identifies a source page.
type SourceOutput struct {
	FileName string `json:"file_name"`
	Page     int    `json:"page"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question grounded on the indexed construction documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "door_schedule",
		Description: "Extract a structured door schedule from the indexed construction documents",
	}, s.handleDoorSchedule)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Answer.Answer(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Answer:  answer.Text,
		Sources: toSourceOutputs(answer.Sources),
	}, nil
}

// handleDoorSchedule handles the door_schedule tool invocation.
func (s *Server) handleDoorSchedule(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DoorScheduleInput,
) (*mcp.CallToolResult, DoorScheduleOutput, error) {
	request := input.Request
	if request == "" {
		request = "Generate a door schedule"
	}

	schedule, err := s.ports.Schedule.ExtractSchedule(ctx, request)
	if err != nil {
		return nil, DoorScheduleOutput{}, err
	}

	output := DoorScheduleOutput{
		Doors:   make([]DoorOutput, len(schedule.Doors)),
		Count:   len(schedule.Doors),
		Sources: toSourceOutputs(schedule.Sources),
	}
	for i, door := range schedule.Doors {
		output.Doors[i] = DoorOutput{
			Mark:       door.Mark,
			Location:   door.Location,
			WidthMM:    door.WidthMM,
			HeightMM:   door.HeightMM,
			FireRating: door.FireRating,
			Material:   door.Material,
		}
	}

	return nil, output, nil
}

func toSourceOutputs(sources []domain.SourceRef) []SourceOutput {
	out := make([]SourceOutput, len(sources))
	for i, src := range sources {
		out[i] = SourceOutput{FileName: src.FileName, Page: src.Page}
	}
	return out
}
