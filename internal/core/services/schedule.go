package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/planqa-cli/internal/logger"
)

// Ensure ScheduleService implements the driving port.
var _ driving.ScheduleService = (*ScheduleService)(nil)

// ScheduleService extracts a structured door schedule from indexed
// pages. Retrieval uses a fixed door-oriented query rather than the
// user's phrasing, so "make me a door schedule please" and "door
// schedule" find the same pages.
type ScheduleService struct {
	index     IndexEnsurer
	retriever PageRetriever
	llm       driven.CompletionService
	topK      int
}

// NewScheduleService creates the structured extraction service.
func NewScheduleService(index IndexEnsurer, retriever PageRetriever, llm driven.CompletionService, topK int) *ScheduleService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &ScheduleService{
		index:     index,
		retriever: retriever,
		llm:       llm,
		topK:      topK,
	}
}

// ExtractSchedule retrieves door-related pages and asks the model for a
// JSON door schedule. Model output that cannot be parsed yields an
// empty schedule, never an error: a confused model is an expected
// runtime condition, a dead one is not.
func (s *ScheduleService) ExtractSchedule(ctx context.Context, question string) (domain.DoorSchedule, error) {
	if err := s.index.Ensure(ctx); err != nil {
		return domain.DoorSchedule{}, fmt.Errorf("ensuring index: %w", err)
	}

	hits := s.retriever.Retrieve(scheduleRetrievalQuery, s.topK)
	if len(hits) == 0 {
		logger.Debug("schedule: no door-related pages indexed")
		return domain.DoorSchedule{Doors: []domain.DoorRecord{}, Sources: []domain.SourceRef{}}, nil
	}

	contextText, sources := BuildContext(hits)
	prompt := fmt.Sprintf(doorSchedulePrompt, question, contextText)

	logger.Debug("schedule: extracting from %d hits via %s", len(hits), s.llm.ModelName())
	raw, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return domain.DoorSchedule{}, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	doors := parseDoorArray(raw)
	return domain.DoorSchedule{Doors: doors, Sources: sources}, nil
}

// parseDoorArray pulls a JSON array out of free-form model output and
// decodes it leniently. Any malformed output collapses to an empty
// list.
func parseDoorArray(raw string) []domain.DoorRecord {
	jsonStr, ok := extractJSONArray(raw)
	if !ok {
		logger.Warn("schedule: no JSON array in model output")
		return []domain.DoorRecord{}
	}

	records, dropped, err := domain.DecodeDoorRecords([]byte(jsonStr))
	if err != nil {
		logger.Warn("schedule: discarding unparseable model output: %v", err)
		return []domain.DoorRecord{}
	}
	for _, dropErr := range dropped {
		logger.Warn("schedule: dropping invalid door record: %v", dropErr)
	}
	return records
}

// extractJSONArray returns the substring between the first '[' and the
// last ']' in s. Models often wrap JSON in prose despite instructions;
// this strips the wrapping without attempting to repair the JSON
// itself.
func extractJSONArray(s string) (string, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
