package cli

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// mockIndexService is a mock implementation of driving.IndexService.
type mockIndexService struct {
	stats domain.IndexStats
	err   error
}

func (m *mockIndexService) Build(context.Context) (domain.IndexStats, error) {
	return m.stats, m.err
}

func (m *mockIndexService) Load(context.Context) error   { return m.err }
func (m *mockIndexService) Ensure(context.Context) error { return m.err }
func (m *mockIndexService) Snapshot() *domain.Index      { return domain.NewIndex(nil) }

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer domain.Answer
	err    error
}

func (m *mockAnswerService) Answer(context.Context, string) (domain.Answer, error) {
	return m.answer, m.err
}

// mockScheduleService is a mock implementation of driving.ScheduleService.
type mockScheduleService struct {
	schedule domain.DoorSchedule
	err      error
}

func (m *mockScheduleService) ExtractSchedule(context.Context, string) (domain.DoorSchedule, error) {
	return m.schedule, m.err
}

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	result domain.ChatResult
	err    error
}

func (m *mockChatService) Chat(context.Context, string) (domain.ChatResult, error) {
	return m.result, m.err
}

// mockEvalService is a mock implementation of driving.EvalService.
type mockEvalService struct {
	report domain.EvalReport
	err    error
}

func (m *mockEvalService) Run(context.Context) (domain.EvalReport, error) {
	return m.report, m.err
}

// setupTestServices injects mock services and returns a cleanup
// function restoring the previous wiring.
func setupTestServices() func() {
	rating := "FR60"
	width := 900.0

	prevIndex := indexService
	prevAnswer := answerService
	prevSchedule := scheduleService
	prevChat := chatService
	prevEval := evalService

	indexService = &mockIndexService{stats: domain.IndexStats{Files: 2, Pages: 14}}
	answerService = &mockAnswerService{answer: domain.Answer{
		Text:    "FD1 is fire rated, per spec.pdf page 3.",
		Sources: []domain.SourceRef{{FileName: "spec.pdf", Page: 3}},
	}}
	scheduleService = &mockScheduleService{schedule: domain.DoorSchedule{
		Doors: []domain.DoorRecord{
			{Mark: "FD1", Location: "Level 1 Corridor", WidthMM: &width, FireRating: &rating},
		},
		Sources: []domain.SourceRef{{FileName: "spec.pdf", Page: 3}},
	}}
	chatService = &mockChatService{result: domain.ChatResult{Type: domain.ModeQA, Answer: "ok"}}
	evalService = &mockEvalService{report: domain.EvalReport{
		RunID:   "run-1",
		Summary: domain.EvalSummary{LooksCorrect: 4, Wrong: 1},
		Results: []domain.EvalResult{
			{Question: "Are there any accessibility requirements for doors?", Expected: "door", Label: domain.EvalLooksCorrect},
		},
	}}

	return func() {
		indexService = prevIndex
		answerService = prevAnswer
		scheduleService = prevSchedule
		chatService = prevChat
		evalService = prevEval
	}
}
