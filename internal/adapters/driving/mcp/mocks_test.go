package mcp

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer domain.Answer
	err    error
}

func (m *mockAnswerService) Answer(_ context.Context, _ string) (domain.Answer, error) {
	return m.answer, m.err
}

// mockScheduleService is a mock implementation of driving.ScheduleService.
type mockScheduleService struct {
	schedule   domain.DoorSchedule
	err        error
	gotRequest string
}

func (m *mockScheduleService) ExtractSchedule(_ context.Context, question string) (domain.DoorSchedule, error) {
	m.gotRequest = question
	return m.schedule, m.err
}
