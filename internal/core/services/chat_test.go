package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

type stubAnswers struct {
	answer domain.Answer
	err    error
	calls  int
}

func (s *stubAnswers) Answer(_ context.Context, _ string) (domain.Answer, error) {
	s.calls++
	return s.answer, s.err
}

type stubSchedules struct {
	schedule domain.DoorSchedule
	err      error
	calls    int
}

func (s *stubSchedules) ExtractSchedule(_ context.Context, _ string) (domain.DoorSchedule, error) {
	s.calls++
	return s.schedule, s.err
}

func TestChatRoutesQuestionsToQA(t *testing.T) {
	answers := &stubAnswers{answer: domain.Answer{
		Text:    "The corridor partition is FR60.",
		Sources: []domain.SourceRef{{FileName: "spec.pdf", Page: 4}},
	}}
	schedules := &stubSchedules{}
	svc := NewChatService(answers, schedules)

	result, err := svc.Chat(context.Background(), "What is the fire rating for corridor partitions?")

	require.NoError(t, err)
	assert.Equal(t, domain.ModeQA, result.Type)
	assert.Equal(t, "The corridor partition is FR60.", result.Answer)
	assert.Empty(t, result.Doors)
	assert.Len(t, result.Sources, 1)
	assert.Equal(t, 1, answers.calls)
	assert.Zero(t, schedules.calls)
}

func TestChatRoutesScheduleRequests(t *testing.T) {
	answers := &stubAnswers{}
	schedules := &stubSchedules{schedule: domain.DoorSchedule{
		Doors:   []domain.DoorRecord{{Mark: "FD1", Location: "Corridor"}},
		Sources: []domain.SourceRef{{FileName: "spec.pdf", Page: 3}},
	}}
	svc := NewChatService(answers, schedules)

	result, err := svc.Chat(context.Background(), "Generate a door schedule")

	require.NoError(t, err)
	assert.Equal(t, domain.ModeStructured, result.Type)
	assert.Empty(t, result.Answer)
	require.Len(t, result.Doors, 1)
	assert.Equal(t, "FD1", result.Doors[0].Mark)
	assert.Zero(t, answers.calls)
	assert.Equal(t, 1, schedules.calls)
}

func TestChatPropagatesErrors(t *testing.T) {
	wantErr := errors.New("boom")
	svc := NewChatService(&stubAnswers{err: wantErr}, &stubSchedules{})

	_, err := svc.Chat(context.Background(), "any question")

	assert.ErrorIs(t, err, wantErr)
}
