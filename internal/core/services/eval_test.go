package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

type scriptedChat struct {
	results map[string]domain.ChatResult
	err     error
}

func (s *scriptedChat) Chat(_ context.Context, message string) (domain.ChatResult, error) {
	if s.err != nil {
		return domain.ChatResult{}, s.err
	}
	if r, ok := s.results[message]; ok {
		return r, nil
	}
	return domain.ChatResult{Type: domain.ModeQA, Answer: "I am not sure."}, nil
}

func TestEvalGradesAllQueries(t *testing.T) {
	chat := &scriptedChat{results: map[string]domain.ChatResult{
		"What is the fire rating for corridor partitions?": {
			Type:   domain.ModeQA,
			Answer: "The fire rating is FR60 per spec.pdf page 4.",
		},
		"What is the specified flooring material in the lobby?": {
			Type:    domain.ModeQA,
			Answer:  "Terrazzo tiles are specified.",
			Sources: []domain.SourceRef{{FileName: "floor-finishes.pdf", Page: 2}},
		},
	}}
	svc := NewEvalService(chat)

	report, err := svc.Run(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, len(evalCases))

	assert.Equal(t, domain.EvalLooksCorrect, report.Results[0].Label)
	assert.Equal(t, domain.EvalPartiallyCorrect, report.Results[1].Label)

	assert.Equal(t, 1, report.Summary.LooksCorrect)
	assert.Equal(t, 1, report.Summary.PartiallyCorrect)
	assert.Equal(t, 3, report.Summary.Wrong)
}

func TestEvalCoversBothModes(t *testing.T) {
	hasSchedule := false
	for _, c := range evalCases {
		if domain.DetectMode(c.question) == domain.ModeStructured {
			hasSchedule = true
		}
	}
	assert.True(t, hasSchedule)
}

func TestEvalPropagatesPipelineError(t *testing.T) {
	svc := NewEvalService(&scriptedChat{err: errors.New("llm down")})

	_, err := svc.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "eval query")
}

func TestGradeStructuredResult(t *testing.T) {
	rating := "FR60"
	result := domain.ChatResult{
		Type:  domain.ModeStructured,
		Doors: []domain.DoorRecord{{Mark: "FD1", Location: "Corridor", FireRating: &rating}},
	}

	assert.Equal(t, domain.EvalLooksCorrect, grade(result, "fd1"))
	assert.Equal(t, domain.EvalWrong, grade(result, "window"))
}

func TestGradeCaseInsensitive(t *testing.T) {
	result := domain.ChatResult{Type: domain.ModeQA, Answer: "The GLAZING is double-pane."}

	assert.Equal(t, domain.EvalLooksCorrect, grade(result, "glazing"))
	assert.True(t, strings.Contains(strings.ToLower(result.Answer), "glazing"))
}
