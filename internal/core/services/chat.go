package services

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
	"github.com/custodia-labs/planqa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/planqa-cli/internal/logger"
)

// Ensure ChatService implements the driving port.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService routes raw chat messages to free-text Q&A or structured
// door schedule extraction based on the message content.
type ChatService struct {
	answers   driving.AnswerService
	schedules driving.ScheduleService
}

// NewChatService creates the mode-routing chat service.
func NewChatService(answers driving.AnswerService, schedules driving.ScheduleService) *ChatService {
	return &ChatService{answers: answers, schedules: schedules}
}

// Chat classifies the message and dispatches it to the matching
// pipeline, tagging the result with the mode that produced it.
func (s *ChatService) Chat(ctx context.Context, message string) (domain.ChatResult, error) {
	mode := domain.DetectMode(message)
	logger.Debug("chat: routing to %s mode", mode)

	if mode == domain.ModeStructured {
		schedule, err := s.schedules.ExtractSchedule(ctx, message)
		if err != nil {
			return domain.ChatResult{}, err
		}
		return domain.ChatResult{
			Type:    domain.ModeStructured,
			Doors:   schedule.Doors,
			Sources: schedule.Sources,
		}, nil
	}

	answer, err := s.answers.Answer(ctx, message)
	if err != nil {
		return domain.ChatResult{}, err
	}
	return domain.ChatResult{
		Type:    domain.ModeQA,
		Answer:  answer.Text,
		Sources: answer.Sources,
	}, nil
}
