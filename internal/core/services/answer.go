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

// Ensure AnswerService implements the driving port.
var _ driving.AnswerService = (*AnswerService)(nil)

// IndexEnsurer makes an index available before retrieval runs.
type IndexEnsurer interface {
	Ensure(ctx context.Context) error
}

// AnswerService answers free-text questions grounded on retrieved
// pages.
type AnswerService struct {
	index     IndexEnsurer
	retriever PageRetriever
	llm       driven.CompletionService
	topK      int
}

// NewAnswerService creates the grounded Q&A service. A topK of zero
// falls back to the default hit count.
func NewAnswerService(index IndexEnsurer, retriever PageRetriever, llm driven.CompletionService, topK int) *AnswerService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &AnswerService{
		index:     index,
		retriever: retriever,
		llm:       llm,
		topK:      topK,
	}
}

// Answer retrieves grounding pages for the question and generates a
// short, source-citing answer. An empty retrieval result short-circuits
// to the "not sure" response without calling the completion service.
func (s *AnswerService) Answer(ctx context.Context, question string) (domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Answer{}, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	if err := s.index.Ensure(ctx); err != nil {
		return domain.Answer{}, fmt.Errorf("ensuring index: %w", err)
	}

	hits := s.retriever.Retrieve(question, s.topK)
	if len(hits) == 0 {
		logger.Debug("answer: no relevant pages for %q", question)
		return domain.Answer{Text: notSureResponse, Sources: []domain.SourceRef{}}, nil
	}

	contextText, sources := BuildContext(hits)
	prompt := fmt.Sprintf(groundedAnswerPrompt, contextText, question)

	logger.Debug("answer: generating from %d hits via %s", len(hits), s.llm.ModelName())
	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return domain.Answer{}, fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
	}

	return domain.Answer{Text: strings.TrimSpace(text), Sources: sources}, nil
}
