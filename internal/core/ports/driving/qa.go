package driving

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// AnswerService answers free-text questions grounded on retrieved pages.
type AnswerService interface {
	// Answer retrieves relevant pages, assembles grounding context and
	// returns a short generated answer with its sources. When nothing
	// matches, it returns a "not sure" response with no sources and
	// without calling the completion service.
	Answer(ctx context.Context, question string) (domain.Answer, error)
}

// ChatService routes a raw message to Q&A or structured extraction.
type ChatService interface {
	// Chat classifies the message and dispatches to the matching
	// pipeline, returning a mode-tagged result.
	Chat(ctx context.Context, message string) (domain.ChatResult, error)
}
