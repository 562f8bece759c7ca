package driving

import (
	"context"

	"github.com/custodia-labs/planqa-cli/internal/core/domain"
)

// ScheduleService extracts a normalized door schedule from the corpus.
type ScheduleService interface {
	// ExtractSchedule retrieves door-related pages via a fixed query
	// and asks the completion service for a JSON door schedule. The
	// question is only interpolated into the prompt. Malformed model
	// output degrades to an empty schedule, never an error.
	ExtractSchedule(ctx context.Context, question string) (domain.DoorSchedule, error)
}
