package domain

// Answer is the result of a grounded free-text Q&A request.
type Answer struct {
	// Text is the generated answer, or the fallback "not sure" response
	// when no relevant pages were found.
	Text string `json:"answer"`

	// Sources lists the pages whose text was supplied as grounding
	// context, in retrieval order. Empty when no pages matched.
	Sources []SourceRef `json:"sources"`
}

// DoorSchedule is the result of a structured extraction request.
type DoorSchedule struct {
	// Doors holds the validated records; empty when the model output
	// was malformed or no doors were found in context.
	Doors []DoorRecord `json:"data"`

	// Sources lists the pages supplied as extraction context.
	Sources []SourceRef `json:"sources"`
}

// ChatResult is the mode-routed result of a raw chat message.
// Exactly one of Answer or Doors is meaningful, selected by Type.
type ChatResult struct {
	Type    Mode         `json:"type"`
	Answer  string       `json:"answer,omitempty"`
	Doors   []DoorRecord `json:"data,omitempty"`
	Sources []SourceRef  `json:"sources"`
}

// EvalResult is the outcome of one evaluation query.
type EvalResult struct {
	Question string      `json:"question"`
	Expected string      `json:"expected"`
	Label    EvalLabel   `json:"label"`
	Sources  []SourceRef `json:"sources"`
}

// EvalLabel grades an evaluation answer by keyword presence.
type EvalLabel string

const (
	// EvalLooksCorrect means every expected keyword appeared in the answer.
	EvalLooksCorrect EvalLabel = "looks correct"

	// EvalPartiallyCorrect means a keyword appeared only in a source file name.
	EvalPartiallyCorrect EvalLabel = "partially correct"

	// EvalWrong means no expected keyword appeared anywhere.
	EvalWrong EvalLabel = "wrong"
)

// EvalSummary counts evaluation outcomes by label.
type EvalSummary struct {
	LooksCorrect     int `json:"looks_correct"`
	PartiallyCorrect int `json:"partially_correct"`
	Wrong            int `json:"wrong"`
}

// EvalReport is the result of a full evaluation run.
type EvalReport struct {
	RunID   string       `json:"run_id"`
	Summary EvalSummary  `json:"summary"`
	Results []EvalResult `json:"results"`
}
