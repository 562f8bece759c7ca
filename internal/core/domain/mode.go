package domain

import "strings"

// Mode classifies an incoming query.
type Mode string

const (
	// ModeQA answers the query as free-text grounded Q&A.
	ModeQA Mode = "qa"

	// ModeStructured extracts a door schedule as typed records.
	ModeStructured Mode = "structured"
)

// DetectMode classifies a raw query string. Matching is case-insensitive:
// the exact phrase "door schedule", or the presence of both the "door"
// and "schedule" tokens, selects structured extraction. Everything else
// is free-text Q&A.
func DetectMode(message string) Mode {
	msg := strings.ToLower(message)

	if strings.Contains(msg, "door schedule") {
		return ModeStructured
	}

	var hasDoor, hasSchedule bool
	for _, word := range strings.Fields(msg) {
		switch strings.Trim(word, ".,;:!?\"'()") {
		case "door", "doors":
			hasDoor = true
		case "schedule", "schedules":
			hasSchedule = true
		}
	}
	if hasDoor && hasSchedule {
		return ModeStructured
	}

	return ModeQA
}
