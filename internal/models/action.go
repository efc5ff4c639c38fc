package models

import (
	"time"
)

// ActionRecord records one dispensed prompt and its outcome
type ActionRecord struct {
	// ID is the unique identifier for the record
	ID string

	// SessionCode is the code of the session the action belongs to
	SessionCode string

	// PlayerID is the ID of the player who took the action
	PlayerID string

	// PromptID is the ID of the prompt that was dispensed
	PromptID int64

	// Category is the prompt category the player picked
	Category PromptCategory

	// Completed indicates whether the player completed the prompt
	Completed bool

	// Timestamp is when the action was recorded
	Timestamp time.Time
}
