package models

import (
	"time"
)

// PromptCategory represents the kind of prompt a player can be dealt
type PromptCategory string

const (
	// PromptCategoryTruth indicates a question the player must answer honestly
	PromptCategoryTruth PromptCategory = "truth"

	// PromptCategoryDare indicates a challenge the player must perform
	PromptCategoryDare PromptCategory = "dare"
)

// IsValid reports whether the category is one of the known kinds
func (c PromptCategory) IsValid() bool {
	return c == PromptCategoryTruth || c == PromptCategoryDare
}

// DefaultMode is the prompt mode used when a session does not pick one
const DefaultMode = "classic"

// Prompt is a single truth or dare item in the catalog
type Prompt struct {
	// ID is the unique numeric identifier for the prompt
	ID int64

	// Text is the prompt shown to the player
	Text string

	// Category is whether this is a truth or a dare
	Category PromptCategory

	// Mode is the catalog tier the prompt belongs to (e.g. classic)
	Mode string

	// CreatedAt is when the prompt was added
	CreatedAt time.Time
}
