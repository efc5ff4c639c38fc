package scoring

import (
	"github.com/tordbot/tord/internal/models"
)

// Point values per completed prompt. The same table feeds both lifetime
// profile updates and session standings so the two can never diverge.
const (
	// TruthPoints is awarded for a completed truth
	TruthPoints = 10

	// DarePoints is awarded for a completed dare
	DarePoints = 15
)

// Points returns the score awarded for an action in the given category.
// Non-completions score zero.
func Points(category models.PromptCategory, completed bool) int {
	if !completed {
		return 0
	}

	switch category {
	case models.PromptCategoryTruth:
		return TruthPoints
	case models.PromptCategoryDare:
		return DarePoints
	default:
		return 0
	}
}
