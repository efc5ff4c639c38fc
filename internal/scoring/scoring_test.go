package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tordbot/tord/internal/models"
)

func TestPoints(t *testing.T) {
	assert.Equal(t, 10, Points(models.PromptCategoryTruth, true))
	assert.Equal(t, 15, Points(models.PromptCategoryDare, true))
}

func TestPoints_NotCompleted(t *testing.T) {
	assert.Equal(t, 0, Points(models.PromptCategoryTruth, false))
	assert.Equal(t, 0, Points(models.PromptCategoryDare, false))
}

func TestPoints_UnknownCategory(t *testing.T) {
	assert.Equal(t, 0, Points(models.PromptCategory("poetry"), true))
}
