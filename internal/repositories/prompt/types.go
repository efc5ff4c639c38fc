package prompt

import (
	"time"

	"github.com/tordbot/tord/internal/models"
)

type CreatePromptInput struct {
	Text      string
	Category  models.PromptCategory
	Mode      string
	Timestamp time.Time
}

type CreatePromptOutput struct {
	Prompt *models.Prompt
}

type GetPromptInput struct {
	PromptID int64
}

type ListPromptsInput struct {
	// Category filters by prompt category when set
	Category models.PromptCategory

	// Mode filters by prompt mode when set
	Mode string

	// Limit caps the number of prompts returned; zero means no cap
	Limit int
}

type ListPromptsOutput struct {
	Prompts []*models.Prompt
}

type DeletePromptInput struct {
	PromptID int64
}

type GetPromptCountsInput struct {
}

type GetPromptCountsOutput struct {
	Total  int64
	Truths int64
	Dares  int64
}
