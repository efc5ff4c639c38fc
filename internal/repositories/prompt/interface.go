package prompt

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tordbot/tord/internal/repositories/prompt Repository

import (
	"context"

	"github.com/tordbot/tord/internal/models"
)

// Repository defines the interface for prompt catalog persistence
type Repository interface {
	// CreatePrompt adds a prompt to the catalog with a generated numeric ID
	CreatePrompt(ctx context.Context, input *CreatePromptInput) (*CreatePromptOutput, error)

	// GetPrompt retrieves a prompt by ID
	GetPrompt(ctx context.Context, input *GetPromptInput) (*models.Prompt, error)

	// ListPrompts retrieves prompts matching the filter, newest first
	ListPrompts(ctx context.Context, input *ListPromptsInput) (*ListPromptsOutput, error)

	// DeletePrompt removes a prompt; deleting a missing prompt is not an error
	DeletePrompt(ctx context.Context, input *DeletePromptInput) error

	// GetPromptCounts reports catalog sizes by category
	GetPromptCounts(ctx context.Context, input *GetPromptCountsInput) (*GetPromptCountsOutput, error)
}
