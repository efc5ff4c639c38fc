package admin

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/tordbot/tord/internal/services/admin Service

import "context"

// Service defines the interface for catalog administration and bot-wide
// statistics
type Service interface {
	// AddPrompt adds a prompt to the catalog
	AddPrompt(ctx context.Context, input *AddPromptInput) (*AddPromptOutput, error)

	// ListPrompts lists catalog prompts, newest first
	ListPrompts(ctx context.Context, input *ListPromptsInput) (*ListPromptsOutput, error)

	// DeletePrompt removes a prompt from the catalog
	DeletePrompt(ctx context.Context, input *DeletePromptInput) (*DeletePromptOutput, error)

	// GetGeneralStats reports bot-wide totals
	GetGeneralStats(ctx context.Context, input *GetGeneralStatsInput) (*GetGeneralStatsOutput, error)
}
