package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/tordbot/tord/internal/services/profile Service

import "context"

// Service defines the interface for player profile operations
type Service interface {
	// RegisterPlayer creates or refreshes the profile for a player
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)

	// GetStats retrieves the lifetime stats for a player
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// SearchPlayer looks a player up by ID or username
	SearchPlayer(ctx context.Context, input *SearchPlayerInput) (*SearchPlayerOutput, error)

	// GetTopPlayers retrieves the highest-scoring players
	GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error)
}
