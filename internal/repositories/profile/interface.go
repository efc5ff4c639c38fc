package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tordbot/tord/internal/repositories/profile Repository

import (
	"context"

	"github.com/tordbot/tord/internal/models"
)

// Repository defines the interface for player profile persistence
type Repository interface {
	// UpsertProfile creates a profile on first contact or refreshes its
	// identity fields; calling it repeatedly is safe
	UpsertProfile(ctx context.Context, input *UpsertProfileInput) error

	// GetProfile retrieves a profile by player ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error)

	// IncrementStats atomically applies lifetime stat deltas
	IncrementStats(ctx context.Context, input *IncrementStatsInput) error

	// GetTopProfiles retrieves the highest-scoring profiles
	GetTopProfiles(ctx context.Context, input *GetTopProfilesInput) (*GetTopProfilesOutput, error)

	// FindByUsername retrieves a profile by its username
	FindByUsername(ctx context.Context, input *FindByUsernameInput) (*models.Profile, error)

	// GetProfileCounts reports how many profiles exist and how many have
	// finished at least one session
	GetProfileCounts(ctx context.Context, input *GetProfileCountsInput) (*GetProfileCountsOutput, error)
}
