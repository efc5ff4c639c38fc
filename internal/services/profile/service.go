package profile

import (
	"context"
	"errors"

	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
)

// Define errors
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new profile service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config: cfg,
	}, nil
}

// RegisterPlayer creates or refreshes the profile for a player
func (s *service) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	err := s.config.ProfileRepo.UpsertProfile(ctx, &profileRepo.UpsertProfileInput{
		PlayerID:    input.PlayerID,
		Username:    input.Username,
		DisplayName: input.DisplayName,
		Timestamp:   s.config.Clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	profile, err := s.config.ProfileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterPlayerOutput{
		Profile: profile,
	}, nil
}

// GetStats retrieves the lifetime stats for a player
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	profile, err := s.config.ProfileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &GetStatsOutput{
		Profile: profile,
	}, nil
}

// SearchPlayer looks a player up by ID first and falls back to a username
// lookup
func (s *service) SearchPlayer(ctx context.Context, input *SearchPlayerInput) (*SearchPlayerOutput, error) {
	if input == nil || input.Query == "" {
		return nil, errors.New("input and query cannot be empty")
	}

	profile, err := s.config.ProfileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		PlayerID: input.Query,
	})
	if err == nil {
		return &SearchPlayerOutput{Profile: profile}, nil
	}
	if !errors.Is(err, profileRepo.ErrProfileNotFound) {
		return nil, err
	}

	profile, err = s.config.ProfileRepo.FindByUsername(ctx, &profileRepo.FindByUsernameInput{
		Username: input.Query,
	})
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	return &SearchPlayerOutput{
		Profile: profile,
	}, nil
}

// GetTopPlayers retrieves the highest-scoring players
func (s *service) GetTopPlayers(ctx context.Context, input *GetTopPlayersInput) (*GetTopPlayersOutput, error) {
	limit := DefaultTopLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	result, err := s.config.ProfileRepo.GetTopProfiles(ctx, &profileRepo.GetTopProfilesInput{
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetTopPlayersOutput{
		Profiles: result.Profiles,
	}, nil
}
