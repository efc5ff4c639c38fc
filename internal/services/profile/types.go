package profile

import (
	"github.com/tordbot/tord/internal/common/clock"
	"github.com/tordbot/tord/internal/models"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
)

// DefaultTopLimit caps leaderboard requests that do not name a limit
const DefaultTopLimit = 10

// Config holds configuration for the profile service
type Config struct {
	ProfileRepo profileRepo.Repository
	Clock       clock.Clock
}

// RegisterPlayerInput contains parameters for registering a player
type RegisterPlayerInput struct {
	// PlayerID is the user ID of the player
	PlayerID string

	// Username is the player's username
	Username string

	// DisplayName is the player's display name
	DisplayName string
}

// RegisterPlayerOutput contains the result of registering a player
type RegisterPlayerOutput struct {
	// Profile is the profile after registration
	Profile *models.Profile
}

// GetStatsInput contains parameters for retrieving player stats
type GetStatsInput struct {
	// PlayerID is the user ID of the player
	PlayerID string
}

// GetStatsOutput contains a player's lifetime stats
type GetStatsOutput struct {
	// Profile holds the stats
	Profile *models.Profile
}

// SearchPlayerInput contains parameters for looking a player up. Query is
// tried as a player ID first and as a username second.
type SearchPlayerInput struct {
	// Query is the ID or username to search for
	Query string
}

// SearchPlayerOutput contains the result of a player lookup
type SearchPlayerOutput struct {
	// Profile is the matched profile
	Profile *models.Profile
}

// GetTopPlayersInput contains parameters for the leaderboard
type GetTopPlayersInput struct {
	// Limit caps the number of entries; zero means DefaultTopLimit
	Limit int
}

// GetTopPlayersOutput contains the leaderboard, highest score first
type GetTopPlayersOutput struct {
	Profiles []*models.Profile
}
