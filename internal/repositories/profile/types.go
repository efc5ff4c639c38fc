package profile

import (
	"time"

	"github.com/tordbot/tord/internal/models"
)

type UpsertProfileInput struct {
	PlayerID    string
	Username    string
	DisplayName string
	Timestamp   time.Time
}

type GetProfileInput struct {
	PlayerID string
}

type IncrementStatsInput struct {
	PlayerID        string
	GamesPlayed     int
	TruthsCompleted int
	DaresCompleted  int
	ScoreDelta      int
	Timestamp       time.Time
}

type GetTopProfilesInput struct {
	Limit int
}

type GetTopProfilesOutput struct {
	Profiles []*models.Profile
}

type FindByUsernameInput struct {
	Username string
}

type GetProfileCountsInput struct {
}

type GetProfileCountsOutput struct {
	Total  int64
	Active int64
}
