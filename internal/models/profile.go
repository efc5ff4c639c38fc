package models

import (
	"time"
)

// Profile holds a player's lifetime statistics across sessions
type Profile struct {
	// ID is the Discord user ID of the player
	ID string

	// Username is the player's Discord username
	Username string

	// DisplayName is the player's display name
	DisplayName string

	// GamesPlayed is the number of sessions the player has finished
	GamesPlayed int

	// TruthsCompleted is the number of truth prompts the player completed
	TruthsCompleted int

	// DaresCompleted is the number of dare prompts the player completed
	DaresCompleted int

	// TotalScore is the player's lifetime score
	TotalScore int

	// CreatedAt is when the player was first seen
	CreatedAt time.Time

	// LastActivity is when the player last interacted with the bot
	LastActivity time.Time
}
