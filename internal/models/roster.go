package models

import (
	"time"
)

// RosterEntry represents one player's membership in one session
type RosterEntry struct {
	// ID is a unique identifier for this membership
	ID string

	// SessionCode is the code of the session the player belongs to
	SessionCode string

	// PlayerID is the ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// JoinRank is the player's position in join order, starting at 1
	JoinRank int

	// JoinedAt is when the player joined the session
	JoinedAt time.Time
}
