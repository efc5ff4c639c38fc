package models

import (
	"time"
)

// SessionStatus represents the current lifecycle state of a game session
type SessionStatus string

const (
	// SessionStatusWaiting indicates a session is waiting for players to join
	SessionStatusWaiting SessionStatus = "waiting"

	// SessionStatusActive indicates a session is in progress
	SessionStatusActive SessionStatus = "active"

	// SessionStatusFinished indicates a session has been completed
	SessionStatusFinished SessionStatus = "finished"
)

// IsWaiting reports whether the session is still accepting players
func (s SessionStatus) IsWaiting() bool {
	return s == SessionStatusWaiting
}

// IsActive reports whether the session is in progress
func (s SessionStatus) IsActive() bool {
	return s == SessionStatusActive
}

// Session represents one truth-or-dare game round
type Session struct {
	// Code is the unique human-shareable code identifying the session
	Code string

	// CreatorID is the ID of the player who created the session
	CreatorID string

	// Mode is the prompt mode tag the session draws from (e.g. classic)
	Mode string

	// Status is the current lifecycle state of the session
	Status SessionStatus

	// CurrentPlayerID is the player whose turn it is; empty unless the
	// session is active
	CurrentPlayerID string

	// ChannelID is the Discord channel the session is bound to, if any
	ChannelID string

	// Players is the ordered roster of session members
	Players []*RosterEntry

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// FinishedAt is when the session was completed, if it has been
	FinishedAt *time.Time
}

// FindPlayer returns the roster entry for a player, or nil if the player
// has not joined the session
func (s *Session) FindPlayer(playerID string) *RosterEntry {
	for _, entry := range s.Players {
		if entry.PlayerID == playerID {
			return entry
		}
	}
	return nil
}
