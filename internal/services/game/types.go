package game

import (
	"github.com/tordbot/tord/internal/common/clock"
	"github.com/tordbot/tord/internal/common/uuid"
	"github.com/tordbot/tord/internal/gamecode"
	"github.com/tordbot/tord/internal/models"
	"github.com/tordbot/tord/internal/random"
	ledgerRepo "github.com/tordbot/tord/internal/repositories/ledger"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	promptRepo "github.com/tordbot/tord/internal/repositories/prompt"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
)

// MinPlayers is the smallest roster a session can start with
const MinPlayers = 2

// Config holds configuration for the game service
type Config struct {
	// Maximum attempts to generate a collision-free session code
	MaxCodeAttempts int

	// Repository dependencies
	SessionRepo sessionRepo.Repository
	ProfileRepo profileRepo.Repository
	LedgerRepo  ledgerRepo.Repository
	PromptRepo  promptRepo.Repository

	// Service dependencies
	CodeGenerator gamecode.Generator
	Picker        random.Picker
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a new session
type CreateSessionInput struct {
	// CreatorID is the user ID of the player creating the session
	CreatorID string

	// CreatorUsername is the creator's username
	CreatorUsername string

	// CreatorName is the display name of the creator
	CreatorName string

	// Mode is the prompt mode the session draws from; defaults to classic
	Mode string

	// ChannelID optionally binds the session to a channel
	ChannelID string
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	// Session is the newly created session
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// Code is the session code
	Code string
}

// GetSessionOutput contains the result of retrieving a session
type GetSessionOutput struct {
	// Session is the retrieved session
	Session *models.Session
}

// GetSessionByChannelInput contains parameters for retrieving a session by
// its channel binding
type GetSessionByChannelInput struct {
	// ChannelID is the channel the session is bound to
	ChannelID string
}

// GetSessionByChannelOutput contains the result of retrieving a session by
// channel
type GetSessionByChannelOutput struct {
	// Session is the retrieved session
	Session *models.Session
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	// Code is the session code
	Code string

	// PlayerID is the user ID of the joining player
	PlayerID string

	// PlayerUsername is the joining player's username
	PlayerUsername string

	// PlayerName is the display name of the joining player
	PlayerName string
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	// Session is the session after the join
	Session *models.Session

	// AlreadyJoined indicates the player was a member before the call
	AlreadyJoined bool
}

// StartSessionInput contains parameters for starting a session
type StartSessionInput struct {
	// Code is the session code
	Code string

	// PlayerID is the user attempting to start the session
	PlayerID string
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	// Session is the session after the start
	Session *models.Session

	// FirstPlayer is the randomly chosen first turn holder
	FirstPlayer *models.RosterEntry
}

// DrawPromptInput contains parameters for drawing a prompt
type DrawPromptInput struct {
	// Code is the session code
	Code string

	// PlayerID is the player asking for a prompt; must hold the turn
	PlayerID string

	// Category is the prompt category the player picked
	Category models.PromptCategory
}

// DrawPromptOutput contains the result of drawing a prompt
type DrawPromptOutput struct {
	// Prompt is the dispensed prompt
	Prompt *models.Prompt
}

// RecordActionInput contains parameters for recording a prompt outcome
type RecordActionInput struct {
	// Code is the session code
	Code string

	// PlayerID is the player reporting the outcome; must hold the turn
	PlayerID string

	// PromptID is the prompt that was dispensed
	PromptID int64

	// Category is the prompt category
	Category models.PromptCategory

	// Completed indicates whether the player completed the prompt
	Completed bool
}

// RecordActionOutput contains the result of recording an action
type RecordActionOutput struct {
	// PointsAwarded is the score credited for the action
	PointsAwarded int
}

// AdvanceTurnInput contains parameters for advancing the turn
type AdvanceTurnInput struct {
	// Code is the session code
	Code string
}

// AdvanceTurnOutput contains the result of advancing the turn
type AdvanceTurnOutput struct {
	// NextPlayer is the new turn holder
	NextPlayer *models.RosterEntry
}

// GetPlayersInput contains parameters for listing a session roster
type GetPlayersInput struct {
	// Code is the session code
	Code string
}

// GetPlayersOutput contains the roster in join order. An unknown session
// yields an empty roster rather than an error.
type GetPlayersOutput struct {
	Players []*models.RosterEntry
}

// StandingsEntry is one row of the session standings
type StandingsEntry struct {
	// PlayerID is the player the row belongs to
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the session-scoped score from completed actions
	Score int
}

// GetStandingsInput contains parameters for computing session standings
type GetStandingsInput struct {
	// Code is the session code
	Code string
}

// GetStandingsOutput contains the standings, highest score first. Players
// with no completed actions are omitted.
type GetStandingsOutput struct {
	Entries []StandingsEntry
}

// EndSessionInput contains parameters for ending a session
type EndSessionInput struct {
	// Code is the session code
	Code string

	// PlayerID is the user attempting to end the session
	PlayerID string
}

// EndSessionOutput contains the result of ending a session
type EndSessionOutput struct {
	// Session is the finished session as it was at teardown
	Session *models.Session

	// FinalStandings are the standings at the moment the session ended
	FinalStandings []StandingsEntry
}
