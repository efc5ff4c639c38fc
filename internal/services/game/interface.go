package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/tordbot/tord/internal/services/game Service

import "context"

// Service defines the interface for session state machine operations
type Service interface {
	// CreateSession creates a new session and enrolls the creator
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves a session by code
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetSessionByChannel retrieves the session bound to a channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*GetSessionByChannelOutput, error)

	// JoinSession adds a player to a waiting session; re-joining is a no-op
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// StartSession activates a waiting session and picks the first turn
	// holder at random
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// DrawPrompt deals a random prompt to the current turn holder
	DrawPrompt(ctx context.Context, input *DrawPromptInput) (*DrawPromptOutput, error)

	// RecordAction records the outcome of a dispensed prompt
	RecordAction(ctx context.Context, input *RecordActionInput) (*RecordActionOutput, error)

	// AdvanceTurn passes the turn to the next player in join order
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)

	// GetPlayers lists the roster of a session in join order
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// GetStandings computes session-scoped scores from the action ledger
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// EndSession finishes a session, credits lifetime stats, and tears down
	// its ledger and roster
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}
