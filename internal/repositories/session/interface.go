package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tordbot/tord/internal/repositories/session Repository

import (
	"context"

	"github.com/tordbot/tord/internal/models"
)

// Repository defines the interface for session data persistence
type Repository interface {
	// CreateSession persists a new session, failing if the code is taken
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by code
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetSessionByChannel retrieves the session bound to a channel
	GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error)

	// SaveSession persists an existing session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// DeleteSession removes a session and its roster; deleting a missing
	// session is not an error
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetSessionCounts reports how many sessions exist and how many are active
	GetSessionCounts(ctx context.Context, input *GetSessionCountsInput) (*GetSessionCountsOutput, error)
}
