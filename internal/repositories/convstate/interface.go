package convstate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tordbot/tord/internal/repositories/convstate Repository

import (
	"context"

	"github.com/tordbot/tord/internal/models"
)

// Repository persists per-actor conversation state for multi-step flows.
// Every state is written with a TTL so abandoned flows expire instead of
// accumulating.
type Repository interface {
	// SaveState stores the state for an actor, replacing any previous state
	SaveState(ctx context.Context, input *SaveStateInput) error

	// GetState retrieves the state for an actor
	GetState(ctx context.Context, input *GetStateInput) (*models.ConversationState, error)

	// ClearState removes the state for an actor; clearing a missing state is
	// not an error
	ClearState(ctx context.Context, input *ClearStateInput) error
}
