package convstate

import (
	"time"

	"github.com/tordbot/tord/internal/models"
)

type SaveStateInput struct {
	State *models.ConversationState

	// TTL bounds how long the state may sit before expiring
	TTL time.Duration
}

type GetStateInput struct {
	ActorID string
}

type ClearStateInput struct {
	ActorID string
}
