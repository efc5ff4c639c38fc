package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/tordbot/tord/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for action ledger persistence. The ledger
// is append-only while a session runs and bulk-deleted when it finishes.
type Repository interface {
	// AddActionRecord appends an action record to the ledger
	AddActionRecord(ctx context.Context, input *AddActionRecordInput) error

	// GetActionsForSession retrieves all action records for a session
	GetActionsForSession(ctx context.Context, input *GetActionsForSessionInput) (*GetActionsForSessionOutput, error)

	// DeleteActionsForSession deletes all action records for a session;
	// deleting records that are already gone is not an error
	DeleteActionsForSession(ctx context.Context, input *DeleteActionsForSessionInput) error
}
