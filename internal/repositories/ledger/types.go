package ledger

import "github.com/tordbot/tord/internal/models"

type AddActionRecordInput struct {
	Record *models.ActionRecord
}

type GetActionsForSessionInput struct {
	SessionCode string
}

type GetActionsForSessionOutput struct {
	Records []*models.ActionRecord
}

type DeleteActionsForSessionInput struct {
	SessionCode string
}
