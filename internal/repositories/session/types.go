package session

import "github.com/tordbot/tord/internal/models"

type CreateSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	Code string
}

type GetSessionByChannelInput struct {
	ChannelID string
}

type SaveSessionInput struct {
	Session *models.Session
}

type DeleteSessionInput struct {
	Code string
}

type GetSessionCountsInput struct {
}

type GetSessionCountsOutput struct {
	Total  int64
	Active int64
}
