package game

import "errors"

// Define errors
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrPlayerNotInSession  = errors.New("player is not in the session")
	ErrInvalidSessionState = errors.New("invalid session state")
	ErrNotCreator          = errors.New("only the session creator may do that")
	ErrNotEnoughPlayers    = errors.New("not enough players to start")
	ErrNotYourTurn         = errors.New("it is not your turn")
	ErrInvalidCategory     = errors.New("invalid prompt category")
	ErrNoPromptsAvailable  = errors.New("no prompts available for this category and mode")
)
