package admin

import (
	"github.com/tordbot/tord/internal/common/clock"
	"github.com/tordbot/tord/internal/models"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	promptRepo "github.com/tordbot/tord/internal/repositories/prompt"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
)

// DefaultListLimit caps prompt listings that do not name a limit
const DefaultListLimit = 25

// Config holds configuration for the admin service
type Config struct {
	PromptRepo  promptRepo.Repository
	SessionRepo sessionRepo.Repository
	ProfileRepo profileRepo.Repository
	Clock       clock.Clock
}

// AddPromptInput contains parameters for adding a prompt
type AddPromptInput struct {
	// Text is the prompt text shown to players
	Text string

	// Category is truth or dare
	Category models.PromptCategory

	// Mode is the prompt mode; defaults to classic
	Mode string
}

// AddPromptOutput contains the result of adding a prompt
type AddPromptOutput struct {
	// Prompt is the stored prompt with its assigned ID
	Prompt *models.Prompt
}

// ListPromptsInput contains parameters for listing prompts
type ListPromptsInput struct {
	// Category filters by category when set
	Category models.PromptCategory

	// Mode filters by mode when set
	Mode string

	// Limit caps the number of prompts; zero means DefaultListLimit
	Limit int
}

// ListPromptsOutput contains the listed prompts, newest first
type ListPromptsOutput struct {
	Prompts []*models.Prompt
}

// DeletePromptInput contains parameters for deleting a prompt
type DeletePromptInput struct {
	// PromptID is the prompt to delete
	PromptID int64
}

// DeletePromptOutput contains the result of deleting a prompt
type DeletePromptOutput struct {
	// Existed indicates whether the prompt was present before the delete
	Existed bool
}

// GetGeneralStatsInput contains parameters for bot-wide statistics
type GetGeneralStatsInput struct {
}

// GetGeneralStatsOutput contains bot-wide totals
type GetGeneralStatsOutput struct {
	// TotalSessions is how many sessions exist
	TotalSessions int64

	// ActiveSessions is how many sessions are running
	ActiveSessions int64

	// TotalPlayers is how many profiles exist
	TotalPlayers int64

	// ActivePlayers is how many profiles finished at least one session
	ActivePlayers int64

	// TotalPrompts is the catalog size
	TotalPrompts int64

	// TruthPrompts is the number of truth prompts
	TruthPrompts int64

	// DarePrompts is the number of dare prompts
	DarePrompts int64
}
