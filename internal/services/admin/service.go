package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/tordbot/tord/internal/models"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	promptRepo "github.com/tordbot/tord/internal/repositories/prompt"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
)

// Define errors
var (
	ErrEmptyPromptText = errors.New("prompt text cannot be empty")
	ErrInvalidCategory = errors.New("invalid prompt category")
	ErrPromptNotFound  = errors.New("prompt not found")
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new admin service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PromptRepo == nil {
		return nil, errors.New("prompt repository cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		config: cfg,
	}, nil
}

// AddPrompt adds a prompt to the catalog
func (s *service) AddPrompt(ctx context.Context, input *AddPromptInput) (*AddPromptOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, ErrEmptyPromptText
	}

	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	mode := input.Mode
	if mode == "" {
		mode = models.DefaultMode
	}

	result, err := s.config.PromptRepo.CreatePrompt(ctx, &promptRepo.CreatePromptInput{
		Text:      text,
		Category:  input.Category,
		Mode:      mode,
		Timestamp: s.config.Clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &AddPromptOutput{
		Prompt: result.Prompt,
	}, nil
}

// ListPrompts lists catalog prompts, newest first
func (s *service) ListPrompts(ctx context.Context, input *ListPromptsInput) (*ListPromptsOutput, error) {
	if input == nil {
		input = &ListPromptsInput{}
	}

	if input.Category != "" && !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	result, err := s.config.PromptRepo.ListPrompts(ctx, &promptRepo.ListPromptsInput{
		Category: input.Category,
		Mode:     input.Mode,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListPromptsOutput{
		Prompts: result.Prompts,
	}, nil
}

// DeletePrompt removes a prompt from the catalog
func (s *service) DeletePrompt(ctx context.Context, input *DeletePromptInput) (*DeletePromptOutput, error) {
	if input == nil || input.PromptID <= 0 {
		return nil, errors.New("input and prompt ID cannot be empty")
	}

	existed := true
	_, err := s.config.PromptRepo.GetPrompt(ctx, &promptRepo.GetPromptInput{
		PromptID: input.PromptID,
	})
	if err != nil {
		if !errors.Is(err, promptRepo.ErrPromptNotFound) {
			return nil, err
		}
		existed = false
	}

	err = s.config.PromptRepo.DeletePrompt(ctx, &promptRepo.DeletePromptInput{
		PromptID: input.PromptID,
	})
	if err != nil {
		return nil, err
	}

	return &DeletePromptOutput{
		Existed: existed,
	}, nil
}

// GetGeneralStats reports bot-wide totals
func (s *service) GetGeneralStats(ctx context.Context, input *GetGeneralStatsInput) (*GetGeneralStatsOutput, error) {
	sessionCounts, err := s.config.SessionRepo.GetSessionCounts(ctx, &sessionRepo.GetSessionCountsInput{})
	if err != nil {
		return nil, err
	}

	profileCounts, err := s.config.ProfileRepo.GetProfileCounts(ctx, &profileRepo.GetProfileCountsInput{})
	if err != nil {
		return nil, err
	}

	promptCounts, err := s.config.PromptRepo.GetPromptCounts(ctx, &promptRepo.GetPromptCountsInput{})
	if err != nil {
		return nil, err
	}

	return &GetGeneralStatsOutput{
		TotalSessions:  sessionCounts.Total,
		ActiveSessions: sessionCounts.Active,
		TotalPlayers:   profileCounts.Total,
		ActivePlayers:  profileCounts.Active,
		TotalPrompts:   promptCounts.Total,
		TruthPrompts:   promptCounts.Truths,
		DarePrompts:    promptCounts.Dares,
	}, nil
}
