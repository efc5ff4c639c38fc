package game

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tordbot/tord/internal/models"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
)

const defaultMaxCodeAttempts = 10

// service implements the Service interface
type service struct {
	config          *Config
	maxCodeAttempts int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.ProfileRepo == nil {
		return nil, errors.New("profile repository cannot be nil")
	}

	if cfg.LedgerRepo == nil {
		return nil, errors.New("ledger repository cannot be nil")
	}

	if cfg.PromptRepo == nil {
		return nil, errors.New("prompt repository cannot be nil")
	}

	if cfg.CodeGenerator == nil {
		return nil, errors.New("code generator cannot be nil")
	}

	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	maxCodeAttempts := cfg.MaxCodeAttempts
	if maxCodeAttempts <= 0 {
		maxCodeAttempts = defaultMaxCodeAttempts
	}

	return &service{
		config:          cfg,
		maxCodeAttempts: maxCodeAttempts,
	}, nil
}

// CreateSession creates a new session and enrolls the creator as the first
// roster entry
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CreatorID == "" {
		return nil, errors.New("creator ID cannot be empty")
	}

	// Make sure the creator has a profile before they appear on a roster
	err := s.config.ProfileRepo.UpsertProfile(ctx, &profileRepo.UpsertProfileInput{
		PlayerID:    input.CreatorID,
		Username:    input.CreatorUsername,
		DisplayName: input.CreatorName,
		Timestamp:   s.config.Clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	mode := input.Mode
	if mode == "" {
		mode = models.DefaultMode
	}

	now := s.config.Clock.Now()

	// Generate codes until one is free; the repository rejects duplicates
	for attempt := 0; attempt < s.maxCodeAttempts; attempt++ {
		code := s.config.CodeGenerator.NewCode()

		session := &models.Session{
			Code:      code,
			CreatorID: input.CreatorID,
			Mode:      mode,
			Status:    models.SessionStatusWaiting,
			ChannelID: input.ChannelID,
			Players: []*models.RosterEntry{
				{
					ID:          s.config.UUIDGenerator.NewUUID(),
					SessionCode: code,
					PlayerID:    input.CreatorID,
					PlayerName:  input.CreatorName,
					JoinRank:    1,
					JoinedAt:    now,
				},
			},
			CreatedAt: now,
		}

		err := s.config.SessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
			Session: session,
		})
		if err != nil {
			if errors.Is(err, sessionRepo.ErrCodeAlreadyExists) {
				continue
			}
			return nil, err
		}

		return &CreateSessionOutput{
			Session: session,
		}, nil
	}

	return nil, fmt.Errorf("failed to generate a unique session code after %d attempts", s.maxCodeAttempts)
}

// GetSession retrieves a session by code
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and session code cannot be empty")
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: session,
	}, nil
}

// GetSessionByChannel retrieves the session bound to a channel
func (s *service) GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*GetSessionByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	session, err := s.config.SessionRepo.GetSessionByChannel(ctx, &sessionRepo.GetSessionByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &GetSessionByChannelOutput{
		Session: session,
	}, nil
}

// JoinSession adds a player to a waiting session. Joining a session the
// player already belongs to succeeds without changing the roster.
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil || input.Code == "" || input.PlayerID == "" {
		return nil, errors.New("input, session code and player ID cannot be empty")
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if existing := session.FindPlayer(input.PlayerID); existing != nil {
		return &JoinSessionOutput{
			Session:       session,
			AlreadyJoined: true,
		}, nil
	}

	if !session.Status.IsWaiting() {
		return nil, ErrInvalidSessionState
	}

	// Make sure the player has a profile before they appear on a roster
	err = s.config.ProfileRepo.UpsertProfile(ctx, &profileRepo.UpsertProfileInput{
		PlayerID:    input.PlayerID,
		Username:    input.PlayerUsername,
		DisplayName: input.PlayerName,
		Timestamp:   s.config.Clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	entry := &models.RosterEntry{
		ID:          s.config.UUIDGenerator.NewUUID(),
		SessionCode: session.Code,
		PlayerID:    input.PlayerID,
		PlayerName:  input.PlayerName,
		JoinRank:    len(session.Players) + 1,
		JoinedAt:    s.config.Clock.Now(),
	}
	session.Players = append(session.Players, entry)

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &JoinSessionOutput{
		Session: session,
	}, nil
}

// StartSession activates a waiting session. Only the creator may start it,
// the roster must hold at least MinPlayers, and the first turn goes to a
// uniformly random roster member rather than the first joiner.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || input.Code == "" || input.PlayerID == "" {
		return nil, errors.New("input, session code and player ID cannot be empty")
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if session.CreatorID != input.PlayerID {
		return nil, ErrNotCreator
	}

	if !session.Status.IsWaiting() {
		return nil, ErrInvalidSessionState
	}

	if len(session.Players) < MinPlayers {
		return nil, ErrNotEnoughPlayers
	}

	roster := sortedRoster(session)
	firstPlayer := roster[s.config.Picker.Intn(len(roster))]

	session.Status = models.SessionStatusActive
	session.CurrentPlayerID = firstPlayer.PlayerID

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &StartSessionOutput{
		Session:     session,
		FirstPlayer: firstPlayer,
	}, nil
}

// GetPlayers lists the roster of a session in join order. An unknown
// session yields an empty roster.
func (s *service) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and session code cannot be empty")
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return &GetPlayersOutput{
				Players: []*models.RosterEntry{},
			}, nil
		}
		return nil, err
	}

	return &GetPlayersOutput{
		Players: sortedRoster(session),
	}, nil
}

// getSession fetches a session and maps the repository sentinel onto the
// service error
func (s *service) getSession(ctx context.Context, code string) (*models.Session, error) {
	session, err := s.config.SessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		Code: code,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return session, nil
}

// sortedRoster returns the session roster ordered by join rank
func sortedRoster(session *models.Session) []*models.RosterEntry {
	roster := make([]*models.RosterEntry, len(session.Players))
	copy(roster, session.Players)

	sort.Slice(roster, func(i, j int) bool {
		return roster[i].JoinRank < roster[j].JoinRank
	})

	return roster
}
