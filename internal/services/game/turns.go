package game

import (
	"context"
	"errors"
	"sort"

	"github.com/tordbot/tord/internal/models"
	"github.com/tordbot/tord/internal/repositories/ledger"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	promptRepo "github.com/tordbot/tord/internal/repositories/prompt"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
	"github.com/tordbot/tord/internal/scoring"
)

// DrawPrompt deals a random prompt from the catalog to the current turn
// holder
func (s *service) DrawPrompt(ctx context.Context, input *DrawPromptInput) (*DrawPromptOutput, error) {
	if input == nil || input.Code == "" || input.PlayerID == "" {
		return nil, errors.New("input, session code and player ID cannot be empty")
	}

	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if err := s.checkTurn(session, input.PlayerID); err != nil {
		return nil, err
	}

	listResult, err := s.config.PromptRepo.ListPrompts(ctx, &promptRepo.ListPromptsInput{
		Category: input.Category,
		Mode:     session.Mode,
	})
	if err != nil {
		return nil, err
	}

	if len(listResult.Prompts) == 0 {
		return nil, ErrNoPromptsAvailable
	}

	prompt := listResult.Prompts[s.config.Picker.Intn(len(listResult.Prompts))]

	return &DrawPromptOutput{
		Prompt: prompt,
	}, nil
}

// RecordAction records the outcome of a dispensed prompt. Completed
// actions score points and feed the player's lifetime stats.
func (s *service) RecordAction(ctx context.Context, input *RecordActionInput) (*RecordActionOutput, error) {
	if input == nil || input.Code == "" || input.PlayerID == "" {
		return nil, errors.New("input, session code and player ID cannot be empty")
	}

	if !input.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if err := s.checkTurn(session, input.PlayerID); err != nil {
		return nil, err
	}

	record := &models.ActionRecord{
		ID:          s.config.UUIDGenerator.NewUUID(),
		SessionCode: session.Code,
		PlayerID:    input.PlayerID,
		PromptID:    input.PromptID,
		Category:    input.Category,
		Completed:   input.Completed,
		Timestamp:   s.config.Clock.Now(),
	}

	err = s.config.LedgerRepo.AddActionRecord(ctx, &ledger.AddActionRecordInput{
		Record: record,
	})
	if err != nil {
		return nil, err
	}

	points := scoring.Points(input.Category, input.Completed)
	if input.Completed {
		statsInput := &profileRepo.IncrementStatsInput{
			PlayerID:   input.PlayerID,
			ScoreDelta: points,
			Timestamp:  s.config.Clock.Now(),
		}
		if input.Category == models.PromptCategoryTruth {
			statsInput.TruthsCompleted = 1
		} else {
			statsInput.DaresCompleted = 1
		}

		if err := s.config.ProfileRepo.IncrementStats(ctx, statsInput); err != nil {
			return nil, err
		}
	}

	return &RecordActionOutput{
		PointsAwarded: points,
	}, nil
}

// AdvanceTurn passes the turn to the next player in join order, wrapping
// back to the first joiner after the last one
func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and session code cannot be empty")
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if !session.Status.IsActive() {
		return nil, ErrInvalidSessionState
	}

	roster := sortedRoster(session)
	if len(roster) == 0 {
		return nil, ErrPlayerNotInSession
	}

	// If the current holder is somehow gone from the roster, restart the
	// cycle from the first joiner
	current := 0
	for i, entry := range roster {
		if entry.PlayerID == session.CurrentPlayerID {
			current = i
			break
		}
	}

	next := roster[(current+1)%len(roster)]
	session.CurrentPlayerID = next.PlayerID

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &AdvanceTurnOutput{
		NextPlayer: next,
	}, nil
}

// GetStandings computes session-scoped scores from completed ledger
// records, highest first
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and session code cannot be empty")
	}

	session, err := s.getSession(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	entries, err := s.computeStandings(ctx, session)
	if err != nil {
		return nil, err
	}

	return &GetStandingsOutput{
		Entries: entries,
	}, nil
}

// EndSession finishes a session. Standings are computed before teardown,
// every roster member gets a game credited, and the ledger and session are
// removed so a rerun of the teardown is harmless.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
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

	standings, err := s.computeStandings(ctx, session)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	for _, entry := range session.Players {
		err := s.config.ProfileRepo.IncrementStats(ctx, &profileRepo.IncrementStatsInput{
			PlayerID:    entry.PlayerID,
			GamesPlayed: 1,
			Timestamp:   now,
		})
		if err != nil {
			return nil, err
		}
	}

	err = s.config.LedgerRepo.DeleteActionsForSession(ctx, &ledger.DeleteActionsForSessionInput{
		SessionCode: session.Code,
	})
	if err != nil {
		return nil, err
	}

	err = s.config.SessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		Code: session.Code,
	})
	if err != nil {
		return nil, err
	}

	session.Status = models.SessionStatusFinished
	session.FinishedAt = &now

	return &EndSessionOutput{
		Session:        session,
		FinalStandings: standings,
	}, nil
}

// checkTurn verifies the session is active, the player is on the roster,
// and the player holds the turn
func (s *service) checkTurn(session *models.Session, playerID string) error {
	if !session.Status.IsActive() {
		return ErrInvalidSessionState
	}

	if session.FindPlayer(playerID) == nil {
		return ErrPlayerNotInSession
	}

	if session.CurrentPlayerID != playerID {
		return ErrNotYourTurn
	}

	return nil
}

// computeStandings tallies completed ledger records into per-player scores.
// Players without a completed action do not appear.
func (s *service) computeStandings(ctx context.Context, session *models.Session) ([]StandingsEntry, error) {
	actions, err := s.config.LedgerRepo.GetActionsForSession(ctx, &ledger.GetActionsForSessionInput{
		SessionCode: session.Code,
	})
	if err != nil {
		return nil, err
	}

	scores := make(map[string]int)
	for _, record := range actions.Records {
		if !record.Completed {
			continue
		}
		scores[record.PlayerID] += scoring.Points(record.Category, record.Completed)
	}

	entries := make([]StandingsEntry, 0, len(scores))
	for playerID, score := range scores {
		entries = append(entries, StandingsEntry{
			PlayerID:   playerID,
			PlayerName: s.resolvePlayerName(ctx, session, playerID),
			Score:      score,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})

	return entries, nil
}

// resolvePlayerName finds a display name for a player, preferring the
// roster entry and falling back to the profile store
func (s *service) resolvePlayerName(ctx context.Context, session *models.Session, playerID string) string {
	if entry := session.FindPlayer(playerID); entry != nil {
		return entry.PlayerName
	}

	profile, err := s.config.ProfileRepo.GetProfile(ctx, &profileRepo.GetProfileInput{
		PlayerID: playerID,
	})
	if err != nil {
		return "Unknown Player"
	}

	if profile.DisplayName != "" {
		return profile.DisplayName
	}

	return profile.Username
}
