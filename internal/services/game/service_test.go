package game

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/tordbot/tord/internal/common/clock/mocks"
	uuidMocks "github.com/tordbot/tord/internal/common/uuid/mocks"
	codeMocks "github.com/tordbot/tord/internal/gamecode/mocks"
	"github.com/tordbot/tord/internal/models"
	randomMocks "github.com/tordbot/tord/internal/random/mocks"
	ledgerRepo "github.com/tordbot/tord/internal/repositories/ledger"
	ledgerMocks "github.com/tordbot/tord/internal/repositories/ledger/mocks"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	profileMocks "github.com/tordbot/tord/internal/repositories/profile/mocks"
	promptRepo "github.com/tordbot/tord/internal/repositories/prompt"
	promptMocks "github.com/tordbot/tord/internal/repositories/prompt/mocks"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
	sessionMocks "github.com/tordbot/tord/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockProfileRepo *profileMocks.MockRepository
	mockLedgerRepo  *ledgerMocks.MockRepository
	mockPromptRepo  *promptMocks.MockRepository
	mockCodeGen     *codeMocks.MockGenerator
	mockPicker      *randomMocks.MockPicker
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	gameService     Service
	ctx             context.Context

	// Test data
	testTime      time.Time
	testCode      string
	testChannelID string
	testCreatorID string
	testCreator   string
	testPlayerID  string
	testPlayer    string
	testEntryID   string

	// Reusable test fixtures
	waitingSession *models.Session
	activeSession  *models.Session
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockProfileRepo = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockPromptRepo = promptMocks.NewMockRepository(s.mockCtrl)
	s.mockCodeGen = codeMocks.NewMockGenerator(s.mockCtrl)
	s.mockPicker = randomMocks.NewMockPicker(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)
	s.testCode = "AB12CD34"
	s.testChannelID = "test-channel-id"
	s.testCreatorID = "test-creator-id"
	s.testCreator = "Test Creator"
	s.testPlayerID = "test-player-id"
	s.testPlayer = "Test Player"
	s.testEntryID = "test-entry-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Waiting session with creator and one more player on the roster
	s.waitingSession = &models.Session{
		Code:      s.testCode,
		CreatorID: s.testCreatorID,
		Mode:      models.DefaultMode,
		Status:    models.SessionStatusWaiting,
		ChannelID: s.testChannelID,
		Players: []*models.RosterEntry{
			{
				ID:          "entry-1",
				SessionCode: s.testCode,
				PlayerID:    s.testCreatorID,
				PlayerName:  s.testCreator,
				JoinRank:    1,
				JoinedAt:    s.testTime,
			},
			{
				ID:          "entry-2",
				SessionCode: s.testCode,
				PlayerID:    s.testPlayerID,
				PlayerName:  s.testPlayer,
				JoinRank:    2,
				JoinedAt:    s.testTime,
			},
		},
		CreatedAt: s.testTime,
	}

	// Same roster, running, creator holds the turn
	s.activeSession = &models.Session{
		Code:            s.testCode,
		CreatorID:       s.testCreatorID,
		Mode:            models.DefaultMode,
		Status:          models.SessionStatusActive,
		CurrentPlayerID: s.testCreatorID,
		ChannelID:       s.testChannelID,
		Players:         s.waitingSession.Players,
		CreatedAt:       s.testTime,
	}

	var err error
	s.gameService, err = New(&Config{
		SessionRepo:   s.mockSessionRepo,
		ProfileRepo:   s.mockProfileRepo,
		LedgerRepo:    s.mockLedgerRepo,
		PromptRepo:    s.mockPromptRepo,
		CodeGenerator: s.mockCodeGen,
		Picker:        s.mockPicker,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GameServiceTestSuite) TestCreateSession() {
	s.mockProfileRepo.EXPECT().UpsertProfile(s.ctx, &profileRepo.UpsertProfileInput{
		PlayerID:    s.testCreatorID,
		Username:    "creator",
		DisplayName: s.testCreator,
		Timestamp:   s.testTime,
	}).Return(nil)
	s.mockCodeGen.EXPECT().NewCode().Return(s.testCode)
	s.mockUUID.EXPECT().NewUUID().Return(s.testEntryID)
	s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.CreateSessionInput) error {
			s.Equal(s.testCode, input.Session.Code)
			s.Equal(s.testCreatorID, input.Session.CreatorID)
			s.Equal(models.SessionStatusWaiting, input.Session.Status)
			s.Equal(models.DefaultMode, input.Session.Mode)
			s.Require().Len(input.Session.Players, 1)
			s.Equal(1, input.Session.Players[0].JoinRank)
			s.Equal(s.testCreatorID, input.Session.Players[0].PlayerID)
			return nil
		})

	result, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		CreatorID:       s.testCreatorID,
		CreatorUsername: "creator",
		CreatorName:     s.testCreator,
		ChannelID:       s.testChannelID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(s.testCode, result.Session.Code)
}

func (s *GameServiceTestSuite) TestCreateSession_CodeCollisionRetries() {
	s.mockProfileRepo.EXPECT().UpsertProfile(s.ctx, gomock.Any()).Return(nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testEntryID).Times(2)

	gomock.InOrder(
		s.mockCodeGen.EXPECT().NewCode().Return("TAKEN123"),
		s.mockCodeGen.EXPECT().NewCode().Return(s.testCode),
	)
	gomock.InOrder(
		s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).Return(sessionRepo.ErrCodeAlreadyExists),
		s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).Return(nil),
	)

	result, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		CreatorID:   s.testCreatorID,
		CreatorName: s.testCreator,
	})

	s.Require().NoError(err)
	s.Equal(s.testCode, result.Session.Code)
}

func (s *GameServiceTestSuite) TestCreateSession_CodeSpaceExhausted() {
	s.mockProfileRepo.EXPECT().UpsertProfile(s.ctx, gomock.Any()).Return(nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testEntryID).Times(defaultMaxCodeAttempts)
	s.mockCodeGen.EXPECT().NewCode().Return("TAKEN123").Times(defaultMaxCodeAttempts)
	s.mockSessionRepo.EXPECT().CreateSession(s.ctx, gomock.Any()).
		Return(sessionRepo.ErrCodeAlreadyExists).Times(defaultMaxCodeAttempts)

	result, err := s.gameService.CreateSession(s.ctx, &CreateSessionInput{
		CreatorID:   s.testCreatorID,
		CreatorName: s.testCreator,
	})

	s.Error(err)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestGetSession_NotFound() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, &sessionRepo.GetSessionInput{
		Code: s.testCode,
	}).Return(nil, sessionRepo.ErrSessionNotFound)

	result, err := s.gameService.GetSession(s.ctx, &GetSessionInput{Code: s.testCode})

	s.ErrorIs(err, ErrSessionNotFound)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestJoinSession() {
	joining := &models.Session{
		Code:      s.testCode,
		CreatorID: s.testCreatorID,
		Mode:      models.DefaultMode,
		Status:    models.SessionStatusWaiting,
		Players: []*models.RosterEntry{
			{
				ID:         "entry-1",
				PlayerID:   s.testCreatorID,
				PlayerName: s.testCreator,
				JoinRank:   1,
			},
		},
	}

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(joining, nil)
	s.mockProfileRepo.EXPECT().UpsertProfile(s.ctx, gomock.Any()).Return(nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testEntryID)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Require().Len(input.Session.Players, 2)
			s.Equal(2, input.Session.Players[1].JoinRank)
			s.Equal(s.testPlayerID, input.Session.Players[1].PlayerID)
			return nil
		})

	result, err := s.gameService.JoinSession(s.ctx, &JoinSessionInput{
		Code:       s.testCode,
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayer,
	})

	s.Require().NoError(err)
	s.False(result.AlreadyJoined)
	s.Len(result.Session.Players, 2)
}

func (s *GameServiceTestSuite) TestJoinSession_AlreadyJoined() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.waitingSession, nil)

	result, err := s.gameService.JoinSession(s.ctx, &JoinSessionInput{
		Code:       s.testCode,
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayer,
	})

	s.Require().NoError(err)
	s.True(result.AlreadyJoined)
	s.Len(result.Session.Players, 2)
}

func (s *GameServiceTestSuite) TestJoinSession_ActiveSessionRejected() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)

	result, err := s.gameService.JoinSession(s.ctx, &JoinSessionInput{
		Code:       s.testCode,
		PlayerID:   "late-player",
		PlayerName: "Late Player",
	})

	s.ErrorIs(err, ErrInvalidSessionState)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestJoinSession_ActiveRejoinIsNoOp() {
	// A member re-joining an active session still succeeds quietly
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)

	result, err := s.gameService.JoinSession(s.ctx, &JoinSessionInput{
		Code:       s.testCode,
		PlayerID:   s.testPlayerID,
		PlayerName: s.testPlayer,
	})

	s.Require().NoError(err)
	s.True(result.AlreadyJoined)
}

func (s *GameServiceTestSuite) TestStartSession() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.waitingSession, nil)
	s.mockPicker.EXPECT().Intn(2).Return(1)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(models.SessionStatusActive, input.Session.Status)
			s.Equal(s.testPlayerID, input.Session.CurrentPlayerID)
			return nil
		})

	result, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
	})

	s.Require().NoError(err)
	s.Equal(s.testPlayerID, result.FirstPlayer.PlayerID)
	s.Equal(models.SessionStatusActive, result.Session.Status)
}

func (s *GameServiceTestSuite) TestStartSession_NotCreator() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.waitingSession, nil)

	result, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Code:     s.testCode,
		PlayerID: s.testPlayerID,
	})

	s.ErrorIs(err, ErrNotCreator)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestStartSession_AlreadyActive() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)

	result, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
	})

	s.ErrorIs(err, ErrInvalidSessionState)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestStartSession_NotEnoughPlayers() {
	solo := &models.Session{
		Code:      s.testCode,
		CreatorID: s.testCreatorID,
		Status:    models.SessionStatusWaiting,
		Players: []*models.RosterEntry{
			{PlayerID: s.testCreatorID, PlayerName: s.testCreator, JoinRank: 1},
		},
	}
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(solo, nil)

	result, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
	})

	s.ErrorIs(err, ErrNotEnoughPlayers)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestDrawPrompt() {
	prompts := []*models.Prompt{
		{ID: 3, Text: "Truth three", Category: models.PromptCategoryTruth, Mode: models.DefaultMode},
		{ID: 2, Text: "Truth two", Category: models.PromptCategoryTruth, Mode: models.DefaultMode},
		{ID: 1, Text: "Truth one", Category: models.PromptCategoryTruth, Mode: models.DefaultMode},
	}

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockPromptRepo.EXPECT().ListPrompts(s.ctx, &promptRepo.ListPromptsInput{
		Category: models.PromptCategoryTruth,
		Mode:     models.DefaultMode,
	}).Return(&promptRepo.ListPromptsOutput{Prompts: prompts}, nil)
	s.mockPicker.EXPECT().Intn(3).Return(1)

	result, err := s.gameService.DrawPrompt(s.ctx, &DrawPromptInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
		Category: models.PromptCategoryTruth,
	})

	s.Require().NoError(err)
	s.Equal(int64(2), result.Prompt.ID)
}

func (s *GameServiceTestSuite) TestDrawPrompt_InvalidCategory() {
	result, err := s.gameService.DrawPrompt(s.ctx, &DrawPromptInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
		Category: models.PromptCategory("double-dare"),
	})

	s.ErrorIs(err, ErrInvalidCategory)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestDrawPrompt_NotYourTurn() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)

	result, err := s.gameService.DrawPrompt(s.ctx, &DrawPromptInput{
		Code:     s.testCode,
		PlayerID: s.testPlayerID,
		Category: models.PromptCategoryDare,
	})

	s.ErrorIs(err, ErrNotYourTurn)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestDrawPrompt_NotInSession() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)

	result, err := s.gameService.DrawPrompt(s.ctx, &DrawPromptInput{
		Code:     s.testCode,
		PlayerID: "stranger",
		Category: models.PromptCategoryDare,
	})

	s.ErrorIs(err, ErrPlayerNotInSession)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestDrawPrompt_SessionNotActive() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.waitingSession, nil)

	result, err := s.gameService.DrawPrompt(s.ctx, &DrawPromptInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
		Category: models.PromptCategoryTruth,
	})

	s.ErrorIs(err, ErrInvalidSessionState)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestDrawPrompt_EmptyCatalog() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockPromptRepo.EXPECT().ListPrompts(s.ctx, gomock.Any()).
		Return(&promptRepo.ListPromptsOutput{Prompts: []*models.Prompt{}}, nil)

	result, err := s.gameService.DrawPrompt(s.ctx, &DrawPromptInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
		Category: models.PromptCategoryDare,
	})

	s.ErrorIs(err, ErrNoPromptsAvailable)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestRecordAction_CompletedTruth() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockUUID.EXPECT().NewUUID().Return("action-id")
	s.mockLedgerRepo.EXPECT().AddActionRecord(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.AddActionRecordInput) error {
			s.Equal("action-id", input.Record.ID)
			s.Equal(s.testCode, input.Record.SessionCode)
			s.Equal(s.testCreatorID, input.Record.PlayerID)
			s.True(input.Record.Completed)
			return nil
		})
	s.mockProfileRepo.EXPECT().IncrementStats(s.ctx, &profileRepo.IncrementStatsInput{
		PlayerID:        s.testCreatorID,
		TruthsCompleted: 1,
		ScoreDelta:      10,
		Timestamp:       s.testTime,
	}).Return(nil)

	result, err := s.gameService.RecordAction(s.ctx, &RecordActionInput{
		Code:      s.testCode,
		PlayerID:  s.testCreatorID,
		PromptID:  7,
		Category:  models.PromptCategoryTruth,
		Completed: true,
	})

	s.Require().NoError(err)
	s.Equal(10, result.PointsAwarded)
}

func (s *GameServiceTestSuite) TestRecordAction_CompletedDare() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockUUID.EXPECT().NewUUID().Return("action-id")
	s.mockLedgerRepo.EXPECT().AddActionRecord(s.ctx, gomock.Any()).Return(nil)
	s.mockProfileRepo.EXPECT().IncrementStats(s.ctx, &profileRepo.IncrementStatsInput{
		PlayerID:       s.testCreatorID,
		DaresCompleted: 1,
		ScoreDelta:     15,
		Timestamp:      s.testTime,
	}).Return(nil)

	result, err := s.gameService.RecordAction(s.ctx, &RecordActionInput{
		Code:      s.testCode,
		PlayerID:  s.testCreatorID,
		PromptID:  8,
		Category:  models.PromptCategoryDare,
		Completed: true,
	})

	s.Require().NoError(err)
	s.Equal(15, result.PointsAwarded)
}

func (s *GameServiceTestSuite) TestRecordAction_Skipped() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockUUID.EXPECT().NewUUID().Return("action-id")
	s.mockLedgerRepo.EXPECT().AddActionRecord(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.AddActionRecordInput) error {
			s.False(input.Record.Completed)
			return nil
		})
	// No IncrementStats call for a skipped prompt

	result, err := s.gameService.RecordAction(s.ctx, &RecordActionInput{
		Code:      s.testCode,
		PlayerID:  s.testCreatorID,
		PromptID:  9,
		Category:  models.PromptCategoryDare,
		Completed: false,
	})

	s.Require().NoError(err)
	s.Equal(0, result.PointsAwarded)
}

func (s *GameServiceTestSuite) TestAdvanceTurn() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(s.testPlayerID, input.Session.CurrentPlayerID)
			return nil
		})

	result, err := s.gameService.AdvanceTurn(s.ctx, &AdvanceTurnInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Equal(s.testPlayerID, result.NextPlayer.PlayerID)
}

func (s *GameServiceTestSuite) TestAdvanceTurn_WrapsToFirstJoiner() {
	lastHolder := &models.Session{
		Code:            s.testCode,
		CreatorID:       s.testCreatorID,
		Status:          models.SessionStatusActive,
		CurrentPlayerID: s.testPlayerID,
		Players:         s.waitingSession.Players,
	}
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(lastHolder, nil)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	result, err := s.gameService.AdvanceTurn(s.ctx, &AdvanceTurnInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Equal(s.testCreatorID, result.NextPlayer.PlayerID)
}

func (s *GameServiceTestSuite) TestAdvanceTurn_StaleHolderRestartsCycle() {
	stale := &models.Session{
		Code:            s.testCode,
		CreatorID:       s.testCreatorID,
		Status:          models.SessionStatusActive,
		CurrentPlayerID: "departed-player",
		Players:         s.waitingSession.Players,
	}
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(stale, nil)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	result, err := s.gameService.AdvanceTurn(s.ctx, &AdvanceTurnInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Equal(s.testPlayerID, result.NextPlayer.PlayerID)
}

func (s *GameServiceTestSuite) TestAdvanceTurn_NotActive() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.waitingSession, nil)

	result, err := s.gameService.AdvanceTurn(s.ctx, &AdvanceTurnInput{Code: s.testCode})

	s.ErrorIs(err, ErrInvalidSessionState)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestGetPlayers_UnknownSessionYieldsEmptyRoster() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	result, err := s.gameService.GetPlayers(s.ctx, &GetPlayersInput{Code: "NOPE1234"})

	s.Require().NoError(err)
	s.Empty(result.Players)
}

func (s *GameServiceTestSuite) TestGetPlayers_JoinOrder() {
	shuffled := &models.Session{
		Code:   s.testCode,
		Status: models.SessionStatusWaiting,
		Players: []*models.RosterEntry{
			{PlayerID: "third", JoinRank: 3},
			{PlayerID: "first", JoinRank: 1},
			{PlayerID: "second", JoinRank: 2},
		},
	}
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(shuffled, nil)

	result, err := s.gameService.GetPlayers(s.ctx, &GetPlayersInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Require().Len(result.Players, 3)
	s.Equal("first", result.Players[0].PlayerID)
	s.Equal("second", result.Players[1].PlayerID)
	s.Equal("third", result.Players[2].PlayerID)
}

func (s *GameServiceTestSuite) TestGetStandings() {
	records := []*models.ActionRecord{
		{PlayerID: s.testCreatorID, Category: models.PromptCategoryTruth, Completed: true},
		{PlayerID: s.testCreatorID, Category: models.PromptCategoryDare, Completed: true},
		{PlayerID: s.testPlayerID, Category: models.PromptCategoryTruth, Completed: true},
		{PlayerID: s.testPlayerID, Category: models.PromptCategoryDare, Completed: false},
	}

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockLedgerRepo.EXPECT().GetActionsForSession(s.ctx, &ledgerRepo.GetActionsForSessionInput{
		SessionCode: s.testCode,
	}).Return(&ledgerRepo.GetActionsForSessionOutput{Records: records}, nil)

	result, err := s.gameService.GetStandings(s.ctx, &GetStandingsInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Require().Len(result.Entries, 2)
	s.Equal(s.testCreatorID, result.Entries[0].PlayerID)
	s.Equal(25, result.Entries[0].Score)
	s.Equal(s.testPlayerID, result.Entries[1].PlayerID)
	s.Equal(10, result.Entries[1].Score)
}

func (s *GameServiceTestSuite) TestGetStandings_OmitsPlayersWithoutCompletions() {
	records := []*models.ActionRecord{
		{PlayerID: s.testCreatorID, Category: models.PromptCategoryTruth, Completed: true},
		{PlayerID: s.testPlayerID, Category: models.PromptCategoryDare, Completed: false},
	}

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockLedgerRepo.EXPECT().GetActionsForSession(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetActionsForSessionOutput{Records: records}, nil)

	result, err := s.gameService.GetStandings(s.ctx, &GetStandingsInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Require().Len(result.Entries, 1)
	s.Equal(s.testCreatorID, result.Entries[0].PlayerID)
}

func (s *GameServiceTestSuite) TestEndSession() {
	records := []*models.ActionRecord{
		{PlayerID: s.testPlayerID, Category: models.PromptCategoryDare, Completed: true},
	}

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockLedgerRepo.EXPECT().GetActionsForSession(s.ctx, gomock.Any()).
		Return(&ledgerRepo.GetActionsForSessionOutput{Records: records}, nil)
	s.mockProfileRepo.EXPECT().IncrementStats(s.ctx, &profileRepo.IncrementStatsInput{
		PlayerID:    s.testCreatorID,
		GamesPlayed: 1,
		Timestamp:   s.testTime,
	}).Return(nil)
	s.mockProfileRepo.EXPECT().IncrementStats(s.ctx, &profileRepo.IncrementStatsInput{
		PlayerID:    s.testPlayerID,
		GamesPlayed: 1,
		Timestamp:   s.testTime,
	}).Return(nil)
	s.mockLedgerRepo.EXPECT().DeleteActionsForSession(s.ctx, &ledgerRepo.DeleteActionsForSessionInput{
		SessionCode: s.testCode,
	}).Return(nil)
	s.mockSessionRepo.EXPECT().DeleteSession(s.ctx, &sessionRepo.DeleteSessionInput{
		Code: s.testCode,
	}).Return(nil)

	result, err := s.gameService.EndSession(s.ctx, &EndSessionInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
	})

	s.Require().NoError(err)
	s.Equal(models.SessionStatusFinished, result.Session.Status)
	s.Require().NotNil(result.Session.FinishedAt)
	s.Equal(s.testTime, *result.Session.FinishedAt)
	s.Require().Len(result.FinalStandings, 1)
	s.Equal(s.testPlayerID, result.FinalStandings[0].PlayerID)
	s.Equal(15, result.FinalStandings[0].Score)
}

func (s *GameServiceTestSuite) TestEndSession_NotCreator() {
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)

	result, err := s.gameService.EndSession(s.ctx, &EndSessionInput{
		Code:     s.testCode,
		PlayerID: s.testPlayerID,
	})

	s.ErrorIs(err, ErrNotCreator)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestEndSession_AlreadyTornDown() {
	// A rerun after teardown sees no session and reports it cleanly
	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	result, err := s.gameService.EndSession(s.ctx, &EndSessionInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
	})

	s.ErrorIs(err, ErrSessionNotFound)
	s.Nil(result)
}

func (s *GameServiceTestSuite) TestEndSession_RepositoryFailureSurfaces() {
	repoErr := errors.New("redis connection lost")

	s.mockSessionRepo.EXPECT().GetSession(s.ctx, gomock.Any()).Return(s.activeSession, nil)
	s.mockLedgerRepo.EXPECT().GetActionsForSession(s.ctx, gomock.Any()).Return(nil, repoErr)

	result, err := s.gameService.EndSession(s.ctx, &EndSessionInput{
		Code:     s.testCode,
		PlayerID: s.testCreatorID,
	})

	s.ErrorIs(err, repoErr)
	s.Nil(result)
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
