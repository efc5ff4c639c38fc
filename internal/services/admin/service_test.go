package admin

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/tordbot/tord/internal/common/clock/mocks"
	"github.com/tordbot/tord/internal/models"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	profileMocks "github.com/tordbot/tord/internal/repositories/profile/mocks"
	promptRepo "github.com/tordbot/tord/internal/repositories/prompt"
	promptMocks "github.com/tordbot/tord/internal/repositories/prompt/mocks"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
	sessionMocks "github.com/tordbot/tord/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockPromptRepo  *promptMocks.MockRepository
	mockSessionRepo *sessionMocks.MockRepository
	mockProfileRepo *profileMocks.MockRepository
	mockClock       *clockMocks.MockClock
	adminService    Service
	ctx             context.Context

	testTime   time.Time
	testPrompt *models.Prompt
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPromptRepo = promptMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockProfileRepo = profileMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)
	s.testPrompt = &models.Prompt{
		ID:        42,
		Text:      "What is your most embarrassing moment?",
		Category:  models.PromptCategoryTruth,
		Mode:      models.DefaultMode,
		CreatedAt: s.testTime,
	}

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	var err error
	s.adminService, err = New(&Config{
		PromptRepo:  s.mockPromptRepo,
		SessionRepo: s.mockSessionRepo,
		ProfileRepo: s.mockProfileRepo,
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
}

func (s *AdminServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AdminServiceTestSuite) TestAddPrompt() {
	s.mockPromptRepo.EXPECT().CreatePrompt(s.ctx, &promptRepo.CreatePromptInput{
		Text:      s.testPrompt.Text,
		Category:  models.PromptCategoryTruth,
		Mode:      models.DefaultMode,
		Timestamp: s.testTime,
	}).Return(&promptRepo.CreatePromptOutput{Prompt: s.testPrompt}, nil)

	result, err := s.adminService.AddPrompt(s.ctx, &AddPromptInput{
		Text:     "  " + s.testPrompt.Text + "  ",
		Category: models.PromptCategoryTruth,
	})

	s.Require().NoError(err)
	s.Equal(int64(42), result.Prompt.ID)
}

func (s *AdminServiceTestSuite) TestAddPrompt_EmptyText() {
	result, err := s.adminService.AddPrompt(s.ctx, &AddPromptInput{
		Text:     "   ",
		Category: models.PromptCategoryDare,
	})

	s.ErrorIs(err, ErrEmptyPromptText)
	s.Nil(result)
}

func (s *AdminServiceTestSuite) TestAddPrompt_InvalidCategory() {
	result, err := s.adminService.AddPrompt(s.ctx, &AddPromptInput{
		Text:     "Do a handstand",
		Category: models.PromptCategory("triple-dog-dare"),
	})

	s.ErrorIs(err, ErrInvalidCategory)
	s.Nil(result)
}

func (s *AdminServiceTestSuite) TestListPrompts_DefaultLimit() {
	s.mockPromptRepo.EXPECT().ListPrompts(s.ctx, &promptRepo.ListPromptsInput{
		Category: models.PromptCategoryDare,
		Limit:    DefaultListLimit,
	}).Return(&promptRepo.ListPromptsOutput{
		Prompts: []*models.Prompt{s.testPrompt},
	}, nil)

	result, err := s.adminService.ListPrompts(s.ctx, &ListPromptsInput{
		Category: models.PromptCategoryDare,
	})

	s.Require().NoError(err)
	s.Len(result.Prompts, 1)
}

func (s *AdminServiceTestSuite) TestDeletePrompt() {
	s.mockPromptRepo.EXPECT().GetPrompt(s.ctx, &promptRepo.GetPromptInput{
		PromptID: 42,
	}).Return(s.testPrompt, nil)
	s.mockPromptRepo.EXPECT().DeletePrompt(s.ctx, &promptRepo.DeletePromptInput{
		PromptID: 42,
	}).Return(nil)

	result, err := s.adminService.DeletePrompt(s.ctx, &DeletePromptInput{PromptID: 42})

	s.Require().NoError(err)
	s.True(result.Existed)
}

func (s *AdminServiceTestSuite) TestDeletePrompt_Missing() {
	s.mockPromptRepo.EXPECT().GetPrompt(s.ctx, gomock.Any()).
		Return(nil, promptRepo.ErrPromptNotFound)
	s.mockPromptRepo.EXPECT().DeletePrompt(s.ctx, gomock.Any()).Return(nil)

	result, err := s.adminService.DeletePrompt(s.ctx, &DeletePromptInput{PromptID: 99})

	s.Require().NoError(err)
	s.False(result.Existed)
}

func (s *AdminServiceTestSuite) TestGetGeneralStats() {
	s.mockSessionRepo.EXPECT().GetSessionCounts(s.ctx, gomock.Any()).
		Return(&sessionRepo.GetSessionCountsOutput{Total: 12, Active: 3}, nil)
	s.mockProfileRepo.EXPECT().GetProfileCounts(s.ctx, gomock.Any()).
		Return(&profileRepo.GetProfileCountsOutput{Total: 40, Active: 25}, nil)
	s.mockPromptRepo.EXPECT().GetPromptCounts(s.ctx, gomock.Any()).
		Return(&promptRepo.GetPromptCountsOutput{Total: 100, Truths: 60, Dares: 40}, nil)

	result, err := s.adminService.GetGeneralStats(s.ctx, &GetGeneralStatsInput{})

	s.Require().NoError(err)
	s.Equal(int64(12), result.TotalSessions)
	s.Equal(int64(3), result.ActiveSessions)
	s.Equal(int64(40), result.TotalPlayers)
	s.Equal(int64(25), result.ActivePlayers)
	s.Equal(int64(100), result.TotalPrompts)
	s.Equal(int64(60), result.TruthPrompts)
	s.Equal(int64(40), result.DarePrompts)
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
