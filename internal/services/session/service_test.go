package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/mfell/agentx/internal/common/clock/mocks"
	uuidMocks "github.com/mfell/agentx/internal/common/uuid/mocks"
	"github.com/mfell/agentx/internal/models"
	sessionRepo "github.com/mfell/agentx/internal/repositories/session"
	repoMocks "github.com/mfell/agentx/internal/repositories/session/mocks"
)

type SyncServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *repoMocks.MockRepository
	mockUUID *uuidMocks.MockGenerator
	mockCLK  *clockMocks.MockClock
	svc      Service
	ctx      context.Context

	testTime      time.Time
	testSessionID string
	storedSession *models.Session
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockGenerator(s.mockCtrl)
	s.mockCLK = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "abc-123"

	s.mockCLK.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.storedSession = &models.Session{
		SessionID:  s.testSessionID,
		GameScreen: models.ScreenDiscussion,
		Players: []*models.Player{
			{Name: "Ana"},
			{Name: "Bo"},
			{Name: "Cy"},
		},
		RoundNumber: 2,
		Cards: []*models.GameCard{
			{Word: "Coffee"},
			{Word: "Tea", IsImposter: true},
			{Word: "Coffee"},
		},
		ImposterIndex: 1,
		Viewed:        []int{0, 1, 2},
		Votes:         map[int]int{},
		LastPairIndex: 0,
		CreatedAt:     s.testTime,
		UpdatedAt:     s.testTime,
	}

	svc, err := New(&Config{
		Repo:    s.mockRepo,
		UUIDGen: s.mockUUID,
		Clock:   s.mockCLK,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{UUIDGen: s.mockUUID, Clock: s.mockCLK})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{Repo: s.mockRepo, Clock: s.mockCLK})
	s.ErrorIs(err, ErrNilUUIDGenerator)

	_, err = New(&Config{Repo: s.mockRepo, UUIDGen: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)
}

func (s *SyncServiceTestSuite) TestLoadOrCreateResumesExisting() {
	s.mockRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.storedSession, nil)
	s.mockRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{SessionID: s.testSessionID}).
		Return(nil)

	out, err := s.svc.LoadOrCreate(s.ctx, &LoadOrCreateInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	s.True(out.Resumed)
	s.Equal(s.testSessionID, out.Session.SessionID)
	s.Equal(2, out.Session.RoundNumber)
	s.Equal(models.ScreenDiscussion, out.Session.GameScreen)
	s.Len(out.Session.Players, 3)
}

func (s *SyncServiceTestSuite) TestLoadOrCreateUnknownIDCreatesFresh() {
	s.mockRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: "unknown-id"}).
		Return(nil, sessionRepo.ErrSessionNotFound)
	s.mockUUID.EXPECT().NewSessionID().Return("fresh-id")
	s.mockRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{SessionID: "fresh-id"}).
		Return(nil)

	out, err := s.svc.LoadOrCreate(s.ctx, &LoadOrCreateInput{SessionID: "unknown-id"})
	s.Require().NoError(err)

	s.False(out.Resumed)
	s.Equal("fresh-id", out.Session.SessionID)
	s.Equal(models.ScreenSetup, out.Session.GameScreen)
	s.Equal(1, out.Session.RoundNumber)
	s.Equal(-1, out.Session.LastPairIndex)
	s.Equal(s.testTime, out.Session.CreatedAt)
}

func (s *SyncServiceTestSuite) TestLoadOrCreateFollowsActivePointer() {
	s.mockRepo.EXPECT().
		GetActiveSession(s.ctx, &sessionRepo.GetActiveSessionInput{}).
		Return(&sessionRepo.GetActiveSessionOutput{SessionID: s.testSessionID}, nil)
	s.mockRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.storedSession, nil)
	s.mockRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{SessionID: s.testSessionID}).
		Return(nil)

	out, err := s.svc.LoadOrCreate(s.ctx, &LoadOrCreateInput{})
	s.Require().NoError(err)
	s.True(out.Resumed)
	s.Equal(s.testSessionID, out.Session.SessionID)
}

func (s *SyncServiceTestSuite) TestLoadOrCreateCorruptRecordFallsBack() {
	corrupt := &models.Session{
		SessionID:     s.testSessionID,
		GameScreen:    models.ScreenVoting,
		RoundNumber:   1,
		ImposterIndex: 7,
	}

	s.mockRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(corrupt, nil)
	s.mockUUID.EXPECT().NewSessionID().Return("fresh-id")
	s.mockRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{SessionID: "fresh-id"}).
		Return(nil)

	out, err := s.svc.LoadOrCreate(s.ctx, &LoadOrCreateInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	s.False(out.Resumed)
	s.Equal("fresh-id", out.Session.SessionID)
	s.Equal(models.ScreenSetup, out.Session.GameScreen)
}

func (s *SyncServiceTestSuite) TestLoadOrCreateUnreadableStoreFallsBack() {
	s.mockRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(nil, errors.New("permission denied"))
	s.mockUUID.EXPECT().NewSessionID().Return("fresh-id")
	s.mockRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{SessionID: "fresh-id"}).
		Return(nil)

	out, err := s.svc.LoadOrCreate(s.ctx, &LoadOrCreateInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.False(out.Resumed)
	s.Equal("fresh-id", out.Session.SessionID)
}

func (s *SyncServiceTestSuite) TestPersistStampsAndSaves() {
	var saved *models.Session
	s.mockRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			saved = input.Session
			return nil
		})
	s.mockRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{SessionID: s.testSessionID}).
		Return(nil)

	sess := s.storedSession
	sess.UpdatedAt = time.Time{}

	err := s.svc.Persist(s.ctx, &PersistInput{Session: sess})
	s.Require().NoError(err)

	s.Require().NotNil(saved)
	s.Equal(s.testTime, saved.UpdatedAt)
	s.Equal(s.testSessionID, saved.SessionID)
}

func (s *SyncServiceTestSuite) TestPersistFailureIsNonFatal() {
	s.mockRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		Return(errors.New("disk full"))

	err := s.svc.Persist(s.ctx, &PersistInput{Session: s.storedSession})

	s.Require().Error(err)
	s.Contains(err.Error(), "disk full")
	s.Equal(models.ScreenDiscussion, s.storedSession.GameScreen)
}

func (s *SyncServiceTestSuite) TestStartFreshCarriesLastPair() {
	s.mockUUID.EXPECT().NewSessionID().Return("fresh-id")
	s.mockRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)
	s.mockRepo.EXPECT().
		SetActiveSession(s.ctx, &sessionRepo.SetActiveSessionInput{SessionID: "fresh-id"}).
		Return(nil)

	out, err := s.svc.StartFresh(s.ctx, &StartFreshInput{LastPairIndex: 42})
	s.Require().NoError(err)

	s.Equal("fresh-id", out.Session.SessionID)
	s.Equal(42, out.Session.LastPairIndex)
	s.Equal(models.ScreenSetup, out.Session.GameScreen)
}
