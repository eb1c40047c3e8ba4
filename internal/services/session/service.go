package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mfell/agentx/internal/common/clock"
	"github.com/mfell/agentx/internal/common/uuid"
	"github.com/mfell/agentx/internal/models"
	sessionRepo "github.com/mfell/agentx/internal/repositories/session"
)

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilRepository    = errors.New("session repository cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
)

// Config holds the dependencies for the sync manager
type Config struct {
	Repo    sessionRepo.Repository
	UUIDGen uuid.Generator
	Clock   clock.Clock
	Logger  *zap.Logger
}

// service implements the Service interface
type service struct {
	repo    sessionRepo.Repository
	uuidGen uuid.Generator
	clock   clock.Clock
	logger  *zap.Logger
}

// New creates a new session sync manager
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}
	if cfg.UUIDGen == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repo:    cfg.Repo,
		uuidGen: cfg.UUIDGen,
		clock:   cfg.Clock,
		logger:  logger,
	}, nil
}

// LoadOrCreate resumes an existing session or creates a fresh one. Unreadable
// or invalid records never block startup; they only lose the ability to
// resume, and the fallback is logged rather than raised.
func (s *service) LoadOrCreate(ctx context.Context, input *LoadOrCreateInput) (*LoadOrCreateOutput, error) {
	var sessionID string
	if input != nil {
		sessionID = input.SessionID
	}

	if sessionID == "" {
		pointer, err := s.repo.GetActiveSession(ctx, &sessionRepo.GetActiveSessionInput{})
		if err != nil {
			s.logger.Warn("failed to read active session pointer", zap.Error(err))
		} else {
			sessionID = pointer.SessionID
		}
	}

	if sessionID != "" {
		sess, err := s.repo.GetSession(ctx, &sessionRepo.GetSessionInput{
			SessionID: sessionID,
		})
		switch {
		case err == nil:
			if verr := sess.Validate(); verr != nil {
				s.logger.Warn("stored session is corrupt, starting fresh",
					zap.String("session_id", sessionID),
					zap.Error(verr))
			} else {
				s.activate(ctx, sess.SessionID)
				return &LoadOrCreateOutput{Session: sess, Resumed: true}, nil
			}
		case errors.Is(err, sessionRepo.ErrSessionNotFound):
			// No record under this identifier; fall through to a fresh session
		default:
			s.logger.Warn("failed to load session, starting fresh",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}

	fresh, err := s.StartFresh(ctx, &StartFreshInput{LastPairIndex: -1})
	if err != nil {
		return nil, err
	}

	return &LoadOrCreateOutput{Session: fresh.Session}, nil
}

// StartFresh mints a new UUID-v4 and creates an empty Setup-state session
func (s *service) StartFresh(ctx context.Context, input *StartFreshInput) (*StartFreshOutput, error) {
	lastPair := -1
	if input != nil {
		lastPair = input.LastPairIndex
	}

	now := s.clock.Now()
	sess := &models.Session{
		SessionID:     s.uuidGen.NewSessionID(),
		GameScreen:    models.ScreenSetup,
		Players:       []*models.Player{},
		RoundNumber:   1,
		Votes:         map[int]int{},
		LastPairIndex: lastPair,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Persist(ctx, &PersistInput{Session: sess}); err != nil {
		s.logger.Warn("failed to persist fresh session",
			zap.String("session_id", sess.SessionID),
			zap.Error(err))
	}

	return &StartFreshOutput{Session: sess}, nil
}

// Persist serializes the full session and writes it to the store,
// updating the active-session pointer alongside
func (s *service) Persist(ctx context.Context, input *PersistInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	// UpdatedAt is store bookkeeping: it is the only field that differs
	// between repeated persists of an otherwise unchanged session
	input.Session.UpdatedAt = s.clock.Now()

	if err := s.repo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: input.Session,
	}); err != nil {
		return fmt.Errorf("failed to persist session %s: %w", input.Session.SessionID, err)
	}

	s.activate(ctx, input.Session.SessionID)

	return nil
}

// activate moves the store's active-session pointer, best effort
func (s *service) activate(ctx context.Context, sessionID string) {
	err := s.repo.SetActiveSession(ctx, &sessionRepo.SetActiveSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		s.logger.Warn("failed to update active session pointer",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}
}
