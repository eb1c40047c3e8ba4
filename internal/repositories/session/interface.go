package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mfell/agentx/internal/repositories/session Repository

import (
	"context"
	"errors"

	"github.com/mfell/agentx/internal/models"
)

// ErrSessionNotFound is returned when no record exists for a session ID
var ErrSessionNotFound = errors.New("session not found")

// Storage keys shared by the key-value backends. The disk backend maps the
// same scheme onto file names inside its save directory.
const (
	sessionKeyPrefix = "agent_x_game_"
	activePointerKey = "agent_x_session_id"
)

// Repository defines the interface for session persistence. The engine
// selects a backend at startup and never branches on which one is active.
type Repository interface {
	// SaveSession persists a full session document
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// ListSessions returns the IDs of all stored sessions
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// DeleteSession removes a session record
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// SetActiveSession records which session this store considers current
	SetActiveSession(ctx context.Context, input *SetActiveSessionInput) error

	// GetActiveSession returns the current session pointer, empty when unset
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)
}
