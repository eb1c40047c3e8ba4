package session

import "github.com/mfell/agentx/internal/models"

type LoadOrCreateInput struct {
	// SessionID from a prior device or browser; empty to use the store's
	// active-session pointer
	SessionID string
}

type LoadOrCreateOutput struct {
	Session *models.Session

	// Resumed is true when an existing record was loaded rather than a
	// fresh session created
	Resumed bool
}

type StartFreshInput struct {
	// LastPairIndex carries the previous word-pair draw into the new
	// session so an immediate rematch cannot repeat it; -1 when unknown
	LastPairIndex int
}

type StartFreshOutput struct {
	Session *models.Session
}

type PersistInput struct {
	Session *models.Session
}
