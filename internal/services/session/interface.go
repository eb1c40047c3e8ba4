package session

import "context"

// Service is the session sync manager. It owns identifier generation,
// resume-on-load, and the persistence side effect of every accepted
// state machine transition.
type Service interface {
	// LoadOrCreate resumes the session with the given ID, or the store's
	// active session when no ID is supplied, falling back to a fresh
	// Setup-state session when nothing usable is found
	LoadOrCreate(ctx context.Context, input *LoadOrCreateInput) (*LoadOrCreateOutput, error)

	// StartFresh mints a new identifier and creates an empty Setup session
	StartFresh(ctx context.Context, input *StartFreshInput) (*StartFreshOutput, error)

	// Persist writes the full session document to the store. A failed write
	// is a durability warning, not a rollback: the in-memory session stays
	// authoritative.
	Persist(ctx context.Context, input *PersistInput) error
}
