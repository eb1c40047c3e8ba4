package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mfell/agentx/internal/models"
)

// memoryRepository implements Repository in process memory. It is the
// single-device analog of browser local storage: synchronous, scoped to one
// process, with no I/O failure mode. Documents are stored marshaled so
// callers never share memory with the stored copy.
type memoryRepository struct {
	mu      sync.RWMutex
	records map[string][]byte
	active  string
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		records: make(map[string][]byte),
	}
}

// SaveSession persists a session into the in-memory map
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	blob, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[sessionKeyPrefix+input.Session.SessionID] = blob

	return nil
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.RLock()
	blob, ok := r.records[sessionKeyPrefix+input.SessionID]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	var sess models.Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// ListSessions returns all stored session IDs
func (r *memoryRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.records))
	for key := range r.records {
		ids = append(ids, key[len(sessionKeyPrefix):])
	}

	return &ListSessionsOutput{SessionIDs: ids}, nil
}

// DeleteSession removes a session record
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKeyPrefix + input.SessionID
	if _, ok := r.records[key]; !ok {
		return ErrSessionNotFound
	}
	delete(r.records, key)

	return nil
}

// SetActiveSession records the current session pointer
func (r *memoryRepository) SetActiveSession(ctx context.Context, input *SetActiveSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = input.SessionID

	return nil
}

// GetActiveSession returns the current session pointer, empty when unset
func (r *memoryRepository) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &GetActiveSessionOutput{SessionID: r.active}, nil
}
