package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfell/agentx/internal/models"
)

// DiskConfig holds configuration for the disk-backed session repository
type DiskConfig struct {
	// Dir is the save directory; created if it does not exist
	Dir string
}

// diskRepository implements Repository with one JSON document per session
// on the server filesystem, enabling resume from a second device.
type diskRepository struct {
	dir string
}

// NewDisk creates a new disk-backed session repository
func NewDisk(cfg *DiskConfig) (*diskRepository, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, errors.New("save directory cannot be empty")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}

	return &diskRepository{dir: cfg.Dir}, nil
}

// SaveSession writes the session document to {session_id}.json
func (r *diskRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	blob, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	path := r.sessionPath(input.Session.SessionID)
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// GetSession reads a session document by ID
func (r *diskRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	blob, err := os.ReadFile(r.sessionPath(input.SessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal(blob, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// ListSessions returns the IDs of every saved session document
func (r *diskRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read save directory: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}

	return &ListSessionsOutput{SessionIDs: ids}, nil
}

// DeleteSession removes a session document
func (r *diskRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	if err := os.Remove(r.sessionPath(input.SessionID)); err != nil {
		if os.IsNotExist(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session file: %w", err)
	}

	return nil
}

// SetActiveSession writes the current session pointer file
func (r *diskRepository) SetActiveSession(ctx context.Context, input *SetActiveSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	path := filepath.Join(r.dir, activePointerKey)
	if input.SessionID == "" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear session pointer: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(input.SessionID), 0o644); err != nil {
		return fmt.Errorf("failed to write session pointer: %w", err)
	}

	return nil
}

// GetActiveSession reads the current session pointer, empty when unset
func (r *diskRepository) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	blob, err := os.ReadFile(filepath.Join(r.dir, activePointerKey))
	if err != nil {
		if os.IsNotExist(err) {
			return &GetActiveSessionOutput{}, nil
		}
		return nil, fmt.Errorf("failed to read session pointer: %w", err)
	}

	return &GetActiveSessionOutput{SessionID: strings.TrimSpace(string(blob))}, nil
}

func (r *diskRepository) sessionPath(sessionID string) string {
	return filepath.Join(r.dir, sessionID+".json")
}
