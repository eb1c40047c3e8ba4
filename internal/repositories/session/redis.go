package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mfell/agentx/internal/models"
)

const sessionIndexKey = "agent_x_games"

// RedisConfig holds configuration for the Redis session repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements Repository using Redis, for deployments where
// several devices reach the same server process.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *RedisConfig) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession persists a session document to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	blob, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+input.Session.SessionID, blob, 0)
	pipe.SAdd(ctx, sessionIndexKey, input.Session.SessionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session document by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	blob, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(blob), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// ListSessions returns all stored session IDs from the index set
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	ids, err := r.client.SMembers(ctx, sessionIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &ListSessionsOutput{SessionIDs: ids}, nil
}

// DeleteSession removes a session document and its index entry
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	deleted, err := r.client.Del(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}

	if err := r.client.SRem(ctx, sessionIndexKey, input.SessionID).Err(); err != nil {
		return fmt.Errorf("failed to remove session from index: %w", err)
	}

	return nil
}

// SetActiveSession records the current session pointer
func (r *redisRepository) SetActiveSession(ctx context.Context, input *SetActiveSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.SessionID == "" {
		if err := r.client.Del(ctx, activePointerKey).Err(); err != nil {
			return fmt.Errorf("failed to clear session pointer: %w", err)
		}
		return nil
	}

	if err := r.client.Set(ctx, activePointerKey, input.SessionID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session pointer: %w", err)
	}

	return nil
}

// GetActiveSession returns the current session pointer, empty when unset
func (r *redisRepository) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	id, err := r.client.Get(ctx, activePointerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetActiveSessionOutput{}, nil
		}
		return nil, fmt.Errorf("failed to get session pointer: %w", err)
	}

	return &GetActiveSessionOutput{SessionID: id}, nil
}
