package convstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tordbot/tord/internal/models"
)

const (
	// Key prefix for Redis
	stateKeyPrefix = "convstate:"

	// DefaultTTL is applied when the caller does not set one
	DefaultTTL = 10 * time.Minute
)

// ErrStateNotFound is returned when an actor has no pending state
var ErrStateNotFound = errors.New("conversation state not found")

// Config holds configuration for the Redis conversation state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed conversation state repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// SaveState stores the state for an actor with a TTL
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}

	if input.State.ActorID == "" {
		return errors.New("actor ID cannot be empty")
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	stateJSON, err := json.Marshal(input.State)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation state: %w", err)
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.State.ActorID)
	if err := r.client.Set(ctx, stateKey, stateJSON, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save conversation state: %w", err)
	}

	return nil
}

// GetState retrieves the state for an actor
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.ConversationState, error) {
	if input == nil || input.ActorID == "" {
		return nil, errors.New("input and actor ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.ActorID)
	stateJSON, err := r.client.Get(ctx, stateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get conversation state: %w", err)
	}

	var state models.ConversationState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversation state: %w", err)
	}

	return &state, nil
}

// ClearState removes the state for an actor
func (r *redisRepository) ClearState(ctx context.Context, input *ClearStateInput) error {
	if input == nil || input.ActorID == "" {
		return errors.New("input and actor ID cannot be empty")
	}

	stateKey := fmt.Sprintf("%s%s", stateKeyPrefix, input.ActorID)
	if err := r.client.Del(ctx, stateKey).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation state: %w", err)
	}

	return nil
}
