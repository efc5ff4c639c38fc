package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tordbot/tord/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "session:"
	channelKeyPrefix = "session_channel:"
	allSessionsKey   = "sessions:all"
	activeSessionsKey = "sessions:active"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrCodeAlreadyExists is returned when creating a session whose code is
// already taken; callers should generate a new code and retry
var ErrCodeAlreadyExists = errors.New("session code already exists")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// CreateSession persists a new session to Redis. The session key is claimed
// with SETNX so a code collision surfaces as ErrCodeAlreadyExists instead of
// silently overwriting another session.
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.Code == "" {
		return errors.New("session code cannot be empty")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.Code)
	created, err := r.client.SetNX(ctx, sessionKey, sessionJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if !created {
		return ErrCodeAlreadyExists
	}

	// Update the indexes in a pipeline
	pipe := r.client.Pipeline()

	pipe.SAdd(ctx, allSessionsKey, input.Session.Code)

	if input.Session.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Session.ChannelID)
		pipe.Set(ctx, channelKey, input.Session.Code, 0)
	}

	if input.Session.Status == models.SessionStatusActive {
		pipe.SAdd(ctx, activeSessionsKey, input.Session.Code)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to index session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by code from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and session code cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Code)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetSessionByChannel retrieves the session bound to a channel from Redis
func (r *redisRepository) GetSessionByChannel(ctx context.Context, input *GetSessionByChannelInput) (*models.Session, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.ChannelID)
	code, err := r.client.Get(ctx, channelKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session code for channel: %w", err)
	}

	return r.GetSession(ctx, &GetSessionInput{
		Code: code,
	})
}

// SaveSession persists an existing session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.Code)
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	pipe.SAdd(ctx, allSessionsKey, input.Session.Code)

	if input.Session.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, input.Session.ChannelID)
		pipe.Set(ctx, channelKey, input.Session.Code, 0)
	}

	if input.Session.Status == models.SessionStatusActive {
		pipe.SAdd(ctx, activeSessionsKey, input.Session.Code)
	} else {
		pipe.SRem(ctx, activeSessionsKey, input.Session.Code)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// DeleteSession removes a session and its indexes from Redis. Deleting a
// session that is already gone is a no-op so teardown can be retried.
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and session code cannot be empty")
	}

	// Get the session first to find its channel binding
	session, err := r.GetSession(ctx, &GetSessionInput{
		Code: input.Code,
	})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil
		}
		return err
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Code)
	pipe.Del(ctx, sessionKey)

	if session.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelKeyPrefix, session.ChannelID)
		pipe.Del(ctx, channelKey)
	}

	pipe.SRem(ctx, activeSessionsKey, input.Code)
	pipe.SRem(ctx, allSessionsKey, input.Code)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// GetSessionCounts reports how many sessions exist and how many are active
func (r *redisRepository) GetSessionCounts(ctx context.Context, input *GetSessionCountsInput) (*GetSessionCountsOutput, error) {
	pipe := r.client.Pipeline()

	totalCmd := pipe.SCard(ctx, allSessionsKey)
	activeCmd := pipe.SCard(ctx, activeSessionsKey)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	return &GetSessionCountsOutput{
		Total:  totalCmd.Val(),
		Active: activeCmd.Val(),
	}, nil
}
