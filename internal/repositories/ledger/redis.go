package ledger

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
	actionKeyPrefix         = "action:"
	sessionActionsKeyPrefix = "session_actions:"
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

// AddActionRecord appends an action record to Redis
func (r *redisRepository) AddActionRecord(ctx context.Context, input *AddActionRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ID == "" {
		return errors.New("record ID cannot be empty")
	}

	if record.SessionCode == "" {
		return errors.New("record session code cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal action record: %w", err)
	}

	pipe := r.client.Pipeline()

	actionKey := fmt.Sprintf("%s%s", actionKeyPrefix, record.ID)
	pipe.Set(ctx, actionKey, recordJSON, 0)

	sessionActionsKey := fmt.Sprintf("%s%s", sessionActionsKeyPrefix, record.SessionCode)
	pipe.SAdd(ctx, sessionActionsKey, record.ID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add action record: %w", err)
	}

	return nil
}

// GetActionsForSession retrieves all action records for a session from Redis
func (r *redisRepository) GetActionsForSession(ctx context.Context, input *GetActionsForSessionInput) (*GetActionsForSessionOutput, error) {
	if input == nil || input.SessionCode == "" {
		return nil, errors.New("input and session code cannot be empty")
	}

	sessionActionsKey := fmt.Sprintf("%s%s", sessionActionsKeyPrefix, input.SessionCode)
	recordIDs, err := r.client.SMembers(ctx, sessionActionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get action IDs for session: %w", err)
	}

	if len(recordIDs) == 0 {
		return &GetActionsForSessionOutput{
			Records: []*models.ActionRecord{},
		}, nil
	}

	// Fetch all records in a pipeline
	pipe := r.client.Pipeline()
	recordCommands := make(map[string]*redis.StringCmd)

	for _, recordID := range recordIDs {
		actionKey := fmt.Sprintf("%s%s", actionKeyPrefix, recordID)
		recordCommands[recordID] = pipe.Get(ctx, actionKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get action records: %w", err)
	}

	records := make([]*models.ActionRecord, 0, len(recordIDs))
	for recordID, cmd := range recordCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record was deleted between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get action record %s: %w", recordID, err)
		}

		var record models.ActionRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action record %s: %w", recordID, err)
		}

		records = append(records, &record)
	}

	return &GetActionsForSessionOutput{
		Records: records,
	}, nil
}

// DeleteActionsForSession deletes all action records for a session from
// Redis. The deletes are plain DELs, so a retried teardown is safe.
func (r *redisRepository) DeleteActionsForSession(ctx context.Context, input *DeleteActionsForSessionInput) error {
	if input == nil || input.SessionCode == "" {
		return errors.New("input and session code cannot be empty")
	}

	sessionActionsKey := fmt.Sprintf("%s%s", sessionActionsKeyPrefix, input.SessionCode)
	recordIDs, err := r.client.SMembers(ctx, sessionActionsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get action IDs for session: %w", err)
	}

	pipe := r.client.Pipeline()

	for _, recordID := range recordIDs {
		actionKey := fmt.Sprintf("%s%s", actionKeyPrefix, recordID)
		pipe.Del(ctx, actionKey)
	}

	pipe.Del(ctx, sessionActionsKey)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete action records: %w", err)
	}

	return nil
}
