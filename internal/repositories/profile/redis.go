package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tordbot/tord/internal/models"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix  = "profile:"
	usernameKeyPrefix = "profile_username:"
	allProfilesKey    = "profiles:all"
	activeProfilesKey = "profiles:active"
	scoreIndexKey     = "profiles:by_score"

	// Hash fields of a profile key
	fieldID           = "id"
	fieldUsername     = "username"
	fieldDisplayName  = "display_name"
	fieldGamesPlayed  = "games_played"
	fieldTruths       = "truths_completed"
	fieldDares        = "dares_completed"
	fieldTotalScore   = "total_score"
	fieldCreatedAt    = "created_at"
	fieldLastActivity = "last_activity"
)

// ErrProfileNotFound is returned when a profile is not found
var ErrProfileNotFound = errors.New("profile not found")

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis.
// Profiles are stored as hashes so stat updates can use HINCRBY and stay
// atomic per call without read-modify-write cycles.
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
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

// UpsertProfile creates or refreshes a profile in Redis
func (r *redisRepository) UpsertProfile(ctx context.Context, input *UpsertProfileInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.PlayerID)

	// Look up the existing username so a rename drops the stale index entry
	oldUsername, err := r.client.HGet(ctx, profileKey, fieldUsername).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to get existing profile: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.HSet(ctx, profileKey,
		fieldID, input.PlayerID,
		fieldUsername, input.Username,
		fieldDisplayName, input.DisplayName,
		fieldLastActivity, input.Timestamp.Format(time.RFC3339),
	)
	pipe.HSetNX(ctx, profileKey, fieldCreatedAt, input.Timestamp.Format(time.RFC3339))
	pipe.SAdd(ctx, allProfilesKey, input.PlayerID)

	if oldUsername != "" && !strings.EqualFold(oldUsername, input.Username) {
		pipe.Del(ctx, usernameKey(oldUsername))
	}

	if input.Username != "" {
		pipe.Set(ctx, usernameKey(input.Username), input.PlayerID, 0)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by player ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.PlayerID)
	fields, err := r.client.HGetAll(ctx, profileKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrProfileNotFound
	}

	return parseProfile(fields), nil
}

// IncrementStats atomically applies lifetime stat deltas in Redis
func (r *redisRepository) IncrementStats(ctx context.Context, input *IncrementStatsInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.PlayerID)

	pipe := r.client.Pipeline()

	if input.GamesPlayed != 0 {
		pipe.HIncrBy(ctx, profileKey, fieldGamesPlayed, int64(input.GamesPlayed))
		pipe.SAdd(ctx, activeProfilesKey, input.PlayerID)
	}

	if input.TruthsCompleted != 0 {
		pipe.HIncrBy(ctx, profileKey, fieldTruths, int64(input.TruthsCompleted))
	}

	if input.DaresCompleted != 0 {
		pipe.HIncrBy(ctx, profileKey, fieldDares, int64(input.DaresCompleted))
	}

	if input.ScoreDelta != 0 {
		pipe.HIncrBy(ctx, profileKey, fieldTotalScore, int64(input.ScoreDelta))
		pipe.ZIncrBy(ctx, scoreIndexKey, float64(input.ScoreDelta), input.PlayerID)
	}

	pipe.HSet(ctx, profileKey, fieldLastActivity, input.Timestamp.Format(time.RFC3339))

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment stats: %w", err)
	}

	return nil
}

// GetTopProfiles retrieves the highest-scoring profiles from Redis
func (r *redisRepository) GetTopProfiles(ctx context.Context, input *GetTopProfilesInput) (*GetTopProfilesOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and limit must be set")
	}

	playerIDs, err := r.client.ZRevRange(ctx, scoreIndexKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get top player IDs: %w", err)
	}

	profiles := make([]*models.Profile, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		profile, err := r.GetProfile(ctx, &GetProfileInput{
			PlayerID: playerID,
		})
		if err != nil {
			// Skip profiles deleted between the index read and the fetch
			if errors.Is(err, ErrProfileNotFound) {
				continue
			}
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return &GetTopProfilesOutput{
		Profiles: profiles,
	}, nil
}

// FindByUsername retrieves a profile by its username from Redis
func (r *redisRepository) FindByUsername(ctx context.Context, input *FindByUsernameInput) (*models.Profile, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	playerID, err := r.client.Get(ctx, usernameKey(input.Username)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	return r.GetProfile(ctx, &GetProfileInput{
		PlayerID: playerID,
	})
}

// GetProfileCounts reports how many profiles exist and how many have
// finished at least one session
func (r *redisRepository) GetProfileCounts(ctx context.Context, input *GetProfileCountsInput) (*GetProfileCountsOutput, error) {
	pipe := r.client.Pipeline()

	totalCmd := pipe.SCard(ctx, allProfilesKey)
	activeCmd := pipe.SCard(ctx, activeProfilesKey)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	return &GetProfileCountsOutput{
		Total:  totalCmd.Val(),
		Active: activeCmd.Val(),
	}, nil
}

func usernameKey(username string) string {
	return fmt.Sprintf("%s%s", usernameKeyPrefix, strings.ToLower(username))
}

func parseProfile(fields map[string]string) *models.Profile {
	profile := &models.Profile{
		ID:              fields[fieldID],
		Username:        fields[fieldUsername],
		DisplayName:     fields[fieldDisplayName],
		GamesPlayed:     parseIntField(fields[fieldGamesPlayed]),
		TruthsCompleted: parseIntField(fields[fieldTruths]),
		DaresCompleted:  parseIntField(fields[fieldDares]),
		TotalScore:      parseIntField(fields[fieldTotalScore]),
	}

	if t, err := time.Parse(time.RFC3339, fields[fieldCreatedAt]); err == nil {
		profile.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, fields[fieldLastActivity]); err == nil {
		profile.LastActivity = t
	}

	return profile
}

func parseIntField(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
