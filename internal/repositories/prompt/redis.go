package prompt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/tordbot/tord/internal/models"
)

const (
	// Key prefixes for Redis
	promptKeyPrefix    = "prompt:"
	promptIDCounterKey = "prompt:next_id"
	allPromptsKey      = "prompts:all"
	categoryKeyPrefix  = "prompts:category:" // prompts:category:<category>
	catalogKeyPrefix   = "prompts:catalog:"  // prompts:catalog:<category>:<mode>
)

// ErrPromptNotFound is returned when a prompt is not found
var ErrPromptNotFound = errors.New("prompt not found")

// Config holds configuration for the Redis prompt repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed prompt repository
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

// CreatePrompt adds a prompt to the catalog with an ID from the counter key
func (r *redisRepository) CreatePrompt(ctx context.Context, input *CreatePromptInput) (*CreatePromptOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Text == "" {
		return nil, errors.New("prompt text cannot be empty")
	}

	if !input.Category.IsValid() {
		return nil, fmt.Errorf("invalid prompt category: %q", input.Category)
	}

	mode := input.Mode
	if mode == "" {
		mode = models.DefaultMode
	}

	promptID, err := r.client.Incr(ctx, promptIDCounterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate prompt ID: %w", err)
	}

	prompt := &models.Prompt{
		ID:        promptID,
		Text:      input.Text,
		Category:  input.Category,
		Mode:      mode,
		CreatedAt: input.Timestamp,
	}

	promptJSON, err := json.Marshal(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prompt: %w", err)
	}

	pipe := r.client.Pipeline()

	promptKey := fmt.Sprintf("%s%d", promptKeyPrefix, promptID)
	pipe.Set(ctx, promptKey, promptJSON, 0)
	pipe.SAdd(ctx, allPromptsKey, promptID)
	pipe.SAdd(ctx, categoryKey(prompt.Category), promptID)
	pipe.SAdd(ctx, catalogKey(prompt.Category, prompt.Mode), promptID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save prompt: %w", err)
	}

	return &CreatePromptOutput{Prompt: prompt}, nil
}

// GetPrompt retrieves a prompt by ID from Redis
func (r *redisRepository) GetPrompt(ctx context.Context, input *GetPromptInput) (*models.Prompt, error) {
	if input == nil || input.PromptID == 0 {
		return nil, errors.New("input and prompt ID cannot be empty")
	}

	promptKey := fmt.Sprintf("%s%d", promptKeyPrefix, input.PromptID)
	promptJSON, err := r.client.Get(ctx, promptKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPromptNotFound
		}
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}

	var prompt models.Prompt
	if err := json.Unmarshal([]byte(promptJSON), &prompt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prompt: %w", err)
	}

	return &prompt, nil
}

// ListPrompts retrieves prompts matching the filter from Redis, newest first
func (r *redisRepository) ListPrompts(ctx context.Context, input *ListPromptsInput) (*ListPromptsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Pick the narrowest index the filter allows
	indexKey := allPromptsKey
	if input.Category != "" && input.Mode != "" {
		indexKey = catalogKey(input.Category, input.Mode)
	} else if input.Category != "" {
		indexKey = categoryKey(input.Category)
	}

	promptIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt IDs: %w", err)
	}

	if len(promptIDs) == 0 {
		return &ListPromptsOutput{
			Prompts: []*models.Prompt{},
		}, nil
	}

	// Fetch all prompts in a pipeline
	pipe := r.client.Pipeline()
	promptCommands := make(map[string]*redis.StringCmd)

	for _, promptID := range promptIDs {
		promptKey := fmt.Sprintf("%s%s", promptKeyPrefix, promptID)
		promptCommands[promptID] = pipe.Get(ctx, promptKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get prompts: %w", err)
	}

	prompts := make([]*models.Prompt, 0, len(promptIDs))
	for promptID, cmd := range promptCommands {
		promptJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Prompt was deleted between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get prompt %s: %w", promptID, err)
		}

		var prompt models.Prompt
		if err := json.Unmarshal([]byte(promptJSON), &prompt); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prompt %s: %w", promptID, err)
		}

		// The mode-only filter has no dedicated index
		if input.Mode != "" && prompt.Mode != input.Mode {
			continue
		}

		prompts = append(prompts, &prompt)
	}

	sort.Slice(prompts, func(i, j int) bool {
		return prompts[i].ID > prompts[j].ID
	})

	if input.Limit > 0 && len(prompts) > input.Limit {
		prompts = prompts[:input.Limit]
	}

	return &ListPromptsOutput{
		Prompts: prompts,
	}, nil
}

// DeletePrompt removes a prompt and its index entries from Redis
func (r *redisRepository) DeletePrompt(ctx context.Context, input *DeletePromptInput) error {
	if input == nil || input.PromptID == 0 {
		return errors.New("input and prompt ID cannot be empty")
	}

	prompt, err := r.GetPrompt(ctx, &GetPromptInput{
		PromptID: input.PromptID,
	})
	if err != nil {
		if errors.Is(err, ErrPromptNotFound) {
			return nil
		}
		return err
	}

	pipe := r.client.Pipeline()

	promptKey := fmt.Sprintf("%s%d", promptKeyPrefix, input.PromptID)
	pipe.Del(ctx, promptKey)
	pipe.SRem(ctx, allPromptsKey, input.PromptID)
	pipe.SRem(ctx, categoryKey(prompt.Category), input.PromptID)
	pipe.SRem(ctx, catalogKey(prompt.Category, prompt.Mode), input.PromptID)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}

	return nil
}

// GetPromptCounts reports catalog sizes by category
func (r *redisRepository) GetPromptCounts(ctx context.Context, input *GetPromptCountsInput) (*GetPromptCountsOutput, error) {
	pipe := r.client.Pipeline()

	totalCmd := pipe.SCard(ctx, allPromptsKey)
	truthsCmd := pipe.SCard(ctx, categoryKey(models.PromptCategoryTruth))
	daresCmd := pipe.SCard(ctx, categoryKey(models.PromptCategoryDare))

	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count prompts: %w", err)
	}

	return &GetPromptCountsOutput{
		Total:  totalCmd.Val(),
		Truths: truthsCmd.Val(),
		Dares:  daresCmd.Val(),
	}, nil
}

func categoryKey(category models.PromptCategory) string {
	return fmt.Sprintf("%s%s", categoryKeyPrefix, category)
}

func catalogKey(category models.PromptCategory, mode string) string {
	return fmt.Sprintf("%s%s:%s", catalogKeyPrefix, category, mode)
}