package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration loaded from the environment
type Config struct {
	// DiscordToken authenticates the bot with the gateway
	DiscordToken string

	// ApplicationID is the bot's application ID
	ApplicationID string

	// GuildID scopes command registration to one guild during development
	GuildID string

	// RedisAddr is the Redis host:port
	RedisAddr string

	// RedisPassword is the Redis password; empty for none
	RedisPassword string

	// AdminIDs are the user IDs allowed to run admin commands
	AdminIDs []string

	// MembershipAPIURL serves the mandatory community list; empty disables
	// the gate
	MembershipAPIURL string
}

// Load reads configuration from a .env file (when present) and the
// environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := &Config{
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),
		ApplicationID:    os.Getenv("APPLICATION_ID"),
		GuildID:          os.Getenv("GUILD_ID"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		AdminIDs:         splitList(os.Getenv("ADMIN_IDS")),
		MembershipAPIURL: os.Getenv("MEMBERSHIP_API_URL"),
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList parses a comma-separated environment value
func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
