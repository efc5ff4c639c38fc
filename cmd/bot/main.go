package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tordbot/tord/internal/common/clock"
	"github.com/tordbot/tord/internal/common/uuid"
	"github.com/tordbot/tord/internal/config"
	"github.com/tordbot/tord/internal/gamecode"
	"github.com/tordbot/tord/internal/handlers/discord"
	"github.com/tordbot/tord/internal/random"
	convstateRepo "github.com/tordbot/tord/internal/repositories/convstate"
	ledgerRepo "github.com/tordbot/tord/internal/repositories/ledger"
	profileRepo "github.com/tordbot/tord/internal/repositories/profile"
	promptRepo "github.com/tordbot/tord/internal/repositories/prompt"
	sessionRepo "github.com/tordbot/tord/internal/repositories/session"
	adminService "github.com/tordbot/tord/internal/services/admin"
	gameService "github.com/tordbot/tord/internal/services/game"
	membershipService "github.com/tordbot/tord/internal/services/membership"
	profileService "github.com/tordbot/tord/internal/services/profile"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	profiles, err := profileRepo.NewRedis(&profileRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}

	ledgers, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create ledger repository: %v", err)
	}

	prompts, err := promptRepo.NewRedis(&promptRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create prompt repository: %v", err)
	}

	convstates, err := convstateRepo.NewRedis(&convstateRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create conversation state repository: %v", err)
	}

	// Shared helpers
	picker := random.New(&random.Config{})
	systemClock := &clock.DefaultClock{}
	uuidGen := uuid.New()

	// Initialize services
	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:   sessions,
		ProfileRepo:   profiles,
		LedgerRepo:    ledgers,
		PromptRepo:    prompts,
		CodeGenerator: gamecode.New(picker),
		Picker:        picker,
		Clock:         systemClock,
		UUIDGenerator: uuidGen,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	profileSvc, err := profileService.New(&profileService.Config{
		ProfileRepo: profiles,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create profile service: %v", err)
	}

	adminSvc, err := adminService.New(&adminService.Config{
		PromptRepo:  prompts,
		SessionRepo: sessions,
		ProfileRepo: profiles,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create admin service: %v", err)
	}

	// The membership checker needs the gateway session, so the gate is
	// built in two steps around the bot
	gateCfg := &membershipService.Config{
		APIURL: cfg.MembershipAPIURL,
	}

	bot, err := buildBot(cfg, gameSvc, profileSvc, adminSvc, gateCfg, convstates)
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// buildBot wires the membership gate and the bot together. The gate needs
// the bot's gateway session for member lookups and the bot needs the gate
// for access checks, so a placeholder gate is created first and swapped in
// once the bot exists.
func buildBot(
	cfg *config.Config,
	gameSvc gameService.Service,
	profileSvc profileService.Service,
	adminSvc adminService.Service,
	gateCfg *membershipService.Config,
	convstates convstateRepo.Repository,
) (*discord.Bot, error) {
	// An open gate lets the bot construct; the real checker is attached
	// below
	openGate, err := membershipService.New(&membershipService.Config{})
	if err != nil {
		return nil, err
	}

	botCfg := &discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		AdminIDs:          cfg.AdminIDs,
		GameService:       gameSvc,
		ProfileService:    profileSvc,
		AdminService:      adminSvc,
		MembershipService: openGate,
		ConvstateRepo:     convstates,
	}

	bot, err := discord.New(botCfg)
	if err != nil {
		return nil, err
	}

	if gateCfg.APIURL != "" {
		gate, err := membershipService.New(&membershipService.Config{
			APIURL:  gateCfg.APIURL,
			Checker: bot.MemberChecker(),
		})
		if err != nil {
			return nil, err
		}
		bot.SetMembershipService(gate)
	}

	return bot, nil
}
