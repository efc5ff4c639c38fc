package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/tordbot/tord/internal/models"
	convstateRepo "github.com/tordbot/tord/internal/repositories/convstate"
	"github.com/tordbot/tord/internal/services/admin"
	"github.com/tordbot/tord/internal/services/game"
	"github.com/tordbot/tord/internal/services/membership"
	"github.com/tordbot/tord/internal/services/profile"
	"github.com/bwmarrin/discordgo"
)

// Conversation flow identifiers
const (
	flowPendingAction = "pending_action"

	stateKeyPromptID = "prompt_id"
	stateKeyCategory = "category"
	stateKeyCode     = "session_code"
)

// Bot represents the Discord bot instance
type Bot struct {
	session           *discordgo.Session
	commands          map[string]CommandHandler
	commandIDs        map[string]string // Maps command name to command ID
	gameService       game.Service
	profileService    profile.Service
	adminService      admin.Service
	membershipService membership.Service
	convstateRepo     convstateRepo.Repository
	config            *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Admin user IDs allowed to run /tordadmin
	AdminIDs []string

	// Services
	GameService       game.Service
	ProfileService    profile.Service
	AdminService      admin.Service
	MembershipService membership.Service

	// Conversation state storage
	ConvstateRepo convstateRepo.Repository
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.ProfileService == nil {
		return nil, errors.New("profile service cannot be nil")
	}

	if cfg.AdminService == nil {
		return nil, errors.New("admin service cannot be nil")
	}

	if cfg.MembershipService == nil {
		return nil, errors.New("membership service cannot be nil")
	}

	if cfg.ConvstateRepo == nil {
		return nil, errors.New("conversation state repository cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:           session,
		commands:          make(map[string]CommandHandler),
		commandIDs:        make(map[string]string),
		gameService:       cfg.GameService,
		profileService:    cfg.ProfileService,
		adminService:      cfg.AdminService,
		membershipService: cfg.MembershipService,
		convstateRepo:     cfg.ConvstateRepo,
		config:            cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	tordCmd := NewTordCommand(b.gameService, b.profileService, b.membershipService)
	if err := b.RegisterCommand(tordCmd); err != nil {
		return fmt.Errorf("failed to register tord command: %w", err)
	}

	adminCmd := NewAdminCommand(b.adminService, b.profileService, b.config.AdminIDs)
	if err := b.RegisterCommand(adminCmd); err != nil {
		return fmt.Errorf("failed to register tordadmin command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// MemberChecker returns a membership checker backed by this bot's gateway
// session
func (b *Bot) MemberChecker() membership.MemberChecker {
	return &guildMemberChecker{session: b.session}
}

// SetMembershipService swaps the membership gate. Must be called before
// Start, since commands capture the gate at registration time.
func (b *Bot) SetMembershipService(svc membership.Service) {
	b.membershipService = svc
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	intent := ParseIntent(i)

	switch intent.Kind {
	case IntentKindCommand:
		if h, ok := b.commands[intent.Command]; ok {
			if err := h.Handle(s, i, intent); err != nil {
				log.Printf("Error handling command %s: %v", intent.Command, err)
			}
		}
	case IntentKindComponent:
		if err := b.handleComponentInteraction(s, i, intent); err != nil {
			log.Printf("Error handling component %s: %v", intent.CustomID, err)
		}
	case IntentKindModal:
		if err := b.handleModalInteraction(s, i, intent); err != nil {
			log.Printf("Error handling modal %s: %v", intent.CustomID, err)
		}
	}
}

// handleModalInteraction handles modal submits. No live flow presents a
// modal right now, so anything arriving here is a submit that outlasted
// the flow that opened it.
func (b *Bot) handleModalInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	log.Printf("Received modal submit %s with no active flow", intent.CustomID)
	return RespondWithEphemeralMessage(s, i, "This form is no longer active.")
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	switch intent.CustomID {
	case ButtonJoinSession:
		return b.handleJoinButton(s, i, intent)
	case ButtonBeginSession:
		return b.handleBeginButton(s, i, intent)
	case ButtonPickTruth:
		return b.handlePickButton(s, i, intent, models.PromptCategoryTruth)
	case ButtonPickDare:
		return b.handlePickButton(s, i, intent, models.PromptCategoryDare)
	case ButtonActionDone:
		return b.handleOutcomeButton(s, i, intent, true)
	case ButtonActionSkip:
		return b.handleOutcomeButton(s, i, intent, false)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", intent.CustomID))
	}
}

// channelSession fetches the session bound to the interaction channel
func (b *Bot) channelSession(ctx context.Context, intent *Intent) (*models.Session, error) {
	result, err := b.gameService.GetSessionByChannel(ctx, &game.GetSessionByChannelInput{
		ChannelID: intent.ChannelID,
	})
	if err != nil {
		return nil, err
	}
	return result.Session, nil
}

// handleJoinButton handles the join button click
func (b *Bot) handleJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	access, err := b.membershipService.CheckAccess(ctx, &membership.CheckAccessInput{
		ActorID: intent.ActorID,
	})
	if err != nil {
		log.Printf("Error checking membership for %s: %v", intent.ActorID, err)
		return RespondWithError(s, i, "Could not verify your membership. Try again in a moment.")
	}
	if !access.Authorized {
		embed, buttons := renderMembershipGate(access.Missing)
		if len(buttons) == 0 {
			return RespondWithError(s, i, "You need to join the mandatory communities before playing.")
		}
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{embed},
				Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
				Flags:      discordgo.MessageFlagsEphemeral,
			},
		})
	}

	session, err := b.channelSession(ctx, intent)
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "The game is gone. Use `/tord new` to start another.")
		}
		log.Printf("Error getting session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	joinOutput, err := b.gameService.JoinSession(ctx, &game.JoinSessionInput{
		Code:           session.Code,
		PlayerID:       intent.ActorID,
		PlayerUsername: intent.ActorUsername,
		PlayerName:     intent.ActorName,
	})
	if err != nil {
		if errors.Is(err, game.ErrInvalidSessionState) {
			return RespondWithError(s, i, "This game has already started.")
		}
		log.Printf("Error joining session: %v", err)
		return RespondWithError(s, i, "Failed to join the game. Try again in a moment.")
	}

	if joinOutput.AlreadyJoined {
		return RespondWithEphemeralMessage(s, i, "You're already in this game.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("**%s** joined the game! %d players are in.",
		intent.ActorName, len(joinOutput.Session.Players)))
}

// handleBeginButton handles the begin button click
func (b *Bot) handleBeginButton(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	session, err := b.channelSession(ctx, intent)
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "The game is gone. Use `/tord new` to start another.")
		}
		log.Printf("Error getting session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	startOutput, err := b.gameService.StartSession(ctx, &game.StartSessionInput{
		Code:     session.Code,
		PlayerID: intent.ActorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrNotCreator):
			return RespondWithError(s, i, "Only the game creator can begin the game.")
		case errors.Is(err, game.ErrNotEnoughPlayers):
			return RespondWithError(s, i, fmt.Sprintf("You need at least %d players to begin.", game.MinPlayers))
		case errors.Is(err, game.ErrInvalidSessionState):
			return RespondWithError(s, i, "This game has already started.")
		default:
			log.Printf("Error starting session: %v", err)
			return RespondWithError(s, i, "Failed to begin the game. Try again in a moment.")
		}
	}

	return RespondWithEmbedAndButtons(s, i,
		renderTurn(startOutput.FirstPlayer.PlayerName), categoryButtons())
}

// handlePickButton handles the truth and dare button clicks. The drawn
// prompt is parked in conversation state until the player reports the
// outcome.
func (b *Bot) handlePickButton(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent, category models.PromptCategory) error {
	ctx := context.Background()

	session, err := b.channelSession(ctx, intent)
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "The game is gone. Use `/tord new` to start another.")
		}
		log.Printf("Error getting session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	drawOutput, err := b.gameService.DrawPrompt(ctx, &game.DrawPromptInput{
		Code:     session.Code,
		PlayerID: intent.ActorID,
		Category: category,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrNotYourTurn):
			return RespondWithEphemeralMessage(s, i, "It's not your turn!")
		case errors.Is(err, game.ErrPlayerNotInSession):
			return RespondWithEphemeralMessage(s, i, "You're not in this game.")
		case errors.Is(err, game.ErrInvalidSessionState):
			return RespondWithError(s, i, "The game isn't running.")
		case errors.Is(err, game.ErrNoPromptsAvailable):
			return RespondWithError(s, i, fmt.Sprintf("No %s prompts available. Ask an admin to add some.", category))
		default:
			log.Printf("Error drawing prompt: %v", err)
			return RespondWithError(s, i, "Failed to draw a prompt. Try again in a moment.")
		}
	}

	err = b.convstateRepo.SaveState(ctx, &convstateRepo.SaveStateInput{
		State: &models.ConversationState{
			ActorID: intent.ActorID,
			Flow:    flowPendingAction,
			Data: map[string]string{
				stateKeyPromptID: strconv.FormatInt(drawOutput.Prompt.ID, 10),
				stateKeyCategory: string(category),
				stateKeyCode:     session.Code,
			},
		},
		TTL: convstateRepo.DefaultTTL,
	})
	if err != nil {
		log.Printf("Error saving pending action for %s: %v", intent.ActorID, err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	return RespondWithEmbedAndButtons(s, i,
		renderPrompt(drawOutput.Prompt, intent.ActorName), outcomeButtons())
}

// handleOutcomeButton handles the done and skip button clicks, then passes
// the turn along
func (b *Bot) handleOutcomeButton(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent, completed bool) error {
	ctx := context.Background()

	state, err := b.convstateRepo.GetState(ctx, &convstateRepo.GetStateInput{
		ActorID: intent.ActorID,
	})
	if err != nil {
		if errors.Is(err, convstateRepo.ErrStateNotFound) {
			return RespondWithEphemeralMessage(s, i, "You have no prompt to resolve. Draw one first!")
		}
		log.Printf("Error loading pending action for %s: %v", intent.ActorID, err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	if state.Flow != flowPendingAction {
		return RespondWithEphemeralMessage(s, i, "You have no prompt to resolve. Draw one first!")
	}

	promptID, err := strconv.ParseInt(state.Data[stateKeyPromptID], 10, 64)
	if err != nil {
		return RespondWithError(s, i, "Your pending prompt looks corrupted. Draw a new one.")
	}

	recordOutput, err := b.gameService.RecordAction(ctx, &game.RecordActionInput{
		Code:      state.Data[stateKeyCode],
		PlayerID:  intent.ActorID,
		PromptID:  promptID,
		Category:  models.PromptCategory(state.Data[stateKeyCategory]),
		Completed: completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrNotYourTurn):
			return RespondWithEphemeralMessage(s, i, "It's not your turn!")
		case errors.Is(err, game.ErrSessionNotFound):
			return RespondWithError(s, i, "The game is gone.")
		default:
			log.Printf("Error recording action: %v", err)
			return RespondWithError(s, i, "Failed to record your action. Try again in a moment.")
		}
	}

	if err := b.convstateRepo.ClearState(ctx, &convstateRepo.ClearStateInput{
		ActorID: intent.ActorID,
	}); err != nil {
		log.Printf("Error clearing pending action for %s: %v", intent.ActorID, err)
	}

	advanceOutput, err := b.gameService.AdvanceTurn(ctx, &game.AdvanceTurnInput{
		Code: state.Data[stateKeyCode],
	})
	if err != nil {
		log.Printf("Error advancing turn: %v", err)
		return RespondWithError(s, i, "Failed to pass the turn. Try again in a moment.")
	}

	var outcome string
	if completed {
		outcome = fmt.Sprintf("**%s** completed it for **%d points**!", intent.ActorName, recordOutput.PointsAwarded)
	} else {
		outcome = fmt.Sprintf("**%s** chickened out. No points!", intent.ActorName)
	}

	embed := renderTurn(advanceOutput.NextPlayer.PlayerName)
	embed.Description = outcome + "\n\n" + embed.Description

	return RespondWithEmbedAndButtons(s, i, embed, categoryButtons())
}

// guildMemberChecker implements membership.MemberChecker on top of the
// gateway session. State is consulted first to avoid REST calls.
type guildMemberChecker struct {
	session *discordgo.Session
}

func (g *guildMemberChecker) IsMember(_ context.Context, communityID, actorID string) (bool, error) {
	if member, err := g.session.State.Member(communityID, actorID); err == nil && member != nil {
		return true, nil
	}

	_, err := g.session.GuildMember(communityID, actorID)
	if err != nil {
		var restErr *discordgo.RESTError
		if errors.As(err, &restErr) && restErr.Message != nil &&
			restErr.Message.Code == discordgo.ErrCodeUnknownMember {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
