package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tordbot/tord/internal/services/game"
	"github.com/tordbot/tord/internal/services/membership"
	"github.com/tordbot/tord/internal/services/profile"
	"github.com/bwmarrin/discordgo"
)

// TordCommand handles the /tord command
type TordCommand struct {
	BaseCommand
	gameService       game.Service
	profileService    profile.Service
	membershipService membership.Service
}

// NewTordCommand creates a new tord command handler
func NewTordCommand(gameService game.Service, profileService profile.Service, membershipService membership.Service) *TordCommand {
	return &TordCommand{
		BaseCommand: BaseCommand{
			Name:        "tord",
			Description: "Truth or Dare game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "new",
					Description: "Create a new game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join a game by its code",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "The 8-character game code",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "begin",
					Description: "Begin the game (creator only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "players",
					Description: "List the players in this game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "standings",
					Description: "Show the current game standings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the game (creator only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show lifetime stats",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "player",
							Description: "Whose stats to show; defaults to you",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "top",
					Description: "Show the lifetime leaderboard",
				},
			},
		},
		gameService:       gameService,
		profileService:    profileService,
		membershipService: membershipService,
	}
}

// Handle processes a Discord interaction for the tord command
func (c *TordCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	if intent.Kind != IntentKindCommand || intent.Command != c.Name {
		return nil
	}

	// First contact creates the profile, so stats and leaderboard rows
	// exist before any game credits land
	if _, err := c.profileService.RegisterPlayer(context.Background(), &profile.RegisterPlayerInput{
		PlayerID:    intent.ActorID,
		Username:    intent.ActorUsername,
		DisplayName: intent.ActorName,
	}); err != nil {
		log.Printf("Error registering player %s: %v", intent.ActorID, err)
	}

	switch intent.Subcommand {
	case "new":
		return c.handleNew(s, i, intent)
	case "join":
		return c.handleJoin(s, i, intent)
	case "begin":
		return c.handleBegin(s, i, intent)
	case "players":
		return c.handlePlayers(s, i, intent)
	case "standings":
		return c.handleStandings(s, i, intent)
	case "end":
		return c.handleEnd(s, i, intent)
	case "stats":
		return c.handleStats(s, i, intent)
	case "top":
		return c.handleTop(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// gateCheck enforces the mandatory community gate. It responds to the
// interaction itself when the actor is blocked.
func (c *TordCommand) gateCheck(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) (bool, error) {
	access, err := c.membershipService.CheckAccess(ctx, &membership.CheckAccessInput{
		ActorID: intent.ActorID,
	})
	if err != nil {
		log.Printf("Error checking membership for %s: %v", intent.ActorID, err)
		return false, RespondWithError(s, i, "Could not verify your membership. Try again in a moment.")
	}

	if !access.Authorized {
		embed, buttons := renderMembershipGate(access.Missing)
		if len(buttons) == 0 {
			return false, RespondWithError(s, i, "You need to join the mandatory communities before playing.")
		}
		return false, s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{embed},
				Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}},
				Flags:      discordgo.MessageFlagsEphemeral,
			},
		})
	}

	return true, nil
}

// handleNew handles the new subcommand
func (c *TordCommand) handleNew(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	ok, err := c.gateCheck(ctx, s, i, intent)
	if !ok {
		return err
	}

	// One session per channel; stale ones must be ended first
	existing, err := c.gameService.GetSessionByChannel(ctx, &game.GetSessionByChannelInput{
		ChannelID: intent.ChannelID,
	})
	if err != nil && !errors.Is(err, game.ErrSessionNotFound) {
		log.Printf("Error checking for existing session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}
	if err == nil && existing.Session != nil {
		return RespondWithError(s, i, "There's already a game in this channel. Use `/tord end` to finish it first.")
	}

	createOutput, err := c.gameService.CreateSession(ctx, &game.CreateSessionInput{
		CreatorID:       intent.ActorID,
		CreatorUsername: intent.ActorUsername,
		CreatorName:     intent.ActorName,
		ChannelID:       intent.ChannelID,
	})
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return RespondWithError(s, i, "Failed to create the game. Try again in a moment.")
	}

	return RespondWithEmbedAndButtons(s, i, renderLobby(createOutput.Session), lobbyButtons())
}

// handleJoin handles the join subcommand
func (c *TordCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	ok, err := c.gateCheck(ctx, s, i, intent)
	if !ok {
		return err
	}

	code := strings.ToUpper(strings.TrimSpace(intent.StringOption("code")))
	if code == "" {
		return RespondWithError(s, i, "You need to give a game code.")
	}

	joinOutput, err := c.gameService.JoinSession(ctx, &game.JoinSessionInput{
		Code:           code,
		PlayerID:       intent.ActorID,
		PlayerUsername: intent.ActorUsername,
		PlayerName:     intent.ActorName,
	})
	if err != nil {
		switch {
		case errors.Is(err, game.ErrSessionNotFound):
			return RespondWithError(s, i, fmt.Sprintf("No game found with code `%s`.", code))
		case errors.Is(err, game.ErrInvalidSessionState):
			return RespondWithError(s, i, "That game has already started.")
		default:
			log.Printf("Error joining session %s: %v", code, err)
			return RespondWithError(s, i, "Failed to join the game. Try again in a moment.")
		}
	}

	if joinOutput.AlreadyJoined {
		return RespondWithEphemeralMessage(s, i, "You're already in this game.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("**%s** joined the game! %d players are in.",
		intent.ActorName, len(joinOutput.Session.Players)))
}

// handleBegin handles the begin subcommand
func (c *TordCommand) handleBegin(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	sessionOutput, err := c.gameService.GetSessionByChannel(ctx, &game.GetSessionByChannelInput{
		ChannelID: intent.ChannelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "No game in this channel. Use `/tord new` to create one.")
		}
		log.Printf("Error getting session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	startOutput, err := c.gameService.StartSession(ctx, &game.StartSessionInput{
		Code:     sessionOutput.Session.Code,
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

// handlePlayers handles the players subcommand
func (c *TordCommand) handlePlayers(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	sessionOutput, err := c.gameService.GetSessionByChannel(ctx, &game.GetSessionByChannelInput{
		ChannelID: intent.ChannelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "No game in this channel.")
		}
		log.Printf("Error getting session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	playersOutput, err := c.gameService.GetPlayers(ctx, &game.GetPlayersInput{
		Code: sessionOutput.Session.Code,
	})
	if err != nil {
		log.Printf("Error listing players: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	var roster strings.Builder
	for _, entry := range playersOutput.Players {
		fmt.Fprintf(&roster, "%d. %s\n", entry.JoinRank, entry.PlayerName)
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Players (%d)", len(playersOutput.Players)),
		Description: roster.String(),
		Color:       colorPrimary,
	})
}

// handleStandings handles the standings subcommand
func (c *TordCommand) handleStandings(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	sessionOutput, err := c.gameService.GetSessionByChannel(ctx, &game.GetSessionByChannelInput{
		ChannelID: intent.ChannelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "No game in this channel.")
		}
		log.Printf("Error getting session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	standingsOutput, err := c.gameService.GetStandings(ctx, &game.GetStandingsInput{
		Code: sessionOutput.Session.Code,
	})
	if err != nil {
		log.Printf("Error getting standings: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	return RespondWithEmbed(s, i, renderStandings("Standings", standingsOutput.Entries))
}

// handleEnd handles the end subcommand
func (c *TordCommand) handleEnd(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	sessionOutput, err := c.gameService.GetSessionByChannel(ctx, &game.GetSessionByChannelInput{
		ChannelID: intent.ChannelID,
	})
	if err != nil {
		if errors.Is(err, game.ErrSessionNotFound) {
			return RespondWithError(s, i, "No game in this channel.")
		}
		log.Printf("Error getting session: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	endOutput, err := c.gameService.EndSession(ctx, &game.EndSessionInput{
		Code:     sessionOutput.Session.Code,
		PlayerID: intent.ActorID,
	})
	if err != nil {
		if errors.Is(err, game.ErrNotCreator) {
			return RespondWithError(s, i, "Only the game creator can end the game.")
		}
		log.Printf("Error ending session: %v", err)
		return RespondWithError(s, i, "Failed to end the game. Try again in a moment.")
	}

	return RespondWithEmbed(s, i, renderStandings("Final Standings", endOutput.FinalStandings))
}

// handleStats handles the stats subcommand
func (c *TordCommand) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	playerID := intent.ActorID
	if opt, ok := intent.Options["player"]; ok {
		playerID = opt.UserValue(s).ID
	}

	statsOutput, err := c.profileService.GetStats(ctx, &profile.GetStatsInput{
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return RespondWithError(s, i, "That player hasn't played yet.")
		}
		log.Printf("Error getting stats for %s: %v", playerID, err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	return RespondWithEmbed(s, i, renderProfile(statsOutput.Profile))
}

// handleTop handles the top subcommand
func (c *TordCommand) handleTop(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	topOutput, err := c.profileService.GetTopPlayers(ctx, &profile.GetTopPlayersInput{})
	if err != nil {
		log.Printf("Error getting leaderboard: %v", err)
		return RespondWithError(s, i, "Something went wrong. Try again in a moment.")
	}

	return RespondWithEmbed(s, i, renderLeaderboard(topOutput.Profiles))
}
