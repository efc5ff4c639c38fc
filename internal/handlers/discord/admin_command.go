package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tordbot/tord/internal/models"
	"github.com/tordbot/tord/internal/services/admin"
	"github.com/tordbot/tord/internal/services/profile"
	"github.com/bwmarrin/discordgo"
)

// AdminCommand handles the /tordadmin command. Every subcommand is gated
// on the configured admin allowlist.
type AdminCommand struct {
	BaseCommand
	adminService   admin.Service
	profileService profile.Service
	adminIDs       map[string]bool
}

// NewAdminCommand creates a new admin command handler
func NewAdminCommand(adminService admin.Service, profileService profile.Service, adminIDs []string) *AdminCommand {
	allowlist := make(map[string]bool, len(adminIDs))
	for _, id := range adminIDs {
		allowlist[id] = true
	}

	return &AdminCommand{
		BaseCommand: BaseCommand{
			Name:        "tordadmin",
			Description: "Truth or Dare administration commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "addprompt",
					Description: "Add a prompt to the catalog",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "truth or dare",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Truth", Value: string(models.PromptCategoryTruth)},
								{Name: "Dare", Value: string(models.PromptCategoryDare)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "text",
							Description: "The prompt text",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "Prompt mode; defaults to classic",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "listprompts",
					Description: "List catalog prompts, newest first",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Filter by category",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Truth", Value: string(models.PromptCategoryTruth)},
								{Name: "Dare", Value: string(models.PromptCategoryDare)},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delprompt",
					Description: "Delete a prompt by its ID",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "id",
							Description: "The prompt ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "finduser",
					Description: "Look a player up by ID or username",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "query",
							Description: "The player ID or username",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show bot-wide statistics",
				},
			},
		},
		adminService:   adminService,
		profileService: profileService,
		adminIDs:       allowlist,
	}
}

// Handle processes a Discord interaction for the tordadmin command
func (c *AdminCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	if intent.Kind != IntentKindCommand || intent.Command != c.Name {
		return nil
	}

	if !c.adminIDs[intent.ActorID] {
		return RespondWithError(s, i, "You are not allowed to use admin commands.")
	}

	switch intent.Subcommand {
	case "addprompt":
		return c.handleAddPrompt(s, i, intent)
	case "listprompts":
		return c.handleListPrompts(s, i, intent)
	case "delprompt":
		return c.handleDeletePrompt(s, i, intent)
	case "finduser":
		return c.handleFindUser(s, i, intent)
	case "stats":
		return c.handleStats(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleAddPrompt handles the addprompt subcommand
func (c *AdminCommand) handleAddPrompt(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	result, err := c.adminService.AddPrompt(ctx, &admin.AddPromptInput{
		Text:     intent.StringOption("text"),
		Category: models.PromptCategory(intent.StringOption("category")),
		Mode:     intent.StringOption("mode"),
	})
	if err != nil {
		switch {
		case errors.Is(err, admin.ErrEmptyPromptText):
			return RespondWithError(s, i, "The prompt text cannot be empty.")
		case errors.Is(err, admin.ErrInvalidCategory):
			return RespondWithError(s, i, "Category must be truth or dare.")
		default:
			log.Printf("Error adding prompt: %v", err)
			return RespondWithError(s, i, "Failed to add the prompt.")
		}
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Added %s prompt #%d.", result.Prompt.Category, result.Prompt.ID))
}

// handleListPrompts handles the listprompts subcommand
func (c *AdminCommand) handleListPrompts(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	result, err := c.adminService.ListPrompts(ctx, &admin.ListPromptsInput{
		Category: models.PromptCategory(intent.StringOption("category")),
	})
	if err != nil {
		log.Printf("Error listing prompts: %v", err)
		return RespondWithError(s, i, "Failed to list prompts.")
	}

	if len(result.Prompts) == 0 {
		return RespondWithEphemeralMessage(s, i, "The catalog is empty.")
	}

	var body strings.Builder
	for _, prompt := range result.Prompts {
		fmt.Fprintf(&body, "`#%d` [%s] %s\n", prompt.ID, prompt.Category, prompt.Text)
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       fmt.Sprintf("Prompts (%d)", len(result.Prompts)),
					Description: body.String(),
					Color:       colorPrimary,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// handleDeletePrompt handles the delprompt subcommand
func (c *AdminCommand) handleDeletePrompt(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	promptID := intent.IntOption("id")
	result, err := c.adminService.DeletePrompt(ctx, &admin.DeletePromptInput{
		PromptID: promptID,
	})
	if err != nil {
		log.Printf("Error deleting prompt %d: %v", promptID, err)
		return RespondWithError(s, i, "Failed to delete the prompt.")
	}

	if !result.Existed {
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("No prompt with ID #%d.", promptID))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Deleted prompt #%d.", promptID))
}

// handleFindUser handles the finduser subcommand
func (c *AdminCommand) handleFindUser(s *discordgo.Session, i *discordgo.InteractionCreate, intent *Intent) error {
	ctx := context.Background()

	query := strings.TrimSpace(intent.StringOption("query"))
	if query == "" {
		return RespondWithError(s, i, "You need to give a player ID or username.")
	}

	result, err := c.profileService.SearchPlayer(ctx, &profile.SearchPlayerInput{
		Query: query,
	})
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("No player found matching `%s`.", query))
		}
		log.Printf("Error searching for player %q: %v", query, err)
		return RespondWithError(s, i, "Failed to search for the player.")
	}

	return RespondWithEmbed(s, i, renderProfile(result.Profile))
}

// handleStats handles the stats subcommand
func (c *AdminCommand) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	stats, err := c.adminService.GetGeneralStats(ctx, &admin.GetGeneralStatsInput{})
	if err != nil {
		log.Printf("Error getting general stats: %v", err)
		return RespondWithError(s, i, "Failed to load statistics.")
	}

	return RespondWithEmbed(s, i, renderGeneralStats(stats))
}
