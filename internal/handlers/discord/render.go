package discord

import (
	"fmt"
	"strings"

	"github.com/tordbot/tord/internal/models"
	"github.com/tordbot/tord/internal/services/admin"
	"github.com/tordbot/tord/internal/services/game"
	"github.com/tordbot/tord/internal/services/membership"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorPrimary = 0x5865f2
	colorSuccess = 0x57f287
	colorWarning = 0xfee75c
	colorError   = 0xed4245
	colorTruth   = 0x3498db
	colorDare    = 0xe74c3c
)

// Component custom IDs
const (
	ButtonJoinSession  = "join_session"
	ButtonBeginSession = "begin_session"
	ButtonPickTruth    = "pick_truth"
	ButtonPickDare     = "pick_dare"
	ButtonActionDone   = "action_done"
	ButtonActionSkip   = "action_skip"
)

// lobbyButtons returns the join and begin buttons shown under a waiting
// session
func lobbyButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Join",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonJoinSession,
			Emoji: &discordgo.ComponentEmoji{
				Name: "\U0001F44B",
			},
		},
		discordgo.Button{
			Label:    "Begin",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonBeginSession,
			Emoji: &discordgo.ComponentEmoji{
				Name: "\U0001F3AE",
			},
		},
	}
}

// categoryButtons returns the truth and dare buttons shown to the turn
// holder
func categoryButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Truth",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonPickTruth,
			Emoji: &discordgo.ComponentEmoji{
				Name: "\U0001F4AC",
			},
		},
		discordgo.Button{
			Label:    "Dare",
			Style:    discordgo.DangerButton,
			CustomID: ButtonPickDare,
			Emoji: &discordgo.ComponentEmoji{
				Name: "\U0001F525",
			},
		},
	}
}

// outcomeButtons returns the done and skip buttons shown under a dispensed
// prompt
func outcomeButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Done",
			Style:    discordgo.SuccessButton,
			CustomID: ButtonActionDone,
			Emoji: &discordgo.ComponentEmoji{
				Name: "✅",
			},
		},
		discordgo.Button{
			Label:    "Skip",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonActionSkip,
			Emoji: &discordgo.ComponentEmoji{
				Name: "⏭️",
			},
		},
	}
}

// renderLobby builds the embed for a waiting session
func renderLobby(session *models.Session) *discordgo.MessageEmbed {
	var roster strings.Builder
	for _, entry := range session.Players {
		fmt.Fprintf(&roster, "%d. %s\n", entry.JoinRank, entry.PlayerName)
	}

	return &discordgo.MessageEmbed{
		Title:       "Truth or Dare",
		Description: fmt.Sprintf("A new game is gathering. Share code `%s` or press Join below.", session.Code),
		Color:       colorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Code",
				Value:  session.Code,
				Inline: true,
			},
			{
				Name:   "Status",
				Value:  "Waiting for players",
				Inline: true,
			},
			{
				Name:  fmt.Sprintf("Players (%d)", len(session.Players)),
				Value: roster.String(),
			},
		},
	}
}

// renderTurn builds the embed announcing whose turn it is
func renderTurn(playerName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Your Turn!",
		Description: fmt.Sprintf("**%s**, truth or dare?", playerName),
		Color:       colorPrimary,
	}
}

// renderPrompt builds the embed showing a dispensed prompt
func renderPrompt(prompt *models.Prompt, playerName string) *discordgo.MessageEmbed {
	title := "Truth"
	color := colorTruth
	if prompt.Category == models.PromptCategoryDare {
		title = "Dare"
		color = colorDare
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s for %s", title, playerName),
		Description: prompt.Text,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Prompt #%d", prompt.ID),
		},
	}
}

// renderStandings builds the embed listing session scores
func renderStandings(title string, entries []game.StandingsEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "Nobody has scored yet.",
			Color:       colorWarning,
		}
	}

	var body strings.Builder
	for rank, entry := range entries {
		fmt.Fprintf(&body, "%s **%s** - %d points\n", rankEmoji(rank), entry.PlayerName, entry.Score)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: body.String(),
		Color:       colorSuccess,
	}
}

// renderProfile builds the embed for a player's lifetime stats
func renderProfile(profile *models.Profile) *discordgo.MessageEmbed {
	name := profile.DisplayName
	if name == "" {
		name = profile.Username
	}

	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Stats for %s", name),
		Color: colorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Games Played",
				Value:  fmt.Sprintf("%d", profile.GamesPlayed),
				Inline: true,
			},
			{
				Name:   "Truths",
				Value:  fmt.Sprintf("%d", profile.TruthsCompleted),
				Inline: true,
			},
			{
				Name:   "Dares",
				Value:  fmt.Sprintf("%d", profile.DaresCompleted),
				Inline: true,
			},
			{
				Name:   "Total Score",
				Value:  fmt.Sprintf("%d", profile.TotalScore),
				Inline: true,
			},
		},
	}
}

// renderLeaderboard builds the embed for the lifetime leaderboard
func renderLeaderboard(profiles []*models.Profile) *discordgo.MessageEmbed {
	if len(profiles) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Top Players",
			Description: "Nobody has played yet.",
			Color:       colorWarning,
		}
	}

	var body strings.Builder
	for rank, profile := range profiles {
		name := profile.DisplayName
		if name == "" {
			name = profile.Username
		}
		fmt.Fprintf(&body, "%s **%s** - %d points (%d games)\n",
			rankEmoji(rank), name, profile.TotalScore, profile.GamesPlayed)
	}

	return &discordgo.MessageEmbed{
		Title:       "Top Players",
		Description: body.String(),
		Color:       colorSuccess,
	}
}

// renderGeneralStats builds the embed for bot-wide totals
func renderGeneralStats(stats *admin.GetGeneralStatsOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Bot Statistics",
		Color: colorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Sessions",
				Value:  fmt.Sprintf("%d total, %d active", stats.TotalSessions, stats.ActiveSessions),
				Inline: true,
			},
			{
				Name:   "Players",
				Value:  fmt.Sprintf("%d total, %d active", stats.TotalPlayers, stats.ActivePlayers),
				Inline: true,
			},
			{
				Name:   "Prompts",
				Value:  fmt.Sprintf("%d total (%d truths, %d dares)", stats.TotalPrompts, stats.TruthPrompts, stats.DarePrompts),
				Inline: true,
			},
		},
	}
}

// renderMembershipGate builds the embed and link buttons shown to an actor
// who still needs to join mandatory communities
func renderMembershipGate(missing []membership.Community) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       "Almost there!",
		Description: "Join the communities below, then try again.",
		Color:       colorWarning,
	}

	var buttons []discordgo.MessageComponent
	for _, community := range missing {
		if community.InviteURL == "" {
			continue
		}
		buttons = append(buttons, discordgo.Button{
			Label: community.Title,
			Style: discordgo.LinkButton,
			URL:   community.InviteURL,
		})
	}

	return embed, buttons
}

// rankEmoji decorates the top three leaderboard rows
func rankEmoji(rank int) string {
	switch rank {
	case 0:
		return "\U0001F947"
	case 1:
		return "\U0001F948"
	case 2:
		return "\U0001F949"
	default:
		return fmt.Sprintf("%d.", rank+1)
	}
}
