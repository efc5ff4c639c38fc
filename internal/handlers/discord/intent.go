package discord

import (
	"github.com/bwmarrin/discordgo"
)

// IntentKind tags which interaction shape an Intent came from
type IntentKind string

const (
	IntentKindCommand   IntentKind = "command"
	IntentKindComponent IntentKind = "component"
	IntentKindModal     IntentKind = "modal"
)

// Intent is a normalized view of a Discord interaction. Slash commands,
// component clicks, and modal submits all carry the actor and channel the
// same way, so handler code never reaches back into the raw payload shapes.
type Intent struct {
	// Kind tags the interaction shape
	Kind IntentKind

	// Command is the slash command name; empty for components and modals
	Command string

	// Subcommand is the slash subcommand; empty when the command has none
	Subcommand string

	// CustomID is the component or modal identifier; empty for commands
	CustomID string

	// ChannelID is where the interaction happened
	ChannelID string

	// ActorID is the user who triggered the interaction
	ActorID string

	// ActorUsername is the actor's account name
	ActorUsername string

	// ActorName is the actor's display name; falls back to the username
	ActorName string

	// Options holds subcommand option values keyed by option name
	Options map[string]*discordgo.ApplicationCommandInteractionDataOption
}

// ParseIntent normalizes an interaction into an Intent. Interactions
// without a guild member (DMs) fall back to the plain user fields.
func ParseIntent(i *discordgo.InteractionCreate) *Intent {
	intent := &Intent{
		ChannelID: i.ChannelID,
		Options:   make(map[string]*discordgo.ApplicationCommandInteractionDataOption),
	}

	var user *discordgo.User
	if i.Member != nil {
		user = i.Member.User
	} else {
		user = i.User
	}
	if user != nil {
		intent.ActorID = user.ID
		intent.ActorUsername = user.Username
		intent.ActorName = user.Username
	}
	if i.Member != nil && i.Member.Nick != "" {
		intent.ActorName = i.Member.Nick
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		intent.Kind = IntentKindCommand
		data := i.ApplicationCommandData()
		intent.Command = data.Name
		if len(data.Options) > 0 && data.Options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
			intent.Subcommand = data.Options[0].Name
			for _, opt := range data.Options[0].Options {
				intent.Options[opt.Name] = opt
			}
		} else {
			for _, opt := range data.Options {
				intent.Options[opt.Name] = opt
			}
		}
	case discordgo.InteractionMessageComponent:
		intent.Kind = IntentKindComponent
		intent.CustomID = i.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		intent.Kind = IntentKindModal
		intent.CustomID = i.ModalSubmitData().CustomID
	}

	return intent
}

// StringOption returns a string option value, or empty when absent
func (n *Intent) StringOption(name string) string {
	if opt, ok := n.Options[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// IntOption returns an integer option value, or zero when absent
func (n *Intent) IntOption(name string) int64 {
	if opt, ok := n.Options[name]; ok {
		return opt.IntValue()
	}
	return 0
}
