package discord

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/bwmarrin/discordgo"
)

type IntentTestSuite struct {
	suite.Suite
}

func (s *IntentTestSuite) interaction(data discordgo.InteractionData, interactionType discordgo.InteractionType) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      interactionType,
			ChannelID: "channel-1",
			Member: &discordgo.Member{
				User: &discordgo.User{
					ID:       "actor-1",
					Username: "actor",
				},
			},
			Data: data,
		},
	}
}

func (s *IntentTestSuite) TestParseIntent_SubcommandWithOptions() {
	i := s.interaction(discordgo.ApplicationCommandInteractionData{
		Name: "tord",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Type: discordgo.ApplicationCommandOptionSubCommand,
				Name: "join",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Type:  discordgo.ApplicationCommandOptionString,
						Name:  "code",
						Value: "AB12CD34",
					},
				},
			},
		},
	}, discordgo.InteractionApplicationCommand)

	intent := ParseIntent(i)

	s.Equal(IntentKindCommand, intent.Kind)
	s.Equal("tord", intent.Command)
	s.Equal("join", intent.Subcommand)
	s.Equal("channel-1", intent.ChannelID)
	s.Equal("actor-1", intent.ActorID)
	s.Equal("AB12CD34", intent.StringOption("code"))
}

func (s *IntentTestSuite) TestParseIntent_NickOverridesActorName() {
	i := s.interaction(discordgo.ApplicationCommandInteractionData{
		Name: "tord",
	}, discordgo.InteractionApplicationCommand)
	i.Member.Nick = "The Creator"

	intent := ParseIntent(i)

	s.Equal("actor", intent.ActorUsername)
	s.Equal("The Creator", intent.ActorName)
}

func (s *IntentTestSuite) TestParseIntent_DirectMessageFallsBackToUser() {
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: "dm-1",
			User: &discordgo.User{
				ID:       "actor-2",
				Username: "loner",
			},
			Data: discordgo.ApplicationCommandInteractionData{Name: "tord"},
		},
	}

	intent := ParseIntent(i)

	s.Equal("actor-2", intent.ActorID)
	s.Equal("loner", intent.ActorName)
}

func (s *IntentTestSuite) TestParseIntent_Component() {
	i := s.interaction(discordgo.MessageComponentInteractionData{
		CustomID: ButtonPickTruth,
	}, discordgo.InteractionMessageComponent)

	intent := ParseIntent(i)

	s.Equal(IntentKindComponent, intent.Kind)
	s.Equal(ButtonPickTruth, intent.CustomID)
	s.Equal("actor-1", intent.ActorID)
}

func (s *IntentTestSuite) TestParseIntent_ModalSubmit() {
	i := s.interaction(discordgo.ModalSubmitInteractionData{
		CustomID: "stale_form",
	}, discordgo.InteractionModalSubmit)

	intent := ParseIntent(i)

	s.Equal(IntentKindModal, intent.Kind)
	s.Equal("stale_form", intent.CustomID)
}

func TestIntentSuite(t *testing.T) {
	suite.Run(t, new(IntentTestSuite))
}
