package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type AdminCommandTestSuite struct {
	suite.Suite
}

func (s *AdminCommandTestSuite) TestCommandDefinition() {
	cmd := NewAdminCommand(nil, nil, []string{"admin-1"})
	definition := cmd.GetCommand()

	s.Equal("tordadmin", definition.Name)

	subcommands := make(map[string]*discordgo.ApplicationCommandOption)
	for _, opt := range definition.Options {
		s.Equal(discordgo.ApplicationCommandOptionSubCommand, opt.Type)
		subcommands[opt.Name] = opt
	}

	for _, name := range []string{"addprompt", "listprompts", "delprompt", "finduser", "stats"} {
		s.Contains(subcommands, name)
	}

	finduser := subcommands["finduser"]
	s.Require().Len(finduser.Options, 1)
	s.Equal("query", finduser.Options[0].Name)
	s.True(finduser.Options[0].Required)
}

func (s *AdminCommandTestSuite) TestAllowlist() {
	cmd := NewAdminCommand(nil, nil, []string{"admin-1", "admin-2"})

	s.True(cmd.adminIDs["admin-1"])
	s.True(cmd.adminIDs["admin-2"])
	s.False(cmd.adminIDs["actor-1"])
}

func (s *AdminCommandTestSuite) TestHandle_IgnoresOtherCommands() {
	cmd := NewAdminCommand(nil, nil, []string{"admin-1"})

	s.NoError(cmd.Handle(nil, nil, &Intent{
		Kind:    IntentKindCommand,
		Command: "tord",
		ActorID: "admin-1",
	}))
}

func TestAdminCommandSuite(t *testing.T) {
	suite.Run(t, new(AdminCommandTestSuite))
}
