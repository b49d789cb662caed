package help

import (
	"testing"

	"RoleMatrix/commands"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	responses []*discordgo.InteractionResponse
}

func (r *recorder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return nil
}

func noop(*discordgo.InteractionCreate) error { return nil }

func newFixture() (*recorder, *Handler) {
	logger, _ := test.NewNullLogger()
	rec := &recorder{}
	registry := commands.NewRegistry(rec, nil, logger)
	registry.RegisterModule(&commands.ModuleInfo{
		Name:     "RoleMatrix",
		Version:  "1.0.0",
		Category: "Roles",
		SlashCommands: []commands.SlashCommandInfo{
			{Name: "roles", Description: "Launch the dashboard", GuildOnly: true, Handler: noop},
		},
	})
	h := NewHandler(rec, registry)
	registry.RegisterModule(NewModule(h))
	return rec, h
}

func helpEvent(options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "help", Options: options},
	}}
}

func commandArg(value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  commandOption,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestHandleHelp_Overview(t *testing.T) {
	rec, h := newFixture()

	require.NoError(t, h.HandleHelp(helpEvent()))

	resp := rec.responses[0]
	require.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	embed := resp.Data.Embeds[0]
	require.Equal(t, "📚 Available Commands", embed.Title)
	require.Len(t, embed.Fields, 2)
	// modules are listed by name: Help before RoleMatrix
	require.Equal(t, "📂 General", embed.Fields[0].Name)
	require.Equal(t, "`/help` - Displays help information for commands", embed.Fields[0].Value)
	require.Equal(t, "📂 Roles", embed.Fields[1].Name)
	require.Equal(t, "`/roles` - Launch the dashboard", embed.Fields[1].Value)
}

func TestHandleHelp_Command(t *testing.T) {
	tests := []struct {
		name         string
		arg          string
		title        string
		usage        string
		availability string
	}{
		{name: "plain name", arg: "roles", title: "Help: /roles", usage: "`/roles`", availability: "Servers only"},
		{name: "with slash", arg: " /ROLES ", title: "Help: /roles", usage: "`/roles`", availability: "Servers only"},
		{name: "optional argument", arg: "help", title: "Help: /help", usage: "`/help [command:<command>]`", availability: "Servers and DMs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, h := newFixture()

			require.NoError(t, h.HandleHelp(helpEvent(commandArg(tt.arg))))

			embed := rec.responses[0].Data.Embeds[0]
			require.Equal(t, tt.title, embed.Title)
			require.Equal(t, tt.usage, embed.Fields[0].Value)
			require.Equal(t, tt.availability, embed.Fields[2].Value)
		})
	}
}

func TestHandleHelp_UnknownCommand(t *testing.T) {
	rec, h := newFixture()

	require.NoError(t, h.HandleHelp(helpEvent(commandArg("quota"))))

	resp := rec.responses[0]
	require.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	require.Equal(t, "Command `/quota` not found.", resp.Data.Content)
}
