package help

import (
	"RoleMatrix/commands"

	"github.com/bwmarrin/discordgo"
)

const commandOption = "command"

func NewModule(h *Handler) *commands.ModuleInfo {
	return &commands.ModuleInfo{
		Name:        "Help",
		Description: "Help system with command documentation",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "General",
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        "help",
				Description: "Displays help information for commands",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        commandOption,
						Description: "Command to describe",
						Required:    false,
					},
				},
				Handler: h.HandleHelp,
			},
		},
	}
}
