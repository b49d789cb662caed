package roles

import (
	"RoleMatrix/commands"
)

const (
	CommandName        = "roles"
	CommandDescription = "Launch the advanced Role Matrix dashboard"
)

// NewModule wires the handler into a registrable module.
func NewModule(h *Handler) *commands.ModuleInfo {
	return &commands.ModuleInfo{
		Name:        "RoleMatrix",
		Description: "Interactive, paginated dashboard of the server's roles",
		Version:     "1.0.0",
		Author:      "Bot Team",
		Category:    "Roles",
		SlashCommands: []commands.SlashCommandInfo{
			{
				Name:        CommandName,
				Description: CommandDescription,
				GuildOnly:   true,
				Handler:     h.HandleRoles,
			},
		},
		Components: []commands.ComponentInfo{
			{Prefix: CustomIDPrefix, Handler: h.HandleComponent},
		},
	}
}
