package help

import (
	"fmt"
	"strings"

	"RoleMatrix/commands"
	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x00ff00

// Catalog lists the modules help can describe.
type Catalog interface {
	Modules() []*commands.ModuleInfo
}

type Handler struct {
	session utils.InteractionResponder
	catalog Catalog
}

func NewHandler(session utils.InteractionResponder, catalog Catalog) *Handler {
	return &Handler{session: session, catalog: catalog}
}

// HandleHelp answers /help privately, either with the command overview or with the
// details of one command.
func (h *Handler) HandleHelp(i *discordgo.InteractionCreate) error {
	var name string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == commandOption {
			name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(opt.StringValue())), "/")
		}
	}

	if name == "" {
		return utils.RespondEphemeralEmbed(h.session, i.Interaction, h.overview())
	}

	module, cmd, found := h.find(name)
	if !found {
		return utils.RespondEphemeral(h.session, i.Interaction, fmt.Sprintf("Command `/%s` not found.", name))
	}
	return utils.RespondEphemeralEmbed(h.session, i.Interaction, commandEmbed(module, cmd))
}

func (h *Handler) overview() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  "📚 Available Commands",
		Color:  embedColor,
		Footer: &discordgo.MessageEmbedFooter{Text: "Use /help command:<name> for details"},
	}

	for _, module := range h.catalog.Modules() {
		if len(module.SlashCommands) == 0 {
			continue
		}
		lines := make([]string, 0, len(module.SlashCommands))
		for _, cmd := range module.SlashCommands {
			lines = append(lines, fmt.Sprintf("`/%s` - %s", cmd.Name, cmd.Description))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("📂 %s", module.Category),
			Value: strings.Join(lines, "\n"),
		})
	}
	return embed
}

func (h *Handler) find(name string) (*commands.ModuleInfo, commands.SlashCommandInfo, bool) {
	for _, module := range h.catalog.Modules() {
		for _, cmd := range module.SlashCommands {
			if cmd.Name == name {
				return module, cmd, true
			}
		}
	}
	return nil, commands.SlashCommandInfo{}, false
}

func commandEmbed(module *commands.ModuleInfo, cmd commands.SlashCommandInfo) *discordgo.MessageEmbed {
	availability := "Servers and DMs"
	if cmd.GuildOnly {
		availability = "Servers only"
	}

	usage := "/" + cmd.Name
	for _, opt := range cmd.Options {
		if opt.Required {
			usage += fmt.Sprintf(" %s:<%s>", opt.Name, opt.Name)
		} else {
			usage += fmt.Sprintf(" [%s:<%s>]", opt.Name, opt.Name)
		}
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Help: /%s", cmd.Name),
		Description: cmd.Description,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Usage", Value: fmt.Sprintf("`%s`", usage)},
			{Name: "Module", Value: fmt.Sprintf("%s v%s", module.Name, module.Version), Inline: true},
			{Name: "Availability", Value: availability, Inline: true},
		},
	}
}
