package commands

import (
	"fmt"
	"sort"
	"strings"

	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// InteractionHandler handles one interaction to completion.
type InteractionHandler func(i *discordgo.InteractionCreate) error

// SlashCommandInfo holds information about slash commands
type SlashCommandInfo struct {
	Name        string                                `json:"name"`
	Description string                                `json:"description"`
	Options     []*discordgo.ApplicationCommandOption `json:"options"`
	GuildOnly   bool                                  `json:"guild_only"`
	Handler     InteractionHandler                    `json:"-"`
}

// ComponentInfo routes message component interactions whose custom ID starts with Prefix.
type ComponentInfo struct {
	Prefix  string             `json:"prefix"`
	Handler InteractionHandler `json:"-"`
}

// ModuleInfo represents a complete module with its commands and metadata
type ModuleInfo struct {
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Version       string             `json:"version"`
	Author        string             `json:"author"`
	Category      string             `json:"category"`
	SlashCommands []SlashCommandInfo `json:"slash_commands"`
	Components    []ComponentInfo    `json:"components"`
}

// Registry owns the registered modules and dispatches interactions to them.
type Registry struct {
	modules       map[string]*ModuleInfo
	slashCommands map[string]SlashCommandInfo
	components    []ComponentInfo

	responder utils.InteractionResponder
	limiter   *utils.RateLimiter
	log       logrus.FieldLogger
}

// NewRegistry creates an empty registry. responder answers throttled or misrouted
// interactions; limiter may be nil.
func NewRegistry(responder utils.InteractionResponder, limiter *utils.RateLimiter, log logrus.FieldLogger) *Registry {
	return &Registry{
		modules:       make(map[string]*ModuleInfo),
		slashCommands: make(map[string]SlashCommandInfo),
		responder:     responder,
		limiter:       limiter,
		log:           log,
	}
}

// RegisterModule registers a complete module and compiles its handlers
func (r *Registry) RegisterModule(module *ModuleInfo) {
	r.modules[module.Name] = module

	for _, slashCmd := range module.SlashCommands {
		r.slashCommands[slashCmd.Name] = slashCmd
	}

	r.components = append(r.components, module.Components...)
	// longest prefix wins when prefixes overlap
	sort.SliceStable(r.components, func(a, b int) bool {
		return len(r.components[a].Prefix) > len(r.components[b].Prefix)
	})
}

// Modules returns all registered modules ordered by name.
func (r *Registry) Modules() []*ModuleInfo {
	modules := make([]*ModuleInfo, 0, len(r.modules))
	for _, module := range r.modules {
		modules = append(modules, module)
	}
	sort.Slice(modules, func(a, b int) bool { return modules[a].Name < modules[b].Name })
	return modules
}

// SlashCommands returns all registered slash commands for registration, ordered by name.
func (r *Registry) SlashCommands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	for _, module := range r.Modules() {
		for _, slashCmd := range module.SlashCommands {
			cmd := &discordgo.ApplicationCommand{
				Name:        slashCmd.Name,
				Description: slashCmd.Description,
				Options:     slashCmd.Options,
			}
			if slashCmd.GuildOnly {
				dm := false
				cmd.DMPermission = &dm
			}
			commands = append(commands, cmd)
		}
	}
	sort.Slice(commands, func(a, b int) bool { return commands[a].Name < commands[b].Name })
	return commands
}

// HandleInteraction is the discordgo event handler for InteractionCreate.
func (r *Registry) HandleInteraction(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	_ = r.Dispatch(i)
}

// Dispatch routes the interaction to its handler and logs any failure.
func (r *Registry) Dispatch(i *discordgo.InteractionCreate) (err error) {
	fields := logrus.Fields{
		"guild_id": i.GuildID,
		"user_id":  utils.InteractionUserID(i.Interaction),
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("interaction handler panicked: %v", rec)
		}
		if err != nil {
			utils.LogError(r.log, "Error handling interaction", err, fields)
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		fields["command"] = name
		return r.dispatchCommand(name, i)
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		fields["custom_id"] = customID
		return r.dispatchComponent(customID, i)
	default:
		return nil
	}
}

func (r *Registry) dispatchCommand(name string, i *discordgo.InteractionCreate) error {
	slashCmd, exists := r.slashCommands[name]
	if !exists {
		r.log.WithField("command", name).Warn("received unknown slash command")
		return nil
	}

	if slashCmd.GuildOnly && i.GuildID == "" {
		return utils.RespondEphemeral(r.responder, i.Interaction, "This command can only be used inside a server.")
	}

	userID := utils.InteractionUserID(i.Interaction)
	if !r.limiter.Allow(userID, name) {
		retry := r.limiter.RetryAfter(userID, name)
		r.log.WithFields(logrus.Fields{"command": name, "user_id": userID}).Debug("slash command rate limited")
		return utils.RespondEphemeral(r.responder, i.Interaction,
			fmt.Sprintf("You're doing that too fast. Try again in %d seconds.", retry))
	}

	return slashCmd.Handler(i)
}

func (r *Registry) dispatchComponent(customID string, i *discordgo.InteractionCreate) error {
	for _, component := range r.components {
		if strings.HasPrefix(customID, component.Prefix) {
			return component.Handler(i)
		}
	}
	r.log.WithField("custom_id", customID).Debug("ignoring component without a registered handler")
	return nil
}
