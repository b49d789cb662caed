package commands

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// CommandAPI is the slice of *discordgo.Session used to manage application commands.
type CommandAPI interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandEdit(appID, guildID, cmdID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// commandNeedsUpdate checks if an existing command needs to be updated
func commandNeedsUpdate(existing, desired *discordgo.ApplicationCommand) bool {
	if existing.Name != desired.Name {
		return true
	}
	if existing.Description != desired.Description {
		return true
	}
	if dmAllowed(existing) != dmAllowed(desired) {
		return true
	}
	if len(existing.Options) != len(desired.Options) {
		return true
	}
	for i, option := range existing.Options {
		desiredOption := desired.Options[i]
		if option.Name != desiredOption.Name ||
			option.Description != desiredOption.Description ||
			option.Type != desiredOption.Type ||
			option.Required != desiredOption.Required {
			return true
		}
	}
	return false
}

// dmAllowed reports the effective DM permission; Discord treats an unset flag as allowed.
func dmAllowed(cmd *discordgo.ApplicationCommand) bool {
	return cmd.DMPermission == nil || *cmd.DMPermission
}

// SyncSlashCommands makes the platform's command registry match desired: missing commands
// are created, changed ones edited and stale ones deleted. An empty guildID syncs global
// commands. Individual failures are logged and returned joined; the sync carries on.
func SyncSlashCommands(api CommandAPI, appID, guildID string, desired []*discordgo.ApplicationCommand, log logrus.FieldLogger) error {
	existingCommands, err := api.ApplicationCommands(appID, guildID)
	if err != nil {
		return fmt.Errorf("fetch existing commands: %w", err)
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existingCommands {
		existingMap[cmd.Name] = cmd
	}

	var errs []error
	for _, cmd := range desired {
		if existing, exists := existingMap[cmd.Name]; exists {
			if commandNeedsUpdate(existing, cmd) {
				log.WithField("command", cmd.Name).Info("Updating slash command")
				if _, err := api.ApplicationCommandEdit(appID, guildID, existing.ID, cmd); err != nil {
					errs = append(errs, fmt.Errorf("update command %s: %w", cmd.Name, err))
				}
			}
			// still wanted
			delete(existingMap, cmd.Name)
			continue
		}

		log.WithField("command", cmd.Name).Info("Creating slash command")
		if _, err := api.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			errs = append(errs, fmt.Errorf("create command %s: %w", cmd.Name, err))
		}
	}

	for _, cmd := range existingMap {
		log.WithField("command", cmd.Name).Info("Deleting unused slash command")
		if err := api.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete command %s: %w", cmd.Name, err))
		}
	}

	return errors.Join(errs...)
}
