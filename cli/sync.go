package main

import (
	"fmt"

	"RoleMatrix/commands"
	"RoleMatrix/config"
	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync slash commands with Discord",
	Long: `Create missing, update changed and delete stale slash commands using the bot token
from DISCORD_TOKEN. Without --guild the GUILD_ID setting is used, and when both are
empty the commands are registered globally.`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

var syncGuild string

func init() {
	syncCmd.Flags().StringVarP(&syncGuild, "guild", "g", "", "Guild ID to sync to (overrides GUILD_ID)")
}

func runSync(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := utils.NewLogger("rolematrix-cli", cfg.AppEnv, cfg.LogLevel)
	logger.SetOutput(cmd.ErrOrStderr())

	guildID := cfg.GuildID
	if syncGuild != "" {
		guildID = syncGuild
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}
	app, err := session.User("@me")
	if err != nil {
		return fmt.Errorf("resolve application: %w", err)
	}

	registry := newRegistry(session, logger)
	if err := commands.SyncSlashCommands(session, app.ID, guildID, registry.SlashCommands(), logger); err != nil {
		return err
	}

	scope := "globally"
	if guildID != "" {
		scope = "to guild " + guildID
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Synced %d slash commands %s\n", len(registry.SlashCommands()), scope)
	return nil
}
