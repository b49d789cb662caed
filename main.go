package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"RoleMatrix/bot"
	"RoleMatrix/commands"
	"RoleMatrix/commands/help"
	"RoleMatrix/commands/roles"
	"RoleMatrix/config"
	"RoleMatrix/utils"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if errors.Is(err, config.ErrMissingToken) {
		fmt.Fprintln(os.Stderr, "❌ ERROR: DISCORD_TOKEN environment variable is missing.")
		fmt.Fprintln(os.Stderr, "Set it in your environment or in a .env file next to the binary.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ ERROR: %v\n", err)
		os.Exit(1)
	}

	logger := utils.NewLogger("rolematrix", cfg.AppEnv, cfg.LogLevel)

	b, err := bot.NewBot(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to create bot")
	}

	registry := commands.NewRegistry(b.Client, utils.NewRateLimiter(cfg.RolesPerMinute), logger)
	handler := roles.NewHandler(b.Client, roles.NewSessionDirectory(b.Client), roles.NewManager(cfg.DashboardTimeout), logger)
	registry.RegisterModule(roles.NewModule(handler))
	registry.RegisterModule(help.NewModule(help.NewHandler(b.Client, registry)))
	b.Client.AddHandler(registry.HandleInteraction)

	if err := b.Open(); err != nil {
		logger.WithError(err).Fatal("failed to connect")
	}
	defer b.Close()

	if err := commands.SyncSlashCommands(b.Client, b.AppID(), cfg.GuildID, registry.SlashCommands(), logger); err != nil {
		utils.LogError(logger, "slash command sync incomplete", err, nil)
	}

	logger.Info("Bot is running. Press Ctrl+C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")
}
