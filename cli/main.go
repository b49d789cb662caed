package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rolematrix",
	Short: "Role Matrix CLI - Preview dashboards and manage slash commands",
	Long: `Operator tool for the Role Matrix bot.
Render a dashboard page from a guild export, list the slash commands the bot
registers, or sync them with Discord without starting the bot.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(syncCmd)
}
