package main

import (
	"fmt"
	"io"

	"RoleMatrix/commands"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "commands",
	Aliases: []string{"list"},
	Short:   "List modules and the slash commands they register",
	Long:    `Display every module the bot loads and the slash commands that sync publishes.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var listModules bool

func init() {
	listCmd.Flags().BoolVarP(&listModules, "modules", "m", false, "List only modules")
}

func runList(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())

	registry := newRegistry(nil, log)
	out := cmd.OutOrStdout()
	if listModules {
		displayModules(out, registry.Modules())
		return nil
	}
	displayModulesAndCommands(out, registry)
	return nil
}

func displayModules(out io.Writer, modules []*commands.ModuleInfo) {
	fmt.Fprintln(out, "📦 Available Modules:")
	fmt.Fprintln(out)

	for _, module := range modules {
		fmt.Fprintf(out, "  %s v%s\n", module.Name, module.Version)
		fmt.Fprintf(out, "    %s\n", module.Description)
		fmt.Fprintf(out, "    Author: %s\n", module.Author)
		fmt.Fprintf(out, "    Commands: %d\n", len(module.SlashCommands))
		fmt.Fprintln(out)
	}
}

func displayModulesAndCommands(out io.Writer, registry *commands.Registry) {
	fmt.Fprintln(out, "📦 Available Modules and Commands:")
	fmt.Fprintln(out)

	modules := registry.Modules()
	for _, module := range modules {
		fmt.Fprintf(out, "📦 %s v%s - %s\n", module.Name, module.Version, module.Description)
		fmt.Fprintf(out, "   Author: %s\n", module.Author)
		fmt.Fprintln(out, "   Commands:")
		for _, cmd := range module.SlashCommands {
			scope := ""
			if cmd.GuildOnly {
				scope = " [guild only]"
			}
			fmt.Fprintf(out, "     /%s - %s%s\n", cmd.Name, cmd.Description, scope)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "📊 Summary: %d modules, %d commands\n", len(modules), len(registry.SlashCommands()))
}
