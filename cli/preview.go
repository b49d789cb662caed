package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"RoleMatrix/commands/roles"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a dashboard page from a guild JSON export",
	Long: `Decode a Discord guild object (roles and members) and print the role table
exactly as the dashboard would show it on the requested page.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

var (
	previewFile  string
	previewPage  int
	previewPlain bool
	previewRole  string
)

func init() {
	previewCmd.Flags().StringVarP(&previewFile, "file", "f", "", "Guild JSON file (- for stdin)")
	previewCmd.Flags().IntVarP(&previewPage, "page", "p", 1, "Page to render, starting at 1")
	previewCmd.Flags().BoolVar(&previewPlain, "plain", false, "Strip ANSI styling")
	previewCmd.Flags().StringVarP(&previewRole, "role", "r", "", "Also show the detail view of this role ID")
	_ = previewCmd.MarkFlagRequired("file")
}

func runPreview(cmd *cobra.Command, args []string) error {
	guild, err := readGuild(cmd.InOrStdin(), previewFile)
	if err != nil {
		return err
	}

	out, err := renderPreview(guild, previewPage, previewRole, time.Now())
	if err != nil {
		return err
	}
	if previewPlain {
		out = ansi.Strip(out)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func readGuild(stdin io.Reader, path string) (*discordgo.Guild, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open guild file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var guild discordgo.Guild
	if err := json.NewDecoder(r).Decode(&guild); err != nil {
		return nil, fmt.Errorf("decode guild: %w", err)
	}
	return &guild, nil
}

func renderPreview(guild *discordgo.Guild, page int, roleID string, now time.Time) (string, error) {
	snapshot := roles.NewSnapshot(guild)
	if len(snapshot) == 0 {
		return "No roles found!\n", nil
	}

	state := roles.NewPaginationState(snapshot)
	if page < 1 || page > state.TotalPages() {
		return "", fmt.Errorf("page %d out of range 1-%d", page, state.TotalPages())
	}
	state.PageIndex = page - 1

	embed := roles.Render(state, roles.NewGuildContext(guild), now)

	var b strings.Builder
	b.WriteString(embed.Author.Name + "\n\n")
	b.WriteString(stripFence(embed.Description) + "\n\n")
	total := embed.Fields[0]
	fmt.Fprintf(&b, "%s: %s\n", total.Name, strings.Trim(total.Value, "*"))
	b.WriteString(state.Label() + "\n")

	if roleID == "" {
		return b.String(), nil
	}
	for _, role := range snapshot {
		if role.ID != roleID {
			continue
		}
		detail := roles.RenderDetail(role, now)
		fmt.Fprintf(&b, "\n%s\n", detail.Title)
		for _, field := range detail.Fields {
			fmt.Fprintf(&b, "%s\n%s\n", field.Name, stripFence(field.Value))
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("role %s is not in the guild export", roleID)
}

// stripFence removes a surrounding markdown code fence and its language tag.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimSuffix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(s, "\n")
}
