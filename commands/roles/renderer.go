package roles

import (
	"fmt"
	"strings"
	"time"

	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
)

const (
	// BackgroundColor matches Discord's dark theme so the embed blends in.
	BackgroundColor = 0x2b2d31

	ruleWidth    = 35
	footerText   = "System ID: R-800 • Interactive Dashboard"
	authorPrefix = "SERVER ROLE MATRIX: "
)

// Render builds the dashboard embed for the current page. It never changes state.
func Render(state *PaginationState, guild GuildContext, now time.Time) *discordgo.MessageEmbed {
	rows := make([]string, 0, PageSize)
	for _, role := range state.CurrentSlice() {
		rows = append(rows, FormatRow(role.Name, role.Members, memberFraction(role.Members, guild.TotalMembers), role.Hoist))
	}

	var table strings.Builder
	table.WriteString("```ansi\n")
	table.WriteString(tableHeader())
	table.WriteString("\n")
	table.WriteString(strings.Repeat("━", ruleWidth))
	table.WriteString("\n")
	table.WriteString(strings.Join(rows, "\n"))
	table.WriteString("\n```")

	highest := "None"
	if len(state.Roles) > 0 {
		highest = state.Roles[0].Mention()
	}

	return &discordgo.MessageEmbed{
		Color: BackgroundColor,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    authorPrefix + strings.ToUpper(guild.Name),
			IconURL: guild.IconURL,
		},
		Description: table.String(),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "TOTAL ROLES", Value: fmt.Sprintf("**%d**", len(state.Roles)), Inline: true},
			{Name: "HIGHEST ROLE", Value: highest, Inline: true},
			{Name: "UPDATED", Value: utils.RelativeTimestamp(now), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}
}

// memberFraction is members/total in [0, 1], or 0 for an empty guild.
// Cached member lists can briefly disagree with the reported total.
func memberFraction(members, total int) float64 {
	if total <= 0 {
		return 0
	}
	return min(float64(members)/float64(total), 1)
}
