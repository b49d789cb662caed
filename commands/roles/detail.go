package roles

import (
	"fmt"
	"strings"
	"time"

	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
)

// maxListedPermissions caps the permission list in the detail view.
const maxListedPermissions = 8

// RenderDetail builds the private drill-down embed for a single role.
func RenderDetail(role Role, now time.Time) *discordgo.MessageEmbed {
	color := role.Color
	if color == 0 {
		color = BackgroundColor
	}

	config := fmt.Sprintf("**Hoisted:** %s\n**Mentionable:** %s\n**Created:** %s\n**Color Hex:** %s",
		utils.YesNo(role.Hoist),
		utils.YesNo(role.Mentionable),
		utils.RelativeTimestamp(role.CreatedAt),
		role.ColorHex(),
	)

	return &discordgo.MessageEmbed{
		Title:       "🔹 " + role.Name,
		Description: "Detailed analysis for " + role.Mention(),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🔑 Key Permissions", Value: "```diff\n" + permissionSummary(role.Permissions) + "\n```", Inline: true},
			{Name: "📊 Configuration", Value: config, Inline: true},
		},
		Timestamp: now.UTC().Format(time.RFC3339),
	}
}

// permissionSummary lists up to maxListedPermissions enabled permissions and notes the rest.
func permissionSummary(bits int64) string {
	enabled := EnabledPermissions(bits)
	if len(enabled) == 0 {
		return "No special perms"
	}

	lines := make([]string, 0, maxListedPermissions+1)
	for _, perm := range enabled[:min(len(enabled), maxListedPermissions)] {
		lines = append(lines, "✅ "+perm.DisplayName())
	}
	if len(enabled) > maxListedPermissions {
		lines = append(lines, fmt.Sprintf("...and %d more", len(enabled)-maxListedPermissions))
	}
	return strings.Join(lines, "\n")
}
