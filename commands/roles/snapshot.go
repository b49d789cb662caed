package roles

import (
	"fmt"
	"sort"
	"time"

	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
)

const everyoneRoleName = "@everyone"

// Role is a read-only, point-in-time copy of a guild role.
type Role struct {
	ID          string
	Name        string
	Color       int
	Members     int
	Hoist       bool
	Mentionable bool
	Managed     bool
	Position    int
	Permissions int64
	CreatedAt   time.Time
}

// NewRole copies a discordgo role. members is the number of guild members holding it.
func NewRole(r *discordgo.Role, members int) Role {
	createdAt, _ := discordgo.SnowflakeTimestamp(r.ID)
	return Role{
		ID:          r.ID,
		Name:        r.Name,
		Color:       r.Color,
		Members:     members,
		Hoist:       r.Hoist,
		Mentionable: r.Mentionable,
		Managed:     r.Managed,
		Position:    r.Position,
		Permissions: r.Permissions,
		CreatedAt:   createdAt,
	}
}

// Administrator reports whether the role grants the administrator permission.
func (r Role) Administrator() bool {
	return PermissionAdministrator.In(r.Permissions)
}

func (r Role) Mention() string {
	return utils.RoleMention(r.ID)
}

// ColorHex renders the role color as #rrggbb.
func (r Role) ColorHex() string {
	return fmt.Sprintf("#%06x", r.Color)
}

// GuildContext carries the guild facts the dashboard header needs.
type GuildContext struct {
	ID           string
	Name         string
	IconURL      string
	TotalMembers int
}

// NewGuildContext extracts the header facts from a guild. When the platform did not report
// a member count, the number of known members is used instead.
func NewGuildContext(g *discordgo.Guild) GuildContext {
	ctx := GuildContext{
		ID:           g.ID,
		Name:         g.Name,
		TotalMembers: g.MemberCount,
	}
	if ctx.TotalMembers == 0 {
		ctx.TotalMembers = g.ApproximateMemberCount
	}
	if ctx.TotalMembers == 0 {
		ctx.TotalMembers = len(g.Members)
	}
	if g.Icon != "" {
		ctx.IconURL = discordgo.EndpointGuildIcon(g.ID, g.Icon)
	}
	return ctx
}

// NewSnapshot builds the dashboard's role list: every role except @everyone, highest
// position first, with member counts taken from the guild's member list.
func NewSnapshot(g *discordgo.Guild) []Role {
	counts := CountMembers(g.Members)

	snapshot := make([]Role, 0, len(g.Roles))
	for _, r := range g.Roles {
		if r == nil || isEveryone(g.ID, r) {
			continue
		}
		snapshot = append(snapshot, NewRole(r, counts[r.ID]))
	}

	SortByRank(snapshot)
	return snapshot
}

// CountMembers returns how many members hold each role ID.
func CountMembers(members []*discordgo.Member) map[string]int {
	counts := make(map[string]int)
	for _, member := range members {
		if member == nil {
			continue
		}
		for _, roleID := range member.Roles {
			counts[roleID]++
		}
	}
	return counts
}

// SortByRank orders roles highest authority first. Discord breaks position ties by ID,
// so the older role ranks higher.
func SortByRank(roles []Role) {
	sort.SliceStable(roles, func(a, b int) bool {
		if roles[a].Position != roles[b].Position {
			return roles[a].Position > roles[b].Position
		}
		return snowflakeLess(roles[a].ID, roles[b].ID)
	})
}

func isEveryone(guildID string, r *discordgo.Role) bool {
	return r.ID == guildID || r.Name == everyoneRoleName
}

// snowflakeLess compares decimal snowflakes without parsing them.
func snowflakeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
