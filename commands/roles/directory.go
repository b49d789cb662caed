package roles

import (
	"errors"
	"fmt"

	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
)

var (
	// ErrRoleNotFound means the role no longer exists in the guild.
	ErrRoleNotFound = errors.New("role not found")
	// ErrGuildUnavailable means the guild could not be read from cache or API.
	ErrGuildUnavailable = errors.New("guild unavailable")
)

// memberPageSize is the maximum page size of the guild members endpoint.
const memberPageSize = 1000

// Directory reads guild data. Guild returns the roles and members used for a snapshot;
// Role always reads the current state of a single role.
type Directory interface {
	Guild(guildID string) (*discordgo.Guild, error)
	Role(guildID, roleID string) (*discordgo.Role, error)
}

// GuildAPI is the part of the REST API the directory falls back to.
type GuildAPI interface {
	GuildWithCounts(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
}

// SessionDirectory serves lookups from the session's state cache and falls back to the
// REST API when the cache cannot answer.
type SessionDirectory struct {
	state *discordgo.State
	api   GuildAPI
}

func NewSessionDirectory(s *discordgo.Session) *SessionDirectory {
	return &SessionDirectory{state: s.State, api: s}
}

// Guild returns a copy of the guild with its roles and members populated.
func (d *SessionDirectory) Guild(guildID string) (*discordgo.Guild, error) {
	if g, ok := d.cachedGuild(guildID); ok {
		return g, nil
	}

	g, err := d.api.GuildWithCounts(guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch guild %s: %v", ErrGuildUnavailable, guildID, err)
	}

	members, err := d.fetchMembers(guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch members of %s: %v", ErrGuildUnavailable, guildID, err)
	}
	g.Members = members
	if g.MemberCount == 0 {
		g.MemberCount = g.ApproximateMemberCount
	}
	return g, nil
}

// Role looks the role up fresh. A missing role yields ErrRoleNotFound.
func (d *SessionDirectory) Role(guildID, roleID string) (*discordgo.Role, error) {
	if d.state != nil {
		if r, err := d.state.Role(guildID, roleID); err == nil {
			copied := *r
			return &copied, nil
		}
	}

	roles, err := d.api.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch roles of %s: %v", ErrGuildUnavailable, guildID, err)
	}
	role, ok := utils.FindRoleByID(roles, roleID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
	}
	return role, nil
}

// cachedGuild copies the cached guild when the cache holds every member. Gateway
// payloads for large guilds carry only a few members until they are chunked.
func (d *SessionDirectory) cachedGuild(guildID string) (*discordgo.Guild, bool) {
	state := d.state
	if state == nil {
		return nil, false
	}

	g, err := state.Guild(guildID)
	if err != nil {
		return nil, false
	}

	state.RLock()
	defer state.RUnlock()
	if len(g.Members) == 0 || len(g.Members) < g.MemberCount {
		return nil, false
	}
	copied := *g
	copied.Roles = append([]*discordgo.Role(nil), g.Roles...)
	copied.Members = append([]*discordgo.Member(nil), g.Members...)
	return &copied, true
}

// fetchMembers pages through the guild member list.
func (d *SessionDirectory) fetchMembers(guildID string) ([]*discordgo.Member, error) {
	var allMembers []*discordgo.Member
	after := ""
	for {
		members, err := d.api.GuildMembers(guildID, after, memberPageSize)
		if err != nil {
			return nil, err
		}
		allMembers = append(allMembers, members...)
		if len(members) < memberPageSize {
			return allMembers, nil
		}
		after = members[len(members)-1].User.ID
	}
}
