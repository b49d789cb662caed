package roles

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

const testGuildID = "100000000000000000"

// testRoleID returns an 18 digit snowflake so creation times parse.
func testRoleID(n int) string {
	return fmt.Sprintf("%d", 200000000000000000+n)
}

// testGuild builds a guild with n ranked roles plus @everyone. Role k (1-based) is the
// k-th highest and is held by k members out of 50.
func testGuild(n int) *discordgo.Guild {
	g := &discordgo.Guild{
		ID:          testGuildID,
		Name:        "Test Guild",
		MemberCount: 50,
		Roles: []*discordgo.Role{
			{ID: testGuildID, Name: "@everyone", Position: 0},
		},
	}

	for k := 1; k <= n; k++ {
		g.Roles = append(g.Roles, &discordgo.Role{
			ID:       testRoleID(k),
			Name:     fmt.Sprintf("Role %02d", k),
			Position: n - k + 1,
		})
	}

	for m := 0; m < 50; m++ {
		member := &discordgo.Member{User: &discordgo.User{ID: fmt.Sprintf("%d", 300000000000000000+m)}}
		for k := 1; k <= n; k++ {
			if m < k {
				member.Roles = append(member.Roles, testRoleID(k))
			}
		}
		g.Members = append(g.Members, member)
	}
	return g
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeSession struct {
	mu        sync.Mutex
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams

	followupErr error
	nextMessage int
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.followupErr != nil {
		return nil, f.followupErr
	}
	f.followups = append(f.followups, data)
	f.nextMessage++
	return &discordgo.Message{ID: fmt.Sprintf("msg-%d", f.nextMessage)}, nil
}

func (f *fakeSession) lastResponse() *discordgo.InteractionResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.responses) == 0 {
		return nil
	}
	return f.responses[len(f.responses)-1]
}

type fakeDirectory struct {
	guild    *discordgo.Guild
	guildErr error
	roleErr  error
}

func (f *fakeDirectory) Guild(string) (*discordgo.Guild, error) {
	if f.guildErr != nil {
		return nil, f.guildErr
	}
	return f.guild, nil
}

func (f *fakeDirectory) Role(_, roleID string) (*discordgo.Role, error) {
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	for _, r := range f.guild.Roles {
		if r.ID == roleID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, roleID)
}

func commandEvent(userID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: testGuildID,
		Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data:    discordgo.ApplicationCommandInteractionData{Name: CommandName},
	}}
}

func componentEvent(messageID, userID, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionMessageComponent,
		GuildID: testGuildID,
		Member:  &discordgo.Member{User: &discordgo.User{ID: userID}},
		Message: &discordgo.Message{ID: messageID},
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID, Values: values},
	}}
}

// buttons returns prev, page counter and next from a component layout.
func buttons(components []discordgo.MessageComponent) (prev, page, next discordgo.Button) {
	row := components[0].(discordgo.ActionsRow)
	return row.Components[0].(discordgo.Button), row.Components[1].(discordgo.Button), row.Components[2].(discordgo.Button)
}
