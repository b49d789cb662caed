package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder is the part of *discordgo.Session used to answer interactions.
type InteractionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// InteractionUserID returns the ID of the user who triggered the interaction,
// whether it came from a guild (Member) or a DM (User).
func InteractionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// RespondEphemeral sends a private plain-text reply to the interaction.
func RespondEphemeral(s InteractionResponder, i *discordgo.Interaction, content string) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondEphemeralEmbed sends a private embed reply to the interaction.
func RespondEphemeralEmbed(s InteractionResponder, i *discordgo.Interaction, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func ExtractRoleID(input string) string {
	if strings.HasPrefix(input, "<@&") && strings.HasSuffix(input, ">") {
		return input[3 : len(input)-1]
	}
	return input // Return as is for ID/name validation
}

// FindRoleByID looks a role up by ID or mention in an already fetched role list.
func FindRoleByID(roles []*discordgo.Role, roleInput string) (*discordgo.Role, bool) {
	id := ExtractRoleID(strings.TrimSpace(roleInput))
	for _, role := range roles {
		if role.ID == id {
			return role, true
		}
	}
	return nil, false
}

// RoleMention formats a role ID as a mention.
func RoleMention(roleID string) string {
	return fmt.Sprintf("<@&%s>", roleID)
}

// RelativeTimestamp formats t as a Discord relative timestamp ("3 minutes ago").
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

// YesNo renders a flag for embeds.
func YesNo(v bool) string {
	return map[bool]string{true: "Yes", false: "No"}[v]
}
