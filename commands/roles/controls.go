package roles

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Custom IDs of the dashboard components. All share CustomIDPrefix so the registry can
// route them here.
const (
	CustomIDPrefix = "rolematrix_"
	PrevButtonID   = CustomIDPrefix + "prev"
	NextButtonID   = CustomIDPrefix + "next"
	PageButtonID   = CustomIDPrefix + "page"
	InspectMenuID  = CustomIDPrefix + "inspect"
)

// MaxSelectOptions is Discord's limit on select menu entries.
const MaxSelectOptions = 25

const (
	adminEmoji = "🛡️"
	roleEmoji  = "🏷️"
)

// RoleOptions builds the role selector entries from the first MaxSelectOptions roles.
func RoleOptions(roles []Role) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, min(len(roles), MaxSelectOptions))
	for _, role := range roles {
		if len(options) == MaxSelectOptions {
			break
		}
		if role.Name == everyoneRoleName {
			continue
		}

		emoji := roleEmoji
		if role.Administrator() {
			emoji = adminEmoji
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       role.Name,
			Value:       role.ID,
			Description: fmt.Sprintf("ID: %s • %d members", role.ID, role.Members),
			Emoji:       &discordgo.ComponentEmoji{Name: emoji},
		})
	}
	return options
}

// Components lays out the page buttons and the role selector. Button state is derived
// from the page index alone, so it can be recomputed at any time.
func Components(state *PaginationState, options []discordgo.SelectMenuOption) []discordgo.MessageComponent {
	one := 1
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "◄ Previous",
				Style:    discordgo.SecondaryButton,
				CustomID: PrevButtonID,
				Disabled: !state.HasPrevious(),
			},
			discordgo.Button{
				Label:    state.Label(),
				Style:    discordgo.PrimaryButton,
				CustomID: PageButtonID,
				Disabled: true,
			},
			discordgo.Button{
				Label:    "Next ►",
				Style:    discordgo.SecondaryButton,
				CustomID: NextButtonID,
				Disabled: !state.HasNext(),
			},
		}},
	}

	if len(options) > 0 {
		components = append(components, discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    InspectMenuID,
				Placeholder: "🔍 Inspect a specific role...",
				MinValues:   &one,
				MaxValues:   1,
				Options:     options,
			},
		}})
	}
	return components
}
