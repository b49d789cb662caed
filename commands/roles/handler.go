package roles

import (
	"errors"
	"fmt"
	"time"

	"RoleMatrix/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// User-facing notices.
const (
	noRolesMessage      = "No roles found!"
	fetchFailedMessage  = "An error occurred while fetching server information."
	notOwnerMessage     = "This isn't your dashboard."
	expiredMessage      = "This dashboard has expired. Run /roles again."
	roleNotFoundMessage = "That role no longer exists."
)

// Responder is the part of *discordgo.Session the handler talks to.
type Responder interface {
	utils.InteractionResponder
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler serves the /roles command and the dashboard's components.
type Handler struct {
	session    Responder
	directory  Directory
	dashboards *Manager
	log        logrus.FieldLogger

	now func() time.Time
}

func NewHandler(session Responder, directory Directory, dashboards *Manager, log logrus.FieldLogger) *Handler {
	return &Handler{
		session:    session,
		directory:  directory,
		dashboards: dashboards,
		log:        log,
		now:        time.Now,
	}
}

// HandleRoles runs the /roles command: defer, snapshot the guild's roles and post the dashboard.
func (h *Handler) HandleRoles(i *discordgo.InteractionCreate) error {
	// Acknowledge first; fetching members can take longer than the response window.
	err := h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("defer roles response: %w", err)
	}

	guild, err := h.directory.Guild(i.GuildID)
	if err != nil {
		if _, sendErr := h.followup(i, &discordgo.WebhookParams{Content: fetchFailedMessage}); sendErr != nil {
			return errors.Join(err, sendErr)
		}
		return err
	}

	snapshot := NewSnapshot(guild)
	if len(snapshot) == 0 {
		_, err := h.followup(i, &discordgo.WebhookParams{Content: noRolesMessage})
		return err
	}

	now := h.now()
	ownerID := utils.InteractionUserID(i.Interaction)
	dashboard := NewDashboard(ownerID, NewGuildContext(guild), snapshot, now)

	msg, err := h.followup(i, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{dashboard.Embed(now)},
		Components: dashboard.Components(),
	})
	if err != nil {
		return err
	}
	h.dashboards.Add(msg.ID, dashboard, now)

	h.log.WithFields(logrus.Fields{
		"guild_id":   i.GuildID,
		"user_id":    ownerID,
		"message_id": msg.ID,
		"roles":      len(snapshot),
		"pages":      dashboard.State.TotalPages(),
		"active":     h.dashboards.Len(),
	}).Info("role dashboard created")
	return nil
}

// HandleComponent serves the page buttons and the role selector.
func (h *Handler) HandleComponent(i *discordgo.InteractionCreate) error {
	data := i.MessageComponentData()
	switch data.CustomID {
	case PrevButtonID:
		return h.turnPage(i, -1)
	case NextButtonID:
		return h.turnPage(i, 1)
	case InspectMenuID:
		return h.inspect(i, data.Values)
	default:
		// the page counter is display-only
		return h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
	}
}

func (h *Handler) turnPage(i *discordgo.InteractionCreate, delta int) error {
	now := h.now()
	dashboard, ok := h.dashboard(i, now)
	if !ok {
		return utils.RespondEphemeral(h.session, i.Interaction, expiredMessage)
	}

	userID := utils.InteractionUserID(i.Interaction)
	if !dashboard.IsOwner(userID) {
		h.log.WithFields(logrus.Fields{"user_id": userID, "owner_id": dashboard.OwnerID}).Debug("rejected page change from non-owner")
		return utils.RespondEphemeral(h.session, i.Interaction, notOwnerMessage)
	}

	embed, components := dashboard.Turn(delta, now)
	return h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// inspect answers a selector choice with the role's current details. The lookup goes to
// the live guild, not the dashboard snapshot, so deleted roles are reported as such.
func (h *Handler) inspect(i *discordgo.InteractionCreate, values []string) error {
	now := h.now()
	if _, ok := h.dashboard(i, now); !ok {
		return utils.RespondEphemeral(h.session, i.Interaction, expiredMessage)
	}
	if len(values) == 0 {
		return h.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredMessageUpdate,
		})
	}

	role, err := h.directory.Role(i.GuildID, values[0])
	if errors.Is(err, ErrRoleNotFound) {
		h.log.WithFields(logrus.Fields{"guild_id": i.GuildID, "role_id": values[0]}).Info("selected role no longer exists")
		return utils.RespondEphemeral(h.session, i.Interaction, roleNotFoundMessage)
	}
	if err != nil {
		return err
	}

	return utils.RespondEphemeralEmbed(h.session, i.Interaction, RenderDetail(NewRole(role, 0), now))
}

func (h *Handler) dashboard(i *discordgo.InteractionCreate, now time.Time) (*Dashboard, bool) {
	if i.Message == nil {
		return nil, false
	}
	return h.dashboards.Get(i.Message.ID, now)
}

func (h *Handler) followup(i *discordgo.InteractionCreate, params *discordgo.WebhookParams) (*discordgo.Message, error) {
	msg, err := h.session.FollowupMessageCreate(i.Interaction, true, params)
	if err != nil {
		return nil, fmt.Errorf("send followup: %w", err)
	}
	return msg, nil
}
