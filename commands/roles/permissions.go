package roles

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Permission is a single Discord permission flag.
type Permission int64

// Permission flags. discordgo names most of them; the newer bits it lacks are listed by offset.
const (
	PermissionCreateInstantInvite              Permission = discordgo.PermissionCreateInstantInvite
	PermissionKickMembers                      Permission = discordgo.PermissionKickMembers
	PermissionBanMembers                       Permission = discordgo.PermissionBanMembers
	PermissionAdministrator                    Permission = discordgo.PermissionAdministrator
	PermissionManageChannels                   Permission = discordgo.PermissionManageChannels
	PermissionManageGuild                      Permission = discordgo.PermissionManageServer
	PermissionAddReactions                     Permission = discordgo.PermissionAddReactions
	PermissionViewAuditLog                     Permission = discordgo.PermissionViewAuditLogs
	PermissionPrioritySpeaker                  Permission = discordgo.PermissionVoicePrioritySpeaker
	PermissionStream                           Permission = discordgo.PermissionVoiceStreamVideo
	PermissionViewChannel                      Permission = discordgo.PermissionViewChannel
	PermissionSendMessages                     Permission = discordgo.PermissionSendMessages
	PermissionSendTTSMessages                  Permission = discordgo.PermissionSendTTSMessages
	PermissionManageMessages                   Permission = discordgo.PermissionManageMessages
	PermissionEmbedLinks                       Permission = discordgo.PermissionEmbedLinks
	PermissionAttachFiles                      Permission = discordgo.PermissionAttachFiles
	PermissionReadMessageHistory               Permission = discordgo.PermissionReadMessageHistory
	PermissionMentionEveryone                  Permission = discordgo.PermissionMentionEveryone
	PermissionUseExternalEmojis                Permission = discordgo.PermissionUseExternalEmojis
	PermissionViewGuildInsights                Permission = discordgo.PermissionViewGuildInsights
	PermissionConnect                          Permission = discordgo.PermissionVoiceConnect
	PermissionSpeak                            Permission = discordgo.PermissionVoiceSpeak
	PermissionMuteMembers                      Permission = discordgo.PermissionVoiceMuteMembers
	PermissionDeafenMembers                    Permission = discordgo.PermissionVoiceDeafenMembers
	PermissionMoveMembers                      Permission = discordgo.PermissionVoiceMoveMembers
	PermissionUseVoiceActivation               Permission = discordgo.PermissionVoiceUseVAD
	PermissionChangeNickname                   Permission = discordgo.PermissionChangeNickname
	PermissionManageNicknames                  Permission = discordgo.PermissionManageNicknames
	PermissionManageRoles                      Permission = discordgo.PermissionManageRoles
	PermissionManageWebhooks                   Permission = discordgo.PermissionManageWebhooks
	PermissionManageExpressions                Permission = discordgo.PermissionManageEmojis
	PermissionUseApplicationCommands           Permission = discordgo.PermissionUseSlashCommands
	PermissionRequestToSpeak                   Permission = discordgo.PermissionVoiceRequestToSpeak
	PermissionManageEvents                     Permission = discordgo.PermissionManageEvents
	PermissionManageThreads                    Permission = discordgo.PermissionManageThreads
	PermissionCreatePublicThreads              Permission = discordgo.PermissionCreatePublicThreads
	PermissionCreatePrivateThreads             Permission = discordgo.PermissionCreatePrivateThreads
	PermissionUseExternalStickers              Permission = discordgo.PermissionUseExternalStickers
	PermissionSendMessagesInThreads            Permission = discordgo.PermissionSendMessagesInThreads
	PermissionUseEmbeddedActivities            Permission = discordgo.PermissionUseActivities
	PermissionModerateMembers                  Permission = discordgo.PermissionModerateMembers
	PermissionViewCreatorMonetizationAnalytics Permission = 1 << 41
	PermissionUseSoundboard                    Permission = 1 << 42
	PermissionCreateExpressions                Permission = 1 << 43
	PermissionCreateEvents                     Permission = 1 << 44
	PermissionUseExternalSounds                Permission = 1 << 45
	PermissionSendVoiceMessages                Permission = 1 << 46
	PermissionSendPolls                        Permission = 1 << 49
	PermissionUseExternalApps                  Permission = 1 << 50
)

var permissionNames = []struct {
	perm Permission
	name string
}{
	{PermissionCreateInstantInvite, "create_instant_invite"},
	{PermissionKickMembers, "kick_members"},
	{PermissionBanMembers, "ban_members"},
	{PermissionAdministrator, "administrator"},
	{PermissionManageChannels, "manage_channels"},
	{PermissionManageGuild, "manage_guild"},
	{PermissionAddReactions, "add_reactions"},
	{PermissionViewAuditLog, "view_audit_log"},
	{PermissionPrioritySpeaker, "priority_speaker"},
	{PermissionStream, "stream"},
	{PermissionViewChannel, "view_channel"},
	{PermissionSendMessages, "send_messages"},
	{PermissionSendTTSMessages, "send_tts_messages"},
	{PermissionManageMessages, "manage_messages"},
	{PermissionEmbedLinks, "embed_links"},
	{PermissionAttachFiles, "attach_files"},
	{PermissionReadMessageHistory, "read_message_history"},
	{PermissionMentionEveryone, "mention_everyone"},
	{PermissionUseExternalEmojis, "use_external_emojis"},
	{PermissionViewGuildInsights, "view_guild_insights"},
	{PermissionConnect, "connect"},
	{PermissionSpeak, "speak"},
	{PermissionMuteMembers, "mute_members"},
	{PermissionDeafenMembers, "deafen_members"},
	{PermissionMoveMembers, "move_members"},
	{PermissionUseVoiceActivation, "use_voice_activation"},
	{PermissionChangeNickname, "change_nickname"},
	{PermissionManageNicknames, "manage_nicknames"},
	{PermissionManageRoles, "manage_roles"},
	{PermissionManageWebhooks, "manage_webhooks"},
	{PermissionManageExpressions, "manage_expressions"},
	{PermissionUseApplicationCommands, "use_application_commands"},
	{PermissionRequestToSpeak, "request_to_speak"},
	{PermissionManageEvents, "manage_events"},
	{PermissionManageThreads, "manage_threads"},
	{PermissionCreatePublicThreads, "create_public_threads"},
	{PermissionCreatePrivateThreads, "create_private_threads"},
	{PermissionUseExternalStickers, "use_external_stickers"},
	{PermissionSendMessagesInThreads, "send_messages_in_threads"},
	{PermissionUseEmbeddedActivities, "use_embedded_activities"},
	{PermissionModerateMembers, "moderate_members"},
	{PermissionViewCreatorMonetizationAnalytics, "view_creator_monetization_analytics"},
	{PermissionUseSoundboard, "use_soundboard"},
	{PermissionCreateExpressions, "create_expressions"},
	{PermissionCreateEvents, "create_events"},
	{PermissionUseExternalSounds, "use_external_sounds"},
	{PermissionSendVoiceMessages, "send_voice_messages"},
	{PermissionSendPolls, "send_polls"},
	{PermissionUseExternalApps, "use_external_apps"},
}

// Name returns the snake_case name of the permission, or "" for unknown bits.
func (p Permission) Name() string {
	for _, entry := range permissionNames {
		if entry.perm == p {
			return entry.name
		}
	}
	return ""
}

// DisplayName turns "manage_roles" into "Manage Roles".
func (p Permission) DisplayName() string {
	return cases.Title(language.English).String(strings.ReplaceAll(p.Name(), "_", " "))
}

// In reports whether p is set in the bit set.
func (p Permission) In(bits int64) bool {
	return bits&int64(p) != 0
}

// EnabledPermissions lists the known permissions set in bits, in definition order.
// Unknown bits are ignored.
func EnabledPermissions(bits int64) []Permission {
	var enabled []Permission
	for _, entry := range permissionNames {
		if entry.perm.In(bits) {
			enabled = append(enabled, entry.perm)
		}
	}
	return enabled
}
