package bot

import (
	"fmt"

	"RoleMatrix/config"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Intents the dashboard needs: guild and role cache plus the member list for counts.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

type Bot struct {
	Client *discordgo.Session
	Config *config.Config
	Log    *logrus.Logger
}

func NewBot(cfg *config.Config, logger *logrus.Logger) (*Bot, error) {
	client, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	client.Identify.Intents = Intents
	client.StateEnabled = true
	client.State.TrackMembers = true
	client.State.TrackRoles = true

	routeLibraryLogs(logger)

	b := &Bot{Client: client, Config: cfg, Log: logger}
	client.AddHandler(b.onReady)
	client.AddHandler(b.onGuildCreate)
	return b, nil
}

// Open connects to the gateway.
func (b *Bot) Open() error {
	if err := b.Client.Open(); err != nil {
		return fmt.Errorf("open gateway connection: %w", err)
	}
	return nil
}

func (b *Bot) Close() error {
	return b.Client.Close()
}

// AppID is the application ID reported by the gateway on connect.
func (b *Bot) AppID() string {
	if b.Client.State == nil || b.Client.State.User == nil {
		return ""
	}
	return b.Client.State.User.ID
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.Log.WithFields(logrus.Fields{
		"user":   r.User.Username,
		"guilds": len(r.Guilds),
	}).Info("connected to gateway")
}

// onGuildCreate asks the gateway for the full member list of guilds that arrive with a
// partial one, so later dashboards can be served from the state cache.
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	if len(g.Members) >= g.MemberCount {
		return
	}
	if err := s.RequestGuildMembers(g.ID, "", 0, "", false); err != nil {
		b.Log.WithError(err).WithField("guild_id", g.ID).Warn("failed to request guild members")
	}
}

// routeLibraryLogs sends discordgo's internal messages through logrus.
func routeLibraryLogs(logger logrus.FieldLogger) {
	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		entry := logger.WithField("source", "discordgo")
		msg := fmt.Sprintf(format, a...)
		switch msgL {
		case discordgo.LogError:
			entry.Error(msg)
		case discordgo.LogWarning:
			entry.Warn(msg)
		case discordgo.LogInformational:
			entry.Info(msg)
		default:
			entry.Debug(msg)
		}
	}
}
