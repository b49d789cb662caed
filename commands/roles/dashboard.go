package roles

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

// DefaultTimeout is how long a dashboard accepts interactions after the last one.
const DefaultTimeout = 60 * time.Second

// Dashboard is one live /roles message: its page state, the user allowed to page it and
// the selector entries fixed at creation.
type Dashboard struct {
	OwnerID string
	Guild   GuildContext
	State   *PaginationState

	options    []discordgo.SelectMenuOption
	lastActive time.Time // guarded by the Manager's lock

	mu sync.Mutex // guards State after the dashboard is published
}

// NewDashboard builds a dashboard on its first page. roles must already be a snapshot.
func NewDashboard(ownerID string, guild GuildContext, roles []Role, now time.Time) *Dashboard {
	return &Dashboard{
		OwnerID:    ownerID,
		Guild:      guild,
		State:      NewPaginationState(roles),
		options:    RoleOptions(roles),
		lastActive: now,
	}
}

// IsOwner reports whether userID may change pages.
func (d *Dashboard) IsOwner(userID string) bool {
	return userID != "" && userID == d.OwnerID
}

// Embed renders the current page.
func (d *Dashboard) Embed(now time.Time) *discordgo.MessageEmbed {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Render(d.State, d.Guild, now)
}

// Components returns the controls for the current page.
func (d *Dashboard) Components() []discordgo.MessageComponent {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Components(d.State, d.options)
}

// Turn moves delta pages and renders the result. A move that would leave the page
// range is ignored, so a repeated click on the last page re-renders it unchanged.
func (d *Dashboard) Turn(delta int, now time.Time) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if (delta < 0 && d.State.HasPrevious()) || (delta > 0 && d.State.HasNext()) {
		d.State.Advance(delta)
	}
	return Render(d.State, d.Guild, now), Components(d.State, d.options)
}

// PageIndex is the zero-based page currently shown.
func (d *Dashboard) PageIndex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.State.PageIndex
}

// Manager tracks live dashboards by message ID. Expired dashboards are dropped lazily on
// access, no goroutine sweeps them.
type Manager struct {
	dashboards map[string]*Dashboard // messageID -> dashboard
	timeout    time.Duration
	mu         sync.Mutex
}

// NewManager creates a manager whose dashboards expire after timeout of inactivity.
func NewManager(timeout time.Duration) *Manager {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{
		dashboards: make(map[string]*Dashboard),
		timeout:    timeout,
	}
}

// Add registers a dashboard under the message that displays it and prunes expired ones.
func (m *Manager) Add(messageID string, d *Dashboard, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, existing := range m.dashboards {
		if m.expired(existing, now) {
			delete(m.dashboards, id)
		}
	}
	d.lastActive = now
	m.dashboards[messageID] = d
}

// Get returns the live dashboard for a message and refreshes its inactivity timer.
// It returns false when the dashboard is unknown or has expired.
func (m *Manager) Get(messageID string, now time.Time) (*Dashboard, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, exists := m.dashboards[messageID]
	if !exists {
		return nil, false
	}
	if m.expired(d, now) {
		delete(m.dashboards, messageID)
		return nil, false
	}
	d.lastActive = now
	return d, true
}

// Len is the number of tracked dashboards, expired or not.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.dashboards)
}

func (m *Manager) expired(d *Dashboard, now time.Time) bool {
	return now.Sub(d.lastActive) > m.timeout
}
