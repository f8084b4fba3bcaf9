package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/screen"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// tickInterval drives playback time and the animated panes.
const tickInterval = 100 * time.Millisecond

// TickMsg is the playback heartbeat.
type TickMsg time.Time

// TickCmd schedules the next heartbeat.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigReloadedMsg announces that the config file changed on disk. The sender
// is expected to have already folded the new settings into the effective
// configuration; the shell only rebinds keys and repaints.
type ConfigReloadedMsg struct {
	Config *config.UserConfig
}

// Update is the Bubble Tea update loop. Key and mouse messages are delegated
// to the registered input handler.
func (m *Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.Playback.Advance(tickInterval)
		if m.Playback.Playing {
			for _, role := range []wm.Role{wm.RoleMain, wm.RoleSpectrum, wm.RoleVisualizer} {
				if p, ok := m.Panes[role]; ok && p.Visible() {
					p.InvalidateContent()
				}
			}
		}
		m.expireNotifications()
		return m, TickCmd()

	case SysStatsMsg:
		m.absorbSample(SysStats(msg))
		return m, SysTickCmd()

	case sysTickMsg:
		return m, SampleSysCmd()

	case ConfigReloadedMsg:
		m.Keybinds = config.NewKeybindRegistry(msg.Config)
		for _, p := range m.Panes {
			p.InvalidateContent()
		}
		m.Notify("config reloaded", "info")
		return m, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if inputHandler != nil {
			return inputHandler(msg, m)
		}
		return m, nil
	}

	return m, nil
}

// resize updates the viewport-backed screen and re-clamps every pane so
// nothing is stranded outside the new bounds.
func (m *Player) resize(width, height int) {
	m.Width = width
	m.Height = height

	full := geom.Rect{X: 0, Y: 0, Width: width, Height: height}
	visible := full
	switch config.DockbarPosition {
	case "bottom":
		visible.Height -= config.DockHeight
	case "top":
		visible.Y += config.DockHeight
		visible.Height -= config.DockHeight
	}
	m.Screens.SetScreens(screen.Screen{ID: 0, Name: "viewport", Frame: full, Visible: visible})

	if !m.sized {
		m.sized = true
		if !m.RestoreLayout() {
			m.Coordinator.ResetLayout()
		}
		return
	}

	for _, w := range m.Coordinator.Registry().VisibleWindows() {
		m.Coordinator.PlaceWindow(w, w.Frame().Origin())
	}
}

func (m *Player) expireNotifications() {
	if len(m.Notifications) == 0 {
		return
	}
	cutoff := time.Now().Add(-config.NotificationDuration)
	kept := m.Notifications[:0]
	for _, n := range m.Notifications {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	m.Notifications = kept
}
