package input

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/ad-repo/nullplayer-sub002/internal/app"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

func handleKey(msg tea.KeyPressMsg, m *app.Player) (tea.Model, tea.Cmd) {
	key := msg.String()
	action := m.Keybinds.GetAction(key)

	// Any key dismisses the help overlay, except quit which still quits.
	if m.ShowHelp && action != "quit" {
		m.ShowHelp = false
		return m, nil
	}

	switch action {
	case "quit":
		if err := m.SaveLayout(); err != nil {
			log.Warn("could not save layout", "err", err)
		}
		return m, tea.Quit

	case "help":
		m.ShowHelp = true
		return m, nil

	case "next_window":
		m.FocusNext(false)
		return m, nil

	case "prev_window":
		m.FocusNext(true)
		return m, nil

	case "minimize":
		if p := m.FocusedPane(); p != nil && p.Visible() {
			m.MinimizePane(p)
		}
		return m, nil

	case "restore_all":
		m.RestoreAll()
		return m, nil

	case "reset_layout":
		m.Coordinator.ResetLayout()
		m.Notify("layout reset", "info")
		return m, nil

	case "toggle_window":
		// Keys 1-8 map to the fixed roles in registry order.
		idx := int(key[0] - '1')
		if idx >= 0 && idx < len(wm.Roles) {
			m.TogglePane(wm.Roles[idx])
		}
		return m, nil

	case "play_pause":
		m.Playback.Playing = !m.Playback.Playing
		for _, role := range []wm.Role{wm.RoleMain, wm.RoleSpectrum, wm.RoleVisualizer} {
			if p, ok := m.Panes[role]; ok {
				p.InvalidateContent()
			}
		}
		return m, nil
	}

	return m, nil
}
