// Package input translates terminal key and mouse events into player shell
// actions. Every pane move it produces goes through the coordinator, so
// snapping, docking and the screen rules apply no matter how the pane was
// grabbed.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ad-repo/nullplayer-sub002/internal/app"
	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/pane"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// HandleInput is the handler registered with app.SetInputHandler.
func HandleInput(msg tea.Msg, m *app.Player) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return handleKey(msg, m)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, m)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, m)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, m)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, m)
	}
	return m, nil
}

func handleMouseClick(msg tea.MouseClickMsg, m *app.Player) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	x, y := mouse.X, mouse.Y

	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	if tab := m.DockItemAt(x, y); tab != nil {
		m.RestorePane(tab)
		return m, nil
	}

	p := PaneAt(m, x, y)
	if p == nil {
		return m, nil
	}
	m.Focus(p.Role())

	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	frame := p.Frame()
	onTitleBar := y == frame.Y

	// Title-bar buttons, rightmost first: × hides the pane, – miniaturizes
	// the pane with its group.
	if onTitleBar && !config.HideWindowButtons {
		right := frame.Right()
		if x >= right-4 && x <= right-2 {
			m.TogglePane(p.Role())
			return m, nil
		}
		if x >= right-6 && x < right-4 {
			m.MinimizePane(p)
			return m, nil
		}
	}

	m.Dragging = true
	m.DragRole = p.Role()
	m.DragTitleBar = onTitleBar
	m.DragOffset = geom.Point{X: x - frame.X, Y: y - frame.Y}
	m.Coordinator.BeginDrag(p, onTitleBar)
	return m, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, m *app.Player) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.LastMouseX = mouse.X
	m.LastMouseY = mouse.Y

	if !m.Dragging {
		return m, nil
	}
	p, ok := m.Panes[m.DragRole]
	if !ok || !p.Visible() {
		m.Dragging = false
		return m, nil
	}

	proposed := geom.Point{X: mouse.X - m.DragOffset.X, Y: mouse.Y - m.DragOffset.Y}
	m.Coordinator.WillMove(p, proposed)
	return m, nil
}

func handleMouseRelease(msg tea.MouseReleaseMsg, m *app.Player) (tea.Model, tea.Cmd) {
	if !m.Dragging {
		return m, nil
	}
	m.Dragging = false
	if p, ok := m.Panes[m.DragRole]; ok {
		m.Coordinator.EndDrag(p)
	}
	return m, nil
}

func handleMouseWheel(msg tea.MouseWheelMsg, m *app.Player) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	p := PaneAt(m, mouse.X, mouse.Y)
	if p == nil || p.Role() != wm.RoleMain {
		return m, nil
	}

	switch mouse.Button {
	case tea.MouseWheelUp:
		m.Playback.Volume = min(m.Playback.Volume+0.05, 1)
	case tea.MouseWheelDown:
		m.Playback.Volume = max(m.Playback.Volume-0.05, 0)
	default:
		return m, nil
	}
	p.InvalidateContent()
	return m, nil
}

// PaneAt returns the topmost visible pane containing (x, y), or nil.
func PaneAt(m *app.Player, x, y int) *pane.Pane {
	var best *pane.Pane
	for _, w := range m.Coordinator.Registry().VisibleWindows() {
		p, ok := w.(*pane.Pane)
		if !ok {
			continue
		}
		if !p.Frame().Contains(geom.Point{X: x, Y: y}) {
			continue
		}
		if best == nil || p.Z > best.Z {
			best = p
		}
	}
	return best
}
