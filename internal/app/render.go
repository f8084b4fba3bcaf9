package app

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/pane"
	"github.com/ad-repo/nullplayer-sub002/internal/theme"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// View renders the whole shell.
func (m *Player) View() tea.View {
	var view tea.View
	view.SetContent(lipgloss.Sprint(m.GetCanvas().Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true
	return view
}

// GetCanvas composites every visible pane plus the dock bar and overlays.
func (m *Player) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	var layers []*lipgloss.Layer

	focusedGroup := m.focusedGroupRoles()

	for _, w := range m.Coordinator.Registry().VisibleWindows() {
		p, ok := w.(*pane.Pane)
		if !ok {
			continue
		}
		if layer := m.paneLayer(p, focusedGroup); layer != nil {
			layers = append(layers, layer)
		}
	}

	if config.DockbarPosition != "hidden" {
		layers = append(layers, m.renderDock())
	}
	layers = append(layers, m.renderNotifications()...)
	if m.ShowHelp {
		if help := m.renderHelp(); help != nil {
			layers = append(layers, help)
		}
	}

	canvas.Compose(lipgloss.NewCompositor(layers...))
	return canvas
}

// focusedGroupRoles returns the roles docked to the focused pane, which get
// the group border tint.
func (m *Player) focusedGroupRoles() map[wm.Role]bool {
	group := map[wm.Role]bool{}
	focused := m.FocusedPane()
	if focused == nil || !focused.Visible() {
		return group
	}
	for _, member := range m.Coordinator.Registry().DockedSet(focused) {
		group[member.Role()] = true
	}
	return group
}

func (m *Player) paneLayer(p *pane.Pane, focusedGroup map[wm.Role]bool) *lipgloss.Layer {
	frame := p.Frame()

	// Cull panes entirely outside the viewport.
	if frame.X+frame.Width <= 0 || frame.X >= m.Width ||
		frame.Y+frame.Height <= 0 || frame.Y >= m.Height {
		return nil
	}

	var borderColor color.Color
	switch {
	case p.Role() == m.Focused:
		borderColor = theme.BorderFocused()
	case focusedGroup[p.Role()]:
		borderColor = theme.BorderDocked()
	default:
		borderColor = theme.BorderUnfocused()
	}

	if p.CachedLayer != nil && !p.ContentDirty && !p.PositionDirty &&
		p.CachedLayer.GetX() == frame.X && p.CachedLayer.GetY() == frame.Y &&
		p.CachedLayer.GetZ() == p.Z {
		return p.CachedLayer
	}

	border := config.GetBorderForStyle()
	interior := p.Content(frame.Width-2, frame.Height-2)

	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Border(border).
		BorderTop(false).
		BorderForeground(borderColor).
		Width(frame.Width - 2).
		Height(frame.Height - 1).
		Render(interior)

	content := m.titleBar(p, frame.Width, border, borderColor) + "\n" + box

	clipped, x, y := clipToViewport(content, frame.X, frame.Y, m.Width, m.Height)
	p.CachedLayer = lipgloss.NewLayer(clipped).X(x).Y(y).Z(p.Z).ID(p.ID())
	p.ClearDirtyFlags()
	return p.CachedLayer
}

// titleBar draws the pane's top border line with the title embedded and the
// minimize/hide buttons on the right.
func (m *Player) titleBar(p *pane.Pane, width int, border lipgloss.Border, c color.Color) string {
	edge := lipgloss.NewStyle().Foreground(c)
	text := lipgloss.NewStyle().Foreground(theme.TitleBarFg()).Background(theme.TitleBarBg())

	title := " " + p.Title() + " "
	buttons := ""
	if !config.HideWindowButtons {
		buttons = text.Render(" – × ")
	}

	inner := width - 2
	fill := inner - lipgloss.Width(title) - lipgloss.Width(buttons) - 1
	if fill < 0 {
		title = ansi.Truncate(title, max(inner-lipgloss.Width(buttons)-1, 0), "")
		fill = 0
	}

	return edge.Render(border.TopLeft+border.Top) +
		text.Render(title) +
		edge.Render(strings.Repeat(border.Top, fill)) +
		buttons +
		edge.Render(border.TopRight)
}

// clipToViewport trims content that hangs over the viewport edges, returning
// the trimmed content and its on-screen origin.
func clipToViewport(content string, x, y, vw, vh int) (string, int, int) {
	lines := strings.Split(content, "\n")

	if y < 0 {
		drop := -y
		if drop >= len(lines) {
			return "", 0, 0
		}
		lines = lines[drop:]
		y = 0
	}
	if y+len(lines) > vh {
		keep := vh - y
		if keep < 0 {
			keep = 0
		}
		lines = lines[:keep]
	}

	for i := range lines {
		if x < 0 {
			lines[i] = ansi.TruncateLeft(lines[i], -x, "")
		}
		maxWidth := vw - max(x, 0)
		if maxWidth < 0 {
			maxWidth = 0
		}
		lines[i] = ansi.Truncate(lines[i], maxWidth, "")
	}

	return strings.Join(lines, "\n"), max(x, 0), y
}

// dockTab is one clickable region in the dock bar.
type dockTab struct {
	role       wm.Role
	start, end int // inclusive column range
}

// renderDock draws the dock bar: miniaturized groups on the left, transport
// state and clock on the right.
func (m *Player) renderDock() *lipgloss.Layer {
	bg := lipgloss.NewStyle().Background(theme.DockBg())
	tabStyle := bg.Foreground(theme.DockFg())
	highlight := bg.Foreground(theme.DockHighlight())
	dim := bg.Foreground(theme.DockDimmed())
	sep := bg.Foreground(theme.DockSeparator())
	clockStyle := lipgloss.NewStyle().Background(theme.ClockBg()).Foreground(theme.ClockFg())

	m.dockTabs = m.dockTabs[:0]
	now := time.Now()

	var b strings.Builder
	col := 0
	write := func(s string, styled string) {
		b.WriteString(styled)
		col += lipgloss.Width(s)
	}

	write(" ", bg.Render(" "))
	for _, role := range wm.Roles {
		p, ok := m.Panes[role]
		if !ok || !p.Minimized || !m.paneLeadsDock(p) {
			continue
		}
		label := "▪ " + p.Title()
		if n := len(m.Coordinator.MiniaturizedGroup(role)); n > 0 {
			label = fmt.Sprintf("▪ %s +%d", p.Title(), n)
		}

		start := col
		if now.Before(p.HighlightUntil) {
			write(label, highlight.Render(label))
		} else {
			write(label, tabStyle.Render(label))
		}
		m.dockTabs = append(m.dockTabs, dockTab{role: role, start: start, end: col - 1})
		write(" │ ", sep.Render(" │ "))
	}

	track := "⏸ " + m.Playback.CurrentTrack().Title
	if m.Playback.Playing {
		track = "▶ " + m.Playback.CurrentTrack().Title
	}
	clock := ""
	if config.HideClock {
		track += " "
	} else {
		clock = "  " + now.Format("15:04") + " "
	}

	pad := m.Width - col - lipgloss.Width(track) - lipgloss.Width(clock)
	if pad < 0 {
		track = ansi.Truncate(track, max(m.Width-col-lipgloss.Width(clock), 0), "")
		pad = m.Width - col - lipgloss.Width(track) - lipgloss.Width(clock)
	}
	if pad > 0 {
		write(strings.Repeat(" ", pad), bg.Render(strings.Repeat(" ", pad)))
	}
	write(track, dim.Render(track))
	if clock != "" {
		write(clock, clockStyle.Render(clock))
	}

	y := m.Height - config.DockHeight
	if config.DockbarPosition == "top" {
		y = 0
	}
	return lipgloss.NewLayer(b.String()).X(0).Y(y).Z(config.ZIndexDock).ID("dock")
}

// paneLeadsDock reports whether p shows its own dock tab. Group members ride
// their leader's tab instead.
func (m *Player) paneLeadsDock(p *pane.Pane) bool {
	for _, role := range wm.Roles {
		if role == p.Role() {
			continue
		}
		for _, member := range m.Coordinator.MiniaturizedGroup(role) {
			if member == wm.Window(p) {
				return false
			}
		}
	}
	return true
}

// DockItemAt returns the miniaturized pane whose dock tab covers column x, if
// the click row is the dock row.
func (m *Player) DockItemAt(x, y int) *pane.Pane {
	dockY := m.Height - config.DockHeight
	if config.DockbarPosition == "top" {
		dockY = 0
	}
	if y != dockY || config.DockbarPosition == "hidden" {
		return nil
	}
	for _, tab := range m.dockTabs {
		if x >= tab.start && x <= tab.end {
			return m.Panes[tab.role]
		}
	}
	return nil
}

func (m *Player) renderNotifications() []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	y := 0
	for i, n := range m.Notifications {
		var accent color.Color
		switch n.Level {
		case "error":
			accent = theme.NotificationError()
		case "warning":
			accent = theme.NotificationWarning()
		case "success":
			accent = theme.NotificationSuccess()
		default:
			accent = theme.NotificationInfo()
		}

		boxStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(theme.NotificationBg()).
			Foreground(theme.NotificationFg()).
			Padding(0, 1)

		box := boxStyle.Render(n.Message)
		x := m.Width - lipgloss.Width(box) - 1
		if x < 0 {
			x = 0
		}
		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).Z(config.ZIndexNotification+i).
			ID(fmt.Sprintf("notification-%d", i)))
		y += lipgloss.Height(box)
	}
	return layers
}

func (m *Player) renderHelp() *lipgloss.Layer {
	badge := lipgloss.NewStyle().
		Foreground(theme.HelpKeyBadge()).
		Background(theme.HelpKeyBadgeBg()).
		Padding(0, 1)
	gray := lipgloss.NewStyle().Foreground(theme.HelpGray())

	var b strings.Builder
	for _, section := range config.GetKeybindings(m.Keybinds) {
		b.WriteString(gray.Render(section.Title))
		b.WriteString("\n")
		for _, kb := range section.Bindings {
			b.WriteString(fmt.Sprintf("  %s %s\n", badge.Render(kb.Key), kb.Description))
		}
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(strings.TrimRight(b.String(), "\n"))

	x := (m.Width - lipgloss.Width(box)) / 2
	y := (m.Height - lipgloss.Height(box)) / 2
	if x < 0 || y < 0 {
		return nil
	}
	return lipgloss.NewLayer(box).X(x).Y(y).Z(config.ZIndexOverlay).ID("help")
}
