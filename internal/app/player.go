// Package app provides the nullplayer shell: the Bubble Tea model that owns
// the window coordinator, the player panes, the dock bar and notifications.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/layout"
	"github.com/ad-repo/nullplayer-sub002/internal/pane"
	"github.com/ad-repo/nullplayer-sub002/internal/screen"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// Notification is a transient message shown in the top-right corner.
type Notification struct {
	Message   string
	Level     string // "info", "success", "warning", "error"
	CreatedAt time.Time
}

// Track is one playlist entry.
type Track struct {
	Title    string
	Duration time.Duration
}

// Playback is the placeholder transport state driving the pane content.
type Playback struct {
	Tracks  []Track
	Current int
	Elapsed time.Duration
	Playing bool
	EQGains [10]float64 // -1..1 per band
	Volume  float64     // 0..1
}

// Player is the main application state. It owns the coordinator, so every
// pane move flows through the docking and snapping rules.
type Player struct {
	Coordinator *wm.Coordinator
	Screens     *screen.Static
	Panes       map[wm.Role]*pane.Pane
	Keybinds    *config.KeybindRegistry

	Width  int
	Height int

	Focused wm.Role
	topZ    int

	// Drag state. DragOffset is the pointer's position within the dragged
	// pane, fixed at press time.
	Dragging     bool
	DragRole     wm.Role
	DragOffset   geom.Point
	DragTitleBar bool

	ShowHelp      bool
	Notifications []Notification

	Playback Playback
	Sys      SysStats

	LastMouseX int
	LastMouseY int

	dockTabs []dockTab
	sized    bool // first WindowSizeMsg seen
}

// InputHandler handles key and mouse messages. The main package registers the
// input package's handler here, which keeps app and input from importing
// each other.
type InputHandler func(msg tea.Msg, m *Player) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler. Must be called before the
// update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// New builds the player shell with every pane registered. The screen provider
// is a single static screen that tracks the terminal viewport; it is updated
// on every resize.
func New(keybinds *config.KeybindRegistry) *Player {
	screens := screen.NewStatic()
	registry := wm.NewRegistry()
	coordinator := wm.New(registry, screens)

	m := &Player{
		Coordinator: coordinator,
		Screens:     screens,
		Panes:       make(map[wm.Role]*pane.Pane),
		Keybinds:    keybinds,
		Focused:     wm.RoleMain,
		Playback:    defaultPlayback(),
	}

	m.buildPanes()
	for _, p := range m.Panes {
		registry.Add(p)
	}
	return m
}

// Init starts the playback and stats tickers.
func (m *Player) Init() tea.Cmd {
	return tea.Batch(TickCmd(), SampleSysCmd())
}

// FocusedPane returns the currently focused pane, or nil.
func (m *Player) FocusedPane() *pane.Pane {
	return m.Panes[m.Focused]
}

// Focus focuses role's pane and raises it above every other pane.
func (m *Player) Focus(role wm.Role) {
	p, ok := m.Panes[role]
	if !ok {
		return
	}
	m.Focused = role
	m.topZ++
	p.Z = m.topZ
	p.MarkPositionDirty()
}

// FocusNext cycles focus through visible panes in role order.
func (m *Player) FocusNext(backward bool) {
	visible := m.Coordinator.Registry().VisibleWindows()
	if len(visible) == 0 {
		return
	}
	idx := 0
	for i, w := range visible {
		if w.Role() == m.Focused {
			idx = i
			break
		}
	}
	if backward {
		idx = (idx - 1 + len(visible)) % len(visible)
	} else {
		idx = (idx + 1) % len(visible)
	}
	m.Focus(visible[idx].Role())
}

// TogglePane shows or hides role's pane. Hiding the focused pane moves focus
// to main.
func (m *Player) TogglePane(role wm.Role) {
	p, ok := m.Panes[role]
	if !ok {
		return
	}
	if p.Minimized {
		m.RestorePane(p)
		return
	}
	p.Hidden = !p.Hidden
	if p.Hidden && m.Focused == role {
		m.Focus(wm.RoleMain)
	}
	if !p.Hidden {
		m.Focus(role)
	}
}

// MinimizePane miniaturizes p together with its docked group.
func (m *Player) MinimizePane(p *pane.Pane) {
	if p.Minimized {
		return
	}
	m.Coordinator.Miniaturize(p)

	now := time.Now()
	p.Minimized = true
	p.MinimizeOrder = now.UnixNano()
	p.HighlightUntil = now.Add(time.Second)
	for _, child := range p.Children() {
		if cp, ok := child.(*pane.Pane); ok {
			cp.Minimized = true
			cp.MinimizeOrder = p.MinimizeOrder
		}
	}
	if m.Focused == p.Role() {
		m.focusAnyVisible()
	}
}

// RestorePane brings p and its remembered group back from the dock.
func (m *Player) RestorePane(p *pane.Pane) {
	for _, child := range p.Children() {
		if cp, ok := child.(*pane.Pane); ok {
			cp.Minimized = false
		}
	}
	m.Coordinator.Restore(p)
	p.Minimized = false
	m.Focus(p.Role())
}

// RestoreAll brings every miniaturized pane back. Restoring a group member
// individually is harmless; its leader's restore simply finds it already
// detached.
func (m *Player) RestoreAll() {
	for _, role := range wm.Roles {
		if p, ok := m.Panes[role]; ok && p.Minimized {
			m.RestorePane(p)
		}
	}
}

func (m *Player) focusAnyVisible() {
	for _, w := range m.Coordinator.Registry().VisibleWindows() {
		m.Focus(w.Role())
		return
	}
}

// Notify queues a transient notification.
func (m *Player) Notify(message, level string) {
	m.Notifications = append(m.Notifications, Notification{
		Message:   message,
		Level:     level,
		CreatedAt: time.Now(),
	})
}

// SaveLayout persists the current pane frames.
func (m *Player) SaveLayout() error {
	return layout.Save(layout.Capture(m.Coordinator.Registry()))
}

// RestoreLayout applies the saved layout, if any, and returns whether any
// frame was restored.
func (m *Player) RestoreLayout() bool {
	saved, err := layout.Load()
	if err != nil || len(saved.Windows) == 0 {
		return false
	}
	layout.Apply(m.Coordinator, saved)
	for name, f := range saved.Windows {
		role, ok := wm.ParseRole(name)
		if !ok {
			continue
		}
		if p, ok := m.Panes[role]; ok {
			p.Hidden = !f.Visible
		}
	}
	return true
}

func defaultPlayback() Playback {
	return Playback{
		Tracks: []Track{
			{Title: "Llama Whippin' Intro", Duration: 5 * time.Second},
			{Title: "Sky Harness - Orbital Drift", Duration: 4*time.Minute + 22*time.Second},
			{Title: "Null Pointer - Segfault Serenade", Duration: 3*time.Minute + 41*time.Second},
			{Title: "Cassette Logic - Rewind Culture", Duration: 5*time.Minute + 3*time.Second},
			{Title: "Monitor Glow - Phosphor Burn", Duration: 2*time.Minute + 58*time.Second},
			{Title: "Dial Tone Choir - Carrier Lost", Duration: 6*time.Minute + 14*time.Second},
		},
		Current: 0,
		Playing: true,
		Volume:  0.8,
		EQGains: [10]float64{0.2, 0.3, 0.1, 0, -0.1, 0, 0.1, 0.25, 0.4, 0.3},
	}
}
