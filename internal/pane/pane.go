// Package pane provides the media player's window panes. Each pane is one of
// the fixed player windows (main, equalizer, playlist, ...) and implements
// the coordinator's window capability so it can be dragged, snapped, docked
// and miniaturized.
package pane

import (
	"time"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// RenderFunc draws a pane's interior at the given content size.
type RenderFunc func(width, height int) string

// Pane is one player window. Geometry goes through the accessor methods the
// coordinator needs; presentation state is plain fields the shell reads and
// writes directly, with a cached layer invalidated through the dirty flags.
type Pane struct {
	role  wm.Role
	id    string
	frame geom.Rect

	Z             int
	Hidden        bool
	Minimized     bool
	MinimizeOrder int64 // Unix nano timestamp when minimized, for dock ordering

	// HighlightUntil keeps the pane's dock tab highlighted briefly after
	// miniaturizing so the user can see where it went.
	HighlightUntil time.Time

	CachedLayer   *lipgloss.Layer
	ContentDirty  bool
	PositionDirty bool

	children      []wm.Window
	renderContent RenderFunc
}

// New creates a pane for role at frame. render draws the pane interior; a nil
// render yields an empty interior.
func New(role wm.Role, frame geom.Rect, render RenderFunc) *Pane {
	return &Pane{
		role:          role,
		id:            uuid.NewString(),
		frame:         frame,
		renderContent: render,
		ContentDirty:  true,
		PositionDirty: true,
	}
}

func (p *Pane) Role() wm.Role    { return p.role }
func (p *Pane) ID() string       { return p.id }
func (p *Pane) Frame() geom.Rect { return p.frame }

// Visible reports whether the pane participates in docking, snapping and
// rendering. Miniaturized panes live in the dock bar instead.
func (p *Pane) Visible() bool {
	return !p.Hidden && !p.Minimized
}

func (p *Pane) SetFrameOrigin(origin geom.Point) {
	p.frame.X = origin.X
	p.frame.Y = origin.Y
}

// Resize changes the pane's size in place, clamped to the minimum a pane
// needs to draw its border and title bar.
func (p *Pane) Resize(width, height int) {
	p.frame.Width = max(width, config.MinWindowWidth)
	p.frame.Height = max(height, config.MinWindowHeight)
	p.ContentDirty = true
	p.PositionDirty = true
}

func (p *Pane) MarkPositionDirty() { p.PositionDirty = true }

// InvalidateContent forces a redraw of the pane interior on the next frame.
func (p *Pane) InvalidateContent() { p.ContentDirty = true }

// ClearDirtyFlags is called after the pane's layer has been rebuilt.
func (p *Pane) ClearDirtyFlags() {
	p.ContentDirty = false
	p.PositionDirty = false
}

// Content renders the pane interior at the given size.
func (p *Pane) Content(width, height int) string {
	if p.renderContent == nil {
		return ""
	}
	return p.renderContent(width, height)
}

// AttachChild records w as riding on this pane's miniaturization.
func (p *Pane) AttachChild(w wm.Window) {
	for _, c := range p.children {
		if c == w {
			return
		}
	}
	p.children = append(p.children, w)
}

// DetachChild releases w back to independent status.
func (p *Pane) DetachChild(w wm.Window) {
	for i, c := range p.children {
		if c == w {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// Children returns the windows currently attached to this pane.
func (p *Pane) Children() []wm.Window {
	return p.children
}

// Title returns the pane's title-bar text.
func (p *Pane) Title() string {
	switch p.role {
	case wm.RoleMain:
		return "nullplayer"
	case wm.RoleEqualizer:
		return "equalizer"
	case wm.RolePlaylist:
		return "playlist"
	case wm.RoleSpectrum:
		return "spectrum"
	case wm.RoleBrowser:
		return "library"
	case wm.RoleVisualizer:
		return "visualizer"
	case wm.RoleVideo:
		return "video"
	case wm.RoleDebug:
		return "debug"
	}
	return p.role.String()
}
