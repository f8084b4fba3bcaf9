package wm

import (
	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/screen"
)

// Coordinator owns the drag lifecycle for every registered window. One
// coordinator exists per shell; it is constructed explicitly and passed to
// whatever code registers or queries windows.
//
// Everything here runs on the UI event loop. The only hazard is re-entrancy:
// our own corrective SetFrameOrigin calls echo back through the host's
// "window will move" path. Two guard flags, checked at the top of WillMove,
// turn those echoes into no-ops.
type Coordinator struct {
	registry *Registry
	screens  screen.Provider

	session *DragSession

	// snapping is set while the coordinator itself repositions a window
	// (applying a snap, resetting the layout, restoring a saved frame).
	snapping bool
	// movingDocked is set while group passengers are being written.
	movingDocked bool

	// miniaturized remembers, per leader role, the group attached when the
	// leader went into the dock.
	miniaturized map[Role][]Window
}

// New returns a coordinator over the given registry and screen provider.
func New(registry *Registry, screens screen.Provider) *Coordinator {
	return &Coordinator{
		registry:     registry,
		screens:      screens,
		miniaturized: make(map[Role][]Window),
	}
}

// Registry returns the window registry the coordinator operates on.
func (c *Coordinator) Registry() *Registry {
	return c.registry
}

// BeginDrag starts a drag session for w. titleBar records whether the drag
// was initiated from the title-bar region; only title-bar drags may undock.
func (c *Coordinator) BeginDrag(w Window, titleBar bool) {
	if c.snapping || c.movingDocked {
		return
	}
	c.session = newDragSession(c.registry, w, titleBar)
}

// EndDrag closes the drag session for w. Sessions for other windows are left
// alone, so a stale session is simply overwritten by the next drag.
func (c *Coordinator) EndDrag(w Window) {
	if c.session != nil && c.session.window == w {
		c.session = nil
	}
}

// Dragging reports whether w is the active dragger.
func (c *Coordinator) Dragging(w Window) bool {
	return c.session != nil && c.session.window == w
}

// WillMove is the single entry point for every "window wants to move to
// proposed" event. It returns the corrected origin, after snapping, and
// applies it to the dragging window and its whole docked group.
//
// Moves echoed by our own frame writes return the proposed origin untouched:
// they are feedback from SetFrameOrigin, not user input.
func (c *Coordinator) WillMove(w Window, proposed geom.Point) geom.Point {
	if c.snapping || c.movingDocked {
		return proposed
	}

	s := c.session
	if s == nil || s.window != w {
		// First move event for a window that is not the active dragger:
		// treat it as a new drag that did not come through BeginDrag, so
		// no title-bar undocking.
		s = newDragSession(c.registry, w, false)
		c.session = s
	}

	// A title-bar drag that travels far enough breaks the window out of
	// its group. Main never detaches; it always carries its group.
	if s.titleBar && !s.undocked && len(s.docked) > 0 &&
		s.window.Role() != RoleMain &&
		s.distanceFrom(proposed) > config.UndockThreshold {
		s.breakFree()
	}

	corrected := c.snapOrigin(s, proposed)
	corrected = c.keepGroupOnScreen(s, corrected)

	c.snapping = true
	w.SetFrameOrigin(corrected)
	w.MarkPositionDirty()
	c.snapping = false

	if len(s.docked) > 0 {
		// Passengers are always placed at corrected + frozen offset,
		// never moved by per-event deltas, so fast dragging cannot
		// accumulate drift.
		c.movingDocked = true
		for _, member := range s.docked {
			member.SetFrameOrigin(corrected.Add(s.offsets[member.Role()]))
			member.MarkPositionDirty()
		}
		c.movingDocked = false
	}

	return corrected
}

// PlaceWindow positions w programmatically (opening a window, restoring a
// saved layout) without creating a drag session. The frame is kept on screen.
func (c *Coordinator) PlaceWindow(w Window, origin geom.Point) {
	c.snapping = true
	w.SetFrameOrigin(c.keepOnScreen(w.Frame().WithOrigin(origin)))
	w.MarkPositionDirty()
	c.snapping = false
}

// ResetLayout stacks every visible window into a tight vertical column at the
// top-left of the primary screen, in role order, preserving each window's
// size.
func (c *Coordinator) ResetLayout() {
	screens := c.screens.Screens()
	if len(screens) == 0 {
		return
	}
	v := screens[0].Visible

	c.snapping = true
	defer func() { c.snapping = false }()

	y := v.Y
	for _, w := range c.registry.VisibleWindows() {
		frame := w.Frame()
		origin := clampInto(geom.Rect{X: v.X, Y: y, Width: frame.Width, Height: frame.Height}, v)
		w.SetFrameOrigin(origin)
		w.MarkPositionDirty()
		y = origin.Y + frame.Height
	}
}

// InDockedGroup reports whether the window for role currently touches at
// least one other visible window.
func (c *Coordinator) InDockedGroup(role Role) bool {
	return c.registry.InDockedGroup(role)
}

// Miniaturize attaches w's docked group as children of w so the host's
// minimize animation treats the group as one unit. The attached set is
// remembered for Restore. Safe to call repeatedly.
func (c *Coordinator) Miniaturize(w Window) {
	group := c.registry.DockedSet(w)
	c.miniaturized[w.Role()] = group

	attacher, ok := w.(ChildAttacher)
	if !ok {
		return
	}
	for _, member := range group {
		attacher.AttachChild(member)
	}
}

// Restore detaches every window remembered by Miniaturize, returning each to
// independent top-level status. Windows closed in the interim are skipped.
func (c *Coordinator) Restore(w Window) {
	group := c.miniaturized[w.Role()]
	delete(c.miniaturized, w.Role())

	attacher, ok := w.(ChildAttacher)
	if !ok {
		return
	}
	for _, member := range group {
		if c.registry.Get(member.Role()) != member {
			continue
		}
		attacher.DetachChild(member)
	}
}

// MiniaturizedGroup returns the roles currently riding w's miniaturization.
func (c *Coordinator) MiniaturizedGroup(role Role) []Window {
	return c.miniaturized[role]
}
