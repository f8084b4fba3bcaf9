package wm

import "github.com/ad-repo/nullplayer-sub002/internal/geom"

// Window is the capability surface the coordinator requires of a live window.
// Any window controller fulfilling it can fill a role; the coordinator never
// depends on a concrete implementation.
type Window interface {
	// Role returns the fixed role this window fills.
	Role() Role

	// ID returns a stable identifier for the lifetime of the window.
	ID() string

	// Frame returns the window's current frame in global coordinates.
	Frame() geom.Rect

	// SetFrameOrigin moves the window, size unchanged. Implementations may
	// re-enter the coordinator's move handler; the coordinator's guard
	// flags make that a no-op.
	SetFrameOrigin(p geom.Point)

	// Visible reports whether the window is currently shown.
	Visible() bool

	// MarkPositionDirty requests a repaint after a managed move.
	MarkPositionDirty()
}

// ChildAttacher is implemented by windows that can adopt other windows as
// native children, so a docked group rides one miniaturize animation. Windows
// without it still miniaturize, just not as a unit.
type ChildAttacher interface {
	AttachChild(Window)
	DetachChild(Window)
}

// Registry is the single source of truth for which windows exist. It holds at
// most one window per role and never retains a closed window.
type Registry struct {
	windows [roleCount]Window
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers w under its role, replacing any previous holder.
func (r *Registry) Add(w Window) {
	r.windows[w.Role()] = w
}

// Remove forgets the window for role.
func (r *Registry) Remove(role Role) {
	r.windows[role] = nil
}

// Get returns the live window for role, or nil.
func (r *Registry) Get(role Role) Window {
	return r.windows[role]
}

// VisibleWindows returns every currently visible window in stable role order.
func (r *Registry) VisibleWindows() []Window {
	out := make([]Window, 0, roleCount)
	for _, role := range Roles {
		if w := r.windows[role]; w != nil && w.Visible() {
			out = append(out, w)
		}
	}
	return out
}

// DockableWindows returns the visible windows whose roles are dockable.
func (r *Registry) DockableWindows() []Window {
	out := make([]Window, 0, 4)
	for _, role := range Roles {
		if !role.Dockable() {
			continue
		}
		if w := r.windows[role]; w != nil && w.Visible() {
			out = append(out, w)
		}
	}
	return out
}

// IsDockable reports whether role participates in adjacency propagation.
func (r *Registry) IsDockable(role Role) bool {
	return role.Dockable()
}
