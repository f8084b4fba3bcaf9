package wm

import (
	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
)

// Docked reports whether two frames touch for group-movement purposes: a
// left/right edge pair within gap of each other while the vertical extents
// overlap (side by side), or the symmetric stacked case.
func Docked(a, b geom.Rect, gap int) bool {
	if geom.OverlapY(a, b, gap) && geom.EdgeGapX(a, b) <= gap {
		return true
	}
	if geom.OverlapX(a, b, gap) && geom.EdgeGapY(a, b) <= gap {
		return true
	}
	return false
}

// DockedSet returns every other visible window that must move in lock-step
// with start, computed by breadth-first traversal over the Docked predicate.
//
// A non-dockable start yields nil: those windows never drag others. Windows
// accepted into the group propagate adjacency only if they are themselves
// dockable, so a non-dockable window can join as a leaf but never bridges two
// otherwise-unconnected dockable windows into one group.
func (r *Registry) DockedSet(start Window) []Window {
	if start == nil || !start.Role().Dockable() {
		return nil
	}

	visible := r.VisibleWindows()

	accepted := make(map[Role]bool, len(visible))
	accepted[start.Role()] = true

	frontier := []Window{start}
	var group []Window

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		for _, other := range visible {
			if accepted[other.Role()] {
				continue
			}
			if !Docked(current.Frame(), other.Frame(), config.DockThreshold) {
				continue
			}
			accepted[other.Role()] = true
			group = append(group, other)
			if other.Role().Dockable() {
				frontier = append(frontier, other)
			}
		}
	}

	return group
}

// InDockedGroup reports whether the window for role currently touches at
// least one other visible window. Used by menu code to mark grouped windows.
func (r *Registry) InDockedGroup(role Role) bool {
	w := r.Get(role)
	if w == nil || !w.Visible() {
		return false
	}
	frame := w.Frame()
	for _, other := range r.VisibleWindows() {
		if other.Role() == role {
			continue
		}
		if Docked(frame, other.Frame(), config.DockThreshold) {
			return true
		}
	}
	return false
}
