package wm

import (
	"math"

	"github.com/ad-repo/nullplayer-sub002/internal/geom"
)

// DragSession is the ephemeral state of one drag gesture. It is created on
// drag begin (or lazily on the first move event of a window that is not the
// active dragger) and discarded on drag end. The docked set and its offsets
// are computed exactly once, at creation; every later move reuses the frozen
// offsets so grouped windows never drift.
type DragSession struct {
	window      Window
	startOrigin geom.Point
	titleBar    bool

	// docked holds the windows that move with the dragger; offsets holds
	// each one's origin relative to the dragger's origin at drag start.
	docked  []Window
	offsets map[Role]geom.Point

	// undocked is set once a title-bar drag breaks the window free; the
	// docked set stays empty for the remainder of the gesture.
	undocked bool
}

// newDragSession snapshots the drag start state for w.
func newDragSession(r *Registry, w Window, titleBar bool) *DragSession {
	s := &DragSession{
		window:      w,
		startOrigin: w.Frame().Origin(),
		titleBar:    titleBar,
		docked:      r.DockedSet(w),
	}

	s.offsets = make(map[Role]geom.Point, len(s.docked))
	start := s.startOrigin
	for _, member := range s.docked {
		s.offsets[member.Role()] = member.Frame().Origin().Sub(start)
	}
	return s
}

// contains reports whether w rides in this session's docked set.
func (s *DragSession) contains(w Window) bool {
	for _, member := range s.docked {
		if member.Role() == w.Role() {
			return true
		}
	}
	return false
}

// distanceFrom returns the straight-line distance from the drag start origin
// to p.
func (s *DragSession) distanceFrom(p geom.Point) float64 {
	return math.Hypot(float64(p.X-s.startOrigin.X), float64(p.Y-s.startOrigin.Y))
}

// breakFree irreversibly empties the docked set for the rest of the gesture.
func (s *DragSession) breakFree() {
	s.docked = nil
	s.offsets = nil
	s.undocked = true
}
