package wm

import (
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/screen"
)

// majorityScreenIndex returns the index of the screen sharing the most area
// with frame, or -1 when frame intersects no screen.
func majorityScreenIndex(screens []screen.Screen, frame geom.Rect) int {
	best := -1
	bestArea := 0
	for i, scr := range screens {
		area := scr.Frame.IntersectionArea(frame)
		if area > bestArea {
			bestArea = area
			best = i
		}
	}
	return best
}

// groupAllowsOrigin reports whether placing the session's dragging window at
// origin keeps every grouped window on the same majority-overlap screen as
// the dragger. A lone window may cross screens freely.
func (c *Coordinator) groupAllowsOrigin(s *DragSession, origin geom.Point) bool {
	if len(s.docked) == 0 {
		return true
	}

	screens := c.screens.Screens()
	if len(screens) < 2 {
		return true
	}

	dragFrame := s.window.Frame().WithOrigin(origin)
	target := majorityScreenIndex(screens, dragFrame)
	if target == -1 {
		return false
	}

	for _, member := range s.docked {
		memberFrame := member.Frame().WithOrigin(origin.Add(s.offsets[member.Role()]))
		if majorityScreenIndex(screens, memberFrame) != target {
			return false
		}
	}
	return true
}

// keepOnScreen returns frame's origin adjusted so the frame intersects at
// least one screen. Frames already touching a screen pass through unchanged;
// a frame that would land on no screen at all is pulled fully inside the
// nearest screen's visible area.
func (c *Coordinator) keepOnScreen(frame geom.Rect) geom.Point {
	screens := c.screens.Screens()
	if len(screens) == 0 || onAnyScreen(screens, frame) {
		return frame.Origin()
	}
	return clampInto(frame, nearestScreen(screens, frame).Visible)
}

// keepGroupOnScreen extends keepOnScreen to a whole docked group: origin is
// the dragging window's candidate origin, and every passenger frame, placed
// at its frozen offset, must also land on some screen. When any member would
// be stranded, the group's bounding rect is pulled inside the nearest
// screen's visible area and origin shifted by the same delta, so the frozen
// offsets stay exact.
func (c *Coordinator) keepGroupOnScreen(s *DragSession, origin geom.Point) geom.Point {
	dragFrame := s.window.Frame().WithOrigin(origin)
	if len(s.docked) == 0 {
		return c.keepOnScreen(dragFrame)
	}

	screens := c.screens.Screens()
	if len(screens) == 0 {
		return origin
	}

	union := dragFrame
	stranded := !onAnyScreen(screens, dragFrame)
	for _, member := range s.docked {
		frame := member.Frame().WithOrigin(origin.Add(s.offsets[member.Role()]))
		union = union.Union(frame)
		if !onAnyScreen(screens, frame) {
			stranded = true
		}
	}
	if !stranded {
		return origin
	}

	clamped := clampInto(union, nearestScreen(screens, union).Visible)
	return origin.Add(clamped.Sub(union.Origin()))
}

func onAnyScreen(screens []screen.Screen, frame geom.Rect) bool {
	for _, scr := range screens {
		if scr.Frame.Intersects(frame) {
			return true
		}
	}
	return false
}

func nearestScreen(screens []screen.Screen, frame geom.Rect) screen.Screen {
	nearest := screens[0]
	nearestDist := screenDistance(nearest.Frame, frame)
	for _, scr := range screens[1:] {
		if d := screenDistance(scr.Frame, frame); d < nearestDist {
			nearest = scr
			nearestDist = d
		}
	}
	return nearest
}

// screenDistance is the Manhattan gap between two disjoint rects, zero when
// they touch or overlap.
func screenDistance(a, b geom.Rect) int {
	dx := 0
	if b.Right() <= a.X {
		dx = a.X - b.Right()
	} else if a.Right() <= b.X {
		dx = b.X - a.Right()
	}

	dy := 0
	if b.Bottom() <= a.Y {
		dy = a.Y - b.Bottom()
	} else if a.Bottom() <= b.Y {
		dy = b.Y - a.Bottom()
	}

	return dx + dy
}

// clampInto slides frame's origin so it sits inside bounds, favoring the
// top-left when frame is larger than bounds.
func clampInto(frame, bounds geom.Rect) geom.Point {
	x := frame.X
	if x+frame.Width > bounds.Right() {
		x = bounds.Right() - frame.Width
	}
	if x < bounds.X {
		x = bounds.X
	}

	y := frame.Y
	if y+frame.Height > bounds.Bottom() {
		y = bounds.Bottom() - frame.Height
	}
	if y < bounds.Y {
		y = bounds.Y
	}

	return geom.Point{X: x, Y: y}
}

// mostOverlappingScreen returns the screen sharing the most area with frame.
// When frame touches no screen, the nearest screen is returned so snapping
// still has meaningful edges to offer.
func (c *Coordinator) mostOverlappingScreen(frame geom.Rect) (screen.Screen, bool) {
	screens := c.screens.Screens()
	if len(screens) == 0 {
		return screen.Screen{}, false
	}

	if idx := majorityScreenIndex(screens, frame); idx != -1 {
		return screens[idx], true
	}
	return nearestScreen(screens, frame), true
}
