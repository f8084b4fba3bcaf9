package wm

import (
	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
)

// snapCandidate is one possible corrected value for a single axis.
type snapCandidate struct {
	target int
	dist   int
	// score is the distance adjusted for candidate priority; the smallest
	// score in capture range wins.
	score float64
}

func makeCandidate(current, target int, weight float64) snapCandidate {
	dist := geom.Abs(current - target)
	return snapCandidate{
		target: target,
		dist:   dist,
		score:  float64(dist) / weight,
	}
}

// pickAxis selects the best candidate within the capture radius, or returns
// the current value unchanged when nothing is in range.
func pickAxis(current int, candidates []snapCandidate) int {
	best := -1
	for i, c := range candidates {
		if c.dist > config.SnapThreshold {
			continue
		}
		if best == -1 || c.score < candidates[best].score {
			best = i
		}
	}
	if best == -1 {
		return current
	}
	return candidates[best].target
}

// snapOrigin computes the corrected origin for the session's dragging window
// given a caller-proposed origin. Horizontal and vertical corrections are
// independent: each axis snaps to its own nearest in-range target, or passes
// through untouched.
//
// Candidates per axis, in priority order: edge-to-edge docking against other
// dockable windows, same-edge alignment against those windows (discounted by
// config.AlignmentWeight), and the visible edges of the screen most
// overlapping the window. Screen-edge candidates that would strand a grouped
// window on another monitor are excluded here, before nearest-candidate
// selection, so a second-best in-range candidate can still win.
func (c *Coordinator) snapOrigin(s *DragSession, proposed geom.Point) geom.Point {
	frame := s.window.Frame().WithOrigin(proposed)

	var xCands, yCands []snapCandidate

	// Edge-to-edge docking and edge alignment against dockable windows
	// outside the moving set.
	for _, other := range c.registry.DockableWindows() {
		if other.Role() == s.window.Role() || s.contains(other) {
			continue
		}
		o := other.Frame()

		if geom.OverlapY(frame, o, config.DockThreshold) {
			xCands = append(xCands,
				makeCandidate(proposed.X, o.X-frame.Width, 1), // my right edge on its left
				makeCandidate(proposed.X, o.Right(), 1),       // my left edge on its right
				makeCandidate(proposed.X, o.X, config.AlignmentWeight),
				makeCandidate(proposed.X, o.Right()-frame.Width, config.AlignmentWeight),
			)
		}

		if geom.OverlapX(frame, o, config.DockThreshold) {
			yCands = append(yCands,
				makeCandidate(proposed.Y, o.Y-frame.Height, 1), // my bottom edge on its top
				makeCandidate(proposed.Y, o.Bottom(), 1),       // my top edge on its bottom
				makeCandidate(proposed.Y, o.Y, config.AlignmentWeight),
				makeCandidate(proposed.Y, o.Bottom()-frame.Height, config.AlignmentWeight),
			)
		}
	}

	// Visible edges of the screen the window mostly lives on.
	if scr, ok := c.mostOverlappingScreen(frame); ok {
		v := scr.Visible

		for _, target := range []int{v.X, v.Right() - frame.Width} {
			cand := makeCandidate(proposed.X, target, 1)
			if c.groupAllowsOrigin(s, geom.Point{X: cand.target, Y: proposed.Y}) {
				xCands = append(xCands, cand)
			}
		}
		for _, target := range []int{v.Y, v.Bottom() - frame.Height} {
			cand := makeCandidate(proposed.Y, target, 1)
			if c.groupAllowsOrigin(s, geom.Point{X: proposed.X, Y: cand.target}) {
				yCands = append(yCands, cand)
			}
		}
	}

	return geom.Point{
		X: pickAxis(proposed.X, xCands),
		Y: pickAxis(proposed.Y, yCands),
	}
}
