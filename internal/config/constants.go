package config

import "time"

// Docking thresholds, in pixels. These are process-wide and fixed at compile
// time. The ordering SnapThreshold <= DockThreshold <= UndockThreshold is
// load-bearing: a window that just snapped edge-to-edge must also be detected
// as docked, and a docked window must travel further than a snap capture to
// break free.
const (
	// SnapThreshold is the capture radius within which a dragged edge is
	// pulled onto a nearby target edge.
	SnapThreshold = 15

	// DockThreshold is the largest edge gap at which two windows still
	// count as touching for group movement.
	DockThreshold = 20

	// UndockThreshold is the cumulative drag distance a title-bar drag must
	// exceed before the dragged window breaks free of its group.
	UndockThreshold = 30
)

// AlignmentWeight discounts same-edge alignment snap candidates relative to
// edge-to-edge docking candidates, so docking wins when both are in range and
// nearly equidistant.
const AlignmentWeight = 0.8

// Dock bar and shell layout constants.
const (
	// DockHeight is the height of the dock bar reserved at the bottom of
	// the shell, in rows.
	DockHeight = 1

	// MinWindowWidth is the smallest width a pane may be given.
	MinWindowWidth = 24

	// MinWindowHeight is the smallest height a pane may be given.
	MinWindowHeight = 6
)

// Z-index bands for canvas layering.
const (
	ZIndexDock         = 1000
	ZIndexOverlay      = 2000
	ZIndexNotification = 3000
)

// NormalFPS is the render loop's target frame rate.
const NormalFPS = 60

// NotificationDuration is how long a transient notification stays visible.
const NotificationDuration = 2 * time.Second

// CPUSampleInterval is how often the debug pane samples host statistics.
const CPUSampleInterval = 2 * time.Second
