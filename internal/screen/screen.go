// Package screen models the monitors a window can live on and the providers
// that enumerate them.
package screen

import "github.com/ad-repo/nullplayer-sub002/internal/geom"

// Screen is one physical display.
type Screen struct {
	ID   int
	Name string

	// Frame is the full bounds of the display in global coordinates.
	Frame geom.Rect

	// Visible is Frame minus any reserved areas (panels, docks). Snapping
	// targets the visible frame.
	Visible geom.Rect
}

// Provider enumerates the currently attached screens. Implementations must be
// cheap to call once per move event.
type Provider interface {
	Screens() []Screen
}

// Static is a fixed screen list, used in tests and by the terminal shell,
// where the "display" is the terminal viewport.
type Static struct {
	list []Screen
}

// NewStatic returns a provider over the given screens.
func NewStatic(screens ...Screen) *Static {
	return &Static{list: screens}
}

// Screens implements Provider.
func (s *Static) Screens() []Screen {
	return s.list
}

// SetScreens replaces the screen list, e.g. after a terminal resize.
func (s *Static) SetScreens(screens ...Screen) {
	s.list = screens
}
