package wm

import (
	"fmt"
	"testing"

	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/screen"
)

// fakeWindow implements Window for tests. onSetOrigin, when set, runs after
// every frame write so tests can simulate the host echoing moves back into
// the coordinator.
type fakeWindow struct {
	role        Role
	frame       geom.Rect
	hidden      bool
	dirtyCount  int
	children    []Window
	onSetOrigin func(geom.Point)
}

func newFakeWindow(role Role, frame geom.Rect) *fakeWindow {
	return &fakeWindow{role: role, frame: frame}
}

func (f *fakeWindow) Role() Role         { return f.role }
func (f *fakeWindow) ID() string         { return fmt.Sprintf("fake-%s", f.role) }
func (f *fakeWindow) Frame() geom.Rect   { return f.frame }
func (f *fakeWindow) Visible() bool      { return !f.hidden }
func (f *fakeWindow) MarkPositionDirty() { f.dirtyCount++ }
func (f *fakeWindow) AttachChild(w Window) {
	for _, c := range f.children {
		if c == w {
			return
		}
	}
	f.children = append(f.children, w)
}

func (f *fakeWindow) DetachChild(w Window) {
	for i, c := range f.children {
		if c == w {
			f.children = append(f.children[:i], f.children[i+1:]...)
			return
		}
	}
}

func (f *fakeWindow) SetFrameOrigin(p geom.Point) {
	f.frame.X = p.X
	f.frame.Y = p.Y
	if f.onSetOrigin != nil {
		f.onSetOrigin(p)
	}
}

// singleScreen is a 1920x1080 display with no reserved areas.
func singleScreen() *screen.Static {
	full := geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	return screen.NewStatic(screen.Screen{ID: 0, Name: "primary", Frame: full, Visible: full})
}

// sideBySideScreens is two 1920x1080 displays, the second to the right.
func sideBySideScreens() *screen.Static {
	left := geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	right := geom.Rect{X: 1920, Y: 0, Width: 1920, Height: 1080}
	return screen.NewStatic(
		screen.Screen{ID: 0, Name: "left", Frame: left, Visible: left},
		screen.Screen{ID: 1, Name: "right", Frame: right, Visible: right},
	)
}

func TestRegistryVisibleWindows(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 0, Y: 0, Width: 275, Height: 116})
	browser := newFakeWindow(RoleBrowser, geom.Rect{X: 500, Y: 0, Width: 400, Height: 300})
	hidden := newFakeWindow(RolePlaylist, geom.Rect{X: 0, Y: 200, Width: 275, Height: 232})
	hidden.hidden = true

	reg.Add(main)
	reg.Add(browser)
	reg.Add(hidden)

	visible := reg.VisibleWindows()
	if len(visible) != 2 {
		t.Fatalf("VisibleWindows returned %d windows, want 2", len(visible))
	}
	// Stable role order: main before browser.
	if visible[0].Role() != RoleMain || visible[1].Role() != RoleBrowser {
		t.Errorf("VisibleWindows order = [%s %s], want [main browser]",
			visible[0].Role(), visible[1].Role())
	}

	dockable := reg.DockableWindows()
	if len(dockable) != 1 || dockable[0].Role() != RoleMain {
		t.Errorf("DockableWindows = %v, want just main", dockable)
	}
}

func TestRegistryAbsentRole(t *testing.T) {
	reg := NewRegistry()
	if w := reg.Get(RoleEqualizer); w != nil {
		t.Errorf("Get for absent role = %v, want nil", w)
	}
	if reg.InDockedGroup(RoleEqualizer) {
		t.Error("InDockedGroup for absent role = true, want false")
	}
	// Removing an absent role is a no-op, not a panic.
	reg.Remove(RoleEqualizer)
}

func TestRoleDockable(t *testing.T) {
	wantDockable := map[Role]bool{
		RoleMain:       true,
		RoleEqualizer:  true,
		RolePlaylist:   true,
		RoleSpectrum:   true,
		RoleBrowser:    false,
		RoleVisualizer: false,
		RoleVideo:      false,
		RoleDebug:      false,
	}
	for role, want := range wantDockable {
		if got := role.Dockable(); got != want {
			t.Errorf("%s.Dockable() = %v, want %v", role, got, want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, role := range Roles {
		got, ok := ParseRole(role.String())
		if !ok || got != role {
			t.Errorf("ParseRole(%q) = %v, %v; want %v, true", role.String(), got, ok, role)
		}
	}
	if _, ok := ParseRole("skins"); ok {
		t.Error("ParseRole accepted an unknown role name")
	}
}
