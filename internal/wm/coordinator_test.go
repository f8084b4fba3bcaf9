package wm

import (
	"testing"

	"github.com/ad-repo/nullplayer-sub002/internal/geom"
)

func TestGroupMoveExact(t *testing.T) {
	// Main at (100,384) with the equalizer docked below; dragging main by
	// (+50,+30) lands both windows at exactly that delta.
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 100, Y: 384, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 100, Y: 500, Width: 275, Height: 116})
	reg.Add(main)
	reg.Add(eq)
	c := New(reg, singleScreen())

	c.BeginDrag(main, true)
	got := c.WillMove(main, geom.Point{X: 150, Y: 414})
	c.EndDrag(main)

	if got != (geom.Point{X: 150, Y: 414}) {
		t.Fatalf("corrected = %+v, want (150,414)", got)
	}
	if eq.Frame().Origin() != (geom.Point{X: 150, Y: 530}) {
		t.Errorf("equalizer origin = %+v, want (150,530)", eq.Frame().Origin())
	}
}

func TestGroupMoveNoDrift(t *testing.T) {
	// Offsets are frozen at drag start; after many incremental moves every
	// member still sits at exactly corrected+offset.
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 400, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 400, Y: 416, Width: 275, Height: 116})
	pl := newFakeWindow(RolePlaylist, geom.Rect{X: 400, Y: 532, Width: 275, Height: 232})
	reg.Add(main)
	reg.Add(eq)
	reg.Add(pl)
	c := New(reg, singleScreen())

	c.BeginDrag(main, false)
	for i := 1; i <= 1000; i++ {
		proposed := geom.Point{
			X: 400 + (i*7)%31 - 15,
			Y: 300 + (i*13)%23 - 11,
		}
		corrected := c.WillMove(main, proposed)
		if main.Frame().Origin() != corrected {
			t.Fatalf("move %d: main origin = %+v, want %+v", i, main.Frame().Origin(), corrected)
		}
		wantEq := corrected.Add(geom.Point{X: 0, Y: 116})
		wantPl := corrected.Add(geom.Point{X: 0, Y: 232})
		if eq.Frame().Origin() != wantEq {
			t.Fatalf("move %d: equalizer origin = %+v, want %+v", i, eq.Frame().Origin(), wantEq)
		}
		if pl.Frame().Origin() != wantPl {
			t.Fatalf("move %d: playlist origin = %+v, want %+v", i, pl.Frame().Origin(), wantPl)
		}
	}
}

func TestUndockPastThreshold(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 500, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 500, Y: 416, Width: 275, Height: 116})
	reg.Add(main)
	reg.Add(eq)
	c := New(reg, singleScreen())

	c.BeginDrag(eq, true)

	// Within the escape radius the whole group follows.
	c.WillMove(eq, geom.Point{X: 510, Y: 416})
	if main.Frame().Origin() != (geom.Point{X: 510, Y: 300}) {
		t.Fatalf("main origin = %+v, want (510,300) before undock", main.Frame().Origin())
	}

	// Past it the equalizer breaks free and main stops following.
	c.WillMove(eq, geom.Point{X: 560, Y: 416})
	if main.Frame().Origin() != (geom.Point{X: 510, Y: 300}) {
		t.Errorf("main origin = %+v, want (510,300) after undock", main.Frame().Origin())
	}
	if eq.Frame().Origin() != (geom.Point{X: 560, Y: 416}) {
		t.Errorf("equalizer origin = %+v, want (560,416)", eq.Frame().Origin())
	}

	// Undocking is irreversible for the rest of the session.
	c.WillMove(eq, geom.Point{X: 512, Y: 416})
	if main.Frame().Origin() != (geom.Point{X: 510, Y: 300}) {
		t.Errorf("main origin = %+v, want (510,300); group must not re-form mid-drag", main.Frame().Origin())
	}
}

func TestBodyDragNeverUndocks(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 500, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 500, Y: 416, Width: 275, Height: 116})
	reg.Add(main)
	reg.Add(eq)
	c := New(reg, singleScreen())

	c.BeginDrag(eq, false)
	c.WillMove(eq, geom.Point{X: 700, Y: 500})
	if main.Frame().Origin() != (geom.Point{X: 700, Y: 384}) {
		t.Errorf("main origin = %+v, want (700,384); body drags carry the group", main.Frame().Origin())
	}
}

func TestMainNeverDetaches(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 500, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 500, Y: 416, Width: 275, Height: 116})
	reg.Add(main)
	reg.Add(eq)
	c := New(reg, singleScreen())

	c.BeginDrag(main, true)
	c.WillMove(main, geom.Point{X: 600, Y: 300}) // 100px, far past the escape radius
	if eq.Frame().Origin() != (geom.Point{X: 600, Y: 416}) {
		t.Errorf("equalizer origin = %+v, want (600,416); main carries its group regardless of distance", eq.Frame().Origin())
	}
}

func TestEchoedMovesIgnored(t *testing.T) {
	// A window system that reports coordinator-initiated moves back as new
	// move events must not trigger recursive correction.
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 500, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 500, Y: 416, Width: 275, Height: 116})
	reg.Add(main)
	reg.Add(eq)
	c := New(reg, singleScreen())

	main.onSetOrigin = func(p geom.Point) { c.WillMove(main, p) }
	eq.onSetOrigin = func(p geom.Point) { c.WillMove(eq, p) }

	c.BeginDrag(main, true)
	got := c.WillMove(main, geom.Point{X: 550, Y: 330})
	if got != (geom.Point{X: 550, Y: 330}) {
		t.Fatalf("corrected = %+v, want (550,330)", got)
	}
	if eq.Frame().Origin() != (geom.Point{X: 550, Y: 446}) {
		t.Errorf("equalizer origin = %+v, want (550,446)", eq.Frame().Origin())
	}
	if !c.Dragging(main) {
		t.Error("echoed move must not steal the drag session")
	}
}

func TestWillMoveWithoutBeginDrag(t *testing.T) {
	// Programmatic moves arrive without an explicit drag start; the
	// coordinator opens an implicit session with the group attached.
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 500, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 500, Y: 416, Width: 275, Height: 116})
	reg.Add(main)
	reg.Add(eq)
	c := New(reg, singleScreen())

	c.WillMove(eq, geom.Point{X: 700, Y: 500})
	if main.Frame().Origin() != (geom.Point{X: 700, Y: 384}) {
		t.Errorf("main origin = %+v, want (700,384)", main.Frame().Origin())
	}
}

func TestKeepOnScreenClamp(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 500, Y: 300, Width: 275, Height: 116})
	reg.Add(main)
	c := New(reg, singleScreen())

	c.BeginDrag(main, false)
	got := c.WillMove(main, geom.Point{X: 5000, Y: 2000})
	want := geom.Point{X: 1645, Y: 964}
	if got != want {
		t.Errorf("WillMove far off-screen = %+v, want clamped %+v", got, want)
	}
}

func TestGroupStaysOnScreen(t *testing.T) {
	// Dragging main toward the bottom edge must not push the docked
	// equalizer off every screen: the whole group is pulled back up.
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 400, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 400, Y: 416, Width: 275, Height: 116})
	reg.Add(main)
	reg.Add(eq)
	c := New(reg, singleScreen())

	c.BeginDrag(main, true)
	got := c.WillMove(main, geom.Point{X: 400, Y: 1075})

	// Main alone would still touch the screen at y=1075, but the
	// equalizer at y=1191 would not; the group clamps so both fit.
	if got != (geom.Point{X: 400, Y: 848}) {
		t.Fatalf("corrected = %+v, want (400,848)", got)
	}
	if main.Frame().Origin() != (geom.Point{X: 400, Y: 848}) {
		t.Errorf("main origin = %+v, want (400,848)", main.Frame().Origin())
	}
	if eq.Frame().Origin() != (geom.Point{X: 400, Y: 964}) {
		t.Errorf("equalizer origin = %+v, want (400,964); offsets stay frozen", eq.Frame().Origin())
	}
}

func TestPlaceWindowClamps(t *testing.T) {
	reg := NewRegistry()
	browser := newFakeWindow(RoleBrowser, geom.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	reg.Add(browser)
	c := New(reg, singleScreen())

	c.PlaceWindow(browser, geom.Point{X: -500, Y: 200})
	if browser.Frame().Origin() != (geom.Point{X: 0, Y: 200}) {
		t.Errorf("browser origin = %+v, want (0,200)", browser.Frame().Origin())
	}
}

func TestResetLayout(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 800, Y: 500, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 30, Y: 40, Width: 275, Height: 116})
	browser := newFakeWindow(RoleBrowser, geom.Rect{X: 1000, Y: 100, Width: 400, Height: 300})
	reg.Add(main)
	reg.Add(eq)
	reg.Add(browser)
	c := New(reg, singleScreen())

	c.ResetLayout()

	cases := []struct {
		name string
		w    *fakeWindow
		want geom.Point
	}{
		{"main at top", main, geom.Point{X: 0, Y: 0}},
		{"equalizer below main", eq, geom.Point{X: 0, Y: 116}},
		{"browser below equalizer", browser, geom.Point{X: 0, Y: 232}},
	}
	for _, tc := range cases {
		if tc.w.Frame().Origin() != tc.want {
			t.Errorf("%s: origin = %+v, want %+v", tc.name, tc.w.Frame().Origin(), tc.want)
		}
	}
}

func TestMiniaturizeAndRestore(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 400, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 400, Y: 416, Width: 275, Height: 116})
	pl := newFakeWindow(RolePlaylist, geom.Rect{X: 400, Y: 532, Width: 275, Height: 232})
	reg.Add(main)
	reg.Add(eq)
	reg.Add(pl)
	c := New(reg, singleScreen())

	c.Miniaturize(main)
	if len(main.children) != 2 {
		t.Fatalf("attached children = %d, want 2", len(main.children))
	}

	// Repeating is a no-op.
	c.Miniaturize(main)
	if len(main.children) != 2 {
		t.Errorf("attached children after repeat = %d, want 2", len(main.children))
	}

	c.Restore(main)
	if len(main.children) != 0 {
		t.Errorf("attached children after restore = %d, want 0", len(main.children))
	}

	// Restoring again is harmless.
	c.Restore(main)
}

func TestRestoreSkipsClosedWindows(t *testing.T) {
	reg := NewRegistry()
	main := newFakeWindow(RoleMain, geom.Rect{X: 400, Y: 300, Width: 275, Height: 116})
	eq := newFakeWindow(RoleEqualizer, geom.Rect{X: 400, Y: 416, Width: 275, Height: 116})
	pl := newFakeWindow(RolePlaylist, geom.Rect{X: 400, Y: 532, Width: 275, Height: 232})
	reg.Add(main)
	reg.Add(eq)
	reg.Add(pl)
	c := New(reg, singleScreen())

	c.Miniaturize(main)
	reg.Remove(RolePlaylist)

	c.Restore(main)
	for _, child := range main.children {
		if child.Role() == RoleEqualizer {
			t.Error("surviving windows must be detached on restore")
		}
	}
}
