package pane

import (
	"testing"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

func TestPaneImplementsWindow(t *testing.T) {
	var _ wm.Window = (*Pane)(nil)
	var _ wm.ChildAttacher = (*Pane)(nil)
}

func TestVisibility(t *testing.T) {
	p := New(wm.RoleEqualizer, geom.Rect{X: 0, Y: 0, Width: 30, Height: 8}, nil)
	if !p.Visible() {
		t.Fatal("new pane should be visible")
	}

	p.Minimized = true
	if p.Visible() {
		t.Error("miniaturized pane should not be visible")
	}

	p.Minimized = false
	p.Hidden = true
	if p.Visible() {
		t.Error("hidden pane should not be visible")
	}
}

func TestSetFrameOriginKeepsSize(t *testing.T) {
	p := New(wm.RolePlaylist, geom.Rect{X: 10, Y: 10, Width: 30, Height: 14}, nil)
	p.SetFrameOrigin(geom.Point{X: 50, Y: 2})

	want := geom.Rect{X: 50, Y: 2, Width: 30, Height: 14}
	if p.Frame() != want {
		t.Errorf("Frame = %+v, want %+v", p.Frame(), want)
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	p := New(wm.RolePlaylist, geom.Rect{X: 10, Y: 10, Width: 30, Height: 14}, nil)
	p.ClearDirtyFlags()

	p.Resize(60, 20)
	want := geom.Rect{X: 10, Y: 10, Width: 60, Height: 20}
	if p.Frame() != want {
		t.Errorf("Frame = %+v, want %+v", p.Frame(), want)
	}
	if !p.ContentDirty || !p.PositionDirty {
		t.Error("Resize must mark the pane dirty")
	}

	p.Resize(1, 1)
	want = geom.Rect{X: 10, Y: 10, Width: config.MinWindowWidth, Height: config.MinWindowHeight}
	if p.Frame() != want {
		t.Errorf("Frame after tiny resize = %+v, want %+v", p.Frame(), want)
	}
}

func TestAttachDetachChildren(t *testing.T) {
	main := New(wm.RoleMain, geom.Rect{Width: 30, Height: 8}, nil)
	eq := New(wm.RoleEqualizer, geom.Rect{Y: 8, Width: 30, Height: 8}, nil)
	pl := New(wm.RolePlaylist, geom.Rect{Y: 16, Width: 30, Height: 14}, nil)

	main.AttachChild(eq)
	main.AttachChild(pl)
	main.AttachChild(eq) // repeat is a no-op
	if len(main.Children()) != 2 {
		t.Fatalf("children = %d, want 2", len(main.Children()))
	}

	main.DetachChild(eq)
	if len(main.Children()) != 1 || main.Children()[0] != wm.Window(pl) {
		t.Errorf("children after detach = %v, want just the playlist", main.Children())
	}

	main.DetachChild(eq) // detaching twice is harmless
}

func TestUniqueIDs(t *testing.T) {
	a := New(wm.RoleMain, geom.Rect{Width: 30, Height: 8}, nil)
	b := New(wm.RoleMain, geom.Rect{Width: 30, Height: 8}, nil)
	if a.ID() == b.ID() {
		t.Error("panes must get unique IDs")
	}
}

func TestContentWithoutRenderer(t *testing.T) {
	p := New(wm.RoleVideo, geom.Rect{Width: 40, Height: 20}, nil)
	if got := p.Content(38, 18); got != "" {
		t.Errorf("Content with nil renderer = %q, want empty", got)
	}
}
