// Package layout persists window frames between runs.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// Frame is one window's saved geometry.
type Frame struct {
	X       int  `toml:"x"`
	Y       int  `toml:"y"`
	Width   int  `toml:"width"`
	Height  int  `toml:"height"`
	Visible bool `toml:"visible"`
}

// Layout maps role names to saved frames.
type Layout struct {
	Windows map[string]Frame `toml:"windows"`
}

// Path returns the layout file location, creating parent directories.
func Path() (string, error) {
	return xdg.StateFile("nullplayer/layout.toml")
}

// Capture snapshots the current frame and visibility of every registered
// window.
func Capture(reg *wm.Registry) Layout {
	l := Layout{Windows: make(map[string]Frame)}
	for _, role := range wm.Roles {
		w := reg.Get(role)
		if w == nil {
			continue
		}
		f := w.Frame()
		l.Windows[role.String()] = Frame{
			X:       f.X,
			Y:       f.Y,
			Width:   f.Width,
			Height:  f.Height,
			Visible: w.Visible(),
		}
	}
	return l
}

// Save writes l to the layout file.
func Save(l Layout) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}

	data, err := toml.Marshal(l)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}
	return nil
}

// Load reads the saved layout. A missing file returns an empty layout and no
// error; first runs simply have nothing to restore.
func Load() (Layout, error) {
	path, err := Path()
	if err != nil {
		return Layout{}, fmt.Errorf("resolve layout path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Layout{}, nil
	}
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}

	var l Layout
	if err := toml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return l, nil
}

// Reset removes the saved layout file.
func Reset() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("resolve layout path: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove layout: %w", err)
	}
	return nil
}

// Apply restores every registered window that has a saved frame. Saved sizes
// go first, through the window's Resize when it has one, so the subsequent
// placement clamps the restored frame rather than the stale one. Placement
// goes through the coordinator so restored frames are still kept on screen.
// Visibility is left to the caller; the saved flag is in l for it to read.
func Apply(c *wm.Coordinator, l Layout) {
	reg := c.Registry()
	for name, f := range l.Windows {
		role, ok := wm.ParseRole(name)
		if !ok {
			continue
		}
		w := reg.Get(role)
		if w == nil {
			continue
		}
		if r, ok := w.(interface{ Resize(width, height int) }); ok && f.Width > 0 && f.Height > 0 {
			r.Resize(f.Width, f.Height)
		}
		c.PlaceWindow(w, geom.Point{X: f.X, Y: f.Y})
	}
}
