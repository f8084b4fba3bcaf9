package screen

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/ad-repo/nullplayer-sub002/internal/geom"
)

// X11 enumerates monitors over an X11 connection using RandR. The last good
// screen list is cached so a transient X error during a drag never leaves the
// coordinator without screens.
type X11 struct {
	xu   *xgbutil.XUtil
	last []Screen
}

// ConnectX11 opens an X11 connection and initializes RandR.
func ConnectX11() (*X11, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	if err := randr.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}
	return &X11{xu: xu}, nil
}

// Close disconnects from the X server.
func (x *X11) Close() {
	x.xu.Conn().Close()
}

// Screens implements Provider. Each active CRTC becomes one Screen; the
// visible frame is the CRTC bounds clamped to the EWMH work area when one is
// published.
func (x *X11) Screens() []Screen {
	screens, err := x.query()
	if err != nil || len(screens) == 0 {
		return x.last
	}
	x.last = screens
	return screens
}

func (x *X11) query() ([]Screen, error) {
	resources, err := randr.GetScreenResources(x.xu.Conn(), x.xu.RootWin()).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	workArea := x.currentWorkArea()

	var screens []Screen
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(x.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Screen%d", i)
		if out, err := randr.GetOutputInfo(x.xu.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		frame := geom.Rect{
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		}

		visible := frame
		if workArea != (geom.Rect{}) {
			if isect := frame.Intersect(workArea); isect.Width > 0 && isect.Height > 0 {
				visible = isect
			}
		}

		screens = append(screens, Screen{
			ID:      i,
			Name:    name,
			Frame:   frame,
			Visible: visible,
		})
	}
	return screens, nil
}

// currentWorkArea returns the EWMH work area of the current desktop, or a
// zero Rect when the window manager does not publish one.
func (x *X11) currentWorkArea() geom.Rect {
	workAreas, err := ewmh.WorkareaGet(x.xu)
	if err != nil || len(workAreas) == 0 {
		return geom.Rect{}
	}

	idx := 0
	if desktop, err := ewmh.CurrentDesktopGet(x.xu); err == nil && int(desktop) < len(workAreas) {
		idx = int(desktop)
	}

	wa := workAreas[idx]
	return geom.Rect{
		X:      int(wa.X),
		Y:      int(wa.Y),
		Width:  int(wa.Width),
		Height: int(wa.Height),
	}
}
