// Package wm implements the window-geometry coordination core: docking
// detection, drag snapping, grouped movement, multi-monitor safety, and the
// miniaturize lifecycle. It knows nothing about skins, playback, or drawing;
// it consumes window frames and proposed origins and produces corrected
// frames.
package wm

// Role identifies one of the player's windows. At most one live window exists
// per role at a time.
type Role int

const (
	// RoleMain is the transport window. It anchors every group it belongs
	// to and never detaches from one.
	RoleMain Role = iota
	// RoleEqualizer is the equalizer window.
	RoleEqualizer
	// RolePlaylist is the playlist editor window.
	RolePlaylist
	// RoleSpectrum is the spectrum analyzer window.
	RoleSpectrum
	// RoleBrowser is the library browser window.
	RoleBrowser
	// RoleVisualizer is the visualizer window.
	RoleVisualizer
	// RoleVideo is the video window.
	RoleVideo
	// RoleDebug is the diagnostics window.
	RoleDebug

	roleCount
)

// Roles lists every role in stable display order. Registry iteration and the
// default layout both follow this order.
var Roles = [roleCount]Role{
	RoleMain,
	RoleEqualizer,
	RolePlaylist,
	RoleSpectrum,
	RoleBrowser,
	RoleVisualizer,
	RoleVideo,
	RoleDebug,
}

// Dockable reports whether the role participates in group-adjacency
// propagation and mutual/screen-edge snapping as a set. Non-dockable roles
// can still snap against others and ride along in a group they touch, but
// dragging them never pulls other windows transitively.
func (r Role) Dockable() bool {
	switch r {
	case RoleMain, RoleEqualizer, RolePlaylist, RoleSpectrum:
		return true
	default:
		return false
	}
}

// String returns the role's configuration/display name.
func (r Role) String() string {
	switch r {
	case RoleMain:
		return "main"
	case RoleEqualizer:
		return "equalizer"
	case RolePlaylist:
		return "playlist"
	case RoleSpectrum:
		return "spectrum"
	case RoleBrowser:
		return "browser"
	case RoleVisualizer:
		return "visualizer"
	case RoleVideo:
		return "video"
	case RoleDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseRole maps a configuration name back to a Role.
func ParseRole(name string) (Role, bool) {
	for _, r := range Roles {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}
