package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/ad-repo/nullplayer-sub002/internal/geom"
	"github.com/ad-repo/nullplayer-sub002/internal/pane"
	"github.com/ad-repo/nullplayer-sub002/internal/theme"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// Default pane sizes in cells. Every pane keeps its size; only origins move.
var defaultSizes = map[wm.Role]geom.Rect{
	wm.RoleMain:       {Width: 36, Height: 9},
	wm.RoleEqualizer:  {Width: 36, Height: 9},
	wm.RolePlaylist:   {Width: 36, Height: 14},
	wm.RoleSpectrum:   {Width: 36, Height: 9},
	wm.RoleBrowser:    {Width: 44, Height: 16},
	wm.RoleVisualizer: {Width: 40, Height: 12},
	wm.RoleVideo:      {Width: 48, Height: 14},
	wm.RoleDebug:      {Width: 40, Height: 11},
}

func (m *Player) buildPanes() {
	renderers := map[wm.Role]pane.RenderFunc{
		wm.RoleMain:       m.renderMain,
		wm.RoleEqualizer:  m.renderEqualizer,
		wm.RolePlaylist:   m.renderPlaylist,
		wm.RoleSpectrum:   m.renderSpectrum,
		wm.RoleBrowser:    m.renderBrowser,
		wm.RoleVisualizer: m.renderVisualizer,
		wm.RoleVideo:      m.renderVideo,
		wm.RoleDebug:      m.renderDebug,
	}

	z := 0
	for _, role := range wm.Roles {
		p := pane.New(role, defaultSizes[role], renderers[role])
		p.Z = z
		z++
		// Ancillary panes start in the dock-free hidden state; the core
		// four windows are up by default.
		switch role {
		case wm.RoleMain, wm.RoleEqualizer, wm.RolePlaylist, wm.RoleSpectrum:
		default:
			p.Hidden = true
		}
		m.Panes[role] = p
	}
	m.topZ = z
}

// CurrentTrack returns the playing track.
func (pb *Playback) CurrentTrack() Track {
	if len(pb.Tracks) == 0 {
		return Track{Title: "—"}
	}
	return pb.Tracks[pb.Current%len(pb.Tracks)]
}

// Advance moves playback forward by d, rolling over to the next track.
func (pb *Playback) Advance(d time.Duration) {
	if !pb.Playing || len(pb.Tracks) == 0 {
		return
	}
	pb.Elapsed += d
	if pb.Elapsed >= pb.CurrentTrack().Duration {
		pb.Elapsed = 0
		pb.Current = (pb.Current + 1) % len(pb.Tracks)
	}
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// marquee scrolls text through width when it does not fit.
func marquee(text string, width int, offset int) string {
	if lipgloss.Width(text) <= width {
		return text + strings.Repeat(" ", width-lipgloss.Width(text))
	}
	runes := []rune(text + "  ··  ")
	shift := offset % len(runes)
	rotated := append(append([]rune{}, runes[shift:]...), runes[:shift]...)
	if len(rotated) > width {
		rotated = rotated[:width]
	}
	return string(rotated)
}

func bar(filled float64, width int, filledStyle, emptyStyle lipgloss.Style) string {
	if width < 1 {
		return ""
	}
	n := int(math.Round(filled * float64(width)))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return filledStyle.Render(strings.Repeat("━", n)) +
		emptyStyle.Render(strings.Repeat("─", width-n))
}

func (m *Player) renderMain(width, height int) string {
	pb := &m.Playback
	track := pb.CurrentTrack()

	titleStyle := lipgloss.NewStyle().Foreground(theme.TrackTitle())
	timeStyle := lipgloss.NewStyle().Foreground(theme.TrackTime())
	dimStyle := lipgloss.NewStyle().Foreground(theme.EQLabel())
	filled := lipgloss.NewStyle().Foreground(theme.SeekBarFilled())
	empty := lipgloss.NewStyle().Foreground(theme.SeekBarEmpty())

	title := fmt.Sprintf("%d. %s", pb.Current+1, track.Title)
	scroll := int(pb.Elapsed / (300 * time.Millisecond))

	state := "⏸ paused"
	if pb.Playing {
		state = "▶ playing"
	}

	progress := 0.0
	if track.Duration > 0 {
		progress = float64(pb.Elapsed) / float64(track.Duration)
	}

	lines := []string{
		titleStyle.Render(marquee(title, width, scroll)),
		timeStyle.Render(fmt.Sprintf("%s / %s", formatClock(pb.Elapsed), formatClock(track.Duration))) +
			dimStyle.Render(fmt.Sprintf("  %s", state)),
		bar(progress, width, filled, empty),
		"",
		dimStyle.Render("⏮  ⏯  ⏭      vol ") + bar(pb.Volume, max(width-18, 4), filled, empty),
	}
	return clipLines(lines, width, height)
}

func (m *Player) renderEqualizer(width, height int) string {
	gains := m.Playback.EQGains
	slider := lipgloss.NewStyle().Foreground(theme.EQSlider())
	label := lipgloss.NewStyle().Foreground(theme.EQLabel())

	rows := height - 1
	if rows < 1 {
		rows = 1
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		// Row 0 is the top. A band's column is lit from the bottom up to
		// its gain level.
		level := 1.0 - 2.0*float64(row+1)/float64(rows+1)
		for band := 0; band < len(gains); band++ {
			cell := " · "
			if gains[band] >= level {
				cell = " █ "
			}
			b.WriteString(slider.Render(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString(label.Render(" 60 170 310 600 1k 3k 6k 12k 14k 16k"))
	return clipLines(strings.Split(b.String(), "\n"), width, height)
}

func (m *Player) renderPlaylist(width, height int) string {
	pb := &m.Playback
	selBg := lipgloss.NewStyle().
		Background(theme.PlaylistSelectionBg()).
		Foreground(theme.PlaylistSelectionFg())
	current := lipgloss.NewStyle().Foreground(theme.PlaylistCurrentTrack())
	normal := lipgloss.NewStyle().Foreground(theme.PlaylistText())

	var lines []string
	for i, t := range pb.Tracks {
		dur := formatClock(t.Duration)
		title := fmt.Sprintf("%d. %s", i+1, t.Title)
		pad := width - lipgloss.Width(title) - lipgloss.Width(dur)
		if pad < 1 {
			keep := max(width-lipgloss.Width(dur)-2, 1)
			title = string([]rune(title)[:min(keep, len([]rune(title)))]) + "…"
			pad = width - lipgloss.Width(title) - lipgloss.Width(dur)
		}
		line := title + strings.Repeat(" ", max(pad, 1)) + dur

		switch {
		case i == pb.Current:
			lines = append(lines, selBg.Render(line))
		case strings.Contains(t.Title, "Intro"):
			lines = append(lines, current.Render(line))
		default:
			lines = append(lines, normal.Render(line))
		}
	}
	return clipLines(lines, width, height)
}

func (m *Player) renderSpectrum(width, height int) string {
	low := lipgloss.NewStyle().Foreground(theme.SpectrumLow())
	mid := lipgloss.NewStyle().Foreground(theme.SpectrumMid())
	high := lipgloss.NewStyle().Foreground(theme.SpectrumHigh())

	t := float64(m.Playback.Elapsed) / float64(time.Second)
	levels := make([]float64, width)
	for x := range levels {
		if !m.Playback.Playing {
			continue
		}
		// Cheap animated pseudo-spectrum: a few interfering sines.
		v := 0.5 +
			0.3*math.Sin(t*3.1+float64(x)*0.7) +
			0.2*math.Sin(t*5.7+float64(x)*0.31)
		levels[x] = math.Max(0, math.Min(1, v))
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		threshold := 1.0 - float64(row)/float64(height)
		for _, v := range levels {
			if v >= threshold {
				switch {
				case threshold > 0.75:
					b.WriteString(high.Render("│"))
				case threshold > 0.4:
					b.WriteString(mid.Render("│"))
				default:
					b.WriteString(low.Render("│"))
				}
			} else {
				b.WriteString(" ")
			}
		}
		if row < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Player) renderBrowser(width, height int) string {
	normal := lipgloss.NewStyle().Foreground(theme.PlaylistText())
	dim := lipgloss.NewStyle().Foreground(theme.EQLabel())

	lines := []string{
		normal.Render("Library"),
		dim.Render("├─ Local Media"),
		normal.Render("│  ├─ Albums (42)"),
		normal.Render("│  ├─ Artists (137)"),
		normal.Render("│  └─ All Tracks (1893)"),
		dim.Render("├─ Streams"),
		normal.Render("│  ├─ SomaFM Groove Salad"),
		normal.Render("│  └─ Nightride FM"),
		dim.Render("└─ Devices"),
		normal.Render("   └─ (none connected)"),
	}
	return clipLines(lines, width, height)
}

func (m *Player) renderVisualizer(width, height int) string {
	style := lipgloss.NewStyle().Foreground(theme.SpectrumLow())
	t := float64(m.Playback.Elapsed) / float64(time.Second)

	rows := make([][]rune, height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", width))
	}
	if m.Playback.Playing && height > 0 {
		for x := 0; x < width; x++ {
			v := math.Sin(t*2.4 + float64(x)*0.35)
			y := int((v + 1) / 2 * float64(height-1))
			rows[y][x] = '·'
		}
	}
	lines := make([]string, height)
	for i, r := range rows {
		lines[i] = style.Render(string(r))
	}
	return strings.Join(lines, "\n")
}

func (m *Player) renderVideo(width, height int) string {
	dim := lipgloss.NewStyle().Foreground(theme.EQLabel())
	msg := "no video source"
	lines := make([]string, height)
	for i := range lines {
		lines[i] = ""
	}
	if height > 0 {
		pad := max((width-len(msg))/2, 0)
		lines[height/2] = strings.Repeat(" ", pad) + dim.Render(msg)
	}
	return strings.Join(lines, "\n")
}

// clipLines pads or trims lines to exactly height rows, each at most width
// cells wide.
func clipLines(lines []string, width, height int) string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(line)
		}
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
