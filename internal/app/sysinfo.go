package app

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/theme"
	"github.com/ad-repo/nullplayer-sub002/internal/wm"
)

// SysStats is the sampled host state shown in the debug pane.
type SysStats struct {
	CPUHistory []float64
	RAMPercent float64
	RAMUsed    uint64
	RAMTotal   uint64
	Uptime     time.Duration
	Hostname   string
	Goroutines int
}

// SysStatsMsg delivers one sample to the update loop.
type SysStatsMsg SysStats

// SampleSysCmd samples host statistics off the UI goroutine and schedules
// itself again through the update loop.
func SampleSysCmd() tea.Cmd {
	return func() tea.Msg {
		var s SysStats

		if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
			s.CPUHistory = []float64{percents[0]}
		}
		if vm, err := mem.VirtualMemory(); err == nil {
			s.RAMPercent = vm.UsedPercent
			s.RAMUsed = vm.Used
			s.RAMTotal = vm.Total
		}
		if info, err := host.Info(); err == nil {
			s.Uptime = time.Duration(info.Uptime) * time.Second
			s.Hostname = info.Hostname
		}
		s.Goroutines = runtime.NumGoroutine()
		return SysStatsMsg(s)
	}
}

// SysTickCmd delays the next sample.
func SysTickCmd() tea.Cmd {
	return tea.Tick(config.CPUSampleInterval, func(time.Time) tea.Msg {
		return sysTickMsg{}
	})
}

type sysTickMsg struct{}

// absorbSample folds a new sample into the rolling CPU history.
func (m *Player) absorbSample(s SysStats) {
	history := m.Sys.CPUHistory
	history = append(history, s.CPUHistory...)
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	s.CPUHistory = history
	m.Sys = s

	if debug, ok := m.Panes[wm.RoleDebug]; ok {
		debug.InvalidateContent()
	}
}

// cpuGraph renders the rolling history as a fixed-width sparkline.
func cpuGraph(history []float64) string {
	const width = 10
	blocks := []rune("▁▂▃▄▅▆▇█")

	var b strings.Builder
	for i := 0; i < width-len(history); i++ {
		b.WriteRune(' ')
	}
	for i, usage := range history {
		if i >= width {
			break
		}
		idx := int(usage / 12.5)
		if idx > len(blocks)-1 {
			idx = len(blocks) - 1
		}
		b.WriteRune(blocks[idx])
	}

	current := 0.0
	if len(history) > 0 {
		current = history[len(history)-1]
	}
	return fmt.Sprintf("CPU:%s %3.0f%%", b.String(), current)
}

func (m *Player) renderDebug(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.DebugTitle())
	label := lipgloss.NewStyle().Foreground(theme.DebugLabel())
	value := lipgloss.NewStyle().Foreground(theme.DebugValue())

	s := m.Sys
	const mib = 1024 * 1024

	lines := []string{
		title.Render("host"),
		label.Render("  name    ") + value.Render(s.Hostname),
		label.Render("  uptime  ") + value.Render(s.Uptime.Round(time.Second).String()),
		"",
		title.Render("load"),
		label.Render("  ") + value.Render(cpuGraph(s.CPUHistory)),
		label.Render("  RAM     ") + value.Render(fmt.Sprintf("%d/%d MiB (%.0f%%)",
			s.RAMUsed/mib, s.RAMTotal/mib, s.RAMPercent)),
		"",
		title.Render("shell"),
		label.Render("  goroutines ") + value.Render(fmt.Sprintf("%d", s.Goroutines)),
	}
	return clipLines(lines, width, height)
}
