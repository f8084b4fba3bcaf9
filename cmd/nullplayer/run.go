package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/log"

	"github.com/ad-repo/nullplayer-sub002/internal/app"
	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/input"
	"github.com/ad-repo/nullplayer-sub002/internal/screen"
	"github.com/ad-repo/nullplayer-sub002/internal/server"
	"github.com/ad-repo/nullplayer-sub002/internal/theme"
)

// filterMouseMotion filters out redundant mouse motion events to reduce CPU
// usage. Motion only matters mid-drag; everything else is noise at the rate
// all-motion tracking produces it.
func filterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	player, ok := model.(*app.Player)
	if !ok {
		return msg
	}

	if player.Dragging {
		return msg
	}

	return nil
}

// setupLogging applies the --debug and --log-file flags. When the TUI runs
// without a log file, logging is silenced so stray writes never tear the
// alternate screen.
func setupLogging(interactive bool) (cleanup func(), err error) {
	cleanup = func() {}

	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cleanup, fmt.Errorf("could not open log file: %w", err)
		}
		log.SetOutput(f)
		return func() { _ = f.Close() }, nil
	}

	if interactive {
		log.SetOutput(io.Discard)
	}
	return cleanup, nil
}

func runLocal() error {
	cleanup, err := setupLogging(true)
	if err != nil {
		return err
	}
	defer cleanup()

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	overrides := config.Overrides{
		ThemeName:         themeName,
		BorderStyle:       borderStyle,
		DockbarPosition:   dockbarPosition,
		HideWindowButtons: hideWindowButtons,
		HideClock:         hideClock,
	}
	config.ApplyOverrides(overrides, userConfig)

	if err := theme.Initialize(config.ThemeName); err != nil {
		log.Warn("failed to initialize theme", "err", err)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Warn("failed to close CPU profile file", "err", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	app.SetInputHandler(input.HandleInput)

	player := app.New(config.NewKeybindRegistry(userConfig))

	p := tea.NewProgram(
		player,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(filterMouseMotion),
	)

	// Hot-reload the config file. Flag overrides stay on top of whatever
	// lands on disk.
	stopWatch, err := config.Watch(func(cfg *config.UserConfig) {
		config.ApplyOverrides(overrides, cfg)
		_ = theme.Initialize(config.ThemeName)
		p.Send(app.ConfigReloadedMsg{Config: cfg})
	})
	if err != nil {
		log.Warn("config watch disabled", "err", err)
	} else {
		defer stopWatch()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	cleanup, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer cleanup()

	config.ApplyOverrides(config.Overrides{
		ThemeName:       themeName,
		BorderStyle:     borderStyle,
		DockbarPosition: dockbarPosition,
	}, config.DefaultConfig())

	if err := theme.Initialize(config.ThemeName); err != nil {
		log.Warn("failed to initialize theme", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info("shutting down SSH server")
		cancel()
	}()

	if err := server.Start(ctx, &server.Config{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
	}); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

// listScreens prints the monitors visible over X11 in a formatted table.
func listScreens() error {
	x, err := screen.ConnectX11()
	if err != nil {
		return fmt.Errorf("could not query X server: %w", err)
	}
	defer x.Close()

	screens := x.Screens()
	if len(screens) == 0 {
		fmt.Println("No monitors reported")
		return nil
	}

	rows := make([][]string, 0, len(screens))
	for _, s := range screens {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.ID),
			s.Name,
			formatRect(s.Frame.Width, s.Frame.Height, s.Frame.X, s.Frame.Y),
			formatRect(s.Visible.Width, s.Visible.Height, s.Visible.X, s.Visible.Y),
		})
	}

	printTable([]string{"ID", "Name", "Geometry", "Usable"}, rows)
	return nil
}

func formatRect(w, h, x, y int) string {
	return fmt.Sprintf("%dx%d+%d+%d", w, h, x, y)
}

// listKeybindings prints the keybindings the help overlay shows, section by
// section.
func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default keybindings...")
		userConfig = config.DefaultConfig()
	}

	registry := config.NewKeybindRegistry(userConfig)

	fmt.Println()
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("nullplayer Keybindings"))
	fmt.Println()

	for _, section := range config.GetKeybindings(registry) {
		rows := make([][]string, 0, len(section.Bindings))
		for _, b := range section.Bindings {
			rows = append(rows, []string{b.Key, b.Description})
		}

		fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")).Render(section.Title))
		printTable([]string{"Keys", "Action"}, rows)
		fmt.Println()
	}
	return nil
}

// printTable renders rows with rounded borders.
func printTable(headers []string, rows [][]string) {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Println(t.Render())
}
