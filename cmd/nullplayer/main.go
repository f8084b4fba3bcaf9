// Package main implements nullplayer, a terminal reimagining of the classic
// multi-window skinned media player. Each surface (main deck, equalizer,
// playlist, spectrum, ...) is its own draggable window; windows snap edge to
// edge, dock into groups that move as one, and break free when dragged hard
// enough.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
	"github.com/ad-repo/nullplayer-sub002/internal/layout"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Global flags
var (
	debugMode  bool
	logFile    string
	cpuProfile string
)

// Appearance flags, folded over the config file via config.ApplyOverrides.
var (
	themeName         string
	borderStyle       string
	dockbarPosition   string
	hideWindowButtons bool
	hideClock         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nullplayer",
		Short: "A multi-window terminal media player",
		Long: `nullplayer - a multi-window terminal media player

Every surface is its own window: main deck, equalizer, playlist, spectrum
analyzer and more. Drag a title bar and the docked group follows; drag far
enough and the window snaps free. Windows snap to each other and to the
edges of the viewport, just like the desktop players of old.`,
		Example: `  # Run nullplayer
  nullplayer

  # Run with a theme and thick borders
  nullplayer --theme dracula --border-style thick

  # Run as SSH server
  nullplayer ssh --port 2222

  # Edit configuration
  nullplayer config edit`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")

	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme name")
	rootCmd.Flags().StringVar(&borderStyle, "border-style", "", "Window border style (rounded, normal, thick, ascii)")
	rootCmd.Flags().StringVar(&dockbarPosition, "dockbar", "", "Dock bar position (bottom, top, hidden)")
	rootCmd.Flags().BoolVar(&hideWindowButtons, "hide-window-buttons", false, "Hide minimize/close buttons in title bars")
	rootCmd.Flags().BoolVar(&hideClock, "hide-clock", false, "Hide the dock bar clock")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Run nullplayer as SSH server",
		Long: `Run nullplayer as an SSH server

Allows remote connections to nullplayer via SSH. The server will generate
a host key automatically if not specified.`,
		Example: `  # Start SSH server on default port
  nullplayer ssh

  # Start on custom port
  nullplayer ssh --port 2222

  # Specify custom host key
  nullplayer ssh --key-path /path/to/host_key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage nullplayer configuration",
		Long:  `Manage the nullplayer configuration file and settings`,
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfigPath()
		},
	}

	configEditCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		Long: `Open the nullplayer configuration file in your default editor

The editor is determined by checking $EDITOR, $VISUAL, or common editors
like vim, vi, nano, and emacs in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editConfigFile()
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the nullplayer configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configEditCmd, configResetCmd)

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Manage the saved window layout",
		Long:  `Inspect or discard the window layout saved on quit`,
	}

	layoutPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print saved layout file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLayoutPath()
		},
	}

	layoutResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved window layout",
		Long: `Delete the saved window layout

The next run starts from the default vertical stack.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := layout.Reset(); err != nil {
				return fmt.Errorf("failed to reset layout: %w", err)
			}
			fmt.Println("Saved layout discarded")
			return nil
		},
	}

	layoutCmd.AddCommand(layoutPathCmd, layoutResetCmd)

	screensCmd := &cobra.Command{
		Use:   "screens",
		Short: "List X11 monitors",
		Long: `List the monitors reported by the X server

Connects over X11/RandR and prints each monitor's geometry and the usable
area after panels and docks are subtracted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listScreens()
		},
	}

	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "List all keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listKeybindings()
		},
	}

	rootCmd.AddCommand(sshCmd, configCmd, layoutCmd, screensCmd, keybindsCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

// printConfigPath prints the config file path
func printConfigPath() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// printLayoutPath prints the saved layout file path
func printLayoutPath() error {
	path, err := layout.Path()
	if err != nil {
		return fmt.Errorf("could not determine layout path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config file in $EDITOR
func editConfigFile() error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Config file doesn't exist, creating default at: %s\n", configPath)
		if _, err := config.WriteDefaultConfig(); err != nil {
			return fmt.Errorf("could not create config file: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		for _, e := range []string{"vim", "vi", "nano", "emacs"} {
			if _, err := exec.LookPath(e); err == nil {
				editor = e
				break
			}
		}
	}
	if editor == "" {
		return fmt.Errorf("no editor found. Please set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, configPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// resetConfigToDefaults resets the configuration file to default settings
func resetConfigToDefaults() error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	path, err := config.WriteDefaultConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", path)
	fmt.Println("\nYou can customize it with: nullplayer config edit")
	return nil
}
