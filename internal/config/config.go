// Package config holds the compile-time docking constants and the user-facing
// configuration for the nullplayer shell.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Effective appearance settings, populated from the user config plus any CLI
// overrides. Read-only after startup except for hot reloads, which happen on
// the UI goroutine.
var (
	ThemeName         = ""
	BorderStyle       = "rounded"
	DockbarPosition   = "bottom"
	HideWindowButtons = false
	HideClock         = false
)

// UserConfig is the on-disk configuration document.
type UserConfig struct {
	Appearance  AppearanceConfig    `toml:"appearance"`
	Keybindings map[string][]string `toml:"keybindings"`
}

// AppearanceConfig controls shell chrome. None of these affect the docking
// geometry, which is fixed (see constants.go).
type AppearanceConfig struct {
	Theme             string `toml:"theme"`
	BorderStyle       string `toml:"border_style"`
	DockbarPosition   string `toml:"dockbar_position"`
	HideWindowButtons bool   `toml:"hide_window_buttons"`
	HideClock         bool   `toml:"hide_clock"`
}

// Overrides carries CLI flag values that take precedence over the config file.
// Empty strings and false mean "not set".
type Overrides struct {
	ThemeName         string
	BorderStyle       string
	DockbarPosition   string
	HideWindowButtons bool
	HideClock         bool
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:           "",
			BorderStyle:     "rounded",
			DockbarPosition: "bottom",
		},
		Keybindings: defaultKeybindings(),
	}
}

// ConfigPath returns the path of the user config file, creating parent
// directories as needed.
func ConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("nullplayer", "config.toml"))
}

// LoadUserConfig reads and validates the user config file. A missing file is
// not an error; defaults are returned.
func LoadUserConfig() (*UserConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefaultConfig overwrites the user config file with defaults.
func WriteDefaultConfig() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Validate checks enumerated fields.
func (c *UserConfig) Validate() error {
	switch c.Appearance.BorderStyle {
	case "", "rounded", "normal", "thick", "ascii":
	default:
		return fmt.Errorf("unknown border_style %q", c.Appearance.BorderStyle)
	}

	switch c.Appearance.DockbarPosition {
	case "", "bottom", "top", "hidden":
	default:
		return fmt.Errorf("unknown dockbar_position %q", c.Appearance.DockbarPosition)
	}
	return nil
}

// ApplyOverrides folds the user config and CLI overrides into the effective
// package-level settings.
func ApplyOverrides(o Overrides, cfg *UserConfig) {
	ThemeName = cfg.Appearance.Theme
	if cfg.Appearance.BorderStyle != "" {
		BorderStyle = cfg.Appearance.BorderStyle
	}
	if cfg.Appearance.DockbarPosition != "" {
		DockbarPosition = cfg.Appearance.DockbarPosition
	}
	HideWindowButtons = cfg.Appearance.HideWindowButtons
	HideClock = cfg.Appearance.HideClock

	if o.ThemeName != "" {
		ThemeName = o.ThemeName
	}
	if o.BorderStyle != "" {
		BorderStyle = o.BorderStyle
	}
	if o.DockbarPosition != "" {
		DockbarPosition = o.DockbarPosition
	}
	if o.HideWindowButtons {
		HideWindowButtons = true
	}
	if o.HideClock {
		HideClock = true
	}
}
