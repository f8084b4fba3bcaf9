package config_test

import (
	"testing"

	"github.com/ad-repo/nullplayer-sub002/internal/config"
)

func TestThresholdOrdering(t *testing.T) {
	// Snapped windows must be detected as docked, and undocking must
	// require more travel than a snap capture.
	if config.SnapThreshold > config.DockThreshold {
		t.Errorf("SnapThreshold (%d) must not exceed DockThreshold (%d)",
			config.SnapThreshold, config.DockThreshold)
	}
	if config.DockThreshold > config.UndockThreshold {
		t.Errorf("DockThreshold (%d) must not exceed UndockThreshold (%d)",
			config.DockThreshold, config.UndockThreshold)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig returned nil")
	}
	if cfg.Appearance.BorderStyle == "" {
		t.Error("Expected default border style to be set")
	}
	if cfg.Appearance.DockbarPosition == "" {
		t.Error("Expected default dockbar position to be set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.UserConfig)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.UserConfig) {},
		},
		{
			name:   "empty fields are valid",
			mutate: func(c *config.UserConfig) { c.Appearance = config.AppearanceConfig{} },
		},
		{
			name:    "unknown border style",
			mutate:  func(c *config.UserConfig) { c.Appearance.BorderStyle = "wavy" },
			wantErr: true,
		},
		{
			name:    "unknown dockbar position",
			mutate:  func(c *config.UserConfig) { c.Appearance.DockbarPosition = "left" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKeybindRegistry(t *testing.T) {
	registry := config.NewKeybindRegistry(config.DefaultConfig())

	keys := registry.GetKeys("quit")
	if len(keys) == 0 {
		t.Fatal("Expected quit to have keys bound")
	}
	if action := registry.GetAction(keys[0]); action != "quit" {
		t.Errorf("Expected reverse lookup to yield 'quit', got %q", action)
	}
}

func TestKeybindRegistryUserOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Keybindings = map[string][]string{"quit": {"x"}}

	registry := config.NewKeybindRegistry(cfg)

	if got := registry.GetKeys("quit"); len(got) != 1 || got[0] != "x" {
		t.Errorf("Expected quit to be rebound to [x], got %v", got)
	}
	// The default key must no longer resolve to the action.
	if got := registry.GetAction("q"); got == "quit" {
		t.Error("Expected default quit key to be unbound after override")
	}
}
