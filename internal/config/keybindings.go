package config

// Keybinding is a single key/description pair for the help overlay.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings for display.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// defaultKeybindings maps action names to the keys bound to them.
func defaultKeybindings() map[string][]string {
	return map[string][]string{
		"quit":          {"q", "ctrl+c"},
		"help":          {"?"},
		"next_window":   {"tab"},
		"prev_window":   {"shift+tab"},
		"minimize":      {"m"},
		"restore_all":   {"M"},
		"reset_layout":  {"r"},
		"toggle_window": {"1", "2", "3", "4", "5", "6", "7", "8"},
		"play_pause":    {"space"},
	}
}

// KeybindRegistry resolves keys to actions and back.
type KeybindRegistry struct {
	byAction map[string][]string
	byKey    map[string]string
}

// NewKeybindRegistry builds a registry from cfg, falling back to defaults for
// actions the user left unbound.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	r := &KeybindRegistry{
		byAction: make(map[string][]string),
		byKey:    make(map[string]string),
	}

	for action, keys := range defaultKeybindings() {
		r.bind(action, keys)
	}
	if cfg != nil {
		for action, keys := range cfg.Keybindings {
			r.bind(action, keys)
		}
	}
	return r
}

func (r *KeybindRegistry) bind(action string, keys []string) {
	// Unbind whatever the action previously held so user config replaces
	// rather than extends defaults.
	for _, old := range r.byAction[action] {
		delete(r.byKey, old)
	}
	r.byAction[action] = keys
	for _, k := range keys {
		r.byKey[k] = action
	}
}

// GetKeys returns the keys bound to action, or nil.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.byAction[action]
}

// GetAction returns the action bound to key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	return r.byKey[key]
}

// GetKeybindings returns the sections shown by the help overlay.
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	first := func(action, fallback string) string {
		if registry != nil {
			if keys := registry.GetKeys(action); len(keys) > 0 {
				return keys[0]
			}
		}
		return fallback
	}

	return []KeybindingSection{
		{
			Title: "WINDOWS",
			Bindings: []Keybinding{
				{"drag title bar", "Move window (group follows when docked)"},
				{"drag body", "Move window without undocking"},
				{first("next_window", "tab"), "Focus next window"},
				{first("prev_window", "shift+tab"), "Focus previous window"},
				{"1-8", "Show/hide window by role"},
				{first("minimize", "m"), "Miniaturize focused group"},
				{first("restore_all", "M"), "Restore all miniaturized"},
			},
		},
		{
			Title: "LAYOUT",
			Bindings: []Keybinding{
				{first("reset_layout", "r"), "Reset to default vertical stack"},
			},
		},
		{
			Title: "GENERAL",
			Bindings: []Keybinding{
				{first("play_pause", "space"), "Play/pause (placeholder transport)"},
				{first("help", "?"), "Toggle this help"},
				{first("quit", "q"), "Quit"},
			},
		},
	}
}
