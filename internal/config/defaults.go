package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/blockfall.yaml and is used if the embed cannot be parsed.
func Default() Config {
	return Config{
		Controls: map[string][]string{
			"move_left":  {"left", "a"},
			"move_right": {"right", "d"},
			"soft_drop":  {"down", "s"},
			"rotate":     {"up", "w"},
			"hard_drop":  {"space"},
			"hold":       {"c", "C"},
			"pause":      {"p", "P"},
			"start":      {"enter", "r"},
			"scores":     {"tab"},
			"quit":       {"q", "ctrl+c"},
		},
		Display: DisplayConfig{
			Ghost: true,
			Theme: ThemeClassic,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
