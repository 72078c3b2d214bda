// Package config provides YAML-based configuration loading for blockfall:
// key bindings, display options and logging. Game rules are fixed and not
// configurable.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ErrUnknownAction is returned when the controls section names an action
// that does not exist.
var ErrUnknownAction = errors.New("unknown action")

// ErrDuplicateKey is returned when one key is bound to two actions.
var ErrDuplicateKey = errors.New("key bound to more than one action")

// Theme names accepted in display.theme.
const (
	ThemeClassic = "classic"
	ThemeMono    = "mono"
)

// Config is the complete blockfall configuration.
type Config struct {
	Controls map[string][]string `yaml:"controls"` // Action name -> key names
	Display  DisplayConfig       `yaml:"display"`
	Log      LogConfig           `yaml:"log"`
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	Ghost bool   `yaml:"ghost"` // Draw the landing preview
	Theme string `yaml:"theme"` // "classic" or "mono"
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // Log destination for interactive play; empty discards
}

// Bindings resolves the controls section into key names per action.
// Actions missing from the section keep no keys.
func (c Config) Bindings() (map[core.Action][]string, error) {
	out := make(map[core.Action][]string, len(c.Controls))
	for name, keys := range c.Controls {
		action, ok := core.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("config: controls.%s: %w", name, ErrUnknownAction)
		}
		for _, k := range keys {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			out[action] = append(out[action], k)
		}
	}
	return out, nil
}

// LogLevel parses the configured log level.
// An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

// Validate checks every section that has a closed set of values and that
// no key triggers two actions.
func (c Config) Validate() error {
	bindings, err := c.Bindings()
	if err != nil {
		return err
	}
	owner := make(map[string]core.Action)
	for _, a := range core.Actions() {
		for _, k := range bindings[a] {
			if prev, ok := owner[k]; ok && prev != a {
				return fmt.Errorf("config: key %q on %s and %s: %w", k, prev, a, ErrDuplicateKey)
			}
			owner[k] = a
		}
	}
	switch c.Display.Theme {
	case "", ThemeClassic, ThemeMono:
	default:
		return fmt.Errorf("config: display.theme: unknown theme %q", c.Display.Theme)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}
