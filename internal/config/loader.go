package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/core"
)

const fileName = "blockfall.yaml"

// Load loads the blockfall configuration.
// Search order: customPath -> ~/.blockfall/config.yaml -> ./configs/blockfall.yaml -> embedded default.
// Files are merged over Default, so a file only needs the keys it changes.
// An explicit customPath must exist and parse; the other locations are
// skipped when missing or malformed.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults. Omitted fields keep
// their defaults. A controls entry replaces the keys of that action, and the
// keys it claims are taken away from every other action.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	// Controls are decoded on their own: yaml.v3 merges into the default
	// map, which would leave a rebound key on its old action too.
	var file struct {
		Controls map[string][]string `yaml:"controls"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, err
	}
	cfg.Controls = mergeControls(Default().Controls, file.Controls)
	return cfg, nil
}

// mergeControls applies user bindings over base.
func mergeControls(base, user map[string][]string) map[string][]string {
	claimed := make(map[string]bool)
	out := make(map[string][]string, len(base)+len(user))
	for name, keys := range user {
		if a, ok := core.ParseAction(name); ok {
			name = a.String()
		}
		out[name] = keys
		for _, k := range keys {
			claimed[strings.TrimSpace(k)] = true
		}
	}

	for name, keys := range base {
		if _, ok := out[name]; ok {
			continue
		}
		kept := make([]string, 0, len(keys))
		for _, k := range keys {
			if !claimed[k] {
				kept = append(kept, k)
			}
		}
		out[name] = kept
	}
	return out
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "config.yaml")
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}
