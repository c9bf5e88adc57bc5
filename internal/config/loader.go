package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.tetris/tetris.yaml -> ./tetris.yaml ->
// embedded default. A file overrides the defaults key by key; absent keys
// keep their default value.
func Load(customPath string) (Config, error) {
	// An explicit path must exist and parse.
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg := DefaultConfig()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try working directory
	if data, err := os.ReadFile("tetris.yaml"); err == nil {
		cfg := DefaultConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed drifts
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "tetris.yaml")
}

// normalize clamps values a hand-edited file could break.
func normalize(cfg Config) Config {
	if cfg.Gameplay.StartLevel < 1 {
		cfg.Gameplay.StartLevel = 1
	}
	if cfg.Display.MaxFrameRate < 1 {
		cfg.Display.MaxFrameRate = DefaultConfig().Display.MaxFrameRate
	}
	return cfg
}
