package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvasion loads Alien Invasion configuration.
// Search order: customPath -> ~/.arcade/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
// A file that exists but cannot be parsed or fails validation is an error.
func LoadInvasion(customPath string) (InvasionConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvasionConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return decodeInvasion(data, customPath)
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("invasion.yaml"), filepath.Join("configs", "invasion.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return InvasionConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return decodeInvasion(data, path)
	}

	// Use embedded default YAML
	cfg, err := decodeInvasion(defaultInvasionYAML, "embedded defaults")
	if err != nil {
		return DefaultInvasionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeInvasion parses YAML over the built-in defaults and validates the result.
func decodeInvasion(data []byte, source string) (InvasionConfig, error) {
	cfg := DefaultInvasionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvasionConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return InvasionConfig{}, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyInvasionPreset modifies the config based on a difficulty preset.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Bullet.Allowed = 5
		cfg.Scaling.SpeedupScale = 1.05
	case DifficultyHard:
		cfg.Ship.Limit = 1
		cfg.Bullet.Allowed = 2
		cfg.Alien.Speed *= 1.5
		cfg.Scaling.SpeedupScale = 1.2
	case DifficultyFixed:
		cfg.Scaling.ScaleOnWaveClear = false
	}
}
