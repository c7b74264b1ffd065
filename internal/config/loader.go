package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadElemental loads the Elemental Breakout configuration.
// Search order: customPath -> ~/.elemental/configs/elemental.yaml ->
// ./configs/elemental.yaml -> embedded default.
func LoadElemental(customPath string) (ElementalConfig, error) {
	var cfg ElementalConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("elemental.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/elemental.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultElementalYAML, &cfg); err != nil {
		return DefaultElementalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".elemental", "configs", filename)
}

// ApplyElementalPreset modifies the config based on a difficulty preset.
func ApplyElementalPreset(cfg *ElementalConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.PaddleWidth = 160
		cfg.Physics.BallSpeed = 360
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.PaddleWidth = 90
		cfg.Physics.BallSpeed = 500
	}
}
