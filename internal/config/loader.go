package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStudio loads the studio configuration.
// Search order: customPath -> ~/.studio/configs/studio.yaml -> ./configs/studio.yaml -> embedded default
func LoadStudio(customPath string) (StudioConfig, error) {
	cfg := DefaultStudioConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("studio.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", "studio.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	var embedded StudioConfig
	if err := yaml.Unmarshal(defaultStudioYAML, &embedded); err != nil {
		return DefaultStudioConfig(), nil // Fallback to hardcoded if embed fails
	}
	embedded.Validate()
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (StudioConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StudioConfig{}, false
	}
	cfg := DefaultStudioConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StudioConfig{}, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".studio", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *StudioConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Actor.Lives = 5
		cfg.Physics.JumpHeight = 3
	case DifficultyHard:
		cfg.Actor.Lives = 1
		cfg.Physics.JumpHeight = 2
		cfg.Physics.StepEvery = max(1, cfg.Physics.StepEvery-2)
	}
}
