package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTrailcut loads the game configuration.
// Search order: customPath -> ~/.trailcut/configs/trailcut.yaml ->
// ./configs/trailcut.yaml -> embedded default.
func LoadTrailcut(customPath string) (TrailcutConfig, error) {
	var cfg TrailcutConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		sanitize(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("trailcut.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				sanitize(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/trailcut.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			sanitize(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTrailcutYAML, &cfg); err != nil {
		return DefaultTrailcutConfig(), nil // Fallback to hardcoded if embed fails
	}
	sanitize(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trailcut", "configs", filename)
}
