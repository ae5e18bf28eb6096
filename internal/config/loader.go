package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// UserConfigFile is the config path relative to the XDG config directories.
const UserConfigFile = "mindbender/config.yaml"

// LocalConfigFile is checked relative to the working directory.
const LocalConfigFile = "configs/mindbender.yaml"

// Load reads the configuration, applies MINDBENDER_* environment overrides
// and normalizes the result.
// Search order: customPath -> $XDG_CONFIG_HOME/mindbender/config.yaml (and
// XDG_CONFIG_DIRS) -> ./configs/mindbender.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Normalize()
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directories
	if userCfgPath, err := xdg.SearchConfigFile(UserConfigFile); err == nil {
		if cfg, ok := readOptional(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readOptional(LocalConfigFile); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// readOptional parses a config file that may be missing or broken.
func readOptional(path string) (Config, bool) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Source = path
	return cfg, true
}

// WriteDefault stores the embedded default configuration at the user XDG
// location unless a file already exists there. It returns the file path.
func WriteDefault() (string, error) {
	path, err := xdg.ConfigFile(UserConfigFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve config path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config %s already exists", path)
	}
	if err := os.WriteFile(path, defaultYAML, 0o644); err != nil {
		return path, fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return path, nil
}
