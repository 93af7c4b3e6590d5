package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envOverrides holds settings that may be replaced from the environment.
// Unset variables leave the pointers nil.
type envOverrides struct {
	HighlightPeriodMS *int    `env:"SKIRMISH_HIGHLIGHT_PERIOD_MS"`
	Sound             *bool   `env:"SKIRMISH_SOUND"`
	DBPath            *string `env:"SKIRMISH_DB"`
}

// LoadSkirmish loads the configuration and applies environment overrides.
// Search order: customPath -> ~/.skirmish/configs/skirmish.yaml -> ./configs/skirmish.yaml -> embedded default
func LoadSkirmish(customPath string) (SkirmishConfig, error) {
	cfg, err := loadYAML(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultDBPath()
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(customPath string) (SkirmishConfig, error) {
	cfg := DefaultSkirmishConfig()

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
	if userCfgPath := userConfigPath("skirmish.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSkirmishConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/skirmish.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSkirmishConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSkirmishYAML, &cfg); err != nil {
		return DefaultSkirmishConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any SKIRMISH_* variables that are set.
func ApplyEnv(cfg *SkirmishConfig) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	if o.HighlightPeriodMS != nil {
		cfg.Highlight.PeriodMS = *o.HighlightPeriodMS
	}
	if o.Sound != nil {
		cfg.UI.Sound = *o.Sound
	}
	if o.DBPath != nil {
		cfg.Storage.Path = *o.DBPath
	}
	return nil
}

// DefaultDBPath returns ~/.skirmish/history.db, or a relative fallback when
// the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".skirmish", "history.db")
	}
	return filepath.Join(home, ".skirmish", "history.db")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skirmish", "configs", filename)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
