package config

import (
	_ "embed"
)

//go:embed defaults/skirmish.yaml
var defaultSkirmishYAML []byte

// DefaultSkirmishConfig returns the hardcoded configuration.
func DefaultSkirmishConfig() SkirmishConfig {
	return SkirmishConfig{
		Highlight: HighlightConfig{
			PeriodMS: 250,
			MinAlpha: 0,
			Ease:     "sine-in",
		},
		UI: UIConfig{
			Sound:    false,
			TickRate: 60,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSkirmishYAML
}
