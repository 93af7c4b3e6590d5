// Package config provides YAML-based configuration loading for skirmish,
// with environment overrides and custom battlefield rosters.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/anim"
)

// SkirmishConfig contains all user-tunable settings.
type SkirmishConfig struct {
	Highlight HighlightConfig `yaml:"highlight"`
	UI        UIConfig        `yaml:"ui"`
	Storage   StorageConfig   `yaml:"storage"`
}

// HighlightConfig defines how the focused target flashes.
type HighlightConfig struct {
	PeriodMS int     `yaml:"period_ms"`
	MinAlpha float64 `yaml:"min_alpha"`
	Ease     string  `yaml:"ease"`
}

// UIConfig defines terminal front-end behaviour.
type UIConfig struct {
	Sound    bool `yaml:"sound"`
	TickRate int  `yaml:"tick_rate"`
}

// StorageConfig defines where selection history is kept.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// Period returns one fade leg as a duration.
func (h HighlightConfig) Period() time.Duration {
	return time.Duration(h.PeriodMS) * time.Millisecond
}

// EaseFunc resolves the configured easing curve.
func (h HighlightConfig) EaseFunc() (anim.Ease, error) {
	return anim.ParseEase(h.Ease)
}

// Validate reports the first setting that cannot be used.
func (c SkirmishConfig) Validate() error {
	if c.Highlight.PeriodMS <= 0 {
		return fmt.Errorf("config: highlight.period_ms must be positive, got %d", c.Highlight.PeriodMS)
	}
	if c.Highlight.MinAlpha < 0 || c.Highlight.MinAlpha >= 1 {
		return fmt.Errorf("config: highlight.min_alpha must be in [0, 1), got %v", c.Highlight.MinAlpha)
	}
	if _, err := c.Highlight.EaseFunc(); err != nil {
		return fmt.Errorf("config: highlight.ease: %w", err)
	}
	if c.UI.TickRate <= 0 || c.UI.TickRate > 240 {
		return fmt.Errorf("config: ui.tick_rate must be in 1..240, got %d", c.UI.TickRate)
	}
	return nil
}
