package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldConfig is a custom battlefield roster. Each side holds up to two
// combatants, left column first.
type FieldConfig struct {
	Name  string            `yaml:"name"`
	Ally  []CombatantConfig `yaml:"ally"`
	Enemy []CombatantConfig `yaml:"enemy"`
}

// CombatantConfig describes one combatant of a roster.
type CombatantConfig struct {
	Species string   `yaml:"species"`
	HP      int      `yaml:"hp"`
	Fainted bool     `yaml:"fainted"`
	Moves   []string `yaml:"moves"`
}

// ErrEmptyRoster is returned for a roster with no combatant on the ally side.
var ErrEmptyRoster = errors.New("config: roster has no ally combatant")

// LoadField reads a roster from a YAML file.
func LoadField(path string) (FieldConfig, error) {
	var fc FieldConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("failed to read field %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse field %s: %w", path, err)
	}
	if err := fc.Validate(); err != nil {
		return fc, fmt.Errorf("field %s: %w", path, err)
	}
	if fc.Name == "" {
		fc.Name = path
	}
	return fc, nil
}

// Validate checks the roster shape. Species and move names are resolved
// later against the dex.
func (fc FieldConfig) Validate() error {
	if len(fc.Ally) == 0 {
		return ErrEmptyRoster
	}
	if len(fc.Ally) > 2 || len(fc.Enemy) > 2 {
		return fmt.Errorf("config: at most two combatants per side, got %d ally and %d enemy", len(fc.Ally), len(fc.Enemy))
	}
	for _, side := range [][]CombatantConfig{fc.Ally, fc.Enemy} {
		for _, c := range side {
			if c.Species == "" {
				return errors.New("config: combatant without species")
			}
			if len(c.Moves) == 0 || len(c.Moves) > 4 {
				return fmt.Errorf("config: %s must know 1 to 4 moves, got %d", c.Species, len(c.Moves))
			}
		}
	}
	return nil
}
