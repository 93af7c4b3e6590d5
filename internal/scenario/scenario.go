// Package scenario holds the built-in battlefields and builds custom ones
// from YAML rosters.
package scenario

import (
	"fmt"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
	"github.com/vovakirdan/tui-skirmish/internal/config"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

const defaultHP = 100

type member struct {
	species string
	hp      int
	fainted bool
	moves   []battle.MoveID
}

// Roster is a scenario described as two lists of combatants. Allies fill
// slots 0 and 1, enemies slots 2 and 3, left column first.
type Roster struct {
	id          string
	title       string
	description string
	ally        []member
	enemy       []member
}

func (r *Roster) ID() string          { return r.id }
func (r *Roster) Title() string       { return r.title }
func (r *Roster) Description() string { return r.description }

// Build places fresh combatants on a new field.
func (r *Roster) Build(dex *battle.Dex) (*battle.Field, error) {
	f := battle.NewField(dex)
	if err := r.place(f, dex, battle.SideAlly, r.ally); err != nil {
		return nil, err
	}
	if err := r.place(f, dex, battle.SideEnemy, r.enemy); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *Roster) place(f *battle.Field, dex *battle.Dex, side battle.Side, members []member) error {
	if len(members) > 2 {
		return fmt.Errorf("scenario %s: %d combatants on the %s side", r.id, len(members), side)
	}
	for i, m := range members {
		hp := m.hp
		if hp <= 0 {
			hp = defaultHP
		}
		c, err := battle.NewCombatant(dex, m.species, hp, m.moves...)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", r.id, err)
		}
		if m.fainted {
			c.HP = 0
		}
		f.Place(battle.SlotFor(side, battle.Column(i)), c)
	}
	return nil
}

// FromConfig turns a YAML roster into a playable scenario. It is not
// registered.
func FromConfig(fc config.FieldConfig) *Roster {
	r := &Roster{
		id:          "custom",
		title:       fc.Name,
		description: "Custom field",
	}
	convert := func(cs []config.CombatantConfig) []member {
		out := make([]member, 0, len(cs))
		for _, c := range cs {
			m := member{species: c.Species, hp: c.HP, fainted: c.Fainted}
			for _, id := range c.Moves {
				m.moves = append(m.moves, battle.MoveID(id))
			}
			out = append(out, m)
		}
		return out
	}
	r.ally = convert(fc.Ally)
	r.enemy = convert(fc.Enemy)
	return r
}

// Load builds a scenario by registered ID, or from a roster file when
// fieldPath is set.
func Load(id, fieldPath string) (registry.Scenario, error) {
	if fieldPath != "" {
		fc, err := config.LoadField(fieldPath)
		if err != nil {
			return nil, err
		}
		return FromConfig(fc), nil
	}
	return registry.Create(id)
}
