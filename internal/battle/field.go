package battle

import "fmt"

// MoveSlot is one entry of a combatant's moveset with its remaining uses.
type MoveSlot struct {
	ID    MoveID
	PP    int
	MaxPP int
}

// Combatant is a single battler placed on the field.
type Combatant struct {
	Name  string
	Types []Type
	HP    int
	MaxHP int
	Moves []MoveSlot
}

// Fainted reports whether the combatant can no longer be targeted.
func (c *Combatant) Fainted() bool {
	return c.HP <= 0
}

// MoveIndex returns the moveset position of a move, or -1.
func (c *Combatant) MoveIndex(id MoveID) int {
	for i, m := range c.Moves {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// MoveSlot returns the moveset entry for a move.
func (c *Combatant) MoveSlot(id MoveID) (MoveSlot, bool) {
	if i := c.MoveIndex(id); i >= 0 {
		return c.Moves[i], true
	}
	return MoveSlot{}, false
}

// NewCombatant creates a full-health combatant of the given species with
// moves at full PP.
func NewCombatant(dex *Dex, species string, maxHP int, moves ...MoveID) (*Combatant, error) {
	sp, err := dex.Species(species)
	if err != nil {
		return nil, err
	}
	c := &Combatant{
		Name:  sp.Name,
		Types: append([]Type(nil), sp.Types...),
		HP:    maxHP,
		MaxHP: maxHP,
	}
	for _, id := range moves {
		m, err := dex.Move(id)
		if err != nil {
			return nil, fmt.Errorf("battle: %s moveset: %w", species, err)
		}
		c.Moves = append(c.Moves, MoveSlot{ID: m.ID, PP: m.PP, MaxPP: m.PP})
	}
	return c, nil
}

// Field is the 2x2 battle grid and the dex it was built from.
type Field struct {
	dex   *Dex
	slots [SlotCount]*Combatant
}

// NewField creates an empty field backed by dex.
func NewField(dex *Dex) *Field {
	return &Field{dex: dex}
}

// Dex returns the move and species tables of the field.
func (f *Field) Dex() *Dex {
	return f.dex
}

// Place puts a combatant into a slot, replacing any occupant.
func (f *Field) Place(s Slot, c *Combatant) {
	if !s.Valid() {
		return
	}
	f.slots[s] = c
}

// At returns the combatant in a slot, or nil when the slot is empty.
func (f *Field) At(s Slot) *Combatant {
	if !s.Valid() {
		return nil
	}
	return f.slots[s]
}

// Roster returns the combatants on one side in column order.
// Empty slots are omitted.
func (f *Field) Roster(side Side) []*Combatant {
	var result []*Combatant
	for _, col := range []Column{ColumnLeft, ColumnRight} {
		if c := f.At(SlotFor(side, col)); c != nil {
			result = append(result, c)
		}
	}
	return result
}

// Occupied returns every slot holding a combatant that has not fainted.
func (f *Field) Occupied() []Slot {
	var result []Slot
	for s := Slot(0); int(s) < SlotCount; s++ {
		if c := f.slots[s]; c != nil && !c.Fainted() {
			result = append(result, s)
		}
	}
	return result
}

// LegalTargets returns the slots move may be aimed at when used from user.
// Unknown moves and empty user slots have no legal targets.
func (f *Field) LegalTargets(user Slot, id MoveID) []Slot {
	if f.At(user) == nil {
		return nil
	}
	m, err := f.dex.Move(id)
	if err != nil {
		return nil
	}
	return LegalTargets(f, user, m)
}
