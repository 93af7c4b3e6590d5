package battle

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMove is returned when a move ID is not in the dex.
var ErrUnknownMove = errors.New("battle: unknown move")

// ErrUnknownSpecies is returned when a species name is not in the dex.
var ErrUnknownSpecies = errors.New("battle: unknown species")

// MoveID identifies a move in the dex (e.g. "thunderbolt").
type MoveID string

// Move is the static metadata of a move.
type Move struct {
	ID       MoveID
	Name     string
	Type     Type
	Category Category
	Power    int
	PP       int
	Target   TargetKind
}

// Species is the static data of a combatant kind.
type Species struct {
	Name  string
	Types []Type
}

// Dex is a read-only table of moves and species.
type Dex struct {
	moves   map[MoveID]Move
	species map[string]Species
}

// NewDex builds a dex from the given tables.
func NewDex(moves []Move, species []Species) *Dex {
	d := &Dex{
		moves:   make(map[MoveID]Move, len(moves)),
		species: make(map[string]Species, len(species)),
	}
	for _, m := range moves {
		d.moves[m.ID] = m
	}
	for _, s := range species {
		d.species[s.Name] = s
	}
	return d
}

// Move returns the metadata for a move.
func (d *Dex) Move(id MoveID) (Move, error) {
	m, ok := d.moves[id]
	if !ok {
		return Move{}, fmt.Errorf("%w %q", ErrUnknownMove, id)
	}
	return m, nil
}

// Species returns the static data for a species.
func (d *Dex) Species(name string) (Species, error) {
	s, ok := d.species[name]
	if !ok {
		return Species{}, fmt.Errorf("%w %q", ErrUnknownSpecies, name)
	}
	return s, nil
}

// Moves returns every move sorted by ID.
func (d *Dex) Moves() []Move {
	result := make([]Move, 0, len(d.moves))
	for _, m := range d.moves {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Effectiveness returns the type multiplier of move used by attacker on
// defender. Status moves are always neutral.
func (d *Dex) Effectiveness(attacker, defender *Combatant, id MoveID) float64 {
	m, err := d.Move(id)
	if err != nil || defender == nil || m.Category == CategoryStatus {
		return 1
	}
	if attacker != nil && attacker == defender && m.Target == TargetUser {
		return 1
	}
	return TypeMultiplier(m.Type, defender.Types...)
}

// Standard returns the built-in dex used by the bundled scenarios.
func Standard() *Dex {
	return NewDex(standardMoves, standardSpecies)
}

var standardMoves = []Move{
	{ID: "tackle", Name: "Tackle", Type: TypeNormal, Category: CategoryPhysical, Power: 40, PP: 35, Target: TargetNearOther},
	{ID: "thunderbolt", Name: "Thunderbolt", Type: TypeElectric, Category: CategorySpecial, Power: 90, PP: 15, Target: TargetNearOther},
	{ID: "flamethrower", Name: "Flamethrower", Type: TypeFire, Category: CategorySpecial, Power: 90, PP: 15, Target: TargetNearOther},
	{ID: "surf", Name: "Surf", Type: TypeWater, Category: CategorySpecial, Power: 90, PP: 15, Target: TargetAllNearOthers},
	{ID: "water-gun", Name: "Water Gun", Type: TypeWater, Category: CategorySpecial, Power: 40, PP: 25, Target: TargetNearOther},
	{ID: "razor-leaf", Name: "Razor Leaf", Type: TypeGrass, Category: CategoryPhysical, Power: 55, PP: 25, Target: TargetAllNearEnemies},
	{ID: "ice-beam", Name: "Ice Beam", Type: TypeIce, Category: CategorySpecial, Power: 90, PP: 10, Target: TargetNearOther},
	{ID: "earthquake", Name: "Earthquake", Type: TypeGround, Category: CategoryPhysical, Power: 100, PP: 10, Target: TargetAllNearOthers},
	{ID: "close-combat", Name: "Close Combat", Type: TypeFighting, Category: CategoryPhysical, Power: 120, PP: 5, Target: TargetNearOther},
	{ID: "shadow-ball", Name: "Shadow Ball", Type: TypeGhost, Category: CategorySpecial, Power: 80, PP: 15, Target: TargetNearOther},
	{ID: "psychic", Name: "Psychic", Type: TypePsychic, Category: CategorySpecial, Power: 90, PP: 10, Target: TargetNearOther},
	{ID: "dragon-pulse", Name: "Dragon Pulse", Type: TypeDragon, Category: CategorySpecial, Power: 85, PP: 10, Target: TargetOther},
	{ID: "sludge-bomb", Name: "Sludge Bomb", Type: TypePoison, Category: CategorySpecial, Power: 90, PP: 10, Target: TargetNearOther},
	{ID: "rock-slide", Name: "Rock Slide", Type: TypeRock, Category: CategoryPhysical, Power: 75, PP: 10, Target: TargetAllNearEnemies},
	{ID: "fake-out", Name: "Fake Out", Type: TypeNormal, Category: CategoryPhysical, Power: 40, PP: 10, Target: TargetNearEnemy},
	{ID: "outrage", Name: "Outrage", Type: TypeDragon, Category: CategoryPhysical, Power: 120, PP: 10, Target: TargetRandomNearEnemy},
	{ID: "moonblast", Name: "Moonblast", Type: TypeFairy, Category: CategorySpecial, Power: 95, PP: 15, Target: TargetNearOther},
	{ID: "helping-hand", Name: "Helping Hand", Type: TypeNormal, Category: CategoryStatus, PP: 20, Target: TargetAlly},
	{ID: "pollen-puff", Name: "Pollen Puff", Type: TypeBug, Category: CategorySpecial, Power: 90, PP: 15, Target: TargetNearOther},
	{ID: "acupressure", Name: "Acupressure", Type: TypeNormal, Category: CategoryStatus, PP: 30, Target: TargetUserOrAlly},
	{ID: "protect", Name: "Protect", Type: TypeNormal, Category: CategoryStatus, PP: 10, Target: TargetUser},
	{ID: "tailwind", Name: "Tailwind", Type: TypeFlying, Category: CategoryStatus, PP: 15, Target: TargetUserSide},
	{ID: "stealth-rock", Name: "Stealth Rock", Type: TypeRock, Category: CategoryStatus, PP: 20, Target: TargetEnemySide},
	{ID: "haze", Name: "Haze", Type: TypeIce, Category: CategoryStatus, PP: 30, Target: TargetAll},
	{ID: "thunder-wave", Name: "Thunder Wave", Type: TypeElectric, Category: CategoryStatus, PP: 20, Target: TargetNearOther},
	{ID: "iron-head", Name: "Iron Head", Type: TypeSteel, Category: CategoryPhysical, Power: 80, PP: 15, Target: TargetNearOther},
	{ID: "brave-bird", Name: "Brave Bird", Type: TypeFlying, Category: CategoryPhysical, Power: 120, PP: 15, Target: TargetOther},
	{ID: "dark-pulse", Name: "Dark Pulse", Type: TypeDark, Category: CategorySpecial, Power: 80, PP: 15, Target: TargetOther},
}

var standardSpecies = []Species{
	{Name: "Pikachu", Types: []Type{TypeElectric}},
	{Name: "Charizard", Types: []Type{TypeFire, TypeFlying}},
	{Name: "Blastoise", Types: []Type{TypeWater}},
	{Name: "Venusaur", Types: []Type{TypeGrass, TypePoison}},
	{Name: "Gengar", Types: []Type{TypeGhost, TypePoison}},
	{Name: "Garchomp", Types: []Type{TypeDragon, TypeGround}},
	{Name: "Gyarados", Types: []Type{TypeWater, TypeFlying}},
	{Name: "Snorlax", Types: []Type{TypeNormal}},
	{Name: "Togekiss", Types: []Type{TypeFairy, TypeFlying}},
	{Name: "Metagross", Types: []Type{TypeSteel, TypePsychic}},
	{Name: "Tyranitar", Types: []Type{TypeRock, TypeDark}},
	{Name: "Lucario", Types: []Type{TypeFighting, TypeSteel}},
	{Name: "Ribombee", Types: []Type{TypeBug, TypeFairy}},
	{Name: "Dragonite", Types: []Type{TypeDragon, TypeFlying}},
	{Name: "Swampert", Types: []Type{TypeWater, TypeGround}},
}
