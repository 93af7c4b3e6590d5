package battle

import (
	"fmt"
	"strings"
)

// Type is an elemental type of a move or combatant.
type Type int

const (
	TypeNormal Type = iota
	TypeFire
	TypeWater
	TypeElectric
	TypeGrass
	TypeIce
	TypeFighting
	TypePoison
	TypeGround
	TypeFlying
	TypePsychic
	TypeBug
	TypeRock
	TypeGhost
	TypeDragon
	TypeDark
	TypeSteel
	TypeFairy
	typeCount
)

var typeNames = [typeCount]string{
	"normal", "fire", "water", "electric", "grass", "ice", "fighting", "poison",
	"ground", "flying", "psychic", "bug", "rock", "ghost", "dragon", "dark",
	"steel", "fairy",
}

func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return typeNames[t]
}

// ParseType converts a lowercase or capitalized type name to a Type.
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range typeNames {
		if candidate == n {
			return Type(i), nil
		}
	}
	return TypeNormal, fmt.Errorf("battle: unknown type %q", name)
}

// UnmarshalText lets YAML and env decoding read types by name.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category is the damage class of a move.
type Category int

const (
	CategoryPhysical Category = iota
	CategorySpecial
	CategoryStatus
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	case CategoryStatus:
		return "status"
	default:
		return "unknown"
	}
}

// matchup lists the defending types an attacking type is strong against,
// resisted by, or has no effect on.
type matchup struct {
	super  []Type
	resist []Type
	immune []Type
}

var matchups = map[Type]matchup{
	TypeNormal:   {resist: []Type{TypeRock, TypeSteel}, immune: []Type{TypeGhost}},
	TypeFire:     {super: []Type{TypeGrass, TypeIce, TypeBug, TypeSteel}, resist: []Type{TypeFire, TypeWater, TypeRock, TypeDragon}},
	TypeWater:    {super: []Type{TypeFire, TypeGround, TypeRock}, resist: []Type{TypeWater, TypeGrass, TypeDragon}},
	TypeElectric: {super: []Type{TypeWater, TypeFlying}, resist: []Type{TypeElectric, TypeGrass, TypeDragon}, immune: []Type{TypeGround}},
	TypeGrass:    {super: []Type{TypeWater, TypeGround, TypeRock}, resist: []Type{TypeFire, TypeGrass, TypePoison, TypeFlying, TypeBug, TypeDragon, TypeSteel}},
	TypeIce:      {super: []Type{TypeGrass, TypeGround, TypeFlying, TypeDragon}, resist: []Type{TypeFire, TypeWater, TypeIce, TypeSteel}},
	TypeFighting: {super: []Type{TypeNormal, TypeIce, TypeRock, TypeDark, TypeSteel}, resist: []Type{TypePoison, TypeFlying, TypePsychic, TypeBug, TypeFairy}, immune: []Type{TypeGhost}},
	TypePoison:   {super: []Type{TypeGrass, TypeFairy}, resist: []Type{TypePoison, TypeGround, TypeRock, TypeGhost}, immune: []Type{TypeSteel}},
	TypeGround:   {super: []Type{TypeFire, TypeElectric, TypePoison, TypeRock, TypeSteel}, resist: []Type{TypeGrass, TypeBug}, immune: []Type{TypeFlying}},
	TypeFlying:   {super: []Type{TypeGrass, TypeFighting, TypeBug}, resist: []Type{TypeElectric, TypeRock, TypeSteel}},
	TypePsychic:  {super: []Type{TypeFighting, TypePoison}, resist: []Type{TypePsychic, TypeSteel}, immune: []Type{TypeDark}},
	TypeBug:      {super: []Type{TypeGrass, TypePsychic, TypeDark}, resist: []Type{TypeFire, TypeFighting, TypePoison, TypeFlying, TypeGhost, TypeSteel, TypeFairy}},
	TypeRock:     {super: []Type{TypeFire, TypeIce, TypeFlying, TypeBug}, resist: []Type{TypeFighting, TypeGround, TypeSteel}},
	TypeGhost:    {super: []Type{TypePsychic, TypeGhost}, resist: []Type{TypeDark}, immune: []Type{TypeNormal}},
	TypeDragon:   {super: []Type{TypeDragon}, resist: []Type{TypeSteel}, immune: []Type{TypeFairy}},
	TypeDark:     {super: []Type{TypePsychic, TypeGhost}, resist: []Type{TypeFighting, TypeDark, TypeFairy}},
	TypeSteel:    {super: []Type{TypeIce, TypeRock, TypeFairy}, resist: []Type{TypeFire, TypeWater, TypeElectric, TypeSteel}},
	TypeFairy:    {super: []Type{TypeFighting, TypeDragon, TypeDark}, resist: []Type{TypeFire, TypePoison, TypeSteel}},
}

// chart[attack][defend] is the single-type damage multiplier.
var chart = buildChart()

func buildChart() [typeCount][typeCount]float64 {
	var c [typeCount][typeCount]float64
	for a := range c {
		for d := range c[a] {
			c[a][d] = 1
		}
	}
	for atk, m := range matchups {
		for _, d := range m.super {
			c[atk][d] = 2
		}
		for _, d := range m.resist {
			c[atk][d] = 0.5
		}
		for _, d := range m.immune {
			c[atk][d] = 0
		}
	}
	return c
}

// TypeMultiplier returns the damage multiplier of an attacking type against
// a defender with one or two types. Repeated defending types count once.
func TypeMultiplier(attack Type, defend ...Type) float64 {
	if attack < 0 || attack >= typeCount {
		return 1
	}
	mult := 1.0
	seen := make(map[Type]bool, len(defend))
	for _, d := range defend {
		if d < 0 || d >= typeCount || seen[d] {
			continue
		}
		seen[d] = true
		mult *= chart[attack][d]
	}
	return mult
}
