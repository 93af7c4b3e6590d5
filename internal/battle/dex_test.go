package battle

import (
	"errors"
	"testing"
)

func TestTypeMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		attack   Type
		defend   []Type
		expected float64
	}{
		{"neutral", TypeNormal, []Type{TypeWater}, 1},
		{"super effective", TypeWater, []Type{TypeFire}, 2},
		{"double super effective", TypeIce, []Type{TypeDragon, TypeGround}, 4},
		{"resisted", TypeFire, []Type{TypeWater}, 0.5},
		{"double resisted", TypeGrass, []Type{TypeFire, TypeFlying}, 0.25},
		{"immune", TypeElectric, []Type{TypeWater, TypeGround}, 0},
		{"ghost vs normal", TypeGhost, []Type{TypeNormal}, 0},
		{"cancels out", TypeFire, []Type{TypeWater, TypeGrass}, 1},
		{"duplicate type counted once", TypeWater, []Type{TypeFire, TypeFire}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeMultiplier(tc.attack, tc.defend...); got != tc.expected {
				t.Errorf("TypeMultiplier(%v, %v) = %v, expected %v", tc.attack, tc.defend, got, tc.expected)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType(" Fire ")
	if err != nil || got != TypeFire {
		t.Errorf("ParseType(Fire) = %v, %v", got, err)
	}
	if _, err := ParseType("plasma"); err == nil {
		t.Error("ParseType should reject unknown names")
	}
}

func TestDexMoveLookup(t *testing.T) {
	dex := Standard()

	m, err := dex.Move("thunderbolt")
	if err != nil {
		t.Fatalf("Move(thunderbolt) failed: %v", err)
	}
	if m.Type != TypeElectric || m.Category != CategorySpecial || m.PP != 15 {
		t.Errorf("unexpected thunderbolt data: %+v", m)
	}

	_, err = dex.Move("hyper-mega-beam")
	if !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove, got %v", err)
	}
}

func TestDexEffectiveness(t *testing.T) {
	dex := Standard()
	pikachu, _ := NewCombatant(dex, "Pikachu", 100, "thunderbolt", "thunder-wave")
	gyarados, _ := NewCombatant(dex, "Gyarados", 100, "surf")
	swampert, _ := NewCombatant(dex, "Swampert", 100, "earthquake")

	if got := dex.Effectiveness(pikachu, gyarados, "thunderbolt"); got != 4 {
		t.Errorf("thunderbolt vs Gyarados = %v, expected 4", got)
	}
	if got := dex.Effectiveness(pikachu, swampert, "thunderbolt"); got != 0 {
		t.Errorf("thunderbolt vs Swampert = %v, expected 0", got)
	}
	if got := dex.Effectiveness(pikachu, swampert, "thunder-wave"); got != 1 {
		t.Errorf("status moves should be neutral, got %v", got)
	}
	if got := dex.Effectiveness(pikachu, nil, "thunderbolt"); got != 1 {
		t.Errorf("missing defender should be neutral, got %v", got)
	}
}

func TestNewCombatantUnknownMove(t *testing.T) {
	_, err := NewCombatant(Standard(), "Pikachu", 100, "thunderbolt", "nope")
	if !errors.Is(err, ErrUnknownMove) {
		t.Errorf("expected ErrUnknownMove, got %v", err)
	}

	_, err = NewCombatant(Standard(), "Missingno", 100)
	if !errors.Is(err, ErrUnknownSpecies) {
		t.Errorf("expected ErrUnknownSpecies, got %v", err)
	}
}
