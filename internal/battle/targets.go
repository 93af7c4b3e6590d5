package battle

import "fmt"

// TargetKind describes which slots a move may be aimed at.
type TargetKind string

const (
	TargetUser            TargetKind = "user"
	TargetNearOther       TargetKind = "near-other"
	TargetOther           TargetKind = "other"
	TargetAllNearOthers   TargetKind = "all-near-others"
	TargetNearEnemy       TargetKind = "near-enemy"
	TargetAllNearEnemies  TargetKind = "all-near-enemies"
	TargetRandomNearEnemy TargetKind = "random-near-enemy"
	TargetAlly            TargetKind = "ally"
	TargetUserOrAlly      TargetKind = "user-or-ally"
	TargetUserSide        TargetKind = "user-side"
	TargetEnemySide       TargetKind = "enemy-side"
	TargetAll             TargetKind = "all"
)

var targetKinds = []TargetKind{
	TargetUser, TargetNearOther, TargetOther, TargetAllNearOthers,
	TargetNearEnemy, TargetAllNearEnemies, TargetRandomNearEnemy,
	TargetAlly, TargetUserOrAlly, TargetUserSide, TargetEnemySide, TargetAll,
}

// UnmarshalText validates target kinds read from config files.
func (k *TargetKind) UnmarshalText(text []byte) error {
	for _, known := range targetKinds {
		if string(known) == string(text) {
			*k = known
			return nil
		}
	}
	return fmt.Errorf("battle: unknown target kind %q", text)
}

// LegalTargets returns the slots move may target when used from user, in
// slot order. Every occupied slot counts as near on a 2x2 field.
// Fainted combatants and empty slots are never legal.
func LegalTargets(f *Field, user Slot, m Move) []Slot {
	own := user.Side()

	var accept func(s Slot) bool
	switch m.Target {
	case TargetUser:
		accept = func(s Slot) bool { return s == user }
	case TargetNearOther, TargetOther, TargetAllNearOthers:
		accept = func(s Slot) bool { return s != user }
	case TargetNearEnemy, TargetAllNearEnemies, TargetRandomNearEnemy, TargetEnemySide:
		accept = func(s Slot) bool { return s.Side() != own }
	case TargetAlly:
		accept = func(s Slot) bool { return s.Side() == own && s != user }
	case TargetUserOrAlly, TargetUserSide:
		accept = func(s Slot) bool { return s.Side() == own }
	case TargetAll:
		accept = func(Slot) bool { return true }
	default:
		return nil
	}

	var result []Slot
	for _, s := range f.Occupied() {
		if accept(s) {
			result = append(result, s)
		}
	}
	return result
}
