package targetsel

import "github.com/vovakirdan/tui-skirmish/internal/battle"

// Tier is the effectiveness bucket shown for the focused target.
type Tier int

// Tiers are ordered from weakest to strongest.
const (
	TierNoEffect Tier = iota
	TierQuarter
	TierHalf
	TierNormal
	TierDouble
	TierQuadruple
)

func (t Tier) String() string {
	switch t {
	case TierNoEffect:
		return "no effect"
	case TierQuarter:
		return "x0.25"
	case TierHalf:
		return "x0.5"
	case TierNormal:
		return "x1"
	case TierDouble:
		return "x2"
	case TierQuadruple:
		return "x4"
	default:
		return "x1"
	}
}

// TierFor buckets a damage multiplier. Multipliers outside the known set
// fall back to TierNormal.
func TierFor(multiplier float64) Tier {
	switch multiplier {
	case 0:
		return TierNoEffect
	case 0.25:
		return TierQuarter
	case 0.5:
		return TierHalf
	case 1:
		return TierNormal
	case 2:
		return TierDouble
	case 4:
		return TierQuadruple
	}
	return TierNormal
}

// Snapshot is the move preview against one target. It is rebuilt whole on
// every cursor change and handed to the panel as a single value.
type Snapshot struct {
	Slot       battle.Slot
	TargetName string
	MoveID     battle.MoveID
	MoveName   string
	Type       battle.Type
	Category   battle.Category
	PP         int
	MaxPP      int
	Multiplier float64
	Tier       Tier
}

// Refresh computes the preview of move used by attacker against the target
// in slot. The target is looked up by slot only.
func Refresh(field Battlefield, dex Dex, attacker *battle.Combatant, slot battle.Slot, move battle.MoveID) Snapshot {
	snap := Snapshot{
		Slot:       slot,
		MoveID:     move,
		MoveName:   string(move),
		Multiplier: 1,
		Tier:       TierNormal,
	}

	defender := field.At(slot)
	if defender != nil {
		snap.TargetName = defender.Name
	}

	m, err := dex.Move(move)
	if err != nil {
		return snap
	}
	snap.MoveName = m.Name
	snap.Type = m.Type
	snap.Category = m.Category
	snap.PP = m.PP
	snap.MaxPP = m.PP
	if attacker != nil {
		if ms, ok := attacker.MoveSlot(move); ok {
			snap.PP = ms.PP
			snap.MaxPP = ms.MaxPP
		}
	}

	snap.Multiplier = dex.Effectiveness(attacker, defender, move)
	snap.Tier = TierFor(snap.Multiplier)
	return snap
}
