// Package battle holds the double-battle field model: the fixed 2x2 slot
// grid, combatants, the move and type tables, and target legality.
package battle

// Slot identifies one of the four positions on the field.
//
// The index packs two facts: slots below EnemyStart are on the ally side,
// and the parity of the index is the column (even = left, odd = right).
//
//	enemy:  2 | 3
//	ally:   0 | 1
type Slot int

const (
	// NoSlot is the unset cursor and the cancellation result.
	NoSlot Slot = -1
	// EnemyStart is the first enemy-side slot.
	EnemyStart Slot = 2
	// SlotCount is the number of positions on the field.
	SlotCount = 4
)

// Side groups slots into the player's team and the opposing team.
type Side int

const (
	SideAlly Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "ally"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideEnemy {
		return SideAlly
	}
	return SideEnemy
}

// Column is the left/right position within a side.
type Column int

const (
	ColumnLeft Column = iota
	ColumnRight
)

func (c Column) String() string {
	if c == ColumnRight {
		return "right"
	}
	return "left"
}

// Valid reports whether the slot is on the field.
func (s Slot) Valid() bool {
	return s >= 0 && int(s) < SlotCount
}

// Side returns which team the slot belongs to.
func (s Slot) Side() Side {
	if s >= EnemyStart {
		return SideEnemy
	}
	return SideAlly
}

// Column returns the slot's column, derived from parity.
func (s Slot) Column() Column {
	if s%2 == 0 {
		return ColumnLeft
	}
	return ColumnRight
}

// HorizontalNeighbor returns the slot on the same side in the other column.
// Only defined for valid slots.
func (s Slot) HorizontalNeighbor() Slot {
	if s.Column() == ColumnLeft {
		return s + 1
	}
	return s - 1
}

// SlotFor returns the slot at the given side and column.
func SlotFor(side Side, col Column) Slot {
	base := Slot(0)
	if side == SideEnemy {
		base = EnemyStart
	}
	return base + Slot(col)
}
