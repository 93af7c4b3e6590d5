package targetsel

import (
	"slices"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
)

// Direction is a cursor movement request.
type Direction int

const (
	DirUp    Direction = iota // ally side to enemy side
	DirDown                   // enemy side to ally side
	DirLeft                   // right column to left column
	DirRight                  // left column to right column
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Navigator holds the cursor and the legal-target set for one session.
// The cursor is only ever assigned from the target set, so while a session
// is running it is always a member of it.
type Navigator struct {
	cursor  battle.Slot
	targets []battle.Slot
}

// NewNavigator returns a navigator with an unset cursor.
func NewNavigator() *Navigator {
	return &Navigator{cursor: battle.NoSlot}
}

// Initialize starts a session over targets. The cursor keeps previous when it
// is legal and falls back to the first target otherwise. It returns false,
// leaving the navigator reset, when there are no targets.
func (n *Navigator) Initialize(targets []battle.Slot, previous battle.Slot) bool {
	if len(targets) == 0 {
		n.Reset()
		return false
	}
	n.targets = slices.Clone(targets)
	if n.Contains(previous) {
		n.cursor = previous
	} else {
		n.cursor = n.targets[0]
	}
	return true
}

// Reset clears the cursor and the target set.
func (n *Navigator) Reset() {
	n.cursor = battle.NoSlot
	n.targets = nil
}

// Cursor returns the focused slot, or battle.NoSlot before Initialize.
func (n *Navigator) Cursor() battle.Slot {
	return n.cursor
}

// Targets returns a copy of the legal-target set.
func (n *Navigator) Targets() []battle.Slot {
	return slices.Clone(n.targets)
}

// Contains reports whether s is a legal target.
func (n *Navigator) Contains(s battle.Slot) bool {
	return slices.Contains(n.targets, s)
}

// Move applies a directional input and reports whether the cursor changed.
// Up and down jump to the first target on the other side in set order, not
// the geometrically closest one. Left and right only step to the horizontal
// neighbour when it is legal.
func (n *Navigator) Move(d Direction) bool {
	cur := n.cursor
	if cur == battle.NoSlot {
		return false
	}

	next := battle.NoSlot
	switch d {
	case DirUp:
		if cur.Side() == battle.SideAlly {
			next = n.firstOn(battle.SideEnemy)
		}
	case DirDown:
		if cur.Side() == battle.SideEnemy {
			next = n.firstOn(battle.SideAlly)
		}
	case DirLeft:
		if cur.Column() == battle.ColumnRight && n.Contains(cur.HorizontalNeighbor()) {
			next = cur.HorizontalNeighbor()
		}
	case DirRight:
		if cur.Column() == battle.ColumnLeft && n.Contains(cur.HorizontalNeighbor()) {
			next = cur.HorizontalNeighbor()
		}
	}

	if next == battle.NoSlot || next == cur {
		return false
	}
	n.cursor = next
	return true
}

func (n *Navigator) firstOn(side battle.Side) battle.Slot {
	for _, s := range n.targets {
		if s.Side() == side {
			return s
		}
	}
	return battle.NoSlot
}
