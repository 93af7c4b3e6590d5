// Package targetsel implements the target-selection step of a turn: given
// the move the active combatant chose, it works out which slots are legal,
// lets the player move a cursor between them, previews the move against the
// focused target, and resolves to a slot or a cancellation.
//
// The package owns no rendering. Everything visual goes through Stage, and
// all battle data comes from Battlefield and Dex.
package targetsel

import (
	"github.com/vovakirdan/tui-skirmish/internal/anim"
	"github.com/vovakirdan/tui-skirmish/internal/battle"
)

// Battlefield is the read-only view of the field the controller needs.
type Battlefield interface {
	// At returns the combatant in a slot, or nil.
	At(s battle.Slot) *battle.Combatant
	// LegalTargets returns the slots move may target from user, in the
	// order the cursor should prefer them.
	LegalTargets(user battle.Slot, move battle.MoveID) []battle.Slot
}

// Dex supplies move metadata and type effectiveness.
type Dex interface {
	Move(id battle.MoveID) (battle.Move, error)
	Effectiveness(attacker, defender *battle.Combatant, move battle.MoveID) float64
}

// Animation is a running tween owned by the stage.
type Animation interface {
	Stop()
}

// Panel displays the move preview for the focused target.
type Panel interface {
	Show(s Snapshot)
	Hide()
}

// Cursor is the glyph marking the chosen move in the move grid.
type Cursor interface {
	ShowAt(col, row int)
	Hide()
}

// Stage is the host's visual surface.
type Stage interface {
	// SetAlpha sets the opacity of the combatant drawn in a slot.
	SetAlpha(s battle.Slot, alpha float64)
	// Animate starts a tween driven by the host's frame loop.
	Animate(spec anim.Spec, onUpdate func(v float64)) Animation
	// NewPanel and NewCursor create hidden, long-lived visuals.
	NewPanel() Panel
	NewCursor() Cursor
	// PlaySelect plays the UI acknowledgement sound.
	PlaySelect()
}
