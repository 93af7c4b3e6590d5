package tui

import (
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/anim"
	"github.com/vovakirdan/tui-skirmish/internal/battle"
	"github.com/vovakirdan/tui-skirmish/internal/targetsel"
)

// Sounder plays the selection acknowledgement. *audio.SoundManager
// satisfies it.
type Sounder interface {
	PlaySelect()
}

// InfoPanel holds the preview shown next to the move grid.
type InfoPanel struct {
	visible  bool
	snapshot targetsel.Snapshot
}

// Show displays s in the panel.
func (p *InfoPanel) Show(s targetsel.Snapshot) {
	p.visible = true
	p.snapshot = s
}

// Hide hides the panel and keeps its last preview.
func (p *InfoPanel) Hide() { p.visible = false }

// Visible returns the preview when the panel is shown.
func (p *InfoPanel) Visible() (targetsel.Snapshot, bool) {
	return p.snapshot, p.visible
}

// MoveCursor marks a cell of the 2x2 move grid.
type MoveCursor struct {
	visible  bool
	col, row int
}

// ShowAt marks the cell at col, row.
func (c *MoveCursor) ShowAt(col, row int) {
	c.visible = true
	c.col, c.row = col, row
}

// Hide removes the mark.
func (c *MoveCursor) Hide() { c.visible = false }

// At returns the marked move grid cell.
func (c *MoveCursor) At() (col, row int, ok bool) {
	return c.col, c.row, c.visible
}

// Stage is the terminal surface the target selection controller draws on.
// Tweens advance on the Bubble Tea tick.
type Stage struct {
	engine *anim.Engine
	alpha  [battle.SlotCount]float64
	panel  *InfoPanel
	cursor *MoveCursor
	sound  Sounder
}

// NewStage creates a stage with every slot opaque. sound may be nil.
func NewStage(sound Sounder) *Stage {
	s := &Stage{
		engine: anim.NewEngine(),
		sound:  sound,
	}
	for i := range s.alpha {
		s.alpha[i] = 1
	}
	return s
}

// SetAlpha sets a slot's opacity. Invalid slots are ignored.
func (s *Stage) SetAlpha(slot battle.Slot, alpha float64) {
	if slot.Valid() {
		s.alpha[slot] = alpha
	}
}

// Alpha returns the opacity of a slot's combatant.
func (s *Stage) Alpha(slot battle.Slot) float64 {
	if !slot.Valid() {
		return 1
	}
	return s.alpha[slot]
}

// Animate starts a tween on the stage engine.
func (s *Stage) Animate(spec anim.Spec, onUpdate func(v float64)) targetsel.Animation {
	return s.engine.Start(spec, onUpdate)
}

// NewPanel returns the stage's single info panel. Repeated calls return
// the same panel.
func (s *Stage) NewPanel() targetsel.Panel {
	if s.panel == nil {
		s.panel = &InfoPanel{}
	}
	return s.panel
}

// NewCursor returns the stage's single move cursor.
func (s *Stage) NewCursor() targetsel.Cursor {
	if s.cursor == nil {
		s.cursor = &MoveCursor{}
	}
	return s.cursor
}

// PlaySelect plays the cursor move cue when a sounder is set.
func (s *Stage) PlaySelect() {
	if s.sound != nil {
		s.sound.PlaySelect()
	}
}

// Advance moves every running tween forward by dt.
func (s *Stage) Advance(dt time.Duration) {
	s.engine.Advance(dt)
}

// Panel returns the info panel, or nil before the controller's setup.
func (s *Stage) Panel() *InfoPanel { return s.panel }

// Cursor returns the move cursor, or nil before the controller's setup.
func (s *Stage) Cursor() *MoveCursor { return s.cursor }
