package targetsel

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/anim"
	"github.com/vovakirdan/tui-skirmish/internal/battle"
)

// fakeField serves fixed combatants and a fixed legal-target set.
type fakeField struct {
	slots   [battle.SlotCount]*battle.Combatant
	targets []battle.Slot
}

func (f *fakeField) At(s battle.Slot) *battle.Combatant {
	if !s.Valid() {
		return nil
	}
	return f.slots[s]
}

func (f *fakeField) LegalTargets(battle.Slot, battle.MoveID) []battle.Slot {
	return slices.Clone(f.targets)
}

func newFakeField(t *testing.T, targets ...battle.Slot) *fakeField {
	t.Helper()
	dex := battle.Standard()
	f := &fakeField{targets: targets}
	specs := []struct {
		species string
		moves   []battle.MoveID
	}{
		{"Pikachu", []battle.MoveID{"tackle", "thunder-wave", "fake-out", "thunderbolt"}},
		{"Blastoise", []battle.MoveID{"surf", "ice-beam"}},
		{"Gyarados", []battle.MoveID{"surf"}},
		{"Swampert", []battle.MoveID{"earthquake"}},
	}
	for i, sp := range specs {
		c, err := battle.NewCombatant(dex, sp.species, 100, sp.moves...)
		if err != nil {
			t.Fatalf("NewCombatant(%s) failed: %v", sp.species, err)
		}
		f.slots[i] = c
	}
	return f
}

type fakePanel struct {
	visible bool
	shown   []Snapshot
}

func (p *fakePanel) Show(s Snapshot) {
	p.visible = true
	p.shown = append(p.shown, s)
}

func (p *fakePanel) Hide() { p.visible = false }

type fakeCursor struct {
	visible  bool
	col, row int
}

func (c *fakeCursor) ShowAt(col, row int) {
	c.visible = true
	c.col, c.row = col, row
}

func (c *fakeCursor) Hide() { c.visible = false }

// fakeStage records every visual change and drives tweens with a real engine.
type fakeStage struct {
	engine  *anim.Engine
	alpha   map[battle.Slot]float64
	panels  []*fakePanel
	cursors []*fakeCursor
	sounds  int
}

func newFakeStage() *fakeStage {
	return &fakeStage{
		engine: anim.NewEngine(),
		alpha:  make(map[battle.Slot]float64),
	}
}

func (s *fakeStage) SetAlpha(slot battle.Slot, a float64) { s.alpha[slot] = a }

func (s *fakeStage) Animate(spec anim.Spec, onUpdate func(float64)) Animation {
	return s.engine.Start(spec, onUpdate)
}

func (s *fakeStage) NewPanel() Panel {
	p := &fakePanel{}
	s.panels = append(s.panels, p)
	return p
}

func (s *fakeStage) NewCursor() Cursor {
	c := &fakeCursor{}
	s.cursors = append(s.cursors, c)
	return c
}

func (s *fakeStage) PlaySelect() { s.sounds++ }

// frames advances the tween engine by n 60fps frames.
func (s *fakeStage) frames(n int) {
	for i := 0; i < n; i++ {
		s.engine.Advance(16 * time.Millisecond)
	}
}

// dimmed returns the slots that are not fully opaque.
func (s *fakeStage) dimmed() []battle.Slot {
	var result []battle.Slot
	for slot, a := range s.alpha {
		if a < 1 {
			result = append(result, slot)
		}
	}
	slices.Sort(result)
	return result
}

func (s *fakeStage) panel() *fakePanel {
	if len(s.panels) == 0 {
		return nil
	}
	return s.panels[0]
}
