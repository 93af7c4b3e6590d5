package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
	"github.com/vovakirdan/tui-skirmish/internal/targetsel"
)

// ErrNoActors is returned for a scenario whose ally side cannot act.
var ErrNoActors = errors.New("tui: no ally combatant can act")

// Phase is the step of the turn being planned.
type Phase int

const (
	PhaseMove    Phase = iota // picking a move for the current actor
	PhaseTarget               // target selection controller is active
	PhaseSummary              // every actor has a plan
)

// Choice is one confirmed action of the turn plan.
type Choice struct {
	Actor  battle.Slot
	Move   battle.MoveID
	Target battle.Slot
}

// BattleOptions configures a skirmish.
type BattleOptions struct {
	Highlight targetsel.HighlightOptions
	Sound     Sounder        // nil is silent
	Store     *storage.Store // nil disables history
	Logger    *log.Logger    // nil discards
}

// Skirmish plans turns on one battlefield: a move per ally, then a target
// chosen through the selection controller.
type Skirmish struct {
	scenario registry.Scenario
	dex      *battle.Dex
	field    *battle.Field
	stage    *Stage
	ctrl     *targetsel.Controller
	store    *storage.Store
	logger   *log.Logger

	actors     []battle.Slot
	actor      int
	moveCursor int
	phase      Phase
	choices    []Choice
	message    string
	turn       int
}

// NewSkirmish builds the scenario's field and wires a selection controller
// to a fresh stage.
func NewSkirmish(sc registry.Scenario, opts BattleOptions) (*Skirmish, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dex := battle.Standard()
	field, err := sc.Build(dex)
	if err != nil {
		return nil, fmt.Errorf("tui: build %s: %w", sc.ID(), err)
	}

	var actors []battle.Slot
	for _, s := range field.Occupied() {
		if s.Side() == battle.SideAlly {
			actors = append(actors, s)
		}
	}
	if len(actors) == 0 {
		return nil, ErrNoActors
	}

	stage := NewStage(opts.Sound)
	ctrl := targetsel.NewController(field, dex, stage, targetsel.Options{
		Highlight: opts.Highlight,
		Logger:    logger,
	})
	ctrl.Setup()

	return &Skirmish{
		scenario: sc,
		dex:      dex,
		field:    field,
		stage:    stage,
		ctrl:     ctrl,
		store:    opts.Store,
		logger:   logger,
		actors:   actors,
		turn:     1,
	}, nil
}

// Phase returns the current planning step.
func (s *Skirmish) Phase() Phase { return s.phase }

// Actor returns the slot whose move is being planned.
func (s *Skirmish) Actor() battle.Slot {
	if s.actor >= len(s.actors) {
		return battle.NoSlot
	}
	return s.actors[s.actor]
}

// Choices returns the confirmed plan so far.
func (s *Skirmish) Choices() []Choice {
	return append([]Choice(nil), s.choices...)
}

// Message is the status line.
func (s *Skirmish) Message() string { return s.message }

// Turn returns the turn number, starting at 1.
func (s *Skirmish) Turn() int { return s.turn }

// Field returns the battlefield.
func (s *Skirmish) Field() *battle.Field { return s.field }

// Controller exposes the selection controller.
func (s *Skirmish) Controller() *targetsel.Controller { return s.ctrl }

// Stage returns the drawing surface.
func (s *Skirmish) Stage() *Stage { return s.stage }

// Tick advances animations.
func (s *Skirmish) Tick(dt time.Duration) {
	s.stage.Advance(dt)
}

// Press handles one button. It reports whether the player backed out of
// the first actor's move menu.
func (s *Skirmish) Press(b core.Button) (back bool) {
	switch s.phase {
	case PhaseMove:
		return s.pressMove(b)
	case PhaseTarget:
		s.ctrl.ProcessInput(b)
	case PhaseSummary:
		switch b {
		case core.ButtonAction:
			s.commitTurn()
		case core.ButtonCancel:
			s.undo()
		}
	}
	return false
}

func (s *Skirmish) pressMove(b core.Button) bool {
	n := len(s.current().Moves)
	col, row := s.moveCursor%2, s.moveCursor/2
	switch b {
	case core.ButtonLeft:
		if col == 1 {
			s.moveCursor--
		}
	case core.ButtonRight:
		if col == 0 && s.moveCursor+1 < n {
			s.moveCursor++
		}
	case core.ButtonUp:
		if row == 1 {
			s.moveCursor -= 2
		}
	case core.ButtonDown:
		if s.moveCursor+2 < n {
			s.moveCursor += 2
		}
	case core.ButtonAction:
		s.ChooseMove(s.moveCursor)
	case core.ButtonCancel:
		if s.actor == 0 {
			return true
		}
		s.undo()
	}
	return false
}

// ChooseMove picks the i-th move of the current actor and opens target
// selection for it.
func (s *Skirmish) ChooseMove(i int) {
	if s.phase != PhaseMove {
		return
	}
	c := s.current()
	if i < 0 || i >= len(c.Moves) {
		return
	}
	s.moveCursor = i
	slot := c.Moves[i]
	m, err := s.dex.Move(slot.ID)
	if err != nil {
		s.message = err.Error()
		return
	}
	if slot.PP <= 0 {
		s.message = fmt.Sprintf("%s has no PP left.", m.Name)
		return
	}

	if !s.ctrl.Show(s.Actor(), slot.ID, s.resolved) {
		s.message = fmt.Sprintf("%s has no target for %s.", c.Name, m.Name)
		return
	}
	s.message = fmt.Sprintf("Choose a target for %s.", m.Name)
	s.phase = PhaseTarget
}

// resolved is the controller's callback.
func (s *Skirmish) resolved(target battle.Slot) {
	snap, _ := s.ctrl.Snapshot()
	actor := s.Actor()
	move := s.current().Moves[s.moveCursor].ID
	s.record(actor, move, target, snap)
	s.ctrl.Clear()

	if target == battle.NoSlot {
		s.phase = PhaseMove
		s.message = ""
		return
	}

	s.choices = append(s.choices, Choice{Actor: actor, Move: move, Target: target})
	s.actor++
	s.moveCursor = 0
	s.message = ""
	if s.actor >= len(s.actors) {
		s.phase = PhaseSummary
		s.message = "Turn planned. Enter to commit, Esc to revise."
		return
	}
	s.phase = PhaseMove
}

func (s *Skirmish) record(actor battle.Slot, move battle.MoveID, target battle.Slot, snap targetsel.Snapshot) {
	if s.store == nil {
		return
	}
	sel := storage.Selection{
		ScenarioID: s.scenario.ID(),
		Actor:      int(actor),
		ActorName:  s.current().Name,
		MoveID:     string(move),
		Target:     storage.CancelledTarget,
		Multiplier: 1,
	}
	if target != battle.NoSlot {
		sel.Target = int(target)
		sel.Multiplier = snap.Multiplier
		if c := s.field.At(target); c != nil {
			sel.TargetName = c.Name
		}
	}
	if _, err := s.store.SaveSelection(sel); err != nil {
		s.logger.Warn("could not save selection", "error", err)
	}
}

// undo drops the last confirmed choice and returns to that actor's move.
func (s *Skirmish) undo() {
	if len(s.choices) == 0 {
		return
	}
	last := s.choices[len(s.choices)-1]
	s.choices = s.choices[:len(s.choices)-1]
	s.actor--
	s.moveCursor = max(s.current().MoveIndex(last.Move), 0)
	s.phase = PhaseMove
	s.message = ""
}

// commitTurn spends PP for every planned move and starts the next turn.
func (s *Skirmish) commitTurn() {
	for _, ch := range s.choices {
		c := s.field.At(ch.Actor)
		if i := c.MoveIndex(ch.Move); i >= 0 && c.Moves[i].PP > 0 {
			c.Moves[i].PP--
		}
	}
	s.logger.Info("turn committed", "scenario", s.scenario.ID(), "turn", s.turn, "choices", len(s.choices))
	s.choices = nil
	s.actor = 0
	s.moveCursor = 0
	s.turn++
	s.phase = PhaseMove
	s.message = fmt.Sprintf("Turn %d.", s.turn)
}

// Close ends any open selection.
func (s *Skirmish) Close() {
	s.ctrl.Clear()
}

func (s *Skirmish) current() *battle.Combatant {
	if s.actor >= len(s.actors) {
		return s.field.At(s.actors[len(s.actors)-1])
	}
	return s.field.At(s.actors[s.actor])
}
