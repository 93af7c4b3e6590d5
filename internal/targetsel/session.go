package targetsel

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/looplab/fsm"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// State is the lifecycle state of a selection session.
type State string

const (
	StateIdle      State = "idle"
	StateActive    State = "active"
	StateResolved  State = "resolved"
	StateCancelled State = "cancelled"
)

const (
	eventShow    = "show"
	eventConfirm = "confirm"
	eventCancel  = "cancel"
	eventClear   = "clear"
)

// ResolveFunc receives the confirmed slot, or battle.NoSlot on cancel.
type ResolveFunc func(target battle.Slot)

// Options configures a Controller.
type Options struct {
	Highlight HighlightOptions
	Logger    *log.Logger // nil discards
}

// Controller runs target-selection sessions for one UI surface.
// It is not safe for concurrent use; every call is expected from the host's
// input loop.
type Controller struct {
	field  Battlefield
	dex    Dex
	stage  Stage
	logger *log.Logger

	machine   *fsm.FSM
	nav       *Navigator
	highlight *Highlighter
	panel     Panel
	cursor    Cursor

	user       battle.Slot
	move       battle.MoveID
	onResolved ResolveFunc
	snapshot   Snapshot
	hasPreview bool

	// remembered across sessions so the next Show can reuse it
	lastCursor battle.Slot
}

// NewController creates an idle controller. Call Setup before the first Show,
// or let Show do it.
func NewController(field Battlefield, dex Dex, stage Stage, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		field:      field,
		dex:        dex,
		stage:      stage,
		logger:     logger,
		nav:        NewNavigator(),
		highlight:  NewHighlighter(stage, opts.Highlight),
		user:       battle.NoSlot,
		lastCursor: battle.NoSlot,
	}

	c.machine = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventShow, Src: []string{string(StateIdle)}, Dst: string(StateActive)},
			{Name: eventConfirm, Src: []string{string(StateActive)}, Dst: string(StateResolved)},
			{Name: eventCancel, Src: []string{string(StateActive)}, Dst: string(StateCancelled)},
			{Name: eventClear, Src: []string{string(StateActive), string(StateResolved), string(StateCancelled)}, Dst: string(StateIdle)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debug("target select", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
	return c
}

// Setup creates the hidden cursor glyph and info panel. Calling it again
// reuses what already exists.
func (c *Controller) Setup() {
	if c.panel == nil {
		c.panel = c.stage.NewPanel()
		c.panel.Hide()
	}
	if c.cursor == nil {
		c.cursor = c.stage.NewCursor()
		c.cursor.Hide()
	}
}

// Show starts a session for the combatant in user choosing move. It returns
// false, without touching any visuals, when the move has no legal targets;
// onResolved is then never called. A nil onResolved is rejected the same
// way.
func (c *Controller) Show(user battle.Slot, move battle.MoveID, onResolved ResolveFunc) bool {
	if onResolved == nil {
		c.logger.Debug("show rejected: nil callback", "user", int(user), "move", move)
		return false
	}
	if c.State() != StateIdle {
		c.Clear()
	}

	targets := c.field.LegalTargets(user, move)
	if !c.nav.Initialize(targets, c.lastCursor) {
		c.logger.Debug("no legal targets", "user", int(user), "move", move)
		return false
	}

	c.Setup()
	c.user = user
	c.move = move
	c.onResolved = onResolved

	c.fire(eventShow)
	c.focus()
	c.placeMoveCursor()

	c.logger.Debug("targets", "move", move, "targets", targets, "cursor", int(c.nav.Cursor()))
	return true
}

// ProcessInput handles one button press and reports whether it changed
// anything. Only an active session accepts input.
func (c *Controller) ProcessInput(b core.Button) bool {
	if c.State() != StateActive {
		return false
	}

	handled := false
	switch b {
	case core.ButtonAction:
		c.resolve(eventConfirm, c.nav.Cursor())
		handled = true
	case core.ButtonCancel:
		c.resolve(eventCancel, battle.NoSlot)
		handled = true
	default:
		dir, ok := directionFor(b)
		if ok && c.nav.Move(dir) {
			c.focus()
			handled = true
		}
	}

	if handled {
		c.stage.PlaySelect()
	}
	return handled
}

// Clear ends any session, restores every visual it touched and returns to
// idle. It is safe to call in any state.
func (c *Controller) Clear() {
	c.highlight.Release()
	if c.panel != nil {
		c.panel.Hide()
	}
	if c.cursor != nil {
		c.cursor.Hide()
	}

	if cur := c.nav.Cursor(); cur != battle.NoSlot {
		c.lastCursor = cur
	}
	c.nav.Reset()
	c.user = battle.NoSlot
	c.move = ""
	c.onResolved = nil
	c.snapshot = Snapshot{}
	c.hasPreview = false

	if c.State() != StateIdle {
		c.fire(eventClear)
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return State(c.machine.Current())
}

// Cursor returns the focused slot, or battle.NoSlot outside a session.
func (c *Controller) Cursor() battle.Slot {
	return c.nav.Cursor()
}

// Targets returns the legal targets of the current session.
func (c *Controller) Targets() []battle.Slot {
	return c.nav.Targets()
}

// Snapshot returns the preview for the focused target.
func (c *Controller) Snapshot() (Snapshot, bool) {
	return c.snapshot, c.hasPreview
}

// Highlighted returns the slot currently flashing.
func (c *Controller) Highlighted() (battle.Slot, bool) {
	return c.highlight.Active()
}

func (c *Controller) focus() {
	slot := c.nav.Cursor()
	c.snapshot = Refresh(c.field, c.dex, c.field.At(c.user), slot, c.move)
	c.hasPreview = true
	c.highlight.Focus(slot)
	c.panel.Show(c.snapshot)
}

// placeMoveCursor marks the chosen move in the user's 2x2 move grid.
func (c *Controller) placeMoveCursor() {
	attacker := c.field.At(c.user)
	if attacker == nil {
		return
	}
	i := attacker.MoveIndex(c.move)
	if i < 0 || i >= 4 {
		c.cursor.Hide()
		return
	}
	c.cursor.ShowAt(i%2, i/2)
}

// resolve transitions out of active before calling back, so the callback
// may Clear or Show on this controller.
func (c *Controller) resolve(event string, target battle.Slot) {
	cb := c.onResolved
	c.onResolved = nil
	c.fire(event)
	c.logger.Debug("resolved", "event", event, "target", int(target))
	if cb != nil {
		cb(target)
	}
}

func (c *Controller) fire(event string) {
	if err := c.machine.Event(context.Background(), event); err != nil {
		c.logger.Error("target select transition", "event", event, "state", c.machine.Current(), "error", err)
	}
}

func directionFor(b core.Button) (Direction, bool) {
	switch b {
	case core.ButtonUp:
		return DirUp, true
	case core.ButtonDown:
		return DirDown, true
	case core.ButtonLeft:
		return DirLeft, true
	case core.ButtonRight:
		return DirRight, true
	}
	return 0, false
}
