package targetsel

import (
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/anim"
	"github.com/vovakirdan/tui-skirmish/internal/battle"
)

// HighlightOptions configures the flashing of the focused target.
type HighlightOptions struct {
	Period   time.Duration // one fade leg; the yoyo doubles it
	MinAlpha float64
	Ease     anim.Ease
}

// DefaultHighlightOptions returns a 250ms sine-in fade to fully transparent.
func DefaultHighlightOptions() HighlightOptions {
	return HighlightOptions{
		Period:   250 * time.Millisecond,
		MinAlpha: 0,
		Ease:     anim.SineIn,
	}
}

// Highlighter flashes at most one slot at a time. Whatever slot it last
// touched is put back to full opacity before anything else is animated and
// when the highlighter is released.
type Highlighter struct {
	stage   Stage
	spec    anim.Spec
	active  Animation
	slot    battle.Slot
	focused bool
}

// NewHighlighter creates an idle highlighter drawing on stage.
func NewHighlighter(stage Stage, opts HighlightOptions) *Highlighter {
	if opts.Period <= 0 {
		opts.Period = DefaultHighlightOptions().Period
	}
	if opts.Ease == nil {
		opts.Ease = anim.SineIn
	}
	return &Highlighter{
		stage: stage,
		slot:  battle.NoSlot,
		spec: anim.Spec{
			From:     1,
			To:       opts.MinAlpha,
			Duration: opts.Period,
			Loop:     anim.LoopForever,
			Yoyo:     true,
			Ease:     opts.Ease,
		},
	}
}

// Focus moves the flash to s. Focusing the slot already flashing restarts
// its animation.
func (h *Highlighter) Focus(s battle.Slot) {
	h.restore()

	h.slot = s
	h.focused = true
	h.active = h.stage.Animate(h.spec, func(v float64) {
		h.stage.SetAlpha(s, v)
	})
}

// Release stops the flash and restores the last focused slot.
// It is a no-op when nothing is focused.
func (h *Highlighter) Release() {
	h.restore()
	h.slot = battle.NoSlot
	h.focused = false
}

// Active returns the flashing slot.
func (h *Highlighter) Active() (battle.Slot, bool) {
	return h.slot, h.focused
}

func (h *Highlighter) restore() {
	if h.active != nil {
		h.active.Stop()
		h.active = nil
	}
	if h.focused {
		h.stage.SetAlpha(h.slot, 1)
	}
}
