// Package anim drives gween tweens from the host's frame loop.
//
// Tweens never run on their own goroutine: the host advances the engine from
// its per-frame tick, and every value change is delivered synchronously to
// the tween's update callback.
package anim

import (
	"fmt"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ease is a gween easing function.
type Ease = ease.TweenFunc

// Eases selectable from config.
var (
	Linear    Ease = ease.Linear
	SineIn    Ease = ease.InSine
	SineOut   Ease = ease.OutSine
	SineInOut Ease = ease.InOutSine
)

// ParseEase returns the ease with the given config name.
func ParseEase(name string) (Ease, error) {
	switch strings.ToLower(name) {
	case "", "linear":
		return Linear, nil
	case "sine-in":
		return SineIn, nil
	case "sine-out":
		return SineOut, nil
	case "sine-in-out":
		return SineInOut, nil
	}
	return nil, fmt.Errorf("anim: unknown ease %q", name)
}

// LoopForever repeats a tween until it is stopped.
const LoopForever = -1

// Spec describes a tween of one float value.
type Spec struct {
	From     float64
	To       float64
	Duration time.Duration // one leg, From to To
	Loop     int           // sequence loop count; LoopForever for infinite, 0 plays once
	Yoyo     bool          // alternate direction on every loop
	Ease     Ease
}

// Tween is a running animation started by an Engine.
type Tween struct {
	once     *gween.Tween
	seq      *gween.Sequence
	value    float64
	done     bool
	onUpdate func(v float64)
}

func newTween(spec Spec, onUpdate func(v float64)) *Tween {
	t := &Tween{onUpdate: onUpdate}
	if spec.Duration <= 0 {
		return t
	}
	e := spec.Ease
	if e == nil {
		e = Linear
	}
	leg := gween.New(float32(spec.From), float32(spec.To), float32(spec.Duration.Seconds()), e)
	if spec.Loop == 0 && !spec.Yoyo {
		t.once = leg
		return t
	}
	t.seq = gween.NewSequence(leg)
	t.seq.SetLoop(spec.Loop)
	t.seq.SetYoyo(spec.Yoyo)
	return t
}

// Value returns the current animated value.
func (t *Tween) Value() float64 {
	return t.value
}

// Done reports whether the tween finished or was stopped.
func (t *Tween) Done() bool {
	return t.done
}

// Stop ends the tween without a final update. Stopping twice is harmless.
func (t *Tween) Stop() {
	t.done = true
}

func (t *Tween) set(v float64) {
	t.value = v
	if t.onUpdate != nil {
		t.onUpdate(v)
	}
}

func (t *Tween) advance(dt time.Duration, to float64) {
	if t.done {
		return
	}
	step := float32(dt.Seconds())
	switch {
	case t.seq != nil:
		v, _, finished := t.seq.Update(step)
		t.set(float64(v))
		t.done = finished
	case t.once != nil:
		v, finished := t.once.Update(step)
		t.set(float64(v))
		t.done = finished
	default:
		// zero duration
		t.set(to)
		t.done = true
	}
}

// Engine owns the set of running tweens.
type Engine struct {
	tweens []running
}

type running struct {
	tween *Tween
	to    float64
}

// NewEngine creates an engine with no running tweens.
func NewEngine() *Engine {
	return &Engine{}
}

// Start begins a tween and immediately reports its starting value.
func (e *Engine) Start(spec Spec, onUpdate func(v float64)) *Tween {
	t := newTween(spec, onUpdate)
	t.set(spec.From)
	e.tweens = append(e.tweens, running{tween: t, to: spec.To})
	return t
}

// Advance moves every running tween forward by dt and drops finished ones.
func (e *Engine) Advance(dt time.Duration) {
	live := e.tweens[:0]
	for _, r := range e.tweens {
		r.tween.advance(dt, r.to)
		if !r.tween.done {
			live = append(live, r)
		}
	}
	for i := len(live); i < len(e.tweens); i++ {
		e.tweens[i] = running{}
	}
	e.tweens = live
}

// Active returns the number of tweens still running.
func (e *Engine) Active() int {
	n := 0
	for _, r := range e.tweens {
		if !r.tween.done {
			n++
		}
	}
	return n
}
