package anim

import (
	"math"
	"testing"
	"time"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestEases(t *testing.T) {
	for _, name := range []string{"linear", "sine-in", "sine-out", "sine-in-out", "Sine-In", ""} {
		e, err := ParseEase(name)
		if err != nil {
			t.Fatalf("ParseEase(%q) failed: %v", name, err)
		}
		start, end := e(0, 0, 1, 1), e(1, 0, 1, 1)
		if !near(float64(start), 0) || !near(float64(end), 1) {
			t.Errorf("%q should map 0->0 and 1->1, got %v and %v", name, start, end)
		}
	}
	if v := SineIn(0.5, 0, 1, 1); v >= 0.5 {
		t.Errorf("SineIn at half time = %v, expected slower than linear", v)
	}
	if _, err := ParseEase("bounce"); err == nil {
		t.Error("ParseEase should reject unknown eases")
	}
}

func TestTweenStartsAtFrom(t *testing.T) {
	e := NewEngine()
	var got []float64
	e.Start(Spec{From: 1, To: 0, Duration: 100 * time.Millisecond}, func(v float64) {
		got = append(got, v)
	})

	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected an immediate update with From, got %v", got)
	}
}

func TestTweenFiniteCompletes(t *testing.T) {
	e := NewEngine()
	tw := e.Start(Spec{From: 0, To: 10, Duration: 100 * time.Millisecond}, nil)

	e.Advance(50 * time.Millisecond)
	if !near(tw.Value(), 5) {
		t.Errorf("halfway value = %v, expected 5", tw.Value())
	}
	if tw.Done() {
		t.Error("tween finished early")
	}

	e.Advance(60 * time.Millisecond)
	if !tw.Done() || tw.Value() != 10 {
		t.Errorf("tween should finish at To, done=%v value=%v", tw.Done(), tw.Value())
	}
	if e.Active() != 0 {
		t.Errorf("finished tween should be dropped, active=%d", e.Active())
	}
}

func TestTweenYoyoForever(t *testing.T) {
	e := NewEngine()
	tw := e.Start(Spec{From: 1, To: 0, Duration: 250 * time.Millisecond, Loop: LoopForever, Yoyo: true, Ease: SineIn}, nil)

	e.Advance(125 * time.Millisecond)
	if v := tw.Value(); v <= 0 || v >= 1 {
		t.Errorf("forward leg midpoint = %v, expected strictly between 0 and 1", v)
	}

	// Track the value for two seconds: it must reach the bottom and come
	// back up, and never leave the range.
	bottomed, recovered := false, false
	for i := 0; i < 200; i++ {
		e.Advance(10 * time.Millisecond)
		v := tw.Value()
		if v < -1e-6 || v > 1+1e-6 {
			t.Fatalf("value out of range: %v", v)
		}
		if v < 0.05 {
			bottomed = true
		}
		if bottomed && v > 0.95 {
			recovered = true
		}
	}
	if !bottomed || !recovered {
		t.Errorf("yoyo did not oscillate: bottomed=%v recovered=%v", bottomed, recovered)
	}
	if tw.Done() || e.Active() != 1 {
		t.Error("infinite tween should keep running")
	}
}

func TestTweenStop(t *testing.T) {
	e := NewEngine()
	calls := 0
	tw := e.Start(Spec{From: 1, To: 0, Duration: time.Second, Loop: LoopForever}, func(float64) { calls++ })

	tw.Stop()
	tw.Stop()
	e.Advance(100 * time.Millisecond)

	if calls != 1 {
		t.Errorf("stopped tween should not update, got %d calls", calls)
	}
	if e.Active() != 0 {
		t.Errorf("stopped tween should be dropped, active=%d", e.Active())
	}
}

func TestTweenZeroDuration(t *testing.T) {
	e := NewEngine()
	tw := e.Start(Spec{From: 3, To: 7}, nil)
	e.Advance(time.Millisecond)
	if !tw.Done() || tw.Value() != 7 {
		t.Errorf("zero-duration tween should jump to To, got %v", tw.Value())
	}
}
