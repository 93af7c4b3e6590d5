package targetsel

import (
	"testing"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
)

func TestNavigatorInitialize(t *testing.T) {
	tests := []struct {
		name     string
		targets  []battle.Slot
		previous battle.Slot
		ok       bool
		cursor   battle.Slot
	}{
		{"empty set", nil, 0, false, battle.NoSlot},
		{"unset previous", []battle.Slot{2, 3}, battle.NoSlot, true, 2},
		{"previous kept", []battle.Slot{1, 2, 3}, 3, true, 3},
		{"previous not legal", []battle.Slot{3, 2}, 0, true, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNavigator()
			if ok := n.Initialize(tc.targets, tc.previous); ok != tc.ok {
				t.Fatalf("Initialize() = %v, expected %v", ok, tc.ok)
			}
			if n.Cursor() != tc.cursor {
				t.Errorf("Cursor() = %d, expected %d", n.Cursor(), tc.cursor)
			}
		})
	}
}

func TestNavigatorInitializeCopiesTargets(t *testing.T) {
	targets := []battle.Slot{2, 3}
	n := NewNavigator()
	n.Initialize(targets, battle.NoSlot)
	targets[1] = 0

	if n.Contains(0) || !n.Contains(3) {
		t.Error("navigator should keep its own copy of the target set")
	}
}

func TestNavigatorMove(t *testing.T) {
	tests := []struct {
		name    string
		targets []battle.Slot
		start   battle.Slot
		dir     Direction
		changed bool
		cursor  battle.Slot
	}{
		{"up picks first enemy in set order", []battle.Slot{0, 2, 3}, 0, DirUp, true, 2},
		{"up follows set order not geometry", []battle.Slot{1, 3, 2}, 1, DirUp, true, 3},
		{"up from enemy side is a no-op", []battle.Slot{0, 2, 3}, 2, DirUp, false, 2},
		{"up without enemy targets", []battle.Slot{0, 1}, 0, DirUp, false, 0},
		{"down picks first ally", []battle.Slot{2, 1, 0}, 2, DirDown, true, 1},
		{"down from ally side is a no-op", []battle.Slot{1, 3}, 1, DirDown, false, 1},
		{"down without ally targets", []battle.Slot{2, 3}, 3, DirDown, false, 3},
		{"right from left column", []battle.Slot{2, 3}, 2, DirRight, true, 3},
		{"right from right column", []battle.Slot{2, 3}, 3, DirRight, false, 3},
		{"right to illegal neighbour", []battle.Slot{0, 2}, 0, DirRight, false, 0},
		{"left from right column", []battle.Slot{0, 1}, 1, DirLeft, true, 0},
		{"left from left column", []battle.Slot{0, 1}, 0, DirLeft, false, 0},
		{"left to illegal neighbour", []battle.Slot{1, 2}, 1, DirLeft, false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNavigator()
			n.Initialize(tc.targets, tc.start)
			if n.Cursor() != tc.start {
				t.Fatalf("setup: cursor = %d, expected %d", n.Cursor(), tc.start)
			}
			if changed := n.Move(tc.dir); changed != tc.changed {
				t.Errorf("Move(%v) = %v, expected %v", tc.dir, changed, tc.changed)
			}
			if n.Cursor() != tc.cursor {
				t.Errorf("Cursor() = %d, expected %d", n.Cursor(), tc.cursor)
			}
		})
	}
}

func TestNavigatorRowToggle(t *testing.T) {
	n := NewNavigator()
	n.Initialize([]battle.Slot{1, 3}, 1)

	if !n.Move(DirUp) || n.Cursor() != 3 {
		t.Fatalf("up from 1 should land on 3, got %d", n.Cursor())
	}
	if n.Move(DirUp) {
		t.Error("up from the enemy side should be illegal")
	}
	if !n.Move(DirDown) || n.Cursor() != 1 {
		t.Errorf("down from 3 should return to 1, got %d", n.Cursor())
	}
}

func TestNavigatorTieBreakIsStable(t *testing.T) {
	for i := 0; i < 50; i++ {
		n := NewNavigator()
		n.Initialize([]battle.Slot{0, 2, 3}, 0)
		n.Move(DirUp)
		if n.Cursor() != 2 {
			t.Fatalf("iteration %d: up landed on %d, expected 2", i, n.Cursor())
		}
	}
}

func TestNavigatorMoveBeforeInitialize(t *testing.T) {
	n := NewNavigator()
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if n.Move(d) {
			t.Errorf("Move(%v) before Initialize should be a no-op", d)
		}
	}
}

// permutations returns every ordering of every non-empty subset of the field.
func permutations() [][]battle.Slot {
	var result [][]battle.Slot
	var build func(prefix []battle.Slot, used [battle.SlotCount]bool)
	build = func(prefix []battle.Slot, used [battle.SlotCount]bool) {
		if len(prefix) > 0 {
			result = append(result, append([]battle.Slot(nil), prefix...))
		}
		for s := battle.Slot(0); int(s) < battle.SlotCount; s++ {
			if used[s] {
				continue
			}
			used[s] = true
			build(append(prefix, s), used)
			used[s] = false
		}
	}
	build(nil, [battle.SlotCount]bool{})
	return result
}

func TestNavigatorCursorStaysLegal(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	for _, targets := range permutations() {
		// Every input sequence of length 5, encoded in base 4
		for code := 0; code < 1024; code++ {
			n := NewNavigator()
			n.Initialize(targets, battle.NoSlot)
			c := code
			for step := 0; step < 5; step++ {
				n.Move(dirs[c%4])
				c /= 4
				if !n.Contains(n.Cursor()) {
					t.Fatalf("targets %v, sequence %d: cursor %d left the legal set", targets, code, n.Cursor())
				}
			}
		}
	}
}
