package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
	_ "github.com/vovakirdan/tui-skirmish/internal/scenario"
	"github.com/vovakirdan/tui-skirmish/internal/storage"
	"github.com/vovakirdan/tui-skirmish/internal/targetsel"
)

type countingSounder struct{ n int }

func (c *countingSounder) PlaySelect() { c.n++ }

func newTestSkirmish(t *testing.T, id string, opts BattleOptions) *Skirmish {
	t.Helper()
	sc, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%s) failed: %v", id, err)
	}
	sk, err := NewSkirmish(sc, opts)
	if err != nil {
		t.Fatalf("NewSkirmish() failed: %v", err)
	}
	return sk
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSkirmishPlansTurn(t *testing.T) {
	store := openStore(t)
	sound := &countingSounder{}
	sk := newTestSkirmish(t, "doubles", BattleOptions{Store: store, Sound: sound})

	if sk.Phase() != PhaseMove || sk.Actor() != 0 {
		t.Fatalf("start: phase %v actor %d", sk.Phase(), sk.Actor())
	}

	// Pikachu: thunderbolt, aimed at Gyarados
	sk.ChooseMove(0)
	if sk.Phase() != PhaseTarget {
		t.Fatalf("phase = %v, expected target selection", sk.Phase())
	}
	if col, row, ok := sk.Stage().Cursor().At(); !ok || col != 0 || row != 0 {
		t.Errorf("move cursor at (%d, %d) visible=%v", col, row, ok)
	}
	sk.Press(core.ButtonUp)
	if sk.Controller().Cursor() != 2 {
		t.Fatalf("cursor = %d, expected 2", sk.Controller().Cursor())
	}
	sk.Press(core.ButtonAction)

	if sk.Phase() != PhaseMove || sk.Actor() != 1 {
		t.Fatalf("after confirm: phase %v actor %d", sk.Phase(), sk.Actor())
	}

	// Charizard: tailwind, then back out
	sk.Press(core.ButtonRight)
	sk.Press(core.ButtonAction)
	if sk.Phase() != PhaseTarget {
		t.Fatalf("tailwind should open target selection")
	}
	if got := sk.Controller().Targets(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("tailwind targets = %v, expected [0 1]", got)
	}
	sk.Press(core.ButtonCancel)
	if sk.Phase() != PhaseMove || sk.Actor() != 1 {
		t.Fatalf("cancel should return to Charizard's moves: phase %v actor %d", sk.Phase(), sk.Actor())
	}

	// Charizard: flamethrower at Garchomp
	sk.ChooseMove(0)
	sk.Press(core.ButtonUp)
	sk.Press(core.ButtonRight)
	sk.Press(core.ButtonAction)

	if sk.Phase() != PhaseSummary {
		t.Fatalf("phase = %v, expected summary", sk.Phase())
	}
	expected := []Choice{
		{Actor: 0, Move: "thunderbolt", Target: 2},
		{Actor: 1, Move: "flamethrower", Target: 3},
	}
	choices := sk.Choices()
	if len(choices) != len(expected) {
		t.Fatalf("Choices() = %v", choices)
	}
	for i := range expected {
		if choices[i] != expected[i] {
			t.Errorf("choice %d = %+v, expected %+v", i, choices[i], expected[i])
		}
	}
	if sound.n == 0 {
		t.Error("select sound never played")
	}

	history, err := store.RecentSelections("doubles", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 3 {
		t.Fatalf("stored %d selections, expected 3", len(history))
	}
	if !history[1].Cancelled() || history[1].MoveID != "tailwind" {
		t.Errorf("cancel not recorded: %+v", history[1])
	}
	if history[2].TargetName != "Gyarados" || history[2].Multiplier != 4 {
		t.Errorf("first selection = %+v", history[2])
	}

	sk.Press(core.ButtonAction)
	if sk.Turn() != 2 || sk.Phase() != PhaseMove || sk.Actor() != 0 || len(sk.Choices()) != 0 {
		t.Errorf("commit did not start a new turn")
	}
	if pp := sk.Field().At(0).Moves[0].PP; pp != 14 {
		t.Errorf("thunderbolt PP = %d, expected 14", pp)
	}
}

func TestSkirmishNoTargets(t *testing.T) {
	sk := newTestSkirmish(t, "aftermath", BattleOptions{})

	// Snorlax's helping hand has no standing ally
	sk.ChooseMove(2)

	if sk.Phase() != PhaseMove {
		t.Errorf("phase = %v, expected to stay on the move menu", sk.Phase())
	}
	if !strings.Contains(sk.Message(), "no target") {
		t.Errorf("Message() = %q", sk.Message())
	}
	if sk.Controller().State() != targetsel.StateIdle {
		t.Errorf("controller state = %v", sk.Controller().State())
	}
	if p := sk.Stage().Panel(); p != nil {
		if _, visible := p.Visible(); visible {
			t.Error("panel shown for a move without targets")
		}
	}
	for s := battle.Slot(0); int(s) < battle.SlotCount; s++ {
		if sk.Stage().Alpha(s) != 1 {
			t.Errorf("slot %d alpha = %v", s, sk.Stage().Alpha(s))
		}
	}
}

func TestSkirmishUndoAndBack(t *testing.T) {
	sk := newTestSkirmish(t, "doubles", BattleOptions{})

	if !sk.Press(core.ButtonCancel) {
		t.Error("cancel on the first actor's menu should report back")
	}

	sk.ChooseMove(1) // fake out
	sk.Press(core.ButtonAction)
	if sk.Actor() != 1 {
		t.Fatalf("actor = %d, expected 1", sk.Actor())
	}

	if sk.Press(core.ButtonCancel) {
		t.Error("cancel with a choice to undo should not report back")
	}
	if sk.Actor() != 0 || len(sk.Choices()) != 0 {
		t.Errorf("undo failed: actor %d, choices %v", sk.Actor(), sk.Choices())
	}
	if sk.moveCursor != 1 {
		t.Errorf("undo should restore the move cursor, got %d", sk.moveCursor)
	}
}

func TestSkirmishHighlightFollowsCursor(t *testing.T) {
	sk := newTestSkirmish(t, "doubles", BattleOptions{Highlight: targetsel.DefaultHighlightOptions()})
	sk.ChooseMove(0)

	for _, b := range []core.Button{core.ButtonUp, core.ButtonRight, core.ButtonLeft} {
		sk.Press(b)
		for i := 0; i < 6; i++ {
			sk.Tick(16 * time.Millisecond)
		}
		cur := sk.Controller().Cursor()
		for s := battle.Slot(0); int(s) < battle.SlotCount; s++ {
			a := sk.Stage().Alpha(s)
			if s == cur && a >= 1 {
				t.Errorf("focused slot %d not flashing", s)
			}
			if s != cur && a != 1 {
				t.Errorf("slot %d left at alpha %v", s, a)
			}
		}
	}

	sk.Close()
	for s := battle.Slot(0); int(s) < battle.SlotCount; s++ {
		if sk.Stage().Alpha(s) != 1 {
			t.Errorf("slot %d alpha = %v after Close", s, sk.Stage().Alpha(s))
		}
	}
}

func TestSkirmishMoveGridNavigation(t *testing.T) {
	sk := newTestSkirmish(t, "doubles", BattleOptions{})
	steps := []struct {
		b        core.Button
		expected int
	}{
		{core.ButtonLeft, 0},
		{core.ButtonUp, 0},
		{core.ButtonRight, 1},
		{core.ButtonRight, 1},
		{core.ButtonDown, 3},
		{core.ButtonLeft, 2},
		{core.ButtonDown, 2},
		{core.ButtonUp, 0},
	}
	for i, st := range steps {
		sk.Press(st.b)
		if sk.moveCursor != st.expected {
			t.Fatalf("step %d (%v): move cursor = %d, expected %d", i, st.b, sk.moveCursor, st.expected)
		}
	}
}

func TestSkirmishDraw(t *testing.T) {
	sk := newTestSkirmish(t, "doubles", BattleOptions{})
	screen := core.NewScreen(80, 22)

	sk.Draw(screen)
	text := screen.String()
	for _, want := range []string{"Pikachu", "Charizard", "Gyarados", "Garchomp", "Thunderbolt", "Helping Hand"} {
		if !strings.Contains(text, want) {
			t.Errorf("battle screen missing %q", want)
		}
	}

	// card text sits one cell inside the border
	if row := screen.Row(8); !strings.Contains(row, "│ ◆ Pikachu") {
		t.Errorf("actor card row = %q", row)
	}
	if row := screen.Row(13); !strings.Contains(row, "│▶ 1 Thunderbolt") {
		t.Errorf("move grid row = %q", row)
	}

	sk.ChooseMove(0)
	sk.Press(core.ButtonUp)
	sk.Draw(screen)
	if text := screen.String(); !strings.Contains(text, "Extremely effective") || !strings.Contains(text, "▶") {
		t.Errorf("target preview not drawn:\n%s", text)
	}

	small := core.NewScreen(30, 10)
	sk.Draw(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small terminal message missing")
	}
}

func TestHPBar(t *testing.T) {
	tests := []struct {
		hp, maxHP, width int
		expected         string
	}{
		{100, 100, 4, "████"},
		{50, 100, 4, "██░░"},
		{1, 100, 4, "█░░░"},
		{0, 100, 4, "░░░░"},
		{10, 0, 4, ""},
	}
	for _, tt := range tests {
		if got := hpBar(tt.hp, tt.maxHP, tt.width); got != tt.expected {
			t.Errorf("hpBar(%d, %d, %d) = %q, expected %q", tt.hp, tt.maxHP, tt.width, got, tt.expected)
		}
	}
}
