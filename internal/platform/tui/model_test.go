package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/registry"
)

func newTestModel(t *testing.T, id string) BattleModel {
	t.Helper()
	sc, err := registry.Create(id)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewBattleModel(sc, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, BattleOptions{})
	if err != nil {
		t.Fatalf("NewBattleModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m BattleModel, msg tea.Msg) (BattleModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	bm, ok := next.(BattleModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return bm, cmd
}

func TestBattleModelKeys(t *testing.T) {
	m := newTestModel(t, "doubles")

	m, _ = update(t, m, runeKey("1"))
	if m.Skirmish().Phase() != PhaseTarget {
		t.Fatalf("number key should open target selection, phase = %v", m.Skirmish().Phase())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Skirmish().Controller().Cursor() != 2 {
		t.Errorf("cursor = %d, expected 2", m.Skirmish().Controller().Cursor())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Skirmish().Actor() != 1 {
		t.Errorf("enter should confirm and move to the next actor")
	}

	view := m.View()
	if !strings.Contains(view, "Charizard") {
		t.Error("View() missing the battlefield")
	}

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestBattleModelBack(t *testing.T) {
	m := newTestModel(t, "duel")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() || cmd == nil {
		t.Error("esc on the first move menu should quit a standalone battle")
	}

	m = newTestModel(t, "duel")
	m.embedded = true
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc in an embedded battle should go back to the menu")
	}
}

func TestBattleModelTickAndResize(t *testing.T) {
	m := newTestModel(t, "doubles")
	if m.Init() == nil {
		t.Fatal("Init() should schedule a tick")
	}

	m.Skirmish().ChooseMove(0)
	start := time.Now()
	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Error("tick should schedule the next frame")
	}
	m, _ = update(t, m, TickMsg(start.Add(80*time.Millisecond)))

	focused := m.Skirmish().Controller().Cursor()
	if a := m.Skirmish().Stage().Alpha(focused); a >= 1 {
		t.Errorf("focused slot alpha = %v after ticking", a)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpLines {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionModelFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, BattleOptions{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := m.(SessionModel)
	if sm.battle == nil {
		t.Fatalf("enter on the menu should start a battle, error: %q", sm.lastError)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm = m.(SessionModel)
	if sm.battle != nil || sm.quitting {
		t.Fatal("backing out of the battle should return to the menu")
	}
	if !strings.Contains(sm.View(), "S K I R M I S H") {
		t.Error("menu not shown after the battle")
	}

	m, cmd := m.Update(runeKey("q"))
	if !m.(SessionModel).quitting || cmd == nil {
		t.Error("q on the menu should quit the session")
	}
}
