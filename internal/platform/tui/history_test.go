package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-skirmish/internal/storage"
)

func TestHistoryRows(t *testing.T) {
	at := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	rows := HistoryRows([]storage.Selection{
		{ActorName: "Pikachu", MoveID: "thunderbolt", Target: 2, TargetName: "Gyarados", Multiplier: 4, CreatedAt: at},
		{ActorName: "Charizard", MoveID: "tailwind", Target: storage.CancelledTarget, CreatedAt: at},
	})

	expected := [][]string{
		{"Pikachu", "thunderbolt", "Gyarados", "x4", "Mar 04 15:30"},
		{"Charizard", "tailwind", "(cancel)", "-", "Mar 04 15:30"},
	}
	for i, want := range expected {
		for j := range want {
			if rows[i][j] != want[j] {
				t.Errorf("row %d col %d = %q, expected %q", i, j, rows[i][j], want[j])
			}
		}
	}
}

func TestHistorySidebarTotals(t *testing.T) {
	store := openStore(t)
	for _, sel := range []storage.Selection{
		{ScenarioID: "doubles", ActorName: "Pikachu", MoveID: "thunderbolt", Target: 2, TargetName: "Gyarados", Multiplier: 4},
		{ScenarioID: "doubles", ActorName: "Charizard", MoveID: "flamethrower", Target: 3, TargetName: "Garchomp", Multiplier: 0.5},
		{ScenarioID: "doubles", ActorName: "Charizard", MoveID: "tailwind", Target: storage.CancelledTarget},
		{ScenarioID: "duel", ActorName: "Blastoise", MoveID: "surf", Target: 2, TargetName: "Venusaur", Multiplier: 0.5},
	} {
		if _, err := store.SaveSelection(sel); err != nil {
			t.Fatal(err)
		}
	}

	m := NewHistoryModel(store, 120, 30)
	view := m.View()
	for _, want := range []string{"Doubles          2", "Duel             1", "Outnumbered      0"} {
		if !strings.Contains(view, want) {
			t.Errorf("sidebar missing %q:\n%s", want, view)
		}
	}

	narrow := NewHistoryModel(store, 60, 30)
	if strings.Contains(narrow.View(), "Doubles          2") {
		t.Error("sidebar should be hidden on narrow screens")
	}
}
