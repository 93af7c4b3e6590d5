package battle

import "testing"

func TestSlotTopology(t *testing.T) {
	tests := []struct {
		slot     Slot
		side     Side
		column   Column
		neighbor Slot
	}{
		{0, SideAlly, ColumnLeft, 1},
		{1, SideAlly, ColumnRight, 0},
		{2, SideEnemy, ColumnLeft, 3},
		{3, SideEnemy, ColumnRight, 2},
	}

	for _, tc := range tests {
		if got := tc.slot.Side(); got != tc.side {
			t.Errorf("Slot(%d).Side() = %v, expected %v", tc.slot, got, tc.side)
		}
		if got := tc.slot.Column(); got != tc.column {
			t.Errorf("Slot(%d).Column() = %v, expected %v", tc.slot, got, tc.column)
		}
		if got := tc.slot.HorizontalNeighbor(); got != tc.neighbor {
			t.Errorf("Slot(%d).HorizontalNeighbor() = %d, expected %d", tc.slot, got, tc.neighbor)
		}
		if got := SlotFor(tc.side, tc.column); got != tc.slot {
			t.Errorf("SlotFor(%v, %v) = %d, expected %d", tc.side, tc.column, got, tc.slot)
		}
	}
}

func TestSlotValid(t *testing.T) {
	for _, s := range []Slot{NoSlot, 4, 10} {
		if s.Valid() {
			t.Errorf("Slot(%d) should be invalid", s)
		}
	}
	for s := Slot(0); int(s) < SlotCount; s++ {
		if !s.Valid() {
			t.Errorf("Slot(%d) should be valid", s)
		}
	}
}
