package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Alpha != 1 {
				t.Fatalf("new screen should be opaque spaces, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCellClampsAlpha(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetCell(1, 1, Cell{Rune: 'X', Color: ColorRed, Alpha: 3})
	if got := s.GetCell(1, 1); got.Alpha != 1 || got.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red with alpha 1", got)
	}

	s.SetCell(2, 2, Cell{Rune: 'Y', Alpha: -1})
	if got := s.GetCell(2, 2).Alpha; got != 0 {
		t.Errorf("negative alpha should clamp to 0, got %v", got)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})
	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawStyled(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawStyled(7, 0, "Hello", ColorCyan, 0.5)

	if s.Row(0) != "       Hel" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if c := s.GetCell(8, 0); c.Color != ColorCyan || c.Alpha != 0.5 {
		t.Errorf("GetCell(8, 0) = %+v, expected cyan at half alpha", c)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray, 1)

	if s.GetCell(1, 1).Rune != '┌' || s.GetCell(5, 1).Rune != '┐' || s.GetCell(1, 4).Rune != '└' || s.GetCell(5, 4).Rune != '┘' {
		t.Error("box corners not drawn")
	}
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	if s.GetCell(1, 2).Color != ColorGray {
		t.Error("box should use the given color")
	}
}

func TestScreenResizeAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if s.String() != "abc\ndef" {
		t.Errorf("String() = %q", s.String())
	}

	s.Resize(5, 1)
	if s.Width() != 5 || s.Height() != 1 {
		t.Fatalf("resize failed: %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("resized screen should be blank, got %q", s.Row(0))
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 3)
	b := s.Bounds()
	if b != NewRect(0, 0, 4, 3) {
		t.Fatalf("Bounds() = %+v", b)
	}

	s.SetCell(3, 2, Cell{Rune: 'z', Alpha: 1})
	s.SetCell(4, 2, Cell{Rune: 'z', Alpha: 1})
	if s.GetCell(3, 2).Rune != 'z' {
		t.Error("last cell inside the bounds should be writable")
	}
	if s.String() != "    \n    \n   z" {
		t.Errorf("String() = %q, write outside the bounds leaked", s.String())
	}
}
