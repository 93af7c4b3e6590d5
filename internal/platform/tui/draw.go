package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-skirmish/internal/battle"
	"github.com/vovakirdan/tui-skirmish/internal/core"
	"github.com/vovakirdan/tui-skirmish/internal/targetsel"
)

// Minimum screen size for the battle layout.
const (
	minBattleW = 60
	minBattleH = 18
)

const (
	cardH      = 4
	moveGridH  = 4
	moveGlyph  = '▶'
	actorGlyph = '◆'
)

var tierColors = map[targetsel.Tier]core.Color{
	targetsel.TierNoEffect:  core.ColorGray,
	targetsel.TierQuarter:   core.ColorRed,
	targetsel.TierHalf:      core.ColorOrange,
	targetsel.TierNormal:    core.ColorWhite,
	targetsel.TierDouble:    core.ColorBrightGreen,
	targetsel.TierQuadruple: core.ColorBrightYellow,
}

var tierText = map[targetsel.Tier]string{
	targetsel.TierNoEffect:  "No effect",
	targetsel.TierQuarter:   "Barely effective",
	targetsel.TierHalf:      "Not very effective",
	targetsel.TierNormal:    "Effective",
	targetsel.TierDouble:    "Super effective",
	targetsel.TierQuadruple: "Extremely effective",
}

// TierColor returns the preview color of an effectiveness tier.
func TierColor(t targetsel.Tier) core.Color {
	if c, ok := tierColors[t]; ok {
		return c
	}
	return core.ColorWhite
}

// Draw renders the battlefield, move grid and preview into dst.
func (s *Skirmish) Draw(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < minBattleW || h < minBattleH {
		dst.DrawText(0, 0, fmt.Sprintf("Terminal too small (%dx%d, need %dx%d)", w, h, minBattleW, minBattleH))
		return
	}

	title := fmt.Sprintf("SKIRMISH · %s · turn %d", s.scenario.Title(), s.turn)
	dst.DrawStyled((w-len([]rune(title)))/2, 0, title, core.ColorBrightWhite, 1)

	cardW := core.Min((w-6)/2, 32)
	left := (w - 2*cardW - 2) / 2
	rows := map[battle.Side]int{battle.SideEnemy: 2, battle.SideAlly: 2 + cardH + 1}
	for slot := battle.Slot(0); int(slot) < battle.SlotCount; slot++ {
		x := left
		if slot.Column() == battle.ColumnRight {
			x += cardW + 2
		}
		s.drawCard(dst, slot, core.NewRect(x, rows[slot.Side()], cardW, cardH))
	}

	gridY := rows[battle.SideAlly] + cardH + 1
	gridW := core.Min(w/2-left, 36)
	grid := core.NewRect(left, gridY, gridW, moveGridH)
	info := core.NewRect(left+gridW+1, gridY, core.Min(w-left-gridW-1-left, 36), moveGridH)

	if s.phase == PhaseSummary {
		s.drawSummary(dst, core.NewRect(left, gridY, 2*cardW+2, moveGridH+1))
	} else {
		s.drawMoveGrid(dst, grid)
		s.drawInfo(dst, info)
	}

	if s.message != "" {
		dst.DrawStyled(left, gridY+moveGridH+1, s.message, core.ColorYellow, 1)
	}
}

func (s *Skirmish) drawCard(dst *core.Screen, slot battle.Slot, r core.Rect) {
	alpha := s.stage.Alpha(slot)
	in := r.Inset(1)
	c := s.field.At(slot)
	if c == nil {
		dst.DrawBox(r, core.ColorGray, 0.5)
		dst.DrawStyled(in.X+1, in.Y, "empty", core.ColorGray, 0.5)
		return
	}

	color := core.ColorBrightCyan
	if slot.Side() == battle.SideEnemy {
		color = core.ColorOrange
	}
	if c.Fainted() {
		color = core.ColorGray
	}
	dst.DrawBox(r, color, alpha)

	name := c.Name
	if slot == s.Actor() && s.phase != PhaseSummary {
		name = string(actorGlyph) + " " + name
	}
	dst.DrawStyled(in.X+1, in.Y, name, color, alpha)

	types := make([]string, len(c.Types))
	for i, t := range c.Types {
		types[i] = t.String()
	}
	typeLine := strings.Join(types, "/")
	dst.DrawStyled(in.Right()-1-len(typeLine), in.Y, typeLine, core.ColorGray, alpha)

	if c.Fainted() {
		dst.DrawStyled(in.X+1, in.Y+1, "fainted", core.ColorGray, alpha)
		return
	}
	barW := in.W - 12
	dst.DrawStyled(in.X+1, in.Y+1, hpBar(c.HP, c.MaxHP, barW), hpColor(c.HP, c.MaxHP), alpha)
	dst.DrawStyled(in.Right()-8, in.Y+1, fmt.Sprintf("%3d/%-3d", c.HP, c.MaxHP), color, alpha)
}

func (s *Skirmish) drawMoveGrid(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorWhite, 1)
	c := s.current()
	in := r.Inset(1)
	cellW := (in.W - 2) / 2

	// target selection owns the glyph while active
	markCol, markRow, marked := s.moveCursor%2, s.moveCursor/2, s.phase == PhaseMove
	if s.phase == PhaseTarget {
		if cur := s.stage.Cursor(); cur != nil {
			markCol, markRow, marked = cur.At()
		}
	}

	for i, m := range c.Moves {
		if i >= 4 {
			break
		}
		col, row := i%2, i/2
		x := in.X + 1 + col*cellW
		y := in.Y + row
		name := string(m.ID)
		if mv, err := s.dex.Move(m.ID); err == nil {
			name = mv.Name
		}
		color := core.ColorWhite
		if m.PP == 0 {
			color = core.ColorGray
		}
		if marked && col == markCol && row == markRow {
			dst.SetCell(x-1, y, core.Cell{Rune: moveGlyph, Color: core.ColorBrightYellow, Alpha: 1})
		}
		dst.DrawStyled(x+1, y, fmt.Sprintf("%d %s", i+1, name), color, 1)
	}
}

func (s *Skirmish) drawInfo(dst *core.Screen, r core.Rect) {
	if r.W < 12 {
		return
	}
	dst.DrawBox(r, core.ColorWhite, 1)
	in := r.Inset(1)

	var snap targetsel.Snapshot
	visible := false
	if p := s.stage.Panel(); p != nil {
		snap, visible = p.Visible()
	}

	if !visible {
		c := s.current()
		if s.moveCursor >= len(c.Moves) {
			return
		}
		ms := c.Moves[s.moveCursor]
		m, err := s.dex.Move(ms.ID)
		if err != nil {
			return
		}
		dst.DrawText(in.X+1, in.Y, fit(fmt.Sprintf("%s  %s", m.Type, m.Category), in.W-2))
		dst.DrawText(in.X+1, in.Y+1, fit(fmt.Sprintf("PP %d/%d  %s", ms.PP, ms.MaxPP, m.Target), in.W-2))
		return
	}

	inner := in.W - 2
	dst.DrawText(in.X+1, in.Y, fit(fmt.Sprintf("→ %s  %s  PP %d/%d", snap.TargetName, snap.Type, snap.PP, snap.MaxPP), inner))
	tier := fmt.Sprintf("%s (%s)", tierText[snap.Tier], snap.Tier)
	dst.DrawStyled(in.X+1, in.Y+1, fit(tier, inner), TierColor(snap.Tier), 1)
}

// fit cuts text to at most width runes.
func fit(text string, width int) string {
	r := []rune(text)
	if width <= 0 {
		return ""
	}
	if len(r) > width {
		return string(r[:width])
	}
	return text
}

func (s *Skirmish) drawSummary(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorBrightWhite, 1)
	in := r.Inset(1)
	for i, ch := range s.choices {
		if i >= in.H {
			break
		}
		actor := s.field.At(ch.Actor)
		target := s.field.At(ch.Target)
		name := string(ch.Move)
		if mv, err := s.dex.Move(ch.Move); err == nil {
			name = mv.Name
		}
		line := fmt.Sprintf("%s uses %s on %s", actor.Name, name, target.Name)
		dst.DrawText(in.X+1, in.Y+i, fit(line, in.W-2))
	}
}

func hpBar(hp, maxHP, width int) string {
	if width <= 0 || maxHP <= 0 {
		return ""
	}
	filled := core.Clamp(hp*width/maxHP, 0, width)
	if hp > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func hpColor(hp, maxHP int) core.Color {
	switch {
	case hp*2 > maxHP:
		return core.ColorBrightGreen
	case hp*5 > maxHP:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}
