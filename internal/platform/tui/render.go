package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-skirmish/internal/core"
)

// alphaLevels is how finely partial opacity is quantized. Adjacent cells in
// the same bucket share one escape sequence.
const alphaLevels = 16

// background is what a transparent cell fades into.
var background = colorful.Color{R: 0, G: 0, B: 0}

// colorStyles maps core.Color to lipgloss styles for fully opaque cells.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// quantize maps an opacity to its bucket; alphaLevels means opaque.
func quantize(alpha float64) int {
	return int(math.Round(core.ClampF(alpha, 0, 1) * alphaLevels))
}

// BlendHex returns the hex color of c drawn at the given opacity over the
// background.
func BlendHex(c core.Color, alpha float64) string {
	fg, err := colorful.Hex(c.Hex())
	if err != nil {
		return c.Hex()
	}
	return background.BlendRgb(fg, core.ClampF(alpha, 0, 1)).Clamped().Hex()
}

func styleFor(c core.Color, level int) lipgloss.Style {
	if level >= alphaLevels {
		if style, ok := colorStyles[c]; ok {
			return style
		}
		return colorStyles[core.ColorDefault]
	}
	hex := BlendHex(c, float64(level)/alphaLevels)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color and opacity to minimize ANSI
// escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color
			startLevel := quantize(cell.Alpha)

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor || quantize(cell.Alpha) != startLevel {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor, startLevel).Render(run.String()))
		}
	}
	return sb.String()
}
