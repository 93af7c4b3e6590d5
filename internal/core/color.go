package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for battle elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// colorHex holds the sRGB value the renderer blends from when a cell is
// drawn with partial opacity. Values follow the xterm palette.
var colorHex = map[Color]string{
	ColorDefault:       "#d0d0d0",
	ColorRed:           "#800000",
	ColorGreen:         "#008000",
	ColorYellow:        "#808000",
	ColorBlue:          "#000080",
	ColorMagenta:       "#800080",
	ColorCyan:          "#008080",
	ColorWhite:         "#c0c0c0",
	ColorBrightRed:     "#ff0000",
	ColorBrightGreen:   "#00ff00",
	ColorBrightYellow:  "#ffff00",
	ColorBrightBlue:    "#5f87ff",
	ColorBrightMagenta: "#ff00ff",
	ColorBrightCyan:    "#00ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8700",
	ColorGray:          "#8a8a8a",
}

// Hex returns the color as an sRGB hex string ("#rrggbb").
func (c Color) Hex() string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return colorHex[ColorDefault]
}
