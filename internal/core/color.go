package core

// Color is a symbolic foreground color for a screen cell.
// The TUI maps it to ANSI codes, the window frontend to RGBA.
type Color uint8

// Palette shared by games and frontends.
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
	ColorDarkGreen
	ColorBrown
	ColorPink
	ColorBlack
)
