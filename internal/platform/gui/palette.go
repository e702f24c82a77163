package gui

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// palette maps the symbolic cell colors onto window colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.Whitesmoke,
	core.ColorRed:           colornames.Firebrick,
	core.ColorGreen:         colornames.Forestgreen,
	core.ColorYellow:        colornames.Goldenrod,
	core.ColorBlue:          colornames.Royalblue,
	core.ColorMagenta:       colornames.Mediumorchid,
	core.ColorCyan:          colornames.Darkcyan,
	core.ColorWhite:         colornames.Gainsboro,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Limegreen,
	core.ColorBrightYellow:  colornames.Gold,
	core.ColorBrightBlue:    colornames.Deepskyblue,
	core.ColorBrightMagenta: colornames.Magenta,
	core.ColorBrightCyan:    colornames.Lightskyblue,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Sandybrown,
	core.ColorGray:          colornames.Dimgray,
	core.ColorDarkGreen:     colornames.Darkgreen,
	core.ColorBrown:         colornames.Saddlebrown,
	core.ColorPink:          colornames.Hotpink,
	core.ColorBlack:         colornames.Midnightblue,
}

// Color returns the window color for a palette entry.
func Color(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return colornames.Whitesmoke
}

// dim darkens a color for shadows and inactive bars.
func dim(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
