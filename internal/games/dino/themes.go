package dino

import (
	"strings"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// Theme is a visual palette for the runner world.
type Theme struct {
	ID           string
	Name         string
	Sky          core.Color
	Ground       core.Color
	GroundDetail core.Color
	Obstacles    [obstacleKindCount]core.Color
}

// Skin is the runner's body color.
type Skin struct {
	ID    string
	Name  string
	Color core.Color
}

var themes = []Theme{
	{
		ID: "desert", Name: "Desert",
		Sky: core.ColorBrightCyan, Ground: core.ColorOrange, GroundDetail: core.ColorBrown,
		Obstacles: [obstacleKindCount]core.Color{
			CactusSmall: core.ColorGreen, CactusLarge: core.ColorDarkGreen,
			Bird: core.ColorRed, River: core.ColorBlue,
		},
	},
	{
		ID: "jungle", Name: "Deep Jungle",
		Sky: core.ColorDarkGreen, Ground: core.ColorDarkGreen, GroundDetail: core.ColorGreen,
		Obstacles: [obstacleKindCount]core.Color{
			CactusSmall: core.ColorMagenta, CactusLarge: core.ColorMagenta,
			Bird: core.ColorBrightYellow, River: core.ColorBrightBlue,
		},
	},
	{
		ID: "neon", Name: "Neon City",
		Sky: core.ColorBlack, Ground: core.ColorGray, GroundDetail: core.ColorPink,
		Obstacles: [obstacleKindCount]core.Color{
			CactusSmall: core.ColorBrightGreen, CactusLarge: core.ColorBrightGreen,
			Bird: core.ColorPink, River: core.ColorBrightBlue,
		},
	},
	{
		ID: "volcano", Name: "Volcano",
		Sky: core.ColorRed, Ground: core.ColorGray, GroundDetail: core.ColorBrightRed,
		Obstacles: [obstacleKindCount]core.Color{
			CactusSmall: core.ColorBrown, CactusLarge: core.ColorBrown,
			Bird: core.ColorOrange, River: core.ColorOrange,
		},
	},
}

var skins = []Skin{
	{ID: "classic", Name: "Classic", Color: core.ColorBrightGreen},
	{ID: "red", Name: "Red Rex", Color: core.ColorBrightRed},
	{ID: "cyber", Name: "Cyber", Color: core.ColorCyan},
	{ID: "gold", Name: "Golden", Color: core.ColorYellow},
	{ID: "shadow", Name: "Shadow", Color: core.ColorGray},
}

// Themes lists the available themes.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Skins lists the available skins.
func Skins() []Skin {
	out := make([]Skin, len(skins))
	copy(out, skins)
	return out
}

// ThemeByID finds a theme, falling back to the first one.
func ThemeByID(id string) (Theme, bool) {
	id = strings.ToLower(id)
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return themes[0], false
}

// SkinByID finds a skin, falling back to Classic.
func SkinByID(id string) (Skin, bool) {
	id = strings.ToLower(id)
	for _, s := range skins {
		if s.ID == id {
			return s, true
		}
	}
	return skins[0], false
}
