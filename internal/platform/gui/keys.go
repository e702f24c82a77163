package gui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dash-arena/internal/input"
)

// KeyName returns the binding name of a window key, matching the names
// the terminal frontend produces ("a", "space", "left", "esc").
func KeyName(k ebiten.Key) string {
	name := k.String()
	switch {
	case strings.HasPrefix(name, "Digit"):
		name = strings.TrimPrefix(name, "Digit")
	case strings.HasPrefix(name, "Arrow"):
		name = strings.TrimPrefix(name, "Arrow")
	}
	return input.NormalizeKey(name)
}
