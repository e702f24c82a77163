package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/input"
)

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Game keys come from the remappable bindings; system keys are fixed and
// only apply when the key is not bound to a game action.
type KeyMapper struct {
	bindings *input.Bindings
}

// NewKeyMapper creates a key mapper over a binding table. A nil table
// maps system keys only.
func NewKeyMapper(b *input.Bindings) *KeyMapper {
	return &KeyMapper{bindings: b}
}

// KeyName returns the normalized binding name of a key message.
func KeyName(msg tea.KeyMsg) string {
	return input.NormalizeKey(msg.String())
}

// IsGameKey reports whether the key drives a bound game action.
func (km *KeyMapper) IsGameKey(msg tea.KeyMsg) bool {
	return km.bindings != nil && km.bindings.Bound(KeyName(msg))
}

// SystemAction maps the fixed in-game system keys.
// ctrl+c always quits, even when something else claims it.
func (km *KeyMapper) SystemAction(msg tea.KeyMsg) core.Action {
	key := msg.String()
	if key == "ctrl+c" {
		return core.ActionQuit
	}
	if km.IsGameKey(msg) {
		return core.ActionNone
	}

	switch key {
	case "q":
		return core.ActionQuit
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "b":
		return core.ActionBack
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
