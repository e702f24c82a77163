package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/input"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeySpace}, "space"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
		{runes("F"), "f"},
	}
	for _, tc := range tests {
		if got := KeyName(tc.msg); got != tc.want {
			t.Errorf("KeyName(%q) = %q, expected %q", tc.msg.String(), got, tc.want)
		}
	}
}

func TestSystemActionRunner(t *testing.T) {
	km := NewKeyMapper(input.DefaultKeyFile().RunnerBindings())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"q quits", runes("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"p pauses", runes("p"), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r restarts", runes("r"), core.ActionRestart},
		{"b goes back", runes("b"), core.ActionBack},
		{"space is a game key", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
		{"w is a game key", runes("w"), core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.SystemAction(tc.msg); got != tc.want {
				t.Errorf("SystemAction = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestBoundKeyShadowsSystemKey(t *testing.T) {
	keys := input.DefaultKeyFile()
	if err := keys.Rebind(input.ScopePlayer1, core.ActionAttack, "r"); err != nil {
		t.Fatalf("rebind: %v", err)
	}
	km := NewKeyMapper(keys.FighterBindings())

	if !km.IsGameKey(runes("r")) {
		t.Fatal("r should be a game key after rebinding")
	}
	if got := km.SystemAction(runes("r")); got != core.ActionNone {
		t.Errorf("bound r mapped to %v, expected no system action", got)
	}
	if got := km.SystemAction(tea.KeyMsg{Type: tea.KeyCtrlC}); got != core.ActionQuit {
		t.Errorf("ctrl+c mapped to %v, expected quit", got)
	}
}

func TestNilBindingsHaveNoGameKeys(t *testing.T) {
	km := NewKeyMapper(nil)
	if km.IsGameKey(tea.KeyMsg{Type: tea.KeySpace}) {
		t.Error("nil bindings reported a game key")
	}
	if got := km.SystemAction(runes("q")); got != core.ActionQuit {
		t.Errorf("q mapped to %v, expected quit", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(nil)
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runes("q"), MenuActionQuit},
		{runes("x"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
