package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionAttack)

	if !f.Has(ActionLeft) || !f.Has(ActionAttack) {
		t.Error("frame should hold left and attack")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not hold right")
	}

	f.Unset(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("Unset should release left")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should release everything")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	f := NewInputFrame(ActionNone)
	if !f.Empty() {
		t.Error("ActionNone should never be held")
	}
}

func TestInputFrameValueSemantics(t *testing.T) {
	a := NewInputFrame(ActionJump)
	b := a
	b.Set(ActionDuck)

	if a.Has(ActionDuck) {
		t.Error("copy should be independent of original")
	}
	if got := a.Merge(b).Actions(); len(got) != 2 {
		t.Errorf("Merge actions = %v, expected jump and duck", got)
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionLeft; a < actionCount; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("fly"); ok {
		t.Error("unknown names should not parse")
	}
}

func TestMultiInputFrame(t *testing.T) {
	var m MultiInputFrame
	m.SetPlayer(Player2, NewInputFrame(ActionBlock))

	if !m.Player(Player2).Has(ActionBlock) {
		t.Error("P2 frame should hold block")
	}
	if !m.Player(Player1).Empty() {
		t.Error("P1 frame should be empty")
	}
	if Player1.Opponent() != Player2 || Player2.Opponent() != Player1 {
		t.Error("Opponent should swap slots")
	}
}
