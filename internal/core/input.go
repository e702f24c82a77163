package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionDuck
	ActionAttack
	ActionBlock
	ActionSpecial
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionJump:    "jump",
	ActionDuck:    "duck",
	ActionAttack:  "attack",
	ActionBlock:   "block",
	ActionSpecial: "special",
	ActionConfirm: "confirm",
	ActionBack:    "back",
	ActionRestart: "restart",
	ActionQuit:    "quit",
	ActionPause:   "pause",
}

// String returns the lowercase name used in key files and logs.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves an action name produced by String.
func ParseAction(name string) (Action, bool) {
	for a := ActionLeft; a < actionCount; a++ {
		if actionNames[a] == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is the set of actions held by one player during a tick.
// It is a value type; copies are independent.
type InputFrame struct {
	held uint32
}

// NewInputFrame creates a frame with the given actions held.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.held |= 1 << uint(a)
}

// Unset releases an action.
func (f *InputFrame) Unset(a Action) {
	f.held &^= 1 << uint(a)
}

// Has reports whether the action is held.
func (f InputFrame) Has(a Action) bool {
	return f.held&(1<<uint(a)) != 0
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.held == 0
}

// Clear releases every action.
func (f *InputFrame) Clear() {
	f.held = 0
}

// Merge returns the union of two frames.
func (f InputFrame) Merge(o InputFrame) InputFrame {
	return InputFrame{held: f.held | o.held}
}

// Actions lists held actions in declaration order.
func (f InputFrame) Actions() []Action {
	var out []Action
	for a := ActionLeft; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// PlayerID identifies a local player slot.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

// String returns "P1" or "P2".
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Opponent returns the other player slot.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// MultiInputFrame holds both players' input for a single tick.
// Single-player games read Player1 only; system actions ride on Player1.
type MultiInputFrame struct {
	P1 InputFrame
	P2 InputFrame
}

// Player returns the frame for a player slot.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if id == Player2 {
		return m.P2
	}
	return m.P1
}

// SetPlayer replaces the frame for a player slot.
func (m *MultiInputFrame) SetPlayer(id PlayerID, f InputFrame) {
	if id == Player2 {
		m.P2 = f
		return
	}
	m.P1 = f
}

// Solo wraps a single-player frame.
func Solo(f InputFrame) MultiInputFrame {
	return MultiInputFrame{P1: f}
}
