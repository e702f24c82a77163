// Package scripting runs computer opponents written in Lua.
//
// A script defines a global decide(ctx) function. It is called once per
// physics tick with a read-only view of the match and returns the actions
// the computer fighter holds for that tick.
package scripting

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
)

//go:embed scripts/cpu.lua
var defaultScript string

// DefaultScript returns the embedded CPU script source.
func DefaultScript() string {
	return defaultScript
}

// controllable lists the actions a script may hold. System actions such
// as pause or quit stay with the humans.
var controllable = map[core.Action]bool{
	core.ActionLeft:    true,
	core.ActionRight:   true,
	core.ActionJump:    true,
	core.ActionAttack:  true,
	core.ActionBlock:   true,
	core.ActionSpecial: true,
}

// Brain is a fighter.Brain backed by a Lua VM. It is not safe for
// concurrent use; the match calls it from the tick goroutine only.
type Brain struct {
	vm     *lua.LState
	decide lua.LValue
	logger *log.Logger
	failed bool
}

// NewBrain loads a script from path, or the embedded default when path is
// empty. A nil logger discards script errors.
func NewBrain(path string, logger *log.Logger) (*Brain, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	src := defaultScript
	name := "cpu.lua"
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("scripting: read %s: %w", path, err)
		}
		src = string(data)
		name = path
	}

	vm := lua.NewState(lua.Options{})
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("scripting: load %s: %w", name, err)
	}

	fn := vm.GetGlobal("decide")
	if fn.Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("scripting: %s does not define decide()", name)
	}

	return &Brain{vm: vm, decide: fn, logger: logger}, nil
}

// Decide calls the script's decide function. A failing call yields an
// idle frame; the first failure is logged and later ones are silent.
func (b *Brain) Decide(s fighter.Snapshot, self core.PlayerID) core.InputFrame {
	if b.vm == nil {
		return core.InputFrame{}
	}

	ctx := b.context(s, self)
	if err := b.vm.CallByParam(lua.P{
		Fn:      b.decide,
		NRet:    1,
		Protect: true,
	}, ctx); err != nil {
		b.fail(err)
		return core.InputFrame{}
	}

	ret := b.vm.Get(-1)
	b.vm.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		if ret != lua.LNil {
			b.fail(fmt.Errorf("decide returned %s, expected table", ret.Type()))
		}
		return core.InputFrame{}
	}
	return framefrom(tbl)
}

// Close shuts the VM down. The brain decides nothing afterwards.
func (b *Brain) Close() error {
	if b.vm != nil {
		b.vm.Close()
		b.vm = nil
	}
	return nil
}

func (b *Brain) fail(err error) {
	if b.failed {
		return
	}
	b.failed = true
	b.logger.Error("cpu script failed, falling back to idle", "error", err)
}

func (b *Brain) context(s fighter.Snapshot, self core.PlayerID) *lua.LTable {
	t := b.vm.NewTable()
	t.RawSetString("self", b.fighterTable(s.Player(self)))
	t.RawSetString("foe", b.fighterTable(s.Player(self.Opponent())))
	t.RawSetString("time_left", lua.LNumber(s.TimeLeft))
	t.RawSetString("tick", lua.LNumber(s.Tick))
	t.RawSetString("attack_range", lua.LNumber(s.AttackRange))
	t.RawSetString("special_range", lua.LNumber(s.SpecialRange))
	t.RawSetString("special_cost", lua.LNumber(s.SpecialCost))
	return t
}

func (b *Brain) fighterTable(f fighter.Fighter) *lua.LTable {
	t := b.vm.NewTable()
	t.RawSetString("x", lua.LNumber(f.X))
	t.RawSetString("y", lua.LNumber(f.Y))
	t.RawSetString("health", lua.LNumber(f.Health))
	t.RawSetString("energy", lua.LNumber(f.Energy))
	t.RawSetString("state", lua.LString(f.State.String()))
	t.RawSetString("facing", lua.LNumber(f.Facing))
	t.RawSetString("grounded", lua.LBool(f.Grounded))
	t.RawSetString("timer", lua.LNumber(f.StateTimer))
	return t
}

// framefrom reads {action = true, ...}. Unknown names, false values and
// system actions are ignored.
func framefrom(tbl *lua.LTable) core.InputFrame {
	var in core.InputFrame
	tbl.ForEach(func(k, v lua.LValue) {
		name, ok := k.(lua.LString)
		if !ok || v != lua.LTrue {
			return
		}
		a, ok := core.ParseAction(string(name))
		if ok && controllable[a] {
			in.Set(a)
		}
	})
	return in
}
