package scripting

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
)

func snapshot(p1x, p2x float64) fighter.Snapshot {
	f := func(x float64, facing int) fighter.Fighter {
		var ft fighter.Fighter
		ft.X, ft.Y = x, 280
		ft.W, ft.H = 60, 120
		ft.Grounded = true
		ft.Health, ft.MaxHealth = 100, 100
		ft.MaxEnergy = 100
		ft.Facing = facing
		return ft
	}
	return fighter.Snapshot{
		ArenaWidth:   1000,
		ArenaHeight:  500,
		GroundY:      400,
		P1:           f(p1x, 1),
		P2:           f(p2x, -1),
		TimeLeft:     60,
		AttackRange:  80,
		SpecialRange: 120,
		SpecialCost:  50,
	}
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brain.lua")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultBrainApproaches(t *testing.T) {
	b, err := NewBrain("", nil)
	if err != nil {
		t.Fatalf("NewBrain() error = %v", err)
	}
	defer b.Close()

	in := b.Decide(snapshot(150, 790), core.Player2)
	if !in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		t.Errorf("far away P2 should walk left, got %v", in.Actions())
	}

	in = b.Decide(snapshot(150, 790), core.Player1)
	if !in.Has(core.ActionRight) {
		t.Errorf("far away P1 should walk right, got %v", in.Actions())
	}
}

func TestDefaultBrainAttacksInRange(t *testing.T) {
	b, err := NewBrain("", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	in := b.Decide(snapshot(400, 460), core.Player2)
	if !in.Has(core.ActionAttack) {
		t.Errorf("P2 in range should attack, got %v", in.Actions())
	}
}

func TestDefaultBrainSpendsEnergy(t *testing.T) {
	b, err := NewBrain("", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	s := snapshot(400, 500)
	s.P2.Energy = 60
	if in := b.Decide(s, core.Player2); !in.Has(core.ActionSpecial) {
		t.Errorf("brain with energy at special range should use it, got %v", in.Actions())
	}
}

func TestBrainIgnoresSystemActions(t *testing.T) {
	path := writeScript(t, `
function decide(ctx)
  return { pause = true, quit = true, jump = true, block = false, dance = true }
end`)
	b, err := NewBrain(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	in := b.Decide(snapshot(150, 790), core.Player2)
	if got := in.Actions(); len(got) != 1 || got[0] != core.ActionJump {
		t.Errorf("Actions() = %v, expected [jump]", got)
	}
}

func TestBrainSeesContext(t *testing.T) {
	path := writeScript(t, `
function decide(ctx)
  if ctx.self.x == 790 and ctx.foe.x == 150 and ctx.self.state == "idle"
     and ctx.time_left == 60 and ctx.foe.grounded then
    return { left = true }
  end
  return {}
end`)
	b, err := NewBrain(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	if !b.Decide(snapshot(150, 790), core.Player2).Has(core.ActionLeft) {
		t.Error("script did not receive the expected context")
	}
}

func TestBrainRuntimeErrorFallsBack(t *testing.T) {
	path := writeScript(t, `
function decide(ctx)
  error("boom")
end`)

	var buf bytes.Buffer
	b, err := NewBrain(path, log.New(&buf))
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	for i := 0; i < 3; i++ {
		if in := b.Decide(snapshot(150, 790), core.Player2); !in.Empty() {
			t.Fatalf("failing script should idle, got %v", in.Actions())
		}
	}
	if n := strings.Count(buf.String(), "cpu script failed"); n != 1 {
		t.Errorf("logged %d failures, expected exactly 1", n)
	}
}

func TestNewBrainErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "function decide(", "load"},
		{"missing decide", "x = 1", "does not define decide"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBrain(writeScript(t, tc.src), nil)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("NewBrain() error = %v, expected %q", err, tc.want)
			}
		})
	}

	if _, err := NewBrain(filepath.Join(t.TempDir(), "missing.lua"), nil); err == nil {
		t.Error("missing file should fail")
	}
}

func TestClosedBrainIdles(t *testing.T) {
	b, err := NewBrain("", nil)
	if err != nil {
		t.Fatal(err)
	}
	b.Close()
	if !b.Decide(snapshot(150, 790), core.Player2).Empty() {
		t.Error("closed brain should decide nothing")
	}
}

func TestBrainDrivesMatch(t *testing.T) {
	g := fighter.New()
	g.UseCPU(func() fighter.Brain {
		b, err := NewBrain("", nil)
		if err != nil {
			t.Fatal(err)
		}
		return b
	})
	g.Reset(core.DefaultConfig())
	defer g.Close()

	for i := 0; i < 10; i++ {
		g.Step(core.MultiInputFrame{})
	}
	if x := g.Snapshot().P2.X; x >= 790 {
		t.Errorf("cpu should have advanced, p2 x = %v", x)
	}
}
