package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/platform"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRunnerKeyPressReachesGame(t *testing.T) {
	var cues []core.Cue
	sink := engine.CueFunc(func(c core.Cue) { cues = append(cues, c) })

	m := NewModel(dino.New(), testConfig(), Options{Sink: sink, Hold: time.Second})
	if m.sched != nil {
		t.Fatal("runner should tick on the frame loop, not the scheduler")
	}
	m.game.Reset(m.config)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next, cmd := next.(Model).Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	_ = next

	found := false
	for _, c := range cues {
		if c == core.CueJump {
			found = true
		}
	}
	if !found {
		t.Errorf("cues = %v, expected a jump", cues)
	}
}

func TestFighterUsesScheduler(t *testing.T) {
	m := NewModel(fighter.New(), testConfig(), Options{})
	if m.sched == nil {
		t.Fatal("fighter should be driven by the dual-rate scheduler")
	}
	m.leave()
	select {
	case <-m.sched.Done():
	default:
		t.Error("leave should stop the scheduler")
	}
}

func TestStaleTickIgnoredByClockedGame(t *testing.T) {
	m := NewModel(fighter.New(), testConfig(), Options{})
	defer m.leave()
	m.game.Reset(m.config)

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("clocked game should not chain frame ticks")
	}
	_, cmd = m.Update(SchedMsg{Kind: engine.TickPhysics, sched: engine.NewScheduler(time.Second, time.Second)})
	if cmd != nil {
		t.Error("message from a foreign scheduler should be dropped")
	}
}

// runClockOut drives clock ticks until the round is decided.
func runClockOut(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 1000; i++ {
		next, _ := m.Update(SchedMsg{Kind: engine.TickClock, sched: m.sched})
		m = next.(Model)
		if m.gameState.GameOver {
			return m
		}
	}
	t.Fatal("round never ended")
	return m
}

func TestFinishedMatchIsRecorded(t *testing.T) {
	store := openStore(t)
	m := NewModel(fighter.New(), testConfig(), Options{Store: store})
	defer m.leave()
	m.game.Reset(m.config)

	m = runClockOut(t, m)

	matches, err := store.RecentMatches("fighter", 10)
	if err != nil {
		t.Fatalf("recent matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("recorded %d matches, expected 1", len(matches))
	}
	if matches[0].Winner != "draw" {
		t.Errorf("winner = %q, expected draw on an untouched time out", matches[0].Winner)
	}
	if matches[0].VsCPU {
		t.Error("local match recorded as vs CPU")
	}

	// Further ticks must not record the same match twice.
	next, _ := m.Update(SchedMsg{Kind: engine.TickClock, sched: m.sched})
	_ = next
	matches, _ = store.RecentMatches("fighter", 10)
	if len(matches) != 1 {
		t.Errorf("recorded %d matches after extra tick, expected 1", len(matches))
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	m := NewModel(fighter.New(), testConfig(), Options{})
	defer m.leave()
	m.game.Reset(m.config)
	m = runClockOut(t, m)

	next, _ := m.Update(runes("r"))
	m = next.(Model)
	if m.gameState.GameOver {
		t.Error("restart should begin a new round")
	}
	if m.resultSaved {
		t.Error("restart should re-arm result recording")
	}
}

func TestPauseTogglesClockedGame(t *testing.T) {
	m := NewModel(fighter.New(), testConfig(), Options{})
	defer m.leave()
	m.game.Reset(m.config)

	next, _ := m.Update(runes("p"))
	m = next.(Model)
	if !m.gameState.Paused {
		t.Fatal("p should pause the match")
	}
	f := m.game.(*fighter.Game)
	before := f.TimeLeft()
	next, _ = m.Update(SchedMsg{Kind: engine.TickClock, sched: m.sched})
	m = next.(Model)
	if f.TimeLeft() != before {
		t.Error("clock advanced while paused")
	}

	next, _ = m.Update(runes("p"))
	m = next.(Model)
	if m.gameState.Paused {
		t.Error("second p should resume")
	}
}

func TestBackOnlyWhenPausedOrOver(t *testing.T) {
	m := NewModel(fighter.New(), testConfig(), Options{})
	defer m.leave()
	m.game.Reset(m.config)

	next, _ := m.Update(runes("b"))
	m = next.(Model)
	if m.BackToMenu() {
		t.Fatal("back ignored during play")
	}

	next, _ = m.Update(runes("p"))
	next, _ = next.(Model).Update(runes("b"))
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("back should leave a paused match")
	}
}

func TestUseCPUFromOptions(t *testing.T) {
	idle := func() fighter.Brain {
		return fighter.BrainFunc(func(fighter.Snapshot, core.PlayerID) core.InputFrame {
			return core.InputFrame{}
		})
	}
	m := NewModel(fighter.New(), testConfig(), Options{CPU: idle})
	defer m.leave()
	m.game.Reset(m.config)
	m = runClockOut(t, m)

	rec, ok := platform.MatchRecord(m.game.(*fighter.Game), 60)
	if !ok {
		t.Fatal("decided match produced no record")
	}
	if !rec.VsCPU {
		t.Error("match against the brain should be marked vs CPU")
	}
}
