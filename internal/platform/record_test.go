package platform

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
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

// timeOut runs the round clock down to a decision.
func timeOut(t *testing.T, g *fighter.Game) core.GameState {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if res := g.ClockTick(); res.State.GameOver {
			return res.State
		}
	}
	t.Fatal("round never ended")
	return core.GameState{}
}

func TestMatchRecordSkipsUndecided(t *testing.T) {
	g := fighter.New()
	g.Reset(testConfig())
	if _, ok := MatchRecord(g, 60); ok {
		t.Error("undecided match produced a record")
	}
}

func TestMatchRecordDraw(t *testing.T) {
	g := fighter.New()
	g.Reset(testConfig())
	timeOut(t, g)

	rec, ok := MatchRecord(g, 0)
	if !ok {
		t.Fatal("decided match produced no record")
	}
	if rec.Winner != "draw" {
		t.Errorf("winner = %q, expected draw", rec.Winner)
	}
	if rec.P1Health != rec.P2Health {
		t.Errorf("healths %d/%d differ in a draw", rec.P1Health, rec.P2Health)
	}
	if rec.GameID != "fighter" {
		t.Errorf("game id = %q", rec.GameID)
	}
}

func TestRecordStoresMatch(t *testing.T) {
	store := openStore(t)
	g := fighter.New()
	g.Reset(testConfig())
	state := timeOut(t, g)

	var buf bytes.Buffer
	Record(g, state, store, 60, log.New(&buf))

	sum, err := store.MatchStats("fighter")
	if err != nil {
		t.Fatalf("match stats: %v", err)
	}
	if sum.Total != 1 || sum.Draws != 1 {
		t.Errorf("stats = %+v, expected one draw", sum)
	}
	if got, _ := store.HighScore("fighter"); got != 0 {
		t.Errorf("a draw stored score %d", got)
	}
}

func TestRecordWithoutStore(t *testing.T) {
	g := dino.New()
	g.Reset(testConfig())

	var buf bytes.Buffer
	Record(g, core.GameState{Score: 50, GameOver: true}, nil, 60, log.New(&buf))
	if !bytes.Contains(buf.Bytes(), []byte("game over")) {
		t.Errorf("log = %q, expected a game over entry", buf.String())
	}
}

func TestRecordSavesScore(t *testing.T) {
	store := openStore(t)
	g := dino.New()
	g.Reset(testConfig())

	Record(g, core.GameState{Score: 120, GameOver: true}, store, 60, log.New(&bytes.Buffer{}))
	best, err := store.HighScore("dino")
	if err != nil {
		t.Fatalf("high score: %v", err)
	}
	if best != 120 {
		t.Errorf("best = %d, expected 120", best)
	}
}

func TestReleaseClosesBrain(t *testing.T) {
	closed := false
	g := fighter.New()
	g.UseCPU(func() fighter.Brain { return &closingBrain{closed: &closed} })
	g.Reset(testConfig())

	Release(g, log.New(&bytes.Buffer{}))
	if !closed {
		t.Error("release should close the computer brain")
	}
}

type closingBrain struct {
	closed *bool
}

func (b *closingBrain) Decide(fighter.Snapshot, core.PlayerID) core.InputFrame {
	return core.InputFrame{}
}

func (b *closingBrain) Close() error {
	*b.closed = true
	return nil
}
