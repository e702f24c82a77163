package dino

import (
	"errors"
	"maps"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/vovakirdan/dash-arena/internal/config"
	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
)

const eps = 1e-9

// newTestGame returns a reset game on default config with a scripted RNG.
func newTestGame(t *testing.T, rolls ...float64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.cfg = config.DefaultDinoConfig()
	g.dino = newDino(g.cfg)
	g.speed = StartSpeed(0, g.cfg)
	g.rng = &engine.Script{Values: rolls}
	return g
}

func hasCue(cues []core.Cue, c core.Cue) bool {
	for _, got := range cues {
		if got == c {
			return true
		}
	}
	return false
}

func TestForcedSpawnWhenEmpty(t *testing.T) {
	// 0.99 fails the spawn roll, but an empty list always spawns
	g := newTestGame(t, 0.99, 0.1)
	g.spawnObstacle()

	if len(g.obstacles) != 1 {
		t.Fatalf("expected forced spawn, got %d obstacles", len(g.obstacles))
	}
	o := g.obstacles[0]
	if o.Kind != CactusSmall {
		t.Errorf("kind = %v, expected cactus_small", o.Kind)
	}
	if o.X != 800 || o.Y != 310 || o.VX != -9 {
		t.Errorf("obstacle = %+v, expected x=800 y=310 vx=-9", o)
	}
}

func TestSpawnGapAndRoll(t *testing.T) {
	tests := []struct {
		name  string
		lastX float64
		roll  float64
		want  int
	}{
		{"inside min gap", 700, 0.0, 1},
		{"roll fails", 100, 0.5, 1},
		{"roll succeeds", 100, 0.005, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, tc.roll)
			g.obstacles = []Obstacle{{Kind: CactusSmall, X: tc.lastX, W: 20, H: 40}}
			g.spawnObstacle()
			if len(g.obstacles) != tc.want {
				t.Errorf("obstacles = %d, expected %d", len(g.obstacles), tc.want)
			}
		})
	}
}

func TestPickObstacleKind(t *testing.T) {
	sp := config.DefaultDinoConfig().Spawn
	tests := []struct {
		level int
		roll  float64
		want  ObstacleKind
	}{
		{1, 0.3, CactusSmall},
		{1, 0.95, CactusLarge},
		{2, 0.8, CactusLarge},
		{3, 0.75, Bird},
		{3, 0.95, Bird},
		{5, 0.8, Bird},
		{5, 0.95, River},
	}
	for _, tc := range tests {
		if got := pickObstacleKind(tc.level, tc.roll, sp); got != tc.want {
			t.Errorf("pickObstacleKind(%d, %v) = %v, expected %v", tc.level, tc.roll, got, tc.want)
		}
	}
}

func TestBirdPlacement(t *testing.T) {
	g := newTestGame(t, 0.0, 0.8, 0.5)
	g.level = 3
	g.spawnObstacle()

	o := g.obstacles[0]
	if o.Kind != Bird {
		t.Fatalf("kind = %v, expected bird", o.Kind)
	}
	if o.Y != 250 {
		t.Errorf("bird y = %v, expected 250", o.Y)
	}
	if o.VX != -11 {
		t.Errorf("bird vx = %v, expected -11", o.VX)
	}
}

func TestRiverIsHarmless(t *testing.T) {
	g := newTestGame(t)
	o := newObstacle(River, g.cfg, 0, g.rng, g.theme)
	o.X = g.dino.X
	g.obstacles = []Obstacle{o}
	g.updateObstacles()

	if g.gameOver {
		t.Error("river below the runner's feet should not end the run")
	}
}

func TestCoinSpawnPlacement(t *testing.T) {
	// spawn roll, blue roll, air roll, phase roll
	g := newTestGame(t, 0.01, 0.5, 0.7, 0.0)
	g.spawnCoin()

	if len(g.coins) != 1 {
		t.Fatalf("expected a coin, got %d", len(g.coins))
	}
	c := g.coins[0]
	if c.Kind != CoinGold || c.Value != 1 {
		t.Errorf("coin = %+v, expected gold worth 1", c)
	}
	if c.Y != 196 {
		t.Errorf("air coin y = %v, expected 196", c.Y)
	}
}

func TestCoinSpawnClearance(t *testing.T) {
	g := newTestGame(t, 0.0)
	g.obstacles = []Obstacle{{X: 700, W: 20, H: 40}}
	g.spawnCoin()
	if len(g.coins) != 0 {
		t.Error("coin should not spawn next to a fresh obstacle")
	}

	g.obstacles = nil
	g.coins = []Coin{{X: 760, W: 24, H: 24}}
	g.spawnCoin()
	if len(g.coins) != 1 {
		t.Error("coin should not spawn next to a fresh coin")
	}
}

func coinOnDino(g *Game, kind CoinKind) Coin {
	value := 1
	if kind == CoinBlue {
		value = 0
	}
	// Coins scroll by speed before collection, so start them ahead
	return Coin{Kind: kind, X: g.dino.X + g.speed, Y: g.dino.Y, W: 24, H: 24, Value: value}
}

func TestShieldIsIdempotent(t *testing.T) {
	g := newTestGame(t)
	g.dino.Shield = true
	g.coins = []Coin{coinOnDino(g, CoinBlue)}
	g.updateCoins()

	if !g.dino.Shield {
		t.Error("shield should remain")
	}
	if g.runCoins != 0 || g.progress.Coins != 0 {
		t.Error("blue coins carry no value")
	}
	if len(g.coins) != 0 {
		t.Error("collected coin should be removed")
	}
	if !hasCue(g.cues, core.CueCoin) {
		t.Error("expected coin cue")
	}

	// A second shield still absorbs only one hit
	g.obstacles = []Obstacle{{Kind: CactusSmall, X: 50, Y: 310, W: 20, H: 40}}
	g.updateObstacles()
	if g.dino.Shield || g.gameOver {
		t.Fatal("first hit should consume the shield")
	}
	g.obstacles = []Obstacle{{Kind: CactusSmall, X: 50, Y: 310, W: 20, H: 40}}
	g.updateObstacles()
	if !g.gameOver {
		t.Error("second hit should end the run")
	}
}

func TestGoldCoinCredited(t *testing.T) {
	g := newTestGame(t)
	g.coins = []Coin{coinOnDino(g, CoinGold)}
	g.updateCoins()

	if g.runCoins != 1 || g.progress.Coins != 1 {
		t.Errorf("run=%d wallet=%d, expected 1/1", g.runCoins, g.progress.Coins)
	}

	// A collected coin leaves the field in the same tick and never pays twice
	if len(g.coins) != 0 {
		t.Fatalf("collected coin still on the field: %+v", g.coins)
	}
	g.updateCoins()
	if g.runCoins != 1 || g.unsaved != 1 {
		t.Errorf("run=%d unsaved=%d after a second tick, expected 1/1", g.runCoins, g.unsaved)
	}
}

func TestMagnetPullsCoins(t *testing.T) {
	far := func(magnet int) Coin {
		g := newTestGame(t)
		g.progress.Levels[UpgradeMagnet] = magnet
		g.coins = []Coin{{Kind: CoinGold, X: g.dino.X + 60, Y: 250, W: 24, H: 24, Value: 1}}
		g.updateCoins()
		return g.coins[0]
	}

	plain, pulled := far(0), far(1)
	if !(pulled.X < plain.X) || !(pulled.Y > plain.Y) {
		t.Errorf("magnet should pull toward the runner: plain=%+v pulled=%+v", plain, pulled)
	}
}

func TestShieldConsumesObstacle(t *testing.T) {
	g := newTestGame(t)
	g.dino.Shield = true
	g.obstacles = []Obstacle{{Kind: CactusSmall, X: 50, Y: 310, W: 20, H: 40}}
	g.updateObstacles()

	if g.gameOver {
		t.Fatal("shield should prevent game over")
	}
	if g.dino.Shield {
		t.Error("shield should be consumed")
	}
	if len(g.obstacles) != 0 {
		t.Error("obstacle should be removed")
	}
	if !hasCue(g.cues, core.CueShieldBreak) {
		t.Error("expected shield break cue")
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := newTestGame(t, 0.99)
	g.obstacles = []Obstacle{{Kind: CactusSmall, X: 50, Y: 310, W: 20, H: 40, VX: -9}}

	res := g.Step(core.MultiInputFrame{})
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if !hasCue(res.Cues, core.CueGameOver) {
		t.Error("expected game over cue")
	}

	// Terminal: further steps change nothing
	before := g.Snapshot()
	res = g.Step(core.Solo(core.NewInputFrame(core.ActionJump)))
	if len(res.Cues) != 0 || !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("game over should be terminal")
	}
}

func TestHighScoreRecorded(t *testing.T) {
	g := newTestGame(t, 0.99)
	g.best = 20
	g.score = 30
	g.obstacles = []Obstacle{{Kind: CactusSmall, X: 50, Y: 310, W: 20, H: 40, VX: -9}}
	g.Step(core.MultiInputFrame{})

	s := g.Snapshot()
	if s.Best != 30 || !s.NewBest {
		t.Errorf("best=%d newBest=%v, expected 30/true", s.Best, s.NewBest)
	}
}

func TestObstacleScoredWhenOffscreen(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = []Obstacle{
		{Kind: CactusSmall, X: -15, Y: 310, W: 20, H: 40, VX: -9},
		{Kind: CactusSmall, X: 400, Y: 310, W: 20, H: 40, VX: -9},
	}
	g.updateObstacles()

	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if len(g.obstacles) != 1 || g.obstacles[0].X != 391 {
		t.Errorf("obstacles = %+v", g.obstacles)
	}

	// The survived obstacle is gone, so later ticks do not score it again
	g.updateObstacles()
	if g.score != 10 {
		t.Errorf("score = %d after a second tick, expected 10", g.score)
	}
}

func TestJumpUsesUpgrade(t *testing.T) {
	g := newTestGame(t)
	g.progress.Levels[UpgradeJump] = 2

	res := g.Step(core.Solo(core.NewInputFrame(core.ActionJump)))
	if !hasCue(res.Cues, core.CueJump) {
		t.Error("expected jump cue")
	}
	want := -11.5*1.16 + 0.8
	if math.Abs(g.dino.VY-want) > eps {
		t.Errorf("vy = %v, expected %v", g.dino.VY, want)
	}

	// No double jump
	res = g.Step(core.Solo(core.NewInputFrame(core.ActionJump)))
	if hasCue(res.Cues, core.CueJump) {
		t.Error("airborne dino should not jump")
	}
}

func TestDuckShiftsBox(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.Solo(core.NewInputFrame(core.ActionDuck)))
	if !g.dino.Ducking || g.dino.H != 25 || g.dino.Y != 325 {
		t.Errorf("ducking dino = %+v", g.dino.Body)
	}

	g.Step(core.MultiInputFrame{})
	if g.dino.Ducking || g.dino.H != 47 || g.dino.Y != 303 {
		t.Errorf("standing dino = %+v", g.dino.Body)
	}
}

func TestGroundInvariant(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	groundY := g.groundY()

	for i := 0; i < 3000 && !g.gameOver; i++ {
		in := core.NewInputFrame()
		if i%37 == 0 {
			in.Set(core.ActionJump)
		}
		if i%53 < 10 {
			in.Set(core.ActionDuck)
		}
		g.Step(core.Solo(in))

		bottom := g.dino.Y + g.dino.H
		if bottom > groundY+eps {
			t.Fatalf("tick %d: bottom %v below ground %v", i, bottom, groundY)
		}
		onGround := math.Abs(bottom-groundY) < eps
		if g.dino.Grounded != onGround {
			t.Fatalf("tick %d: grounded=%v but bottom=%v", i, g.dino.Grounded, bottom)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
		for i := 0; i < 1500 && !g.gameOver; i++ {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(core.Solo(in))
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs diverged: score %d vs %d, tick %d vs %d", a.Score, b.Score, a.Tick, b.Tick)
	}
}

func TestLevelChangeUpdatesSpeed(t *testing.T) {
	g := newTestGame(t, 0.99)
	g.ticks = 15 * 60
	g.Step(core.MultiInputFrame{})

	if g.level != 2 {
		t.Errorf("level = %d, expected 2", g.level)
	}
	if math.Abs(g.speed-10) > eps {
		t.Errorf("speed = %v, expected 10", g.speed)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)
	res := g.Step(core.Solo(core.NewInputFrame(core.ActionPause)))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	ticks := g.ticks
	g.Step(core.MultiInputFrame{})
	if g.ticks != ticks {
		t.Error("paused game should not advance")
	}
	res = g.Step(core.Solo(core.NewInputFrame(core.ActionPause)))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

type memStore struct {
	mu     sync.Mutex
	coins  int
	levels map[string]int
	best   int
	err    error
}

func (m *memStore) LoadProgression(string) (int, map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.coins, maps.Clone(m.levels), m.err
}

func (m *memStore) AddCoins(_ string, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.coins += delta
	return m.coins, nil
}

func (m *memStore) UpdateProgression(_ string, fn func(int, map[string]int) (int, map[string]int, bool)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	levels := maps.Clone(m.levels)
	if levels == nil {
		levels = map[string]int{}
	}
	coins, levels, ok := fn(m.coins, levels)
	if ok {
		m.coins, m.levels = coins, levels
	}
	return nil
}

func (m *memStore) HighScore(string) (int, error) { return m.best, m.err }

func useStore(t *testing.T, s ProgressionStore) {
	t.Helper()
	SetProgressionStore(s)
	t.Cleanup(func() { SetProgressionStore(nil) })
}

func TestProgressionStoreRoundTrip(t *testing.T) {
	store := &memStore{coins: 42, levels: map[string]int{"speed": 2, "bogus": 9}, best: 120}
	useStore(t, store)

	g := New()
	g.Reset(core.DefaultConfig())

	if g.progress.Coins != 42 || g.progress.Level(UpgradeSpeed) != 2 {
		t.Fatalf("loaded progression = %+v", g.progress)
	}
	if g.best != 120 {
		t.Errorf("best = %d, expected 120", g.best)
	}
	if want := 9 * 0.95 * 0.95; math.Abs(g.speed-want) > eps {
		t.Errorf("start speed = %v, expected %v", g.speed, want)
	}

	g.collect(Coin{Kind: CoinGold, Value: 3})
	if err := g.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if store.coins != 45 || store.levels["speed"] != 2 {
		t.Errorf("saved coins=%d levels=%v", store.coins, store.levels)
	}

	// Nothing new to credit
	if err := g.Save(); err != nil || store.coins != 45 {
		t.Errorf("second Save() credited again: coins=%d err=%v", store.coins, err)
	}
}

func TestSessionsShareWallet(t *testing.T) {
	store := &memStore{coins: 10}
	useStore(t, store)

	a, b := New(), New()
	a.Reset(core.DefaultConfig())
	b.Reset(core.DefaultConfig())

	a.collect(Coin{Kind: CoinGold, Value: 5})
	b.collect(Coin{Kind: CoinGold, Value: 3})
	if err := a.Save(); err != nil {
		t.Fatal(err)
	}
	if err := b.Save(); err != nil {
		t.Fatal(err)
	}

	if store.coins != 18 {
		t.Errorf("wallet = %d, expected 18", store.coins)
	}
	if b.Progression().Coins != 18 {
		t.Errorf("second session shows %d, expected 18", b.Progression().Coins)
	}
}

func TestResetFlushesPendingCoins(t *testing.T) {
	store := &memStore{coins: 4}
	useStore(t, store)

	g := New()
	g.Reset(core.DefaultConfig())
	g.collect(Coin{Kind: CoinGold, Value: 6})
	g.Reset(core.DefaultConfig())

	if store.coins != 10 || g.Progression().Coins != 10 {
		t.Errorf("store=%d game=%d, expected 10", store.coins, g.Progression().Coins)
	}
}

func TestFailedSaveKeepsCoinsPending(t *testing.T) {
	store := &memStore{coins: 4}
	useStore(t, store)

	g := New()
	g.Reset(core.DefaultConfig())
	g.collect(Coin{Kind: CoinGold, Value: 6})

	store.err = errors.New("disk gone")
	if err := g.Save(); err == nil {
		t.Fatal("Save() should surface store errors")
	}
	store.err = nil
	if err := g.Save(); err != nil {
		t.Fatal(err)
	}
	if store.coins != 10 {
		t.Errorf("wallet = %d, expected 10", store.coins)
	}
}

func TestBuySpendsStoredWallet(t *testing.T) {
	u := config.DefaultDinoConfig().Upgrades
	store := &memStore{coins: 24}

	p, ok, err := Buy(store, u, UpgradeJump)
	if err != nil || !ok {
		t.Fatalf("Buy() = %v %v", ok, err)
	}
	if p.Coins != 14 || p.Level(UpgradeJump) != 1 {
		t.Errorf("after buy %+v", p)
	}

	// A shop still showing the old 24 coins cannot spend them twice
	p, ok, err = Buy(store, u, UpgradeJump)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("second Buy() spent coins already gone")
	}
	if p.Coins != 14 || store.coins != 14 || store.levels["jump"] != 1 {
		t.Errorf("after refused buy p=%+v store=%d %v", p, store.coins, store.levels)
	}
}

func TestBuyRefusesShortWallet(t *testing.T) {
	u := config.DefaultDinoConfig().Upgrades
	store := &memStore{coins: 9, levels: map[string]int{"magnet": 1}}

	p, ok, err := Buy(store, u, UpgradeJump)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Buy() succeeded with 9 coins")
	}
	if p.Coins != 9 || p.Level(UpgradeMagnet) != 1 {
		t.Errorf("refused buy reported %+v", p)
	}
	if store.coins != 9 || store.levels["jump"] != 0 {
		t.Errorf("refused buy wrote coins=%d levels=%v", store.coins, store.levels)
	}
}

func TestProgressionStoreErrors(t *testing.T) {
	store := &memStore{err: errors.New("disk gone")}
	if _, err := LoadProgression(store); err == nil || !strings.Contains(err.Error(), "disk gone") {
		t.Errorf("LoadProgression() error = %v", err)
	}
	if _, _, err := Buy(store, config.DefaultDinoConfig().Upgrades, UpgradeJump); err == nil {
		t.Error("Buy() should surface store errors")
	}
}

func TestRenderDrawsFrame(t *testing.T) {
	g := newTestGame(t)
	g.obstacles = []Obstacle{{Kind: CactusLarge, X: 400, Y: 290, W: 30, H: 60, Color: core.ColorGreen}}
	g.coins = []Coin{{Kind: CoinGold, X: 300, Y: 316, W: 24, H: 24}}
	g.dino.Shield = true

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	out := dst.String()

	for _, want := range []string{"Score:", "[SHIELD]", string(GroundChar), string(CactusChar), string(DinoBody)} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q", want)
		}
	}

	g.gameOver = true
	g.Render(dst)
	if !strings.Contains(dst.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}
