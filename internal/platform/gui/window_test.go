package gui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyA, "a"},
		{ebiten.KeySpace, "space"},
		{ebiten.KeyArrowLeft, "left"},
		{ebiten.KeyArrowUp, "up"},
		{ebiten.KeyEscape, "esc"},
		{ebiten.KeyEnter, "enter"},
		{ebiten.KeyDigit1, "1"},
	}
	for _, tc := range tests {
		if got := KeyName(tc.key); got != tc.want {
			t.Errorf("KeyName(%v) = %q, expected %q", tc.key, got, tc.want)
		}
	}
}

func TestPaletteCoversCoreColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorBlack; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no window color", c)
		}
	}
	if Color(core.Color(250)) != colornames.Whitesmoke {
		t.Error("unknown colors should fall back to the default")
	}
}

func TestClockTicksEverySecondOfPlay(t *testing.T) {
	g := fighter.New()
	w := NewWindow(g, testConfig(), Options{})
	start := g.TimeLeft()

	for i := 0; i < 59; i++ {
		w.tick()
	}
	if g.TimeLeft() != start {
		t.Fatalf("clock moved after 59 ticks: %d -> %d", start, g.TimeLeft())
	}
	w.tick()
	if g.TimeLeft() != start-1 {
		t.Errorf("time left = %d after 60 ticks, expected %d", g.TimeLeft(), start-1)
	}
}

func TestPauseStopsClock(t *testing.T) {
	g := fighter.New()
	w := NewWindow(g, testConfig(), Options{})
	start := g.TimeLeft()

	if err := w.system("p"); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !w.State().Paused {
		t.Fatal("p should pause")
	}
	for i := 0; i < 120; i++ {
		w.tick()
	}
	if g.TimeLeft() != start {
		t.Errorf("clock moved while paused: %d -> %d", start, g.TimeLeft())
	}

	_ = w.system("esc")
	if w.State().Paused {
		t.Error("esc should resume")
	}
}

func TestQuitTerminates(t *testing.T) {
	w := NewWindow(dino.New(), testConfig(), Options{})
	if err := w.system("q"); !errors.Is(err, ebiten.Termination) {
		t.Errorf("q returned %v, expected termination", err)
	}
}

func TestMatchRecordedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "arcade.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	g := fighter.New()
	w := NewWindow(g, testConfig(), Options{Store: store})
	for i := 0; i < 60*120 && !w.State().GameOver; i++ {
		w.tick()
	}
	if !w.State().GameOver {
		t.Fatal("round never ended")
	}
	// Ticks after the end are ignored.
	for i := 0; i < 120; i++ {
		w.tick()
	}

	sum, err := store.MatchStats("fighter")
	if err != nil {
		t.Fatalf("match stats: %v", err)
	}
	if sum.Total != 1 {
		t.Errorf("recorded %d matches, expected 1", sum.Total)
	}

	w.restart()
	if w.State().GameOver {
		t.Error("restart should start a fresh round")
	}
}
