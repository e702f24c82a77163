// Package gui runs games in a desktop window with ebiten. Unlike a
// terminal, a window reports real key-up events, so held keys are exact.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/input"
	"github.com/vovakirdan/dash-arena/internal/platform"
	"github.com/vovakirdan/dash-arena/internal/registry"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

// Options wires the collaborators of a window session.
type Options struct {
	Store  *storage.Store
	Sink   engine.CueSink
	Logger *log.Logger
	Keys   *input.KeyFile

	// CPU makes player two computer-controlled in versus games.
	CPU func() fighter.Brain
}

// Window adapts a registry game to ebiten.Game.
//
// ebiten calls Update at a fixed rate, which serves as the physics tick.
// Clocked games get their clock tick every TickRate physics ticks, so the
// round clock stops with the simulation when paused.
type Window struct {
	game    registry.Game
	config  core.RuntimeConfig
	opts    Options
	sampler *input.Sampler
	binds   *input.Bindings

	state       core.GameState
	frames      int
	resultSaved bool
	pressed     []ebiten.Key
	released    []ebiten.Key
}

// NewWindow creates a window session for a game.
func NewWindow(game registry.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Sink == nil {
		opts.Sink = engine.NopSink{}
	}
	if opts.Keys == nil {
		k := input.DefaultKeyFile()
		opts.Keys = &k
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	binds := opts.Keys.RunnerBindings()
	if registry.PlayerCount(game) == 2 {
		binds = opts.Keys.FighterBindings()
	}
	if f, ok := game.(*fighter.Game); ok && opts.CPU != nil {
		f.UseCPU(opts.CPU)
	}

	w := &Window{
		game:    game,
		config:  cfg,
		opts:    opts,
		binds:   binds,
		sampler: input.NewSampler(binds, 0),
	}
	game.Reset(cfg)
	w.state = game.State()
	return w
}

// Update feeds key transitions to the sampler and advances one tick.
func (w *Window) Update() error {
	w.pressed = inpututil.AppendJustPressedKeys(w.pressed[:0])
	w.released = inpututil.AppendJustReleasedKeys(w.released[:0])

	for _, k := range w.released {
		w.sampler.Release(KeyName(k))
	}
	for _, k := range w.pressed {
		name := KeyName(k)
		if w.binds.Bound(name) {
			w.sampler.Press(name)
			continue
		}
		if err := w.system(name); err != nil {
			return err
		}
	}

	w.tick()
	return nil
}

// system handles the fixed keys that are not bound to a game action.
func (w *Window) system(name string) error {
	switch name {
	case "q":
		return ebiten.Termination
	case "p", "esc":
		w.togglePause()
	case "r":
		if w.state.GameOver {
			w.restart()
		}
	}
	return nil
}

// tick advances the simulation by one physics tick, plus a clock tick
// when a second of play has passed.
func (w *Window) tick() {
	if w.state.GameOver {
		return
	}
	w.apply(w.game.Step(w.sampler.Sample()))

	c, ok := w.game.(registry.Clocked)
	if !ok || w.state.Paused || w.state.GameOver {
		return
	}
	w.frames++
	if w.frames%w.config.TickRate == 0 {
		w.apply(c.ClockTick())
	}
}

func (w *Window) apply(res core.StepResult) {
	engine.Emit(w.opts.Sink, res.Cues)
	w.state = res.State
	if w.state.GameOver && !w.resultSaved {
		w.resultSaved = true
		platform.Record(w.game, w.state, w.opts.Store, w.config.TickRate, w.opts.Logger)
	}
}

func (w *Window) togglePause() {
	if w.state.GameOver {
		return
	}
	if c, ok := w.game.(registry.Clocked); ok {
		c.SetPaused(!w.state.Paused)
		w.sampler.ReleaseAll()
		w.state = w.game.State()
		return
	}
	w.sampler.Tap(core.Player1, core.ActionPause)
}

func (w *Window) restart() {
	w.config.Seed = time.Now().UnixNano()
	w.game.Reset(w.config)
	w.state = w.game.State()
	w.frames = 0
	w.resultSaved = false
	w.sampler.ReleaseAll()
	w.opts.Logger.Debug("game restarted", "game", w.game.ID(), "seed", w.config.Seed)
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	switch g := w.game.(type) {
	case *dino.Game:
		drawRunner(screen, g.Snapshot())
	case *fighter.Game:
		drawArena(screen, g.Snapshot())
	default:
		screen.Fill(colornames.Black)
		cells := core.NewScreen(80, 24)
		g.Render(cells)
		label(screen, cells.String(), 8, 8, colornames.White)
	}
}

// Layout keeps the logical screen at the game's world size; ebiten
// scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return worldSize(w.game)
}

func worldSize(game registry.Game) (int, int) {
	switch g := game.(type) {
	case *dino.Game:
		s := g.Snapshot()
		return int(s.World.Width), int(s.World.Height)
	case *fighter.Game:
		s := g.Snapshot()
		return int(s.ArenaWidth), int(s.ArenaHeight)
	}
	return 640, 320
}

// State returns the last observed game state.
func (w *Window) State() core.GameState {
	return w.state
}

// Close persists progress and releases the game.
func (w *Window) Close() {
	platform.Release(w.game, w.opts.Logger)
}

// Run opens a window and plays the game until it is closed or quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	w := NewWindow(game, cfg, opts)
	defer w.Close()

	width, height := worldSize(game)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	// RunGame reports ebiten.Termination from Update as a clean exit.
	return ebiten.RunGame(w)
}
