package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
	"github.com/vovakirdan/dash-arena/internal/input"
	"github.com/vovakirdan/dash-arena/internal/platform"
	"github.com/vovakirdan/dash-arena/internal/registry"
	"github.com/vovakirdan/dash-arena/internal/storage"
)

// DefaultHold is how long a terminal key press counts as held. Terminals
// send no key-up, so a key is released once this passes without a repeat.
const DefaultHold = 150 * time.Millisecond

// Options wires the collaborators of a game session. Zero values are safe:
// no store, no sound, no logging, default keys.
type Options struct {
	Store  *storage.Store
	Sink   engine.CueSink
	Logger *log.Logger
	Keys   *input.KeyFile
	Hold   time.Duration

	// CPU makes player two computer-controlled in versus games.
	CPU func() fighter.Brain

	// Clipboard enables ctrl+y to copy the frame. Off for SSH sessions,
	// where the clipboard would be the server's.
	Clipboard bool
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Sink == nil {
		o.Sink = engine.NopSink{}
	}
	if o.Keys == nil {
		k := input.DefaultKeyFile()
		o.Keys = &k
	}
	if o.Hold == 0 {
		o.Hold = DefaultHold
	}
	return o
}

// Model is the Bubble Tea model for running one arcade game.
//
// Key events only write to the input sampler. Ticks read one sample and
// advance the simulation, so Update is the single writer of game state.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	opts    Options
	config  core.RuntimeConfig
	sampler *input.Sampler
	keys    *KeyMapper

	// sched drives games with a round clock; nil games tick on tickCmd.
	sched *engine.Scheduler

	gameState   core.GameState
	standalone  bool
	quitting    bool
	backToMenu  bool
	resultSaved bool
	left        bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	opts = opts.withDefaults()

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	bindings := opts.Keys.RunnerBindings()
	if registry.PlayerCount(game) == 2 {
		bindings = opts.Keys.FighterBindings()
	}

	if f, ok := game.(*fighter.Game); ok && opts.CPU != nil {
		f.UseCPU(opts.CPU)
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:    opts,
		config:  cfg,
		sampler: input.NewSampler(bindings, opts.Hold),
		keys:    NewKeyMapper(bindings),
	}
	if _, ok := game.(registry.Clocked); ok {
		m.sched = engine.NewRateScheduler(cfg.TickRate, 1)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	if m.sched != nil {
		m.sched.Start()
		return waitSched(m.sched)
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games scale their world at render time, so a resize keeps the run
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if m.sched != nil || m.left {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.config.TickRate)

	case SchedMsg:
		if msg.sched != m.sched || m.left {
			return m, nil
		}
		switch msg.Kind {
		case engine.TickClock:
			if c, ok := m.game.(registry.Clocked); ok {
				m.apply(c.ClockTick())
			}
		default:
			m.step()
		}
		return m, waitSched(m.sched)
	}

	return m, nil
}

// handleKey routes game keys to the sampler and handles system keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyFrame()
		return m, nil
	}

	if m.keys.IsGameKey(msg) {
		m.sampler.Press(KeyName(msg))
	}

	switch m.keys.SystemAction(msg) {
	case core.ActionQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.togglePause()

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.leave()
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// step samples input and advances the simulation by one tick.
func (m *Model) step() {
	m.apply(m.game.Step(m.sampler.Sample()))
}

// apply forwards cues and records the result once the game ends.
func (m *Model) apply(res core.StepResult) {
	engine.Emit(m.opts.Sink, res.Cues)
	m.gameState = res.State

	if m.gameState.GameOver && !m.resultSaved {
		m.resultSaved = true
		m.recordResult()
		// The match is over: both timers stop together
		if m.sched != nil {
			m.sched.Pause()
		}
	}
}

// togglePause pauses or resumes. Clocked games stop both timers while
// paused and get fresh ones on resume.
func (m *Model) togglePause() {
	if m.gameState.GameOver {
		return
	}

	c, ok := m.game.(registry.Clocked)
	if !ok || m.sched == nil {
		m.sampler.Tap(core.Player1, core.ActionPause)
		return
	}

	paused := !m.gameState.Paused
	c.SetPaused(paused)
	m.sampler.ReleaseAll()
	if paused {
		m.sched.Pause()
	} else {
		m.sched.Resume()
	}
	m.gameState = m.game.State()
}

// restart begins a new run with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.resultSaved = false
	m.sampler.ReleaseAll()
	if m.sched != nil {
		m.sched.Resume()
	}
	m.opts.Logger.Debug("game restarted", "game", m.game.ID(), "seed", m.config.Seed)
}

// recordResult stores the outcome of the finished game.
func (m *Model) recordResult() {
	platform.Record(m.game, m.gameState, m.opts.Store, m.config.TickRate, m.opts.Logger)
}

// leave persists progress and releases the game's resources. Safe to
// call more than once.
func (m *Model) leave() {
	if m.left {
		return
	}
	m.left = true

	if m.sched != nil {
		m.sched.Stop()
	}
	platform.Release(m.game, m.opts.Logger)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// copyFrame puts the current frame on the system clipboard as plain text.
func (m *Model) copyFrame() {
	if !m.opts.Clipboard {
		return
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.opts.Logger.Warn("clipboard unavailable", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.leave()
	}
	return err
}
