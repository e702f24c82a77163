// Package audio turns simulation cues into short synthesized sounds.
//
// Player implements engine.CueSink. Play never blocks: cues go into a small
// queue drained by a worker goroutine, and cues that arrive while the queue
// is full are dropped.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dash-arena/internal/core"
	"github.com/vovakirdan/dash-arena/internal/engine"
)

const (
	// SampleRate is the output rate for every synthesized cue.
	SampleRate = beep.SampleRate(44100)

	queueSize = 16
)

// Player plays cues on an output device.
type Player struct {
	rate   beep.SampleRate
	output func(beep.Streamer)
	logger *log.Logger

	mu     sync.Mutex
	volume float64
	muted  bool

	queue     chan core.Cue
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Open initializes the speaker and starts a player. Callers that can live
// without sound should fall back to engine.NopSink on error.
func Open(logger *log.Logger) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	p := newPlayer(SampleRate, func(s beep.Streamer) { speaker.Play(s) }, logger)
	return p, nil
}

// OpenOrNop returns a live player, or a silent sink when no output device
// is available. The failure is logged once.
func OpenOrNop(logger *log.Logger) engine.CueSink {
	p, err := Open(logger)
	if err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "error", err)
		}
		return engine.NopSink{}
	}
	return p
}

func newPlayer(rate beep.SampleRate, output func(beep.Streamer), logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		rate:   rate,
		output: output,
		logger: logger,
		volume: 1,
		queue:  make(chan core.Cue, queueSize),
		done:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.run()
	return p
}

// Play queues a cue. It returns immediately; a full queue drops the cue.
func (p *Player) Play(c core.Cue) {
	select {
	case <-p.done:
		return
	default:
	}

	select {
	case p.queue <- c:
	default:
		p.logger.Debug("cue dropped", "cue", c)
	}
}

// SetVolume sets the linear output volume, clamped to 0..1.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = core.ClampF(v, 0, 1)
}

// SetMuted silences new cues without stopping the worker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Close stops the worker. Queued cues that have not started are dropped.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
	return nil
}

func (p *Player) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case c := <-p.queue:
			p.mu.Lock()
			vol, muted := p.volume, p.muted
			p.mu.Unlock()
			if muted {
				continue
			}
			if s := Sound(c, p.rate, vol); s != nil {
				p.output(s)
			}
		}
	}
}
