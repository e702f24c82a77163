package engine

import (
	"sync"
	"time"
)

// TickKind tells which timer fired.
type TickKind int

const (
	// TickPhysics advances the simulation by one fixed step.
	TickPhysics TickKind = iota
	// TickClock advances a coarse countdown (the fighter's round clock).
	TickClock
)

func (k TickKind) String() string {
	if k == TickClock {
		return "clock"
	}
	return "physics"
}

// Scheduler runs two independent periodic timers, a fast physics timer and
// a slow clock timer, and delivers their ticks on a single channel.
//
// Both timers always start and stop together. Pause cancels them and waits
// until the delivering goroutine has exited, so no tick from the old run
// can arrive afterwards. Resume starts fresh timers; sub-period phase is
// not preserved across a pause.
type Scheduler struct {
	physicsEvery time.Duration
	clockEvery   time.Duration

	out      chan TickKind
	done     chan struct{}
	doneOnce sync.Once

	mu      sync.Mutex
	quit    chan struct{}
	wg      sync.WaitGroup
	running bool
	stopped bool
}

// NewScheduler creates a stopped scheduler. Call Start to begin ticking.
func NewScheduler(physicsEvery, clockEvery time.Duration) *Scheduler {
	return &Scheduler{
		physicsEvery: physicsEvery,
		clockEvery:   clockEvery,
		out:          make(chan TickKind),
		done:         make(chan struct{}),
	}
}

// NewRateScheduler creates a scheduler from rates in ticks per second.
func NewRateScheduler(physicsHz, clockHz int) *Scheduler {
	return NewScheduler(time.Second/time.Duration(physicsHz), time.Second/time.Duration(clockHz))
}

// Ticks returns the delivery channel. It is unbuffered.
func (s *Scheduler) Ticks() <-chan TickKind {
	return s.out
}

// Done is closed once Stop has been called.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Running reports whether timers are currently armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start arms both timers. It is a no-op if already running or stopped.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.stopped {
		return
	}
	quit := make(chan struct{})
	s.quit = quit
	s.running = true
	s.wg.Add(1)
	go s.run(quit)
}

// Resume is Start under the name callers use after Pause.
func (s *Scheduler) Resume() {
	s.Start()
}

// Pause cancels both timers and blocks until delivery has stopped.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.quit)
	s.running = false
	s.wg.Wait()
}

// Stop cancels the timers permanently and closes Done.
func (s *Scheduler) Stop() {
	s.Pause()

	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.doneOnce.Do(func() {
		close(s.done)
	})
}

func (s *Scheduler) run(quit <-chan struct{}) {
	defer s.wg.Done()

	physics := time.NewTicker(s.physicsEvery)
	defer physics.Stop()
	clock := time.NewTicker(s.clockEvery)
	defer clock.Stop()

	for {
		var kind TickKind
		select {
		case <-physics.C:
			kind = TickPhysics
		case <-clock.C:
			kind = TickClock
		case <-quit:
			return
		}

		select {
		case s.out <- kind:
		case <-quit:
			return
		}
	}
}
