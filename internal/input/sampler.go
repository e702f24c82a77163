// Package input turns raw key events into per-tick action frames.
//
// Frontends write key-down/key-up events into a Sampler from their event
// goroutine; the simulation reads one snapshot per tick with Sample. The
// Sampler is the only state shared between the two sides.
package input

import (
	"sync"
	"time"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// Sampler tracks the set of currently held keys.
//
// Terminals never report key releases, so a Sampler created with a hold
// window treats each press as held until the window elapses unless the key
// repeats. A zero window means keys stay held until Release.
type Sampler struct {
	mu       sync.Mutex
	bindings *Bindings
	hold     time.Duration
	held     map[string]time.Time // key -> release deadline (zero: until released)
	taps     core.MultiInputFrame // one-shot actions for the next sample
	now      func() time.Time
}

// NewSampler creates a sampler using the given bindings.
func NewSampler(b *Bindings, hold time.Duration) *Sampler {
	return &Sampler{
		bindings: b,
		hold:     hold,
		held:     make(map[string]time.Time),
		now:      time.Now,
	}
}

// SetBindings swaps the key table, releasing every held key.
func (s *Sampler) SetBindings(b *Bindings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = b
	clear(s.held)
}

// Press records a key-down (or a repeat).
func (s *Sampler) Press(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deadline time.Time
	if s.hold > 0 {
		deadline = s.now().Add(s.hold)
	}
	s.held[key] = deadline
}

// Release records a key-up.
func (s *Sampler) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, key)
}

// ReleaseAll drops every held key, e.g. when the window loses focus.
func (s *Sampler) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.held)
}

// Tap queues a one-shot action that appears in exactly one Sample.
// Used for edge-triggered actions like pause and restart.
func (s *Sampler) Tap(player core.PlayerID, a core.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.taps.Player(player)
	f.Set(a)
	s.taps.SetPlayer(player, f)
}

// Held returns the keys currently considered held.
func (s *Sampler) Held() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()
	keys := make([]string, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	return keys
}

// Sample returns the actions held right now by both players, plus any
// pending taps, and consumes the taps.
func (s *Sampler) Sample() core.MultiInputFrame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLocked()

	out := s.taps
	s.taps = core.MultiInputFrame{}

	if s.bindings == nil {
		return out
	}
	for key := range s.held {
		for _, b := range s.bindings.Lookup(key) {
			f := out.Player(b.Player)
			f.Set(b.Action)
			out.SetPlayer(b.Player, f)
		}
	}
	return out
}

func (s *Sampler) expireLocked() {
	if s.hold <= 0 {
		return
	}
	now := s.now()
	for k, deadline := range s.held {
		if !deadline.IsZero() && !now.Before(deadline) {
			delete(s.held, k)
		}
	}
}
