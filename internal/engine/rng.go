package engine

import (
	"math/rand"
	"time"
)

// RNG is the random source a simulation draws from. Injecting it keeps
// spawn decisions reproducible under a fixed seed.
type RNG interface {
	Float64() float64
}

// NewRNG returns a seeded generator. A zero seed picks one from the clock.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Script replays a fixed sequence of values, wrapping around at the end.
// Tests use it to force specific spawn branches.
type Script struct {
	Values []float64
	pos    int
}

// Float64 returns the next scripted value, or 0.5 when empty.
func (s *Script) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
