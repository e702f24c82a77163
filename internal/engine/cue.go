package engine

import "github.com/vovakirdan/dash-arena/internal/core"

// CueSink receives fire-and-forget event notifications. Implementations
// must return immediately; a slow or failing sink must never stall a tick.
type CueSink interface {
	Play(cue core.Cue)
}

// NopSink discards every cue.
type NopSink struct{}

// Play does nothing.
func (NopSink) Play(core.Cue) {}

// CueFunc adapts a plain function to CueSink.
type CueFunc func(core.Cue)

// Play calls f.
func (f CueFunc) Play(c core.Cue) { f(c) }

// Emit forwards every cue from a step result to the sink.
func Emit(sink CueSink, cues []core.Cue) {
	if sink == nil {
		return
	}
	for _, c := range cues {
		sink.Play(c)
	}
}
