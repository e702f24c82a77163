package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Ramp is how a parameter moves from its start to its end value.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExp
)

// floorGain is where exponential gain ramps end; exp ramps cannot reach 0.
const floorGain = 0.001

// Tone is one oscillator voice with a frequency sweep and a gain envelope.
type Tone struct {
	Wave     Wave
	From, To float64 // Hz
	FreqRamp Ramp
	Gain     float64
	GainRamp Ramp
	Duration time.Duration
	StartAt  time.Duration // delay before the voice sounds
}

// sweep renders a Tone sample by sample.
type sweep struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

func newSweep(t Tone, rate beep.SampleRate) *sweep {
	return &sweep{tone: t, rate: rate, total: rate.N(t.Duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		p := float64(s.pos) / float64(s.total)
		freq := ramp(s.tone.FreqRamp, s.tone.From, s.tone.To, p)

		var gain float64
		if s.tone.GainRamp == RampExp {
			gain = ramp(RampExp, s.tone.Gain, floorGain, p)
		} else {
			gain = ramp(RampLinear, s.tone.Gain, 0, p)
		}

		v := gain * oscillate(s.tone.Wave, s.phase)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func ramp(r Ramp, from, to, p float64) float64 {
	if r == RampExp && from > 0 && to > 0 {
		return from * math.Pow(to/from, p)
	}
	return from + (to-from)*p
}

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Voices returns the tones that make up a cue's sound. Unknown cues are
// silent.
func Voices(c core.Cue) []Tone {
	switch c {
	case core.CueJump:
		return []Tone{{Wave: WaveSquare, From: 150, To: 600, FreqRamp: RampExp, Gain: 0.05, GainRamp: RampExp, Duration: 100 * time.Millisecond}}
	case core.CueCoin:
		return []Tone{
			{Wave: WaveSine, From: 1200, To: 1200, Gain: 0.05, GainRamp: RampExp, Duration: 100 * time.Millisecond},
			{Wave: WaveSine, From: 1800, To: 1800, Gain: 0.05, GainRamp: RampExp, Duration: 100 * time.Millisecond, StartAt: 50 * time.Millisecond},
		}
	case core.CueShieldBreak:
		return []Tone{{Wave: WaveSaw, From: 150, To: 50, FreqRamp: RampLinear, Gain: 0.1, GainRamp: RampLinear, Duration: 300 * time.Millisecond}}
	case core.CueGameOver:
		return []Tone{{Wave: WaveSaw, From: 200, To: 50, FreqRamp: RampExp, Gain: 0.1, GainRamp: RampLinear, Duration: 500 * time.Millisecond}}
	case core.CueHit:
		return []Tone{{Wave: WaveSquare, From: 120, To: 60, FreqRamp: RampExp, Gain: 0.08, GainRamp: RampExp, Duration: 80 * time.Millisecond}}
	case core.CueBlock:
		return []Tone{{Wave: WaveSquare, From: 900, To: 700, FreqRamp: RampLinear, Gain: 0.04, GainRamp: RampExp, Duration: 50 * time.Millisecond}}
	case core.CueKO:
		return []Tone{{Wave: WaveSaw, From: 300, To: 40, FreqRamp: RampExp, Gain: 0.1, GainRamp: RampLinear, Duration: 700 * time.Millisecond}}
	default:
		return nil
	}
}

// Sound builds a finite streamer for a cue at the given volume (0..1).
// It returns nil for silent cues.
func Sound(c core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	voices := Voices(c)
	if len(voices) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(voices))
	for _, t := range voices {
		var s beep.Streamer = newSweep(t, rate)
		if t.StartAt > 0 {
			s = beep.Seq(beep.Silence(rate.N(t.StartAt)), s)
		}
		parts = append(parts, s)
	}

	mixed := parts[0]
	if len(parts) > 1 {
		mixed = beep.Mix(parts...)
	}
	return withVolume(mixed, volume)
}

// withVolume scales a streamer linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
