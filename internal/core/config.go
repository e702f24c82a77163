package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// Cue is a discrete event a frontend may turn into sound.
type Cue int

const (
	CueNone Cue = iota
	CueJump
	CueCoin
	CueShieldBreak
	CueGameOver
	CueHit
	CueBlock
	CueKO
)

var cueNames = [...]string{"none", "jump", "coin", "shield_break", "game_over", "hit", "block", "ko"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// StepResult is returned after each simulation tick.
// Cues are fire-and-forget notifications for the audio collaborator.
type StepResult struct {
	State GameState
	Cues  []Cue
}
