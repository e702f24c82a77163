package dino

// Snapshot is an immutable copy of everything a frontend needs to draw a
// frame. Slices are copied so the simulation may keep mutating its own.
type Snapshot struct {
	World     WorldSize
	Dino      Dino
	Obstacles []Obstacle
	Coins     []Coin
	Theme     Theme
	Skin      Skin

	Tick     int
	Level    int
	Speed    float64
	Score    int
	Best     int
	NewBest  bool
	RunCoins int
	Wallet   int
	GameOver bool
	Paused   bool
}

// WorldSize describes the simulated playfield.
type WorldSize struct {
	Width        float64
	Height       float64
	GroundHeight float64
}

// GroundY is the y of the floor surface.
func (w WorldSize) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)
	coins := make([]Coin, len(g.coins))
	copy(coins, g.coins)

	return Snapshot{
		World: WorldSize{
			Width:        g.cfg.World.Width,
			Height:       g.cfg.World.Height,
			GroundHeight: g.cfg.World.GroundHeight,
		},
		Dino:      g.dino,
		Obstacles: obstacles,
		Coins:     coins,
		Theme:     g.theme,
		Skin:      g.skin,
		Tick:      g.ticks,
		Level:     g.level,
		Speed:     g.speed,
		Score:     g.score,
		Best:      g.best,
		NewBest:   g.newBest,
		RunCoins:  g.runCoins,
		Wallet:    g.progress.Coins,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}
