package dino

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// Visual characters for rendering
const (
	DinoBody    = '█'
	DinoDuck    = '▄'
	DinoEye     = '◆'
	CactusChar  = '▓'
	BirdUp      = '▲'
	BirdDown    = '▼'
	RiverChar   = '≈'
	GroundChar  = '═'
	GroundFill  = '▒'
	DetailChar  = '▬'
	GoldCoin    = 'o'
	ShieldCoin  = 'O'
	ShieldLeft  = '('
	ShieldRight = ')'
)

// viewport maps world pixels onto screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(dst *core.Screen, w WorldSize) viewport {
	rows := dst.Height() - 1
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / w.Width,
		sy:  float64(rows) / w.Height,
		top: 1,
	}
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a frame from a snapshot. It reads nothing else.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	v := newViewport(dst, s.World)

	drawGround(dst, v, s)
	for _, c := range s.Coins {
		drawCoin(dst, v, c)
	}
	for _, o := range s.Obstacles {
		drawObstacle(dst, v, o, s.Tick)
	}
	drawDino(dst, v, s)
	drawHUD(dst, s)

	if s.Paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorYellow)
	}
	if s.GameOver {
		title := "GAME OVER"
		if s.NewBest {
			title = "NEW HIGH SCORE!"
		}
		dst.DrawMessageBox(title, fmt.Sprintf("Score: %d  Coins: +%d  |  R to restart", s.Score, s.RunCoins), core.ColorBrightRed)
	}
}

func drawGround(dst *core.Screen, v viewport, s Snapshot) {
	y := v.row(s.World.GroundY())
	dst.DrawHLine(0, y, dst.Width(), GroundChar, s.Theme.Ground)
	for row := y + 1; row < dst.Height(); row++ {
		dst.DrawHLine(0, row, dst.Width(), GroundFill, s.Theme.Ground)
	}

	// Stripes every 40 world pixels scroll with the run
	offset := math.Mod(float64(s.Tick)*s.Speed, 40)
	for x := -offset; x < s.World.Width; x += 40 {
		r := v.rect(core.Box{X: x, Y: s.World.GroundY(), W: 10, H: 1})
		dst.SetColor(r.X, y, DetailChar, s.Theme.GroundDetail)
	}
}

func drawCoin(dst *core.Screen, v viewport, c Coin) {
	b := c.Box()
	b.Y += math.Sin(c.Float) * 5
	r := v.rect(b)
	ch, col := GoldCoin, core.ColorBrightYellow
	if c.Kind == CoinBlue {
		ch, col = ShieldCoin, core.ColorBrightBlue
	}
	dst.SetColor(r.X+r.W/2, r.Y+r.H/2, ch, col)
}

func drawObstacle(dst *core.Screen, v viewport, o Obstacle, tick int) {
	r := v.rect(o.Box())
	switch o.Kind {
	case River:
		dst.FillRect(r, RiverChar, o.Color)
	case Bird:
		wing := BirdUp
		if (tick/6)%2 == 1 {
			wing = BirdDown
		}
		dst.FillRect(r, wing, o.Color)
	default:
		dst.FillRect(r, CactusChar, o.Color)
	}
}

func drawDino(dst *core.Screen, v viewport, s Snapshot) {
	d := s.Dino
	r := v.rect(d.Box())
	body := DinoBody
	if d.Ducking {
		body = DinoDuck
	}
	dst.FillRect(r, body, s.Skin.Color)
	dst.SetColor(r.Right()-1, r.Y, DinoEye, core.ColorBrightWhite)

	if d.Shield {
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColor(r.X-1, y, ShieldLeft, core.ColorBrightBlue)
			dst.SetColor(r.Right(), y, ShieldRight, core.ColorBrightBlue)
		}
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d  Lvl: %d ", s.Score, s.Best, s.Level)
	dst.DrawTextColor(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Coins: %d (+%d)  Spd: %.1f ", s.Wallet, s.RunCoins, s.Speed)
	if s.Dino.Shield {
		right = " [SHIELD]" + right
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)
}
