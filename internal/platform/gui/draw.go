package gui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dash-arena/internal/games/dino"
	"github.com/vovakirdan/dash-arena/internal/games/fighter"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// label draws one line of HUD text with its top-left corner at x, y.
func label(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// centered draws a line of text centered on x.
func centered(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	w, _ := text.Measure(s, hudFace, 0)
	label(dst, s, x-w/2, y, clr)
}

func rect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// bar draws a meter filled to frac of its width.
func bar(dst *ebiten.Image, x, y, w, h, frac float64, fill color.RGBA) {
	frac = math.Max(0, math.Min(1, frac))
	rect(dst, x, y, w, h, dim(fill, 0.25))
	rect(dst, x, y, w*frac, h, fill)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, colornames.Whitesmoke, false)
}

// drawRunner draws a runner frame in world pixels.
func drawRunner(dst *ebiten.Image, s dino.Snapshot) {
	theme := s.Theme
	dst.Fill(dim(Color(theme.Sky), 0.55))

	groundY := s.World.GroundY()
	rect(dst, 0, groundY, s.World.Width, s.World.GroundHeight, Color(theme.Ground))
	// Scrolling ground marks give a sense of speed.
	offset := math.Mod(float64(s.Tick)*s.Speed, 40)
	for x := -offset; x < s.World.Width; x += 40 {
		rect(dst, x, groundY+8, 12, 3, Color(theme.GroundDetail))
	}

	for _, o := range s.Obstacles {
		rect(dst, o.X, o.Y, o.W, o.H, Color(o.Color))
	}

	for _, c := range s.Coins {
		bob := math.Sin(c.Float) * 4
		fill := colornames.Gold
		if c.Kind == dino.CoinBlue {
			fill = colornames.Deepskyblue
		}
		cx := c.X + c.W/2
		cy := c.Y + c.H/2 + bob
		vector.FillCircle(dst, float32(cx), float32(cy), float32(c.W/2), fill, true)
	}

	d := s.Dino
	body := Color(s.Skin.Color)
	rect(dst, d.X, d.Y, d.W, d.H, body)
	// Eye on the leading edge.
	rect(dst, d.X+d.W-10, d.Y+6, 5, 5, colornames.Black)
	if d.Shield {
		vector.StrokeCircle(dst, float32(d.X+d.W/2), float32(d.Y+d.H/2), float32(math.Max(d.W, d.H)*0.75), 3, colornames.Deepskyblue, true)
	}

	hud := fmt.Sprintf("Score %d  Best %d  Level %d  Coins %d (+%d)", s.Score, s.Best, s.Level, s.Wallet, s.RunCoins)
	label(dst, hud, 12, 10, colornames.White)

	mid := s.World.Width / 2
	switch {
	case s.GameOver:
		centered(dst, "GAME OVER", mid, s.World.Height/2-30, colornames.Red)
		if s.NewBest {
			centered(dst, "New best!", mid, s.World.Height/2-10, colornames.Gold)
		}
		centered(dst, "R: restart   Q: quit", mid, s.World.Height/2+10, colornames.White)
	case s.Paused:
		centered(dst, "PAUSED", mid, s.World.Height/2-10, colornames.White)
	}
}

// drawArena draws a fighter frame in arena pixels.
func drawArena(dst *ebiten.Image, s fighter.Snapshot) {
	dst.Fill(colornames.Midnightblue)
	rect(dst, 0, s.GroundY, s.ArenaWidth, s.ArenaHeight-s.GroundY, colornames.Dimgray)

	drawFighter(dst, s.P1, colornames.Royalblue, s.AttackRange, s.SpecialRange)
	drawFighter(dst, s.P2, colornames.Firebrick, s.AttackRange, s.SpecialRange)

	// Health and energy meters on each side, the clock in the middle.
	w := s.ArenaWidth*0.4 - 20
	hp := func(f fighter.Fighter) float64 { return float64(f.Health) / math.Max(1, float64(f.MaxHealth)) }
	en := func(f fighter.Fighter) float64 { return f.Energy / math.Max(1, f.MaxEnergy) }

	bar(dst, 20, 20, w, 16, hp(s.P1), colornames.Limegreen)
	bar(dst, 20, 40, w, 6, en(s.P1), colornames.Gold)
	bar(dst, s.ArenaWidth-20-w, 20, w, 16, hp(s.P2), colornames.Limegreen)
	bar(dst, s.ArenaWidth-20-w, 40, w, 6, en(s.P2), colornames.Gold)
	label(dst, "P1", 20, 50, colornames.White)
	label(dst, "P2", s.ArenaWidth-34, 50, colornames.White)

	mid := s.ArenaWidth / 2
	centered(dst, fmt.Sprintf("%d", s.TimeLeft), mid, 22, colornames.White)

	switch {
	case s.Winner == fighter.OutcomeDraw:
		centered(dst, "DRAW", mid, s.ArenaHeight/2-30, colornames.Gold)
	case s.Winner != fighter.OutcomeNone:
		centered(dst, strings.ToUpper(s.Winner.String())+" WINS", mid, s.ArenaHeight/2-30, colornames.Gold)
	case s.Paused:
		centered(dst, "PAUSED", mid, s.ArenaHeight/2-30, colornames.White)
	}
	if s.Winner != fighter.OutcomeNone {
		centered(dst, "R: rematch   Q: quit", mid, s.ArenaHeight/2-10, colornames.White)
	}
}

func drawFighter(dst *ebiten.Image, f fighter.Fighter, body color.RGBA, attackRange, specialRange float64) {
	switch f.State {
	case fighter.StateHit:
		body = colornames.White
	case fighter.StateKO:
		body = dim(body, 0.4)
	}
	rect(dst, f.X, f.Y, f.W, f.H, body)

	// Head marks the facing side.
	eyeX := f.X + f.W - 14
	if f.Facing < 0 {
		eyeX = f.X + 8
	}
	rect(dst, eyeX, f.Y+14, 6, 6, colornames.Black)

	front := f.X + f.W
	if f.Facing < 0 {
		front = f.X
	}
	armY := f.Y + f.H*0.35
	switch f.State {
	case fighter.StateAttack:
		reach := attackRange - f.W/2
		x := front
		if f.Facing < 0 {
			x = front - reach
		}
		rect(dst, x, armY, reach, 10, colornames.Gold)
	case fighter.StateSpecial:
		reach := specialRange - f.W/2
		x := front
		if f.Facing < 0 {
			x = front - reach
		}
		rect(dst, x, armY-6, reach, 22, colornames.Hotpink)
	case fighter.StateBlock:
		x := front
		if f.Facing < 0 {
			x = front - 8
		}
		rect(dst, x, f.Y+10, 8, f.H-20, colornames.Lightskyblue)
	}
}
