package fighter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dash-arena/internal/core"
)

// Visual characters for rendering
const (
	BodyChar    = '█'
	HitChar     = '▒'
	KOChar      = '▄'
	FistChar    = '═'
	SpecialChar = '≋'
	GuardChar   = '▐'
	GroundChar  = '▀'
)

var playerColors = [...]core.Color{core.ColorBrightRed, core.ColorBrightBlue}

const hudRows = 2

// Render draws the current match to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a frame from a snapshot. It reads nothing else.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()

	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	sx := float64(dst.Width()) / s.ArenaWidth
	sy := float64(rows) / s.ArenaHeight

	groundRow := hudRows + int(s.GroundY*sy)
	for y := groundRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGray)
	}

	drawFighter(dst, s.P1, playerColors[0], s, sx, sy)
	drawFighter(dst, s.P2, playerColors[1], s, sx, sy)
	drawHUD(dst, s)

	switch {
	case s.Winner == OutcomeDraw:
		dst.DrawMessageBox("DRAW!", "R to rematch  |  Q to menu", core.ColorBrightYellow)
	case s.Winner != OutcomeNone:
		n, col := 1, playerColors[0]
		if s.Winner == OutcomeP2 {
			n, col = 2, playerColors[1]
		}
		dst.DrawMessageBox(fmt.Sprintf("PLAYER %d WINS!", n), "R to rematch  |  Q to menu", col)
	case s.Paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume", core.ColorYellow)
	}
}

func drawFighter(dst *core.Screen, f Fighter, col core.Color, s Snapshot, sx, sy float64) {
	x0 := int(math.Floor(f.X * sx))
	x1 := int(math.Ceil(f.Box().Right() * sx))
	y0 := hudRows + int(math.Floor(f.Y*sy))
	y1 := hudRows + int(math.Ceil(f.Box().Bottom()*sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	box := core.NewRect(x0, y0, x1-x0, y1-y0)

	switch f.State {
	case StateKO:
		// Lying on the ground
		dst.DrawHLine(box.X-box.H/2, box.Bottom()-1, box.W+box.H, KOChar, col)
		return
	case StateHit:
		dst.FillRect(box, HitChar, col)
	default:
		dst.FillRect(box, BodyChar, col)
	}

	// Eye on the facing side of the head
	eyeX := box.X
	if f.Facing == 1 {
		eyeX = box.Right() - 1
	}
	dst.SetColor(eyeX, box.Y, '•', core.ColorBrightWhite)

	front := box.Right()
	if f.Facing == -1 {
		front = box.X - 1
	}
	midY := box.Y + box.H/3

	switch f.State {
	case StateAttack:
		reach := int(math.Ceil((s.AttackRange - f.W/2) * sx))
		drawReach(dst, front, midY, f.Facing, reach, FistChar, core.ColorBrightWhite)
	case StateSpecial:
		reach := int(math.Ceil((s.SpecialRange - f.W/2) * sx))
		drawReach(dst, front, midY, f.Facing, reach, SpecialChar, core.ColorBrightMagenta)
	case StateBlock:
		for y := box.Y; y < box.Bottom(); y++ {
			dst.SetColor(front, y, GuardChar, core.ColorBrightCyan)
		}
	}
}

func drawReach(dst *core.Screen, x, y, dir, n int, r rune, col core.Color) {
	for i := 0; i < n; i++ {
		dst.SetColor(x+i*dir, y, r, col)
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	w := dst.Width()
	timer := fmt.Sprintf(" %02d ", s.TimeLeft)
	timerCol := core.ColorBrightWhite
	if s.TimeLeft <= 10 {
		timerCol = core.ColorBrightRed
	}
	tx := (w - len(timer)) / 2
	dst.DrawTextColor(tx, 0, timer, timerCol)

	barW := tx - 6
	if barW < 4 {
		barW = 4
	}

	// P1 bars grow from the left, P2 bars from the right edge inward
	dst.DrawTextColor(0, 0, "P1", playerColors[0])
	dst.DrawBar(3, 0, barW, ratio(float64(s.P1.Health), float64(s.P1.MaxHealth)), core.ColorGreen, core.ColorGray)
	dst.DrawBar(3, 1, barW, ratio(s.P1.Energy, s.P1.MaxEnergy), core.ColorYellow, core.ColorGray)

	p2x := w - barW - 3
	dst.DrawTextColor(w-2, 0, "P2", playerColors[1])
	dst.DrawBar(p2x, 0, barW, ratio(float64(s.P2.Health), float64(s.P2.MaxHealth)), core.ColorGreen, core.ColorGray)
	dst.DrawBar(p2x, 1, barW, ratio(s.P2.Energy, s.P2.MaxEnergy), core.ColorYellow, core.ColorGray)

	if s.P1.Combo > 1 {
		dst.DrawTextColor(3, 2, fmt.Sprintf("%d COMBO!", s.P1.Combo), core.ColorBrightYellow)
	}
	if s.P2.Combo > 1 {
		txt := fmt.Sprintf("%d COMBO!", s.P2.Combo)
		dst.DrawTextColor(w-len(txt)-3, 2, txt, core.ColorBrightYellow)
	}
}

func ratio(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return v / max
}
