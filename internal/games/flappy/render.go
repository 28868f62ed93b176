package flappy

import (
	"fmt"

	"github.com/Marconymous/flappy-bird/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▶'
	TubeChar      = '█'
	TubeCapTop    = '▄'
	TubeCapBottom = '▀'
	GroundChar    = '═'
	GroundFill    = '░'
)

// Render draws the current game state to the screen.
// Field units are scaled to the screen so the whole field is always visible.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	snap := g.ctrl.Snapshot()
	sx := float64(dst.Width()) / snap.Field.W
	sy := float64(dst.Height()) / snap.Field.H

	drawGround(dst, snap.Ground.Scale(sx, sy).Cells())
	for _, t := range snap.Tubes {
		drawTube(dst, t, sx, sy)
	}
	drawBird(dst, snap.Bird.Scale(sx, sy))

	// HUD
	score := " " + snap.ScoreText + " "
	dst.DrawTextWithColor((dst.Width()-len(score))/2, 0, score, core.ColorBrightWhite)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.Phase == PhaseLost {
		drawCenteredMessage(dst, "YOU'RE DED", fmt.Sprintf("Score: %d  |  Press R to retry", snap.Score))
	}
}

// drawGround fills the ground band with a bright top edge.
func drawGround(dst *core.Screen, r core.Rect) {
	dst.FillRect(r, GroundFill, core.ColorGreen)
	dst.FillRect(core.NewRect(r.X, r.Y, r.W, 1), GroundChar, core.ColorBrightGreen)
}

// drawTube renders both barriers of a tube with caps facing the gap.
func drawTube(dst *core.Screen, t TubeView, sx, sy float64) {
	if !t.Top.Empty() {
		top := t.Top.Scale(sx, sy).Cells()
		dst.FillRect(top, TubeChar, core.ColorGreen)
		dst.FillRect(core.NewRect(top.X, top.Bottom()-1, top.W, 1), TubeCapTop, core.ColorBrightGreen)
	}

	if !t.Bottom.Empty() {
		bottom := t.Bottom.Scale(sx, sy).Cells()
		dst.FillRect(bottom, TubeChar, core.ColorGreen)
		dst.FillRect(core.NewRect(bottom.X, bottom.Y, bottom.W, 1), TubeCapBottom, core.ColorBrightGreen)
	}
}

// drawBird renders the body as an ellipse with a beak pointing forward.
// r is the bird's box in cell units.
func drawBird(dst *core.Screen, r core.RectF) {
	c := r.Center()
	dst.FillEllipse(c.X, c.Y, r.W/2, r.H/2, BirdChar, core.ColorYellow)

	beak := []core.PointF{
		{X: r.Right(), Y: c.Y - r.H/4},
		{X: r.Right() + r.W/2, Y: c.Y},
		{X: r.Right(), Y: c.Y + r.H/4},
	}
	dst.FillPolygon(beak, BeakChar, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextWithColor(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
