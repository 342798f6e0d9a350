package snake

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Render draws the board, food and snake. It never mutates the game.
func (g *Game) Render(dst core.Surface) {
	dst.SetOffset(0, 0)
	w, h := g.Viewport()
	cs := g.cfg.Grid.CellSize

	dst.FillRect(0, 0, w, h, core.ColorBlack, 1)
	for x := 0; x <= g.cfg.Grid.Cols; x++ {
		dst.FillRect(float64(x)*cs, 0, 0.5, h, core.ColorDarkGreen, 0.2)
	}
	for y := 0; y <= g.cfg.Grid.Rows; y++ {
		dst.FillRect(0, float64(y)*cs, w, 0.5, core.ColorDarkGreen, 0.2)
	}

	if g.inBounds(g.food) {
		x, y := float64(g.food.X)*cs, float64(g.food.Y)*cs
		inset(dst, x, y, cs, 2, core.ColorBrightRed, 1)
		inset(dst, x, y, cs, 4, core.ColorRed, 1)
		inset(dst, x, y, cs, 6, core.ColorPink, 1)
	}

	for i, seg := range g.body {
		x, y := float64(seg.X)*cs, float64(seg.Y)*cs
		if i == 0 {
			inset(dst, x, y, cs, 1, core.ColorGreen, 1)
			inset(dst, x, y, cs, 3, core.ColorBrightGreen, 0.8)
			inset(dst, x, y, cs, 5, core.ColorBrightGreen, 1)
			continue
		}
		alpha := BodyAlpha(i)
		inset(dst, x, y, cs, 1, core.ColorGreen, alpha)
		if alpha > 0.5 {
			inset(dst, x, y, cs, 3, core.ColorBrightGreen, alpha*0.7)
		}
	}
}

// inset fills a cell shrunk by d on every side.
func inset(dst core.Surface, x, y, size, d float64, c core.Color, alpha float64) {
	dst.FillRect(x+d, y+d, size-2*d, size-2*d, c, alpha)
}

// BodyAlpha fades segments toward the tail: max(0.2, 1 - i*0.08).
func BodyAlpha(i int) float64 {
	return math.Max(0.2, 1-float64(i)*0.08)
}
