package platformer

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Render draws the sky, then the level shifted by the camera.
func (g *Game) Render(dst core.Surface) {
	vw, vh := g.Viewport()

	dst.SetOffset(0, 0)
	dst.FillRect(0, 0, vw, vh, core.ColorSky, 1)
	dst.FillRect(0, vh*2/3, vw, vh/3, core.ColorGrass, 0.3)
	for i := range 20 {
		x := math.Mod(float64(i)*100-g.camera*0.1, vw)
		y := 50 + math.Sin(float64(i))*20
		dst.FillRect(x, y, 60, 20, core.ColorWhite, 0.3)
	}

	dst.SetOffset(-g.camera, 0)
	for _, p := range g.level.Platforms {
		drawPlatform(dst, p)
	}
	g.arena.EachKind(KindCoin, func(e *Entity) { drawCoin(dst, e) })
	g.arena.EachKind(KindPowerUp, func(e *Entity) { drawPowerUp(dst, e) })
	g.arena.EachKind(KindEnemy, func(e *Entity) { drawEnemy(dst, e) })
	drawPlayer(dst, &g.player)
	g.arena.EachKind(KindParticle, func(e *Entity) {
		dst.FillRect(e.X, e.Y, e.W, e.H, e.Color, float64(e.Life)/float64(e.MaxLife))
	})
	dst.SetOffset(0, 0)
}

func drawPlatform(dst core.Surface, p core.RectF) {
	dst.FillRect(p.X, p.Y, p.W, p.H, core.ColorBrown, 1)
	dst.FillRect(p.X, p.Y-5, p.W, 5, core.ColorGrass, 1)
	for i := 0.0; i < p.W; i += 20 {
		dst.FillRect(p.X+i, p.Y+5, 2, p.H-10, core.ColorDarkBrown, 1)
	}
}

// drawCoin fakes the spin by narrowing the coin with the rotation phase.
func drawCoin(dst core.Surface, e *Entity) {
	w := e.W * math.Max(0.2, math.Abs(math.Cos(e.Rotation)))
	x := e.CenterX() - w/2
	dst.FillRect(x, e.Y, w, e.H, core.ColorGold, 1)
	if w > 4 {
		dst.FillRect(x+2, e.Y+2, w-4, e.H-4, core.ColorYellow, 1)
	}
}

func drawPowerUp(dst core.Surface, e *Entity) {
	dst.FillRect(e.X, e.Y, e.W, e.H, core.ColorPink, 1)
	dst.FillRect(e.X+2, e.Y+2, e.W-4, e.H-4, core.ColorWhite, 1)
	dst.FillRect(e.X+6, e.Y+6, e.W-12, e.H-12, core.ColorMagenta, 1)
}

func drawEnemy(dst core.Surface, e *Entity) {
	dst.FillRect(e.X, e.Y, e.W, e.H, core.ColorBrown, 1)
	dst.FillRect(e.X+4, e.Y+4, 4, 4, core.ColorBlack, 1)
	dst.FillRect(e.X+16, e.Y+4, 4, 4, core.ColorBlack, 1)
	dst.FillRect(e.X+2, e.Y+e.H-8, e.W-4, 4, core.ColorDarkBrown, 1)
}

func drawPlayer(dst core.Surface, p *Player) {
	if !p.Visible() {
		return
	}
	body := core.ColorRed
	if p.Big {
		body = core.ColorOrange
	}
	dst.FillRect(p.X, p.Y, p.W, p.H, body, 1)
	dst.FillRect(p.X+4, p.Y+4, p.W-8, 8, core.ColorBrown, 1)
	dst.FillRect(p.X+8, p.Y+12, p.W-16, 12, core.ColorSkin, 1)
	dst.FillRect(p.X+10, p.Y+14, 4, 4, core.ColorBlack, 1)
	dst.FillRect(p.X+18, p.Y+14, 4, 4, core.ColorBlack, 1)
	dst.FillRect(p.X+6, p.Y+p.H-16, p.W-12, 8, core.ColorBlue, 1)
}
