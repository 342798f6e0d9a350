package core

import "math"

// Surface is the render target games draw into, in world units.
// Games only fill rectangles; backends decide how that maps to output.
type Surface interface {
	// FillRect fills a rectangle with a color at the given opacity in [0, 1].
	FillRect(x, y, w, h float64, c Color, alpha float64)
	// SetOffset translates every subsequent fill by (dx, dy).
	SetOffset(dx, dy float64)
}

// Shade glyphs used by CellSurface, from faint to solid.
const (
	GlyphFaint  = '░'
	GlyphMedium = '▒'
	GlyphDense  = '▓'
	GlyphSolid  = '█'
)

const cellEpsilon = 1e-9

// CellSurface adapts a Screen region to the Surface interface.
// Opacity is approximated with shade glyphs.
type CellSurface struct {
	screen *Screen
	area   Rect
	sx, sy float64 // cells per world unit
	dx, dy float64
}

// NewCellSurface maps a worldW x worldH world onto the given screen area.
func NewCellSurface(screen *Screen, area Rect, worldW, worldH float64) *CellSurface {
	s := &CellSurface{screen: screen, area: area}
	if worldW > 0 {
		s.sx = float64(area.W) / worldW
	}
	if worldH > 0 {
		s.sy = float64(area.H) / worldH
	}
	return s
}

// SetOffset implements Surface.
func (s *CellSurface) SetOffset(dx, dy float64) {
	s.dx, s.dy = dx, dy
}

// FillRect implements Surface. Every cell the rectangle touches is filled,
// and anything visible covers at least one cell.
func (s *CellSurface) FillRect(x, y, w, h float64, c Color, alpha float64) {
	if alpha <= 0 || w <= 0 || h <= 0 {
		return
	}

	x0 := int(math.Floor((x+s.dx)*s.sx + cellEpsilon))
	x1 := int(math.Ceil((x+w+s.dx)*s.sx - cellEpsilon))
	y0 := int(math.Floor((y+s.dy)*s.sy + cellEpsilon))
	y1 := int(math.Ceil((y+h+s.dy)*s.sy - cellEpsilon))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	if !NewRect(x0, y0, x1-x0, y1-y0).Intersects(NewRect(0, 0, s.area.W, s.area.H)) {
		return
	}
	x0, x1 = max(x0, 0), min(x1, s.area.W)
	y0, y1 = max(y0, 0), min(y1, s.area.H)

	glyph := ShadeGlyph(alpha)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.screen.SetCell(s.area.X+cx, s.area.Y+cy, glyph, c)
		}
	}
}

// ShadeGlyph picks the block glyph that approximates an opacity.
func ShadeGlyph(alpha float64) rune {
	switch {
	case alpha >= 0.75:
		return GlyphSolid
	case alpha >= 0.5:
		return GlyphDense
	case alpha >= 0.25:
		return GlyphMedium
	default:
		return GlyphFaint
	}
}
