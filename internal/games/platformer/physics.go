package platformer

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// ResolvePlatforms pushes b out of every platform it overlaps, in list
// order. Exactly one rule fires per overlapping platform:
//
//  1. falling with its top above the platform top: land on it
//  2. rising with its bottom below the platform bottom: bump the underside
//  3. moving right: stop at the platform's left edge
//  4. moving left: stop at the platform's right edge
//
// Overlapping several platforms in one tick can leave corner artifacts;
// that is the expected behavior. It reports whether b landed.
func ResolvePlatforms(b *Body, platforms []core.RectF) (grounded bool) {
	for _, p := range platforms {
		if !b.Overlaps(p) {
			continue
		}
		switch {
		case b.VY > 0 && b.Y < p.Y:
			b.Y = p.Y - b.H
			b.VY = 0
			grounded = true
		case b.VY < 0 && b.Bottom() > p.Bottom():
			b.Y = p.Bottom()
			b.VY = 0
		case b.VX > 0:
			b.X = p.X - b.W
			b.VX = 0
		case b.VX < 0:
			b.X = p.Right()
			b.VX = 0
		}
	}
	return grounded
}

// ResolvePatrol is the enemy variant: land when the top is above the
// platform top, otherwise turn around at the platform's side.
func ResolvePatrol(b *Body, platforms []core.RectF) (grounded bool) {
	for _, p := range platforms {
		if !b.Overlaps(p) {
			continue
		}
		switch {
		case b.Y < p.Y:
			b.Y = p.Y - b.H
			grounded = true
		case b.VX > 0:
			b.X = p.X - b.W
			b.VX = -math.Abs(b.VX)
		case b.VX < 0:
			b.X = p.Right()
			b.VX = math.Abs(b.VX)
		}
	}
	return grounded
}

// Integrate applies gravity to the vertical velocity, then moves b.
func Integrate(b *Body, gravity float64) {
	b.VY += gravity
	b.X += b.VX
	b.Y += b.VY
}
