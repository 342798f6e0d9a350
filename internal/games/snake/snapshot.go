package snake

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot captures the game state for determinism tests and headless runs.
type Snapshot struct {
	Tick    uint64
	Phase   core.Phase
	Score   int
	Level   int
	SpeedMs int
	Len     int
	Head    Point
	Dir     Direction
	Food    Point
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head Point
	if len(g.body) > 0 {
		head = g.body[0]
	}
	return Snapshot{
		Tick:    g.tick,
		Phase:   g.phase,
		Score:   g.score,
		Level:   g.level,
		SpeedMs: int(g.speed.Milliseconds()),
		Len:     len(g.body),
		Head:    head,
		Dir:     g.dir,
		Food:    g.food,
	}
}

// Body returns a copy of the segments, head first.
func (g *Game) Body() []Point {
	return append([]Point(nil), g.body...)
}

// Food returns the food cell, or (-1,-1) when the board is full.
func (g *Game) Food() Point { return g.food }
