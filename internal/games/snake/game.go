// Package snake implements a grid snake game with a rate-limited mover.
//
// The snake moves one cell whenever at least one move interval has passed
// since the previous move. Eating food scores points, grows the body and
// raises the level, which shortens the interval down to a floor.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Direction is a unit step on the grid. The zero value is DirNone.
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}

// SteerResult reports what a direction request did.
type SteerResult int

const (
	SteerApplied SteerResult = iota // direction changed
	SteerIgnored                    // reversal; accepted without effect
	SteerBlocked                    // game over or paused
)

// foodAttempts bounds rejection sampling before scanning for free cells.
const foodAttempts = 64

// Status lines shown under the board.
const (
	statusReady   = "Press an arrow key to start"
	statusRunning = "Go!"
	statusPaused  = "Paused. Space resumes, R restarts"
	statusAte     = "Yum"
	statusOver    = "Game over. Space or R to play again"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the snake game.
type Game struct {
	cfg    config.SnakeConfig
	pinned bool // cfg was given explicitly and is not reloaded on Reset
	rng    *rand.Rand

	body     []Point // head at index 0
	dir      Direction
	food     Point
	score    int
	level    int
	speed    time.Duration
	lastMove time.Duration
	phase    core.Phase
	status   string
	tick     uint64

	cues  []core.Cue
	ended bool
}

// New creates a snake game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a snake game with a fixed config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Viewport returns the board size in world units.
func (g *Game) Viewport() (w, h float64) {
	return float64(g.cfg.Grid.Cols) * g.cfg.Grid.CellSize, float64(g.cfg.Grid.Rows) * g.cfg.Grid.CellSize
}

// Reset loads the config and starts a fresh session.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		if difficultyPreset != "" {
			config.ApplySnakePreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.restart()
}

// restart reinitializes the session, keeping the RNG stream.
func (g *Game) restart() {
	g.body = []Point{{X: g.cfg.Start.X, Y: g.cfg.Start.Y}}
	g.dir = DirNone
	g.score = 0
	g.level = 1
	g.speed = SpeedForLevel(g.cfg, 1)
	g.lastMove = 0
	g.phase = core.PhaseReady
	g.status = statusReady
	g.placeFood()
}

// Step applies the frame's key presses in arrival order, then moves the
// snake if it is running and the move interval has elapsed.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	g.tick++
	g.cues = nil
	g.ended = false

	for _, a := range in.Order {
		g.handleAction(a)
	}

	if g.phase == core.PhaseRunning && now-g.lastMove >= g.speed {
		g.lastMove = now
		g.move()
	}

	return core.StepResult{
		State:      g.State(),
		Cues:       g.cues,
		Ended:      g.ended,
		FinalScore: g.score,
	}
}

func (g *Game) handleAction(a core.Action) {
	switch a {
	case core.ActionPause:
		g.TogglePause()
	case core.ActionRestart:
		if g.phase == core.PhaseOver || g.phase == core.PhasePaused {
			g.restart()
		}
	case core.ActionUp:
		g.Steer(DirUp)
	case core.ActionDown:
		g.Steer(DirDown)
	case core.ActionLeft:
		g.Steer(DirLeft)
	case core.ActionRight:
		g.Steer(DirRight)
	}
}

// TogglePause restarts a finished game, does nothing before the first
// move, and otherwise flips between running and paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case core.PhaseOver:
		g.restart()
	case core.PhaseRunning:
		g.phase = core.PhasePaused
		g.status = statusPaused
	case core.PhasePaused:
		g.phase = core.PhaseRunning
		g.status = statusRunning
	}
}

// Steer requests a new direction. The first request starts the game.
func (g *Game) Steer(d Direction) SteerResult {
	if g.phase == core.PhaseOver || g.phase == core.PhasePaused {
		return SteerBlocked
	}
	if g.phase == core.PhaseReady {
		g.phase = core.PhaseRunning
		g.status = statusRunning
	}
	if g.dir != DirNone && d == g.dir.Inverse() {
		return SteerIgnored
	}
	g.dir = d
	return SteerApplied
}

// move advances the snake one cell.
func (g *Game) move() {
	if g.dir == DirNone {
		return
	}

	head := g.body[0].Add(g.dir)
	if g.collides(head) {
		g.phase = core.PhaseOver
		g.status = statusOver
		g.cues = append(g.cues, core.CueGameOver)
		g.ended = true
		return
	}

	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = head

	if head != g.food {
		g.body = g.body[:len(g.body)-1]
		return
	}

	g.score += g.cfg.Scoring.FoodPoints
	g.status = statusAte
	g.cues = append(g.cues, core.CueEat)
	g.placeFood()

	if level := LevelForScore(g.score, g.cfg.Scoring.PointsPerLevel); level > g.level {
		g.level = level
		g.speed = SpeedForLevel(g.cfg, level)
		g.status = fmt.Sprintf("Level %d", level)
		g.cues = append(g.cues, core.CueLevelUp)
	}
}

// collides reports whether p is off the board or on any segment,
// including the tail that would move away this step.
func (g *Game) collides(p Point) bool {
	if !g.inBounds(p) {
		return true
	}
	return g.occupied(p)
}

func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.Grid.Cols && p.Y >= 0 && p.Y < g.cfg.Grid.Rows
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood samples a free cell, falling back to a scan of free cells.
// A full board parks the food off-grid.
func (g *Game) placeFood() {
	cols, rows := g.cfg.Grid.Cols, g.cfg.Grid.Rows
	if cols <= 0 || rows <= 0 {
		g.food = Point{X: -1, Y: -1}
		return
	}

	for range foodAttempts {
		p := Point{X: g.rng.Intn(cols), Y: g.rng.Intn(rows)}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}

	var free []Point
	for y := range rows {
		for x := range cols {
			if p := (Point{X: x, Y: y}); !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// State returns the display state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Level:  g.level,
		Lives:  -1,
		Coins:  -1,
		Phase:  g.phase,
		Status: g.status,
	}
}

// LevelForScore returns floor(score/pointsPerLevel)+1.
func LevelForScore(score, pointsPerLevel int) int {
	if pointsPerLevel <= 0 {
		return 1
	}
	return score/pointsPerLevel + 1
}

// SpeedForLevel returns the move interval for a level:
// max(min, base - (level-1)*step), or base when progression is off.
func SpeedForLevel(cfg config.SnakeConfig, level int) time.Duration {
	ms := cfg.Speed.BaseMs
	if cfg.Difficulty.Progression {
		ms = max(cfg.Speed.MinMs, cfg.Speed.BaseMs-(level-1)*cfg.Speed.StepMs)
	}
	return time.Duration(ms) * time.Millisecond
}
