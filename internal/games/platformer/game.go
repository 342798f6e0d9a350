// Package platformer implements a side-scrolling platformer: a player
// running and jumping across fixed platforms, stomping patrolling enemies
// and collecting coins and power-ups.
//
// Each tick runs the player and entity rules, which emit intents into an
// event buffer. The buffer is applied after every entity has updated, and
// tombstoned entities are compacted away at the end of the tick.
package platformer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

const (
	statusReady  = "Press Enter or Space to start"
	statusPaused = "Paused. P resumes, R restarts"
	statusOver   = "Game over. R or Enter to play again"
	statusWon    = "Level complete! +%d"
	statusOuch   = "Ouch! Lives left: %d"
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

// Game implements the platformer.
type Game struct {
	cfg    config.PlatformerConfig
	pinned bool
	level  Level
	rng    *rand.Rand

	player Player
	arena  *Arena
	events Events
	camera float64

	phase  core.Phase
	status string
	score  int
	lives  int
	coins  int
	tick   uint64

	cues  []core.Cue
	ended bool
	final int
	hurt  bool // damage already taken this tick
}

// New creates a platformer that loads its config on Reset.
func New() *Game {
	return &Game{level: currentLevel()}
}

// NewWithConfig creates a platformer with a fixed config.
func NewWithConfig(cfg config.PlatformerConfig) *Game {
	return &Game{cfg: cfg, pinned: true, level: DefaultLevel}
}

// NewWithLevel creates a platformer with a fixed config and level.
func NewWithLevel(cfg config.PlatformerConfig, level Level) *Game {
	return &Game{cfg: cfg, pinned: true, level: level}
}

// levelWidth is the file's width unless the active tuning cannot play it.
func (g *Game) levelWidth() float64 {
	if g.level.Width >= MinWidth(g.cfg) {
		return g.level.Width
	}
	return g.cfg.World.LevelWidth
}

// Level returns the level being played.
func (g *Game) Level() Level { return g.level }

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "platformer" }

// Title returns the display name.
func (g *Game) Title() string { return "Platformer" }

// Viewport returns the visible world size.
func (g *Game) Viewport() (w, h float64) {
	return g.cfg.World.ViewWidth, g.cfg.World.ViewHeight
}

// Reset loads the config and shows the start screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadPlatformer(configPath)
		if err != nil {
			cfg = config.DefaultPlatformerConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPlatformerPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.restart()
	g.phase = core.PhaseReady
	g.status = statusReady
}

// restart rebuilds the level and starts playing at once.
func (g *Game) restart() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.coins = 0
	g.player = NewPlayer(g.cfg.Player)
	g.arena = g.level.Populate()
	g.events.Drain()
	g.camera = 0
	g.phase = core.PhaseRunning
	g.status = ""
}

// Step advances the game by one tick. The simulation is tick based, so now
// is not used.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	g.tick++
	g.cues = nil
	g.ended = false
	g.final = 0

	g.handleInput(in)
	if g.phase == core.PhaseRunning {
		g.simulate(in)
	}

	return core.StepResult{
		State:      g.State(),
		Cues:       g.cues,
		Ended:      g.ended,
		FinalScore: g.final,
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch g.phase {
	case core.PhaseReady:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
			g.phase = core.PhaseRunning
			g.status = ""
		}
	case core.PhaseRunning:
		if in.Has(core.ActionPause) {
			g.phase = core.PhasePaused
			g.status = statusPaused
		}
	case core.PhasePaused:
		switch {
		case in.Has(core.ActionRestart):
			g.restart()
		case in.Has(core.ActionPause) || in.Has(core.ActionConfirm):
			g.phase = core.PhaseRunning
			g.status = ""
		}
	case core.PhaseOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.restart()
		}
	}
}

// simulate runs one tick of play.
func (g *Game) simulate(in core.InputFrame) {
	g.hurt = false
	w := g.cfg.World

	if g.player.Control(in, g.cfg) {
		g.events.Cue(core.CueJump)
	}
	g.player.Move(w.Gravity, g.levelWidth())
	g.player.Grounded = ResolvePlatforms(&g.player.Body, g.level.Platforms)

	g.collideEnemies()
	g.collideItems()
	g.player.Tick()

	g.arena.Each(g.updateEntity)

	g.apply(g.events.Drain())

	if g.phase == core.PhaseRunning {
		g.checkBounds()
	}
	g.arena.Compact()
	g.camera = CameraX(g.player.X, w.ViewWidth, g.levelWidth())
}

// collideEnemies handles stomps and damage from enemy contact. At most one
// damage event is emitted per tick.
func (g *Game) collideEnemies() {
	p := &g.player
	g.arena.EachKind(KindEnemy, func(e *Entity) {
		if p.Invulnerable > 0 || !p.Overlaps(e.Rect()) {
			return
		}
		if p.VY > 0 && p.Y < e.Y-g.cfg.Gameplay.StompTolerance {
			p.VY = g.cfg.Player.StompBounce
			g.events.Emit(Event{Kind: EventEnemyDestroyed, Target: e.ID})
			g.events.Score(g.cfg.Scoring.Stomp)
			g.events.Cue(core.CueStomp)
			g.events.Burst(e.CenterX(), e.CenterY(), core.ColorBrown, burstCount)
			return
		}
		if !g.hurt {
			g.hurt = true
			g.events.Emit(Event{Kind: EventPlayerHurt})
		}
	})
}

// collideItems collects every overlapped coin and power-up.
func (g *Game) collideItems() {
	p := &g.player
	g.arena.Each(func(e *Entity) {
		if (e.Kind != KindCoin && e.Kind != KindPowerUp) || !p.Overlaps(e.Rect()) {
			return
		}
		switch e.Kind {
		case KindCoin:
			g.events.Emit(Event{Kind: EventCoinCollected, Target: e.ID})
			g.events.Score(g.cfg.Scoring.Coin)
			g.events.Cue(core.CueCoin)
			g.events.Burst(e.CenterX(), e.CenterY(), core.ColorGold, burstCount)
		case KindPowerUp:
			g.events.Emit(Event{Kind: EventPowerUpCollected, Target: e.ID})
			g.events.Score(g.cfg.Scoring.PowerUp)
			g.events.Cue(core.CuePowerUp)
			g.events.Burst(e.CenterX(), e.CenterY(), core.ColorPink, burstCount)
		}
	})
}

// updateEntity advances one arena entity by a tick.
func (g *Game) updateEntity(e *Entity) {
	viewH := g.cfg.World.ViewHeight
	switch e.Kind {
	case KindEnemy:
		e.X += e.VX
		e.Y += g.cfg.World.Gravity
		ResolvePatrol(&e.Body, g.level.Platforms)
		if e.Y > viewH {
			e.Dead = true
		}
	case KindCoin:
		e.Rotation += coinSpin
	case KindPowerUp:
		Integrate(&e.Body, powerUpFall)
		ResolvePlatforms(&e.Body, g.level.Platforms)
		if e.Y > viewH {
			e.Dead = true
		}
	case KindParticle:
		Integrate(&e.Body, particleFall)
		e.Life--
		if e.Life <= 0 {
			e.Dead = true
		}
	}
}

// apply consumes the tick's intents in emission order.
func (g *Game) apply(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventScoreGained:
			g.score += ev.Points
		case EventEnemyDestroyed:
			g.arena.Kill(ev.Target)
		case EventParticlesRequested:
			for range ev.Count {
				g.arena.Spawn(NewParticle(g.rng, ev.X, ev.Y, ev.Color))
			}
		case EventCoinCollected:
			g.arena.Kill(ev.Target)
			g.coins++
		case EventPowerUpCollected:
			g.arena.Kill(ev.Target)
			g.player.Grow(g.cfg.Player)
		case EventPlayerHurt:
			if g.player.Big {
				g.player.Shrink(g.cfg.Player)
			} else {
				g.loseLife()
			}
		case EventCueRequested:
			g.cues = append(g.cues, ev.Cue)
		}
	}
}

// checkBounds handles falling out of the world and reaching the goal.
func (g *Game) checkBounds() {
	w := g.cfg.World
	if g.player.Y > w.ViewHeight {
		g.loseLife()
		return
	}
	if g.player.X > g.levelWidth()-g.cfg.Gameplay.GoalMargin {
		g.score += g.cfg.Scoring.LevelComplete
		g.ended = true
		g.final = g.score
		g.restart()
		g.status = fmt.Sprintf(statusWon, g.cfg.Scoring.LevelComplete)
	}
}

// loseLife takes a life and respawns the player, or ends the game.
func (g *Game) loseLife() {
	if g.phase != core.PhaseRunning {
		return
	}
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseOver
		g.status = statusOver
		g.cues = append(g.cues, core.CueGameOver)
		g.ended = true
		g.final = g.score
		return
	}
	g.player = NewPlayer(g.cfg.Player)
	g.camera = 0
	g.status = fmt.Sprintf(statusOuch, g.lives)
}

// CameraX returns the horizontal scroll offset that centers x, clamped to
// the level.
func CameraX(x, viewWidth, levelWidth float64) float64 {
	return core.ClampF(x-viewWidth/2, 0, levelWidth-viewWidth)
}

// State returns the display state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Level:  1,
		Lives:  g.lives,
		Coins:  g.coins,
		Phase:  g.phase,
		Status: g.status,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player { return g.player }

// Arena returns the entity arena.
func (g *Game) Arena() *Arena { return g.arena }

// Camera returns the current horizontal scroll offset.
func (g *Game) Camera() float64 { return g.camera }
