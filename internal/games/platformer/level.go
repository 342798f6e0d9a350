package platformer

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Entity sizes and motion constants.
const (
	enemySize     = 24
	enemySpeed    = -1
	coinSize      = 16
	coinSpin      = 0.1
	powerUpSize   = 20
	powerUpLaunch = -2
	powerUpFall   = 0.1
	particleFall  = 0.3
	particleLife  = 30
	burstCount    = 5
)

// Spawn is a starting position.
type Spawn struct {
	X, Y float64
}

// Level is static level data. Platforms never change after construction.
type Level struct {
	Name      string
	Width     float64 // 0 uses the configured level width
	Platforms []core.RectF
	Enemies   []Spawn
	Coins     []Spawn
	PowerUps  []Spawn
}

// DefaultLevel is the single built-in level.
var DefaultLevel = Level{
	Name: "World 1-1",
	Platforms: []core.RectF{
		{X: 0, Y: 550, W: 800, H: 50},
		{X: 900, Y: 550, W: 400, H: 50},
		{X: 1400, Y: 450, W: 200, H: 20},
		{X: 1700, Y: 350, W: 200, H: 20},
		{X: 2000, Y: 450, W: 300, H: 20},
		{X: 2400, Y: 350, W: 200, H: 20},
		{X: 2700, Y: 550, W: 500, H: 50},

		{X: 200, Y: 400, W: 100, H: 20},
		{X: 450, Y: 350, W: 100, H: 20},
		{X: 650, Y: 300, W: 100, H: 20},
		{X: 1100, Y: 400, W: 150, H: 20},
	},
	Enemies: []Spawn{
		{300, 520}, {600, 520}, {1000, 520},
		{1500, 420}, {2100, 420}, {2800, 520},
	},
	Coins: []Spawn{
		{250, 350}, {500, 300}, {700, 250}, {1150, 350},
		{1450, 400}, {1750, 300}, {2050, 400}, {2450, 300},
	},
	PowerUps: []Spawn{
		{400, 300}, {1600, 300},
	},
}

// Populate spawns the level's enemies and collectibles into a new arena.
func (l Level) Populate() *Arena {
	a := NewArena()
	for _, s := range l.Enemies {
		a.Spawn(NewEnemy(s.X, s.Y))
	}
	for _, s := range l.Coins {
		a.Spawn(NewCoin(s.X, s.Y))
	}
	for _, s := range l.PowerUps {
		a.Spawn(NewPowerUp(s.X, s.Y))
	}
	return a
}

// NewEnemy creates a patrolling enemy walking left.
func NewEnemy(x, y float64) Entity {
	return Entity{Kind: KindEnemy, Body: Body{X: x, Y: y, VX: enemySpeed, W: enemySize, H: enemySize}}
}

// NewCoin creates a spinning coin.
func NewCoin(x, y float64) Entity {
	return Entity{Kind: KindCoin, Body: Body{X: x, Y: y, W: coinSize, H: coinSize}}
}

// NewPowerUp creates a power-up that pops up and then falls.
func NewPowerUp(x, y float64) Entity {
	return Entity{Kind: KindPowerUp, Body: Body{X: x, Y: y, VY: powerUpLaunch, W: powerUpSize, H: powerUpSize}}
}

// NewParticle creates a particle at (x, y) with a random upward-biased
// velocity and size.
func NewParticle(rng *rand.Rand, x, y float64, c core.Color) Entity {
	size := rng.Float64()*4 + 2
	return Entity{
		Kind: KindParticle,
		Body: Body{
			X:  x,
			Y:  y,
			VX: (rng.Float64() - 0.5) * 8,
			VY: (rng.Float64()-0.5)*8 - 2,
			W:  size,
			H:  size,
		},
		Life:    particleLife,
		MaxLife: particleLife,
		Color:   c,
	}
}
