package platformer

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Player is the controlled character. A respawn replaces the whole value.
type Player struct {
	Body
	Big          bool
	Grounded     bool
	Invulnerable int // ticks left
	Facing       int // -1 left, 1 right
}

// NewPlayer creates a small player at the spawn point.
func NewPlayer(cfg config.PlatformerPlayer) Player {
	return Player{
		Body: Body{
			X: cfg.SpawnX,
			Y: cfg.SpawnY,
			W: cfg.Width,
			H: cfg.Height,
		},
		Facing: 1,
	}
}

// Control applies held input: accelerate toward the pressed side up to
// max speed, otherwise slow down by friction; jump only from the ground.
// It reports whether a jump started.
func (p *Player) Control(in core.InputFrame, cfg config.PlatformerConfig) (jumped bool) {
	switch {
	case in.IsHeld(core.ActionLeft):
		p.VX = max(p.VX-cfg.Player.Accel, -cfg.Player.MaxSpeed)
		p.Facing = -1
	case in.IsHeld(core.ActionRight):
		p.VX = min(p.VX+cfg.Player.Accel, cfg.Player.MaxSpeed)
		p.Facing = 1
	default:
		p.VX *= cfg.World.Friction
	}

	if p.Grounded && (in.IsHeld(core.ActionJump) || in.IsHeld(core.ActionUp)) {
		p.VY = cfg.Player.JumpImpulse
		p.Grounded = false
		return true
	}
	return false
}

// Move integrates gravity and velocity and keeps the player inside the level.
func (p *Player) Move(gravity, levelWidth float64) {
	Integrate(&p.Body, gravity)
	p.X = core.ClampF(p.X, 0, levelWidth-p.W)
}

// Grow turns a small player big, keeping the feet in place.
func (p *Player) Grow(cfg config.PlatformerPlayer) {
	if p.Big {
		return
	}
	p.Big = true
	p.Y -= cfg.BigHeight - p.H
	p.H = cfg.BigHeight
}

// Shrink turns a big player small and starts the invulnerability window.
func (p *Player) Shrink(cfg config.PlatformerPlayer) {
	p.Big = false
	p.H = cfg.Height
	p.Invulnerable = cfg.InvulnerableTicks
}

// Tick counts down the invulnerability window.
func (p *Player) Tick() {
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
}

// Visible reports whether the player is drawn this frame; invulnerable
// players blink every five ticks.
func (p *Player) Visible() bool {
	return p.Invulnerable <= 0 || (p.Invulnerable/5)%2 == 0
}
