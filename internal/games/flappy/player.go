package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Player is the bird. Its column is fixed; only the vertical state moves.
type Player struct {
	Y        float64 // Top edge of the hitbox, 0 at the top of the world
	Velocity float64 // Positive is downward
}

// NewPlayer returns a player at rest at the configured start position.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{Y: cfg.StartY}
}

// Update applies one tick of velocity and gravity, then clamps to [0, MaxY].
// Gravity only accumulates while the velocity is below the fall cap.
func (p *Player) Update(cfg config.PlayerConfig) {
	p.Y += p.Velocity
	if p.Velocity < cfg.MaxFallSpeed {
		p.Velocity += cfg.Gravity
	}

	if p.Y > cfg.MaxY {
		p.Y = cfg.MaxY
		p.Velocity = 0
	}
	if p.Y < 0 {
		p.Y = 0
		p.Velocity = 0
	}
}

// Jump replaces the current velocity with the upward impulse.
// There is no cooldown: every press while airborne flaps again.
func (p *Player) Jump(cfg config.PlayerConfig) {
	p.Velocity = cfg.JumpImpulse
}

// Rect returns the player's square in world coordinates.
func (p Player) Rect(cfg config.PlayerConfig) core.RectF {
	return core.NewRectF(cfg.X, p.Y, cfg.Size, cfg.Size)
}
