// Package config provides YAML-based game configuration loading,
// validation and hot reload.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all tuning for the game.
// All distances are in world units, all speeds in world units per tick.
type FlappyConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// WorldConfig defines the playfield and its update cadence.
type WorldConfig struct {
	Title    string  `yaml:"title"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // Update ticks per real second
}

// PlayerConfig defines the player column and its vertical kinematics.
type PlayerConfig struct {
	X            float64 `yaml:"x"`              // Left edge of the player column
	Size         float64 `yaml:"size"`           // Width and height of the player square
	StartY       float64 `yaml:"start_y"`        // Position after every reset
	MaxY         float64 `yaml:"max_y"`          // Lower clamp bound
	FloorY       float64 `yaml:"floor_y"`        // Reaching this position is a failure
	Gravity      float64 `yaml:"gravity"`        // Added to velocity each tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Gravity stops accumulating at this velocity
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Velocity set by a jump (negative = up)
}

// ObstacleConfig defines obstacle size, speed and the spawn/retire policy.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	Speed         float64 `yaml:"speed"`
	SpawnX        float64 `yaml:"spawn_x"`       // Where new obstacles appear
	SpawnTrigger  float64 `yaml:"spawn_trigger"` // Spawn once the newest obstacle is left of this
	RetireX       float64 `yaml:"retire_x"`      // Retire once the oldest obstacle is left of this
	GapMin        float64 `yaml:"gap_min"`       // Gap centre is sampled from [GapMin, GapMax)
	GapMax        float64 `yaml:"gap_max"`
	GapHalfHeight float64 `yaml:"gap_half_height"`
}

// Validate reports the first setting that would make the game unplayable
// or break its invariants.
func (c FlappyConfig) Validate() error {
	w, p, o := c.World, c.Player, c.Obstacles

	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %gx%g", ErrInvalid, w.Width, w.Height)
	case w.TickRate <= 0:
		return fmt.Errorf("%w: world.tick_rate must be positive, got %d", ErrInvalid, w.TickRate)
	}

	switch {
	case p.Size <= 0:
		return fmt.Errorf("%w: player.size must be positive, got %g", ErrInvalid, p.Size)
	case p.MaxY <= 0 || p.MaxY > w.Height:
		return fmt.Errorf("%w: player.max_y must be in (0, %g], got %g", ErrInvalid, w.Height, p.MaxY)
	case p.FloorY <= 0 || p.FloorY > p.MaxY:
		return fmt.Errorf("%w: player.floor_y must be in (0, max_y], got %g", ErrInvalid, p.FloorY)
	case p.StartY <= 0 || p.StartY >= p.FloorY:
		return fmt.Errorf("%w: player.start_y must be in (0, floor_y), got %g", ErrInvalid, p.StartY)
	case p.Gravity <= 0:
		return fmt.Errorf("%w: player.gravity must be positive, got %g", ErrInvalid, p.Gravity)
	case p.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: player.max_fall_speed must be positive, got %g", ErrInvalid, p.MaxFallSpeed)
	case p.JumpImpulse >= 0:
		return fmt.Errorf("%w: player.jump_impulse must be negative, got %g", ErrInvalid, p.JumpImpulse)
	}

	switch {
	case o.Width <= 0:
		return fmt.Errorf("%w: obstacles.width must be positive, got %g", ErrInvalid, o.Width)
	case o.Speed <= 0:
		return fmt.Errorf("%w: obstacles.speed must be positive, got %g", ErrInvalid, o.Speed)
	case o.GapHalfHeight <= 0:
		return fmt.Errorf("%w: obstacles.gap_half_height must be positive, got %g", ErrInvalid, o.GapHalfHeight)
	case o.GapMin <= 0 || o.GapMax >= w.Height || o.GapMin >= o.GapMax:
		return fmt.Errorf("%w: obstacles gap range [%g, %g) must lie strictly inside (0, %g)",
			ErrInvalid, o.GapMin, o.GapMax, w.Height)
	case !(o.RetireX < o.SpawnTrigger && o.SpawnTrigger < o.SpawnX):
		return fmt.Errorf("%w: obstacles need retire_x < spawn_trigger < spawn_x, got %g, %g, %g",
			ErrInvalid, o.RetireX, o.SpawnTrigger, o.SpawnX)
	}

	return nil
}
