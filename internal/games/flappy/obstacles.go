package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Rand is the random source used to place gaps.
// *math/rand.Rand satisfies it; tests supply a fixed sequence.
type Rand interface {
	// Float64 returns a uniformly distributed value in [0, 1).
	Float64() float64
}

// Obstacle is a pair of vertical barriers with a passable gap between them.
type Obstacle struct {
	X             float64 // Left edge, decreasing every tick
	GapCenter     float64
	GapHalfHeight float64
}

// NewObstacle creates an obstacle at x with its gap centre sampled
// uniformly from [GapMin, GapMax).
func NewObstacle(x float64, cfg config.ObstacleConfig, rng Rand) Obstacle {
	return Obstacle{
		X:             x,
		GapCenter:     cfg.GapMin + rng.Float64()*(cfg.GapMax-cfg.GapMin),
		GapHalfHeight: cfg.GapHalfHeight,
	}
}

// Update moves the obstacle left by one tick's worth of travel.
func (o *Obstacle) Update(cfg config.ObstacleConfig) {
	o.X -= cfg.Speed
}

// InColumn reports whether the obstacle's horizontal band overlaps the
// player's column [playerX, playerX+playerSize).
func (o Obstacle) InColumn(width, playerX, playerSize float64) bool {
	return o.X < playerX+playerSize && o.X+width > playerX
}

// Clears reports whether a player at y is strictly inside the gap.
func (o Obstacle) Clears(y float64) bool {
	return y > o.GapCenter-o.GapHalfHeight && y < o.GapCenter+o.GapHalfHeight
}

// TopRect returns the upper barrier, from the top of the world to the gap.
func (o Obstacle) TopRect(width float64) core.RectF {
	return core.RectByCorners(o.X, 0, o.X+width, o.GapCenter-o.GapHalfHeight)
}

// BottomRect returns the lower barrier, from the gap to the bottom of the world.
func (o Obstacle) BottomRect(width, worldH float64) core.RectF {
	return core.RectByCorners(o.X, o.GapCenter+o.GapHalfHeight, o.X+width, worldH)
}
