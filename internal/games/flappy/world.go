package flappy

import (
	"slices"

	"github.com/vovakirdan/flappy/internal/config"
)

// World owns the player and the active obstacles.
// It has a single logical state: a failure reinitializes it in place
// instead of ending the game.
type World struct {
	cfg       config.FlappyConfig
	rng       Rand
	player    Player
	obstacles []Obstacle // Oldest (leftmost) first
}

// NewWorld creates a world with the player at its start position and no
// obstacles yet; the first Update spawns one.
func NewWorld(cfg config.FlappyConfig, rng Rand) *World {
	return &World{
		cfg:       cfg,
		rng:       rng,
		player:    NewPlayer(cfg.Player),
		obstacles: make([]Obstacle, 0, 4),
	}
}

// Update advances the world by one tick:
// kinematics, then failure checks (which may reset), then retire/spawn.
func (w *World) Update() {
	w.player.Update(w.cfg.Player)
	for i := range w.obstacles {
		w.obstacles[i].Update(w.cfg.Obstacles)
	}

	if w.failed() {
		w.Reset()
	}

	w.retireAndSpawn()
}

// Jump gives the player the upward impulse.
func (w *World) Jump() {
	w.player.Jump(w.cfg.Player)
}

// Reset puts the player back at rest at its start position and replaces the
// obstacles with a single fresh one at the spawn position.
func (w *World) Reset() {
	w.player = NewPlayer(w.cfg.Player)
	w.obstacles = append(w.obstacles[:0], NewObstacle(w.cfg.Obstacles.SpawnX, w.cfg.Obstacles, w.rng))
}

// Reconfigure swaps the tuning and resets the world under it.
func (w *World) Reconfigure(cfg config.FlappyConfig) {
	w.cfg = cfg
	w.Reset()
}

// failed scans every obstacle and the world bounds. It only reads state;
// the caller resets afterwards so the obstacle slice is never modified
// while it is being iterated.
func (w *World) failed() bool {
	p, o := w.cfg.Player, w.cfg.Obstacles

	hit := false
	for _, obs := range w.obstacles {
		if obs.InColumn(o.Width, p.X, p.Size) && !obs.Clears(w.player.Y) {
			hit = true
		}
	}

	// Reaching a bound is a loss even though Player.Update already clamped it.
	if w.player.Y <= 0 || w.player.Y >= p.FloorY {
		hit = true
	}
	return hit
}

// retireAndSpawn drops the oldest obstacle once it is past the retirement
// threshold and appends a new one once the newest has travelled past the
// spawn trigger. The two checks are independent.
func (w *World) retireAndSpawn() {
	o := w.cfg.Obstacles

	if len(w.obstacles) > 0 && w.obstacles[0].X < o.RetireX {
		w.obstacles = slices.Delete(w.obstacles, 0, 1)
	}

	if len(w.obstacles) == 0 || w.obstacles[len(w.obstacles)-1].X < o.SpawnTrigger {
		w.obstacles = append(w.obstacles, NewObstacle(o.SpawnX, o, w.rng))
	}
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// Obstacles returns a copy of the active obstacles, oldest first.
func (w *World) Obstacles() []Obstacle {
	return slices.Clone(w.obstacles)
}

// Config returns the tuning the world is running with.
func (w *World) Config() config.FlappyConfig {
	return w.cfg
}
