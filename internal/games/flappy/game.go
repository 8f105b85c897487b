// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must pass through gaps in obstacles
// scrolling in from the right; touching an obstacle or a world bound
// restarts the run.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Colours of the three things on screen.
const (
	BackgroundColor = core.ColorGray
	PlayerColor     = core.ColorRed
	ObstacleColor   = core.ColorOrange
)

// Game adapts a World to the core.Game contract used by the frontends.
type Game struct {
	cfg   config.FlappyConfig
	world *World
}

// New creates a game with the given tuning. Call Reset before stepping it.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.World.Title == "" {
		return "flappy"
	}
	return g.cfg.World.Title
}

// Reset builds a fresh world seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
}

// SetConfig swaps the tuning and restarts the run under it.
func (g *Game) SetConfig(cfg config.FlappyConfig) {
	g.cfg = cfg
	if g.world != nil {
		g.world.Reconfigure(cfg)
	}
}

// Step applies pending input, then advances the world by one tick.
func (g *Game) Step(in core.InputFrame) {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}

	if in.Has(core.ActionRestart) {
		g.world.Reset()
	}
	if in.Has(core.ActionJump) {
		g.world.Jump()
	}

	g.world.Update()
}

// Render draws the background, the player and every obstacle.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(BackgroundColor)
	if g.world == nil {
		return
	}

	cfg := g.world.cfg
	dst.FillRect(g.world.player.Rect(cfg.Player), PlayerColor)

	width, worldH := cfg.Obstacles.Width, cfg.World.Height
	for _, o := range g.world.obstacles {
		dst.FillRect(o.TopRect(width), ObstacleColor)
		dst.FillRect(o.BottomRect(width, worldH), ObstacleColor)
	}
}

// Bounds returns the world size in world units.
func (g *Game) Bounds() (float64, float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// World exposes the simulation, mainly for headless runs.
func (g *Game) World() *World {
	return g.world
}
