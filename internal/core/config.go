package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Game is the contract between the simulation and a frontend.
// The frontend owns timing, input mapping and the display; the game owns
// all world state and only ever mutates it inside Reset and Step.
type Game interface {
	// ID returns a short identifier (used for logging).
	ID() string

	// Title returns a human-readable name (used for the window title).
	Title() string

	// Reset builds a fresh world from the runtime configuration.
	Reset(cfg RuntimeConfig)

	// Step applies the pending input and advances the simulation by one tick.
	Step(in InputFrame)

	// Render draws the current world onto a canvas in world coordinates.
	Render(dst Canvas)

	// Bounds returns the world width and height in world units.
	Bounds() (w, h float64)
}
