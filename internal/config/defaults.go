package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in tuning.
// It must stay in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Title:    "flappy",
			Width:    500,
			Height:   300,
			TickRate: 30,
		},
		Player: PlayerConfig{
			X:            50,
			Size:         20,
			StartY:       140,
			MaxY:         280,
			FloorY:       250,
			Gravity:      1.3,
			MaxFallSpeed: 10,
			JumpImpulse:  -8,
		},
		Obstacles: ObstacleConfig{
			Width:         30,
			Speed:         3,
			SpawnX:        500,
			SpawnTrigger:  350,
			RetireX:       -50,
			GapMin:        90,
			GapMax:        210,
			GapHalfHeight: 42,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
