package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
)

func TestPlayerGravity(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Player

	p := NewPlayer(cfg)
	if p.Y != cfg.StartY || p.Velocity != 0 {
		t.Fatalf("NewPlayer = %+v, expected at rest at %g", p, cfg.StartY)
	}

	p.Update(cfg)
	// Position moves by the old velocity, then gravity applies
	if p.Y != cfg.StartY {
		t.Errorf("Y after first tick = %g, expected %g", p.Y, cfg.StartY)
	}
	if !approxEqual(p.Velocity, 1.3) {
		t.Errorf("velocity after first tick = %g, expected 1.3", p.Velocity)
	}

	p.Update(cfg)
	if !approxEqual(p.Y, cfg.StartY+1.3) {
		t.Errorf("Y after second tick = %g, expected %g", p.Y, cfg.StartY+1.3)
	}
}

func TestPlayerFallCap(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Player

	tests := []struct {
		name     string
		velocity float64
		expected float64
	}{
		{"below cap accumulates", 9.5, 10.8},
		{"at cap stops", 10, 10},
		{"above cap stays", 11.3, 11.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{Y: 20, Velocity: tc.velocity}
			p.Update(cfg)
			if !approxEqual(p.Velocity, tc.expected) {
				t.Errorf("velocity = %g, expected %g", p.Velocity, tc.expected)
			}
		})
	}
}

func TestPlayerClamp(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Player

	tests := []struct {
		name   string
		player Player
		wantY  float64
	}{
		{"below lower bound", Player{Y: 275, Velocity: 10}, cfg.MaxY},
		{"above upper bound", Player{Y: 4, Velocity: -8}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.player
			p.Update(cfg)
			if p.Y != tc.wantY {
				t.Errorf("Y = %g, expected %g", p.Y, tc.wantY)
			}
			if p.Velocity != 0 {
				t.Errorf("velocity should be zeroed on clamp, got %g", p.Velocity)
			}
		})
	}
}

func TestPlayerJumpWhileFalling(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Player

	p := Player{Y: 100, Velocity: 7}
	p.Jump(cfg)
	if p.Velocity != cfg.JumpImpulse {
		t.Errorf("velocity = %g, expected %g", p.Velocity, cfg.JumpImpulse)
	}

	// No cooldown: a second press right away flaps again
	p.Update(cfg)
	p.Jump(cfg)
	if p.Velocity != cfg.JumpImpulse {
		t.Errorf("second jump velocity = %g, expected %g", p.Velocity, cfg.JumpImpulse)
	}
}

func TestPlayerRect(t *testing.T) {
	cfg := config.DefaultFlappyConfig().Player
	r := Player{Y: 140}.Rect(cfg)
	if r.X != 50 || r.Y != 140 || r.W != 20 || r.H != 20 {
		t.Errorf("Rect = %+v, expected 20x20 at (50, 140)", r)
	}
}
