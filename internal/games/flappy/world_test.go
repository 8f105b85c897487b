package flappy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
)

// fixedRand always returns the same value, placing every gap at the same height.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

// midGap puts gap centres at 150 with the default [90, 210) range.
const midGap = fixedRand(0.5)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultFlappyConfig(), midGap)
}

// assertResetState checks the state every reset must produce.
func assertResetState(t *testing.T, w *World) {
	t.Helper()
	cfg := w.Config()

	p := w.Player()
	if p.Y != cfg.Player.StartY || p.Velocity != 0 {
		t.Errorf("player = %+v, expected at rest at %g", p, cfg.Player.StartY)
	}

	obs := w.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected exactly one obstacle after reset, got %d", len(obs))
	}
	if obs[0].X != cfg.Obstacles.SpawnX {
		t.Errorf("obstacle X = %g, expected %g", obs[0].X, cfg.Obstacles.SpawnX)
	}
}

func TestNewWorldStartsEmpty(t *testing.T) {
	w := newTestWorld(t)

	if len(w.Obstacles()) != 0 {
		t.Errorf("new world should have no obstacles, got %d", len(w.Obstacles()))
	}

	w.Update()
	if len(w.Obstacles()) != 1 {
		t.Fatalf("first tick should spawn one obstacle, got %d", len(w.Obstacles()))
	}
	if w.Obstacles()[0].X != 500 {
		t.Errorf("first obstacle X = %g, expected 500", w.Obstacles()[0].X)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 40; i++ {
		w.Update()
	}

	w.Reset()
	assertResetState(t, w)
	once := w.Obstacles()

	w.Reset()
	assertResetState(t, w)
	if w.Obstacles()[0] != once[0] {
		t.Errorf("second reset changed state: %+v vs %+v", w.Obstacles()[0], once[0])
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	w := NewWorld(cfg, rand.New(rand.NewSource(7)))
	rng := rand.New(rand.NewSource(99))

	for tick := 0; tick < 5000; tick++ {
		if rng.Intn(6) == 0 {
			w.Jump()
		}
		w.Update()

		y := w.Player().Y
		if y < 0 || y > cfg.Player.MaxY {
			t.Fatalf("tick %d: player Y = %g outside [0, %g]", tick, y, cfg.Player.MaxY)
		}
		if len(w.Obstacles()) == 0 {
			t.Fatalf("tick %d: obstacle sequence is empty", tick)
		}
	}
}

func TestObstacleOrdering(t *testing.T) {
	w := NewWorld(config.DefaultFlappyConfig(), rand.New(rand.NewSource(3)))

	for tick := 0; tick < 1000; tick++ {
		// Hold the player in the middle so runs last long enough to fill the window
		w.player = Player{Y: 150}
		w.Update()

		obs := w.Obstacles()
		for i := 1; i < len(obs); i++ {
			if obs[i].X <= obs[i-1].X {
				t.Fatalf("tick %d: obstacles out of order: %+v", tick, obs)
			}
		}
	}
}

func TestCollisionOutsideGapResets(t *testing.T) {
	tests := []struct {
		name    string
		playerY float64
	}{
		{"above gap", 50},
		{"below gap", 200},
		{"on upper gap edge", 150 - 42},
		{"on lower gap edge", 150 + 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Reset()
			// Obstacle band [40, 70) overlaps the player column [50, 70)
			w.obstacles = []Obstacle{{X: 43, GapCenter: 150, GapHalfHeight: 42}}
			w.player = Player{Y: tc.playerY}

			w.Update()

			assertResetState(t, w)
		})
	}
}

func TestCollisionScansEveryObstacle(t *testing.T) {
	w := newTestWorld(t)
	w.Reset()
	// The first obstacle is cleared, the second one (also in the column) is not
	w.obstacles = []Obstacle{
		{X: 40, GapCenter: 150, GapHalfHeight: 42},
		{X: 60, GapCenter: 50, GapHalfHeight: 20},
	}
	w.player = Player{Y: 150}

	w.Update()

	assertResetState(t, w)
}

func TestPassThroughGap(t *testing.T) {
	w := newTestWorld(t)
	w.Reset()
	w.obstacles = []Obstacle{{X: 100, GapCenter: 150, GapHalfHeight: 42}}

	// From X=100 to X=10 the band crosses the whole player column
	for tick := 1; tick <= 30; tick++ {
		w.player = Player{Y: 150}
		w.Update()

		first := w.Obstacles()[0]
		if want := 100 - 3*float64(tick); first.X != want {
			t.Fatalf("tick %d: first obstacle X = %g, expected %g (world was reset)", tick, first.X, want)
		}
	}
}

func TestBoundsFailure(t *testing.T) {
	tests := []struct {
		name   string
		player Player
	}{
		{"reaches floor", Player{Y: 249, Velocity: 1}},
		{"below floor, above clamp", Player{Y: 260}},
		{"hits clamp bound", Player{Y: 279, Velocity: 10}},
		{"hits ceiling", Player{Y: 3, Velocity: -8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			w.Reset()
			w.player = tc.player

			w.Update()

			assertResetState(t, w)
		})
	}
}

func TestNearBoundsSurvive(t *testing.T) {
	w := newTestWorld(t)
	w.Reset()
	w.player = Player{Y: 248}

	w.Update()

	if got := w.Player().Y; got != 248 {
		t.Errorf("player Y = %g, expected 248 (no reset)", got)
	}
}

func TestSpawnAndRetire(t *testing.T) {
	w := newTestWorld(t)
	w.Reset()

	keepAlive := func() { w.player = Player{Y: 150} }

	for tick := 1; tick <= 50; tick++ {
		keepAlive()
		w.Update()
	}
	if n := len(w.Obstacles()); n != 1 {
		t.Fatalf("after 50 ticks (X=350) expected 1 obstacle, got %d", n)
	}

	keepAlive()
	w.Update() // tick 51: X=347 < 350
	if n := len(w.Obstacles()); n != 2 {
		t.Fatalf("after 51 ticks expected a second obstacle, got %d", n)
	}

	for tick := 52; tick <= 151; tick++ {
		keepAlive()
		w.Update()
	}
	obs := w.Obstacles()
	if obs[0].X > 53 {
		t.Errorf("after 151 ticks first obstacle X = %g, expected <= 53", obs[0].X)
	}
	if len(obs) < 2 {
		t.Errorf("after 151 ticks expected at least 2 obstacles, got %d", len(obs))
	}

	for tick := 152; tick <= 183; tick++ {
		keepAlive()
		w.Update()
	}
	if first := w.Obstacles()[0].X; first != -49 {
		t.Fatalf("after 183 ticks first obstacle X = %g, expected -49", first)
	}

	keepAlive()
	w.Update() // tick 184: X=-52 < -50
	if first := w.Obstacles()[0].X; first == -52 {
		t.Error("after 184 ticks the first obstacle should have been retired")
	}
}

func TestRetireAndSpawnSameTick(t *testing.T) {
	w := newTestWorld(t)
	w.Reset()
	w.obstacles = []Obstacle{
		{X: -49, GapCenter: 150, GapHalfHeight: 42},
		{X: 352, GapCenter: 150, GapHalfHeight: 42},
	}
	w.player = Player{Y: 150}

	w.Update()

	obs := w.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("expected retire and spawn to both fire, got %+v", obs)
	}
	if obs[0].X != 349 || obs[1].X != 500 {
		t.Errorf("obstacles = %+v, expected X 349 then 500", obs)
	}
}

func TestJumpImpulse(t *testing.T) {
	w := newTestWorld(t)
	w.Reset()

	w.Jump()
	if v := w.Player().Velocity; v != -8 {
		t.Fatalf("velocity after jump = %g, expected -8", v)
	}

	w.Update()
	p := w.Player()
	if !approxEqual(p.Y, 140-8) {
		t.Errorf("Y after jump tick = %g, expected 132", p.Y)
	}
	if !approxEqual(p.Velocity, -6.7) {
		t.Errorf("velocity after jump tick = %g, expected -6.7", p.Velocity)
	}
}

func TestReconfigure(t *testing.T) {
	w := newTestWorld(t)
	for i := 0; i < 10; i++ {
		w.Update()
	}

	cfg := config.DefaultFlappyConfig()
	cfg.Player.StartY = 100
	cfg.Obstacles.SpawnX = 450
	w.Reconfigure(cfg)

	assertResetState(t, w)
	if w.Player().Y != 100 || w.Obstacles()[0].X != 450 {
		t.Errorf("reconfigure should reset under the new tuning, got %+v %+v", w.Player(), w.Obstacles())
	}
}
