package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

var (
	flagTicks     int
	flagJumpEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a frontend for a fixed number of ticks and
print the final world state. With the same seed and inputs the output is
always the same.

Examples:
  flappy sim --ticks 300 --seed 42
  flappy sim --ticks 1000 --jump-every 10 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 300, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Jump on every Nth tick (0 = never)")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagTicks < 0 || flagJumpEvery < 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks and --jump-every must not be negative")
		os.Exit(1)
	}

	logger := newLogger(os.Stderr)
	game, rc, _ := setup(logger)

	simulate(game, rc, flagTicks, flagJumpEvery)
	printWorld(os.Stdout, game.World(), rc.Seed, flagTicks)
}

// simulate resets game and steps it ticks times, jumping on every
// jumpEvery-th tick.
func simulate(game core.Game, rc core.RuntimeConfig, ticks, jumpEvery int) {
	game.Reset(rc)
	frame := core.NewInputFrame()
	for i := 1; i <= ticks; i++ {
		if jumpEvery > 0 && i%jumpEvery == 0 {
			frame.Set(core.ActionJump)
		}
		game.Step(frame)
		frame.Clear()
	}
}

// printWorld writes the world state as a small table.
func printWorld(w io.Writer, world *flappy.World, seed int64, ticks int) {
	p := world.Player()
	obstacles := world.Obstacles()

	fmt.Fprintf(w, "seed:      %d\n", seed)
	fmt.Fprintf(w, "ticks:     %d\n", ticks)
	fmt.Fprintf(w, "player:    y=%.2f velocity=%.2f\n", p.Y, p.Velocity)
	fmt.Fprintf(w, "obstacles: %d\n", len(obstacles))
	if len(obstacles) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-4s %-9s %s\n", "#", "X", "GAP")
	fmt.Fprintf(w, "%-4s %-9s %s\n", "─", "─", "───")
	for i, o := range obstacles {
		fmt.Fprintf(w, "%-4d %-9.2f %.2f..%.2f\n", i+1, o.X, o.GapCenter-o.GapHalfHeight, o.GapCenter+o.GapHalfHeight)
	}
}
