package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/platform/window"
)

var (
	flagScale       float64
	flagWindowWatch bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play at the world's native resolution,
optionally scaled up.

Controls:
  Space  - Flap
  R      - Restart
  Closing the window quits.

Examples:
  flappy window
  flappy window --scale 2 --seed 42
  flappy window --config ./my-flappy.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the world")
	windowCmd.Flags().BoolVar(&flagWindowWatch, "watch", false, "Reload the config file when it changes")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)
	game, rc, source := setup(logger)

	opts := window.Options{
		Runtime: rc,
		Scale:   flagScale,
		Logger:  logger,
	}
	if flagWindowWatch {
		opts.Watcher = openWatcher(source)
		defer opts.Watcher.Close()
		logger.Info("watching config", "path", source)
	}

	logger.Info("opening window", "title", game.Title(), "tick_rate", rc.TickRate, "seed", rc.Seed)
	if err := window.Run(game, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
