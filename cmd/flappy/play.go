package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var (
	flagWatch   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The world is scaled to fit the
terminal, one block per cell.

Controls:
  Space/Up/W  - Flap
  R           - Restart
  Q/Ctrl+C    - Quit

The terminal is taken over by the game, so logs are discarded unless
--log-file is given.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --watch --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out)

	game, rc, source := setup(logger)

	// Get terminal size before the alt screen takes over
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: rc,
		Width:   width,
		Height:  height,
		Logger:  logger,
	}
	if flagWatch {
		opts.Watcher = openWatcher(source)
		defer opts.Watcher.Close()
		logger.Info("watching config", "path", source)
	}

	if err := tui.Run(game, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
