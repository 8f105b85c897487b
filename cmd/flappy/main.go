// flappy is a side-scrolling flap-through-the-gaps game for the terminal
// and the desktop.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy sim               - Run a headless simulation and print the result
//	flappy config            - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: tick_rate from config, 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - Flap through the gaps",
	Long: `Flappy is a small side-scroller: keep the square in the air and
steer it through the gaps between the columns.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless simulation
  config   - Print the default config

Examples:
  flappy play
  flappy play --config ./my-flappy.yaml --watch
  flappy window --scale 2
  flappy sim --ticks 300 --jump-every 12 --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the shared logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// setup loads the configuration and builds the game and its runtime config.
// It returns the path the config came from, or config.SourceEmbedded.
func setup(logger *log.Logger) (*flappy.Game, core.RuntimeConfig, string) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)

	rc := core.DefaultConfig()
	rc.TickRate = cfg.World.TickRate
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	logger.Debug("runtime", "tick_rate", rc.TickRate, "seed", rc.Seed)

	return flappy.New(cfg), rc, source
}

// openWatcher starts hot reload for source. The embedded config has nothing
// to watch, so it exits with an error.
func openWatcher(source string) *config.Watcher {
	if source == config.SourceEmbedded {
		fmt.Fprintln(os.Stderr, "Error: --watch needs a config file; none was found")
		fmt.Fprintln(os.Stderr, "Pass one with --config or create configs/flappy.yaml.")
		os.Exit(1)
	}
	w, err := config.NewWatcher(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error watching config: %v\n", err)
		os.Exit(1)
	}
	return w
}
