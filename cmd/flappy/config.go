package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in configuration as YAML. Save it as
configs/flappy.yaml or ~/.flappy/configs/flappy.yaml and edit it to tune
the game; keys you delete keep their default values.

Examples:
  flappy config > configs/flappy.yaml
  flappy play --config configs/flappy.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
