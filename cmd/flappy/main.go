// flappy is a terminal Flappy Bird.
//
// Usage:
//
//	flappy                  - Play (same as "flappy play")
//	flappy play             - Play
//	flappy config           - Print the effective config as YAML
//	flappy list             - List registered games
//	flappy version          - Print the version
//
// Global flags:
//
//	--seed <value>       - RNG seed for reproducible tube layouts (0 = time based)
//	--tick-rate <rate>   - Ticks per second (0 = from config, default 200)
//	--config <path>      - Path to a custom flappy.yaml
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/Marconymous/flappy-bird/internal/games/flappy"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagSeed     int64
	flagTickRate int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Fly a bird through an endless stream of tubes. Each tube you pass
is worth one point; touching a tube, the ground or the ceiling ends the run.

Examples:
  flappy
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml
  flappy config > flappy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "flappy %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 0, "Ticks per second (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom flappy config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}
