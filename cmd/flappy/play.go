package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Marconymous/flappy-bird/internal/config"
	"github.com/Marconymous/flappy-bird/internal/core"
	"github.com/Marconymous/flappy-bird/internal/games/flappy"
	"github.com/Marconymous/flappy-bird/internal/platform/tui"
	"github.com/Marconymous/flappy-bird/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Bird",
	Long: `Start a game of Flappy Bird.

Controls:
  Space/Up/W/click  - Flap
  P/Esc             - Pause
  R/Enter           - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)
	flappy.SetConfig(cfg)

	rt := runtimeConfig(cfg, func() (int, int, error) {
		return term.GetSize(int(os.Stdout.Fd()))
	})

	game, err := registry.Create("flappy")
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig starts from core.DefaultConfig and layers the terminal size,
// the config's tick rate and the command-line flags on top. The model
// resizes on the first WindowSizeMsg anyway.
func runtimeConfig(cfg config.FlappyConfig, termSize func() (int, int, error)) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := termSize(); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	if rate := cfg.Loop.TickRate(); rate > 0 {
		rt.TickRate = rate
	}
	if flagTickRate > 0 {
		rt.TickRate = flagTickRate
	}
	rt.Seed = flagSeed
	return rt
}

// loadConfig loads and validates the flappy config.
func loadConfig(path string) (config.FlappyConfig, string, error) {
	cfg, source, err := config.LoadFlappy(path)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, "", fmt.Errorf("invalid config from %s: %w", source, err)
	}
	return cfg, source, nil
}
