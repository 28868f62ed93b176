package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Marconymous/flappy-bird/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way "play" does and prints it as YAML.
The source is written as a leading comment.

Search order:
  --config <path>
  ~/.arcade/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.MarshalFlappy(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
