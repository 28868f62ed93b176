package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Marconymous/flappy-bird/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "%-*s  %s\n", maxIDLen, "ID", "Title")
	for _, g := range games {
		fmt.Fprintf(out, "%-*s  %s\n", maxIDLen, g.ID, g.Title)
	}
}
