package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available front-ends",
	Long:  `Shows a list of all front-ends a game can be played on.`,
	Run: func(cmd *cobra.Command, _ []string) {
		printFrontends(cmd.OutOrStdout(), registry.List())
	},
}

func printFrontends(w io.Writer, list []registry.FrontendInfo) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No front-ends available.")
		return
	}

	fmt.Fprintln(w, "Available front-ends:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range list {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range list {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pong play --frontend <id>' to play.")
}
