// Package cmd provides Cobra CLI commands for tabdrag.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabdrag/internal/cli"
)

var (
	cliApp  *cli.App
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "tabdrag",
		Short: "Tab drag-and-drop reordering engine",
		Long: `Tabdrag - a drag-and-drop reordering engine for browser tab sidebars.

It models the full lifecycle of a tab drag: gesture arming against a
movement threshold, a process-wide drag lock, drop zone hit testing,
insertion index resolution for list and grid layouts, cross-window
cursor tracking with hysteresis, and commit of the resulting move.

Use 'tabdrag demo' for an interactive terminal playground, or
'tabdrag replay' to run a recorded pointer scenario against the engine.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			cliApp, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cliApp != nil {
				_ = cliApp.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return cliApp
}

// SetVersion sets the version string (called from main before Execute).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
