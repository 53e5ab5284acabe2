// ============================================================================
// Frege - Language Front End
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the Frege workbench TUI
// Author:      msto63 with Claude
// Created:     2025-08-21
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/msto63/frege/internal/tui/workbench"
	"github.com/spf13/cobra"
)

var (
	workbenchHistory   string
	workbenchNoHistory bool
	workbenchStrict    bool
	workbenchMaxDepth  int
)

var workbenchCmd = &cobra.Command{
	Use:     "workbench",
	Aliases: []string{"wb"},
	Short:   "Start the interactive parse workbench",
	Long: `Starts the interactive Frege workbench.

The workbench parses every input as you submit it and shows the
resulting items. Incomplete inputs continue on the next line, so a
definition can span several lines. Results are kept in a local
history database across sessions.

Keyboard shortcuts:
  Enter       Parse the input
  ↑/↓         Recall earlier inputs
  Ctrl+P      Toggle position display
  Ctrl+K      Toggle token view
  Ctrl+T      History statistics
  Ctrl+L      Clear results
  Esc         Discard a pending multi-line input
  Ctrl+C      Quit`,
	RunE: runWorkbench,
}

func init() {
	rootCmd.AddCommand(workbenchCmd)

	workbenchCmd.Flags().StringVar(&workbenchHistory, "history", "",
		"History database path (default: ~/.frege/history.db)")
	workbenchCmd.Flags().BoolVar(&workbenchNoHistory, "no-history", false,
		"Disable result persistence")
	workbenchCmd.Flags().BoolVar(&workbenchStrict, "strict", false,
		"Reject malformed numeric literals")
	workbenchCmd.Flags().IntVar(&workbenchMaxDepth, "max-depth", 0,
		"Maximum expression nesting depth")
}

func runWorkbench(cmd *cobra.Command, args []string) error {
	return launchWorkbench(workbenchStrict, workbenchMaxDepth,
		workbenchHistory, workbenchNoHistory)
}

// launchWorkbench starts the TUI. The repl command reuses it for its
// --tui mode.
func launchWorkbench(strict bool, maxDepth int, historyFlag string, noHistory bool) error {
	engine, err := newEngine(strict, maxDepth)
	if err != nil {
		return err
	}

	store := openHistory(historyFlag, noHistory)
	if store != nil {
		defer store.Close()
	}

	return workbench.Run(workbench.Config{
		Engine: engine,
		Store:  store,
	})
}
