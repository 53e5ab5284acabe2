package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	frege "github.com/msto63/frege"
	"github.com/msto63/frege/internal/history"
	"github.com/spf13/cobra"
)

var (
	replHistory   string
	replNoHistory bool
	replStrict    bool
	replMaxDepth  int
	replTUI       bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read items from stdin, one prompt per item",
	Long: `Starts a plain line-oriented read-parse-print loop on standard input.

Each prompt reads one top-level item: a definition, an extern
declaration or an expression. End an expression with ';' so the
reader knows it is complete; definitions and externs end with their
body. A parse failure is reported and the loop continues with the
next item. Ctrl+D ends the session.

With --tui the full-screen workbench is started instead.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replHistory, "history", "",
		"History database path (default: ~/.frege/history.db)")
	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false,
		"Disable result persistence")
	replCmd.Flags().BoolVar(&replStrict, "strict", false,
		"Reject malformed numeric literals")
	replCmd.Flags().IntVar(&replMaxDepth, "max-depth", 0,
		"Maximum expression nesting depth")
	replCmd.Flags().BoolVar(&replTUI, "tui", false,
		"Start the full-screen workbench instead")
}

func runRepl(cmd *cobra.Command, args []string) error {
	if replTUI {
		return launchWorkbench(replStrict, replMaxDepth, replHistory, replNoHistory)
	}

	engine, err := newEngine(replStrict, replMaxDepth)
	if err != nil {
		return err
	}

	store := openHistory(replHistory, replNoHistory)
	if store != nil {
		defer store.Close()
	}

	session := engine.NewSession(os.Stdin)
	fmt.Printf("Frege v%s - end expressions with ';', Ctrl+D quits\n", Version)

	for {
		fmt.Print("frege> ")

		item, err := session.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if _, ok := frege.AsParseError(err); !ok {
				// Reading the source itself failed, the loop cannot go on
				fmt.Println()
				return err
			}
			fmt.Printf("✗ %s\n", replError(err))
			continue
		}

		fmt.Printf("✓ %-10s %s\n", item.Kind, item)
		recordItem(store, session.ID(), item)
	}

	stats := session.Stats()
	fmt.Printf("\n%d item(s), %d error(s)\n", stats.Items, stats.Errors)
	return nil
}

// replError strips the classification wrapper off parse failures, the
// position is already part of the message
func replError(err error) string {
	if pe, ok := frege.AsParseError(err); ok {
		return pe.Error()
	}
	return err.Error()
}

// recordItem persists one parsed item. The rendered form doubles as
// the source text, the loop does not keep the raw input around.
func recordItem(store history.Store, sessionID string, item frege.Item) {
	if store == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := &history.Entry{
		SessionID: sessionID,
		Source:    item.String(),
		Kind:      item.Kind.String(),
		Name:      item.Name(),
		Rendered:  item.String(),
		Valid:     true,
	}
	if err := store.Append(ctx, entry); err != nil {
		printError("history write failed", err)
	}
}
