package cmd

import (
	"context"
	"fmt"
	"os"

	frege "github.com/msto63/frege"
	"github.com/spf13/cobra"
)

var (
	checkStrict   bool
	checkMaxDepth int
)

var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate sources, exit non-zero on errors",
	Long: `Parses Frege sources and reports whether they are clean.

Reads from stdin when no file is given. Exits non-zero when any
source has parse errors.

Examples:
  frege check lib.frege core.frege
  cat lib.frege | frege check`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Reject malformed numeric literals")
	checkCmd.Flags().IntVar(&checkMaxDepth, "max-depth", 0, "Maximum expression nesting depth")
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(checkStrict, checkMaxDepth)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var checked, bad int

	report := func(name string, program *frege.Program, err error) {
		checked++
		if program == nil {
			bad++
			fmt.Printf("✗ %s: %v\n", name, err)
			return
		}
		if program.IsClean() {
			fmt.Printf("✓ %s: %d item(s)\n", name, program.Count())
			return
		}
		bad++
		fmt.Printf("✗ %s: %d error(s)\n", name, len(program.Errors))
		for _, perr := range program.Errors {
			fmt.Printf("    %s\n", perr.Error())
		}
	}

	if len(args) == 0 {
		program, err := engine.Parse(ctx, os.Stdin)
		report("stdin", program, err)
	} else {
		for _, path := range args {
			program, err := engine.ParseFile(ctx, path)
			report(path, program, err)
		}
	}

	fmt.Println()
	fmt.Printf("Checked %d source(s), %d clean, %d with errors\n", checked, checked-bad, bad)

	if bad > 0 {
		return fmt.Errorf("%d source(s) failed validation", bad)
	}
	return nil
}
