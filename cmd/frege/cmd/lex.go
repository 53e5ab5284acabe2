package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/msto63/frege/parser"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Dump the token stream of a source",
	Long: `Tokenizes one Frege source and prints every token with its
position.

Reads from stdin when no file is given.

Examples:
  frege lex lib.frege
  echo "def foo(a) a" | frege lex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	var r io.Reader = os.Stdin
	name := "stdin"

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer f.Close()
		r = f
		name = args[0]
	}

	tokens, err := parser.NewLexer(r).Tokenize()
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	fmt.Printf("Tokens (%s)\n", name)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	fmt.Printf("%-5s %-12s %-20s %-12s %s\n", "#", "TYPE", "VALUE", "NUMBER", "POS")
	fmt.Println(strings.Repeat("-", 60))

	for i, tok := range tokens {
		value := tok.Value
		if value == "" {
			value = "-"
		}
		number := "-"
		if tok.Type == parser.TokenNumber {
			number = strconv.FormatFloat(tok.Number, 'g', -1, 64)
		}
		fmt.Printf("%-5d %-12s %-20s %-12s %d:%d\n",
			i, tok.Type.String(), value, number, tok.Line, tok.Column)
	}

	fmt.Println()
	fmt.Printf("Total: %d token(s)\n", len(tokens))

	return nil
}
