package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	frege "github.com/msto63/frege"
	fregeast "github.com/msto63/frege/ast"
	fregestringx "github.com/msto63/frege/utils/stringx"
	"github.com/spf13/cobra"
)

var (
	parseOutput   string
	parseStrict   bool
	parseMaxDepth int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse sources and print the items",
	Long: `Parses Frege sources and prints every top-level item.

Reads from stdin when no file is given.

Examples:
  frege parse lib.frege               # Item summary
  frege parse -o tree lib.frege       # Indented AST per item
  frege parse -o json lib.frege       # JSON document per source
  echo "1 + 2 * 3" | frege parse      # Parse stdin`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "text", "Output format: text, tree or json")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Reject malformed numeric literals")
	parseCmd.Flags().IntVar(&parseMaxDepth, "max-depth", 0, "Maximum expression nesting depth")
}

func runParse(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(parseStrict, parseMaxDepth)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if len(args) == 0 {
		program, err := engine.Parse(ctx, os.Stdin)
		if program == nil {
			return err
		}
		return printProgram("stdin", program)
	}

	var failed int
	for i, path := range args {
		program, err := engine.ParseFile(ctx, path)
		if program == nil {
			printError("failed to read "+path, err)
			failed++
			continue
		}
		if i > 0 {
			fmt.Println()
		}
		if err := printProgram(path, program); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d source(s) could not be read", failed)
	}
	return nil
}

// printProgram dispatches on the requested output format
func printProgram(name string, program *frege.Program) error {
	switch parseOutput {
	case "json":
		return printProgramJSON(name, program)
	case "tree":
		printProgramTree(name, program)
	case "text":
		printProgramText(name, program)
	default:
		return fmt.Errorf("unknown output format: %s", parseOutput)
	}
	return nil
}

func printProgramText(name string, program *frege.Program) {
	fmt.Printf("Items (%s)\n", name)
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println()

	if program.Count() == 0 && len(program.Errors) == 0 {
		fmt.Println("No items.")
		return
	}

	fmt.Printf("%-10s %-12s %-16s %s\n", "POS", "KIND", "NAME", "ITEM")
	fmt.Println(strings.Repeat("-", 70))

	for _, item := range program.Items {
		itemName := item.Name()
		if itemName == "" {
			itemName = "-"
		}
		fmt.Printf("%-10s %-12s %-16s %s\n",
			item.Pos().String(), item.Kind.String(), itemName,
			fregestringx.Truncate(item.String(), 60, "..."))
	}

	for _, perr := range program.Errors {
		pos, msg := "-", perr.Error()
		if pe, ok := frege.AsParseError(perr); ok {
			pos = fmt.Sprintf("%d:%d", pe.Line, pe.Column)
			msg = pe.Message
		}
		fmt.Printf("%-10s %-12s %-16s %s\n", pos, "error", "-", msg)
	}

	fmt.Println()
	fmt.Printf("Total: %d item(s), %d error(s)\n", program.Count(), len(program.Errors))
}

func printProgramTree(name string, program *frege.Program) {
	fmt.Printf("AST (%s)\n", name)
	fmt.Println(strings.Repeat("=", 70))

	for i, item := range program.Items {
		fmt.Printf("\n[%d] %s", i+1, item.Kind.String())
		if n := item.Name(); n != "" {
			fmt.Printf(" %s", n)
		}
		fmt.Println()
		fmt.Print(fregeast.ASTToString(item.Node()))
	}

	for _, perr := range program.Errors {
		fmt.Printf("\nerror: %s\n", perr.Error())
	}
}

// itemJSON is the JSON shape of a single parsed item
type itemJSON struct {
	Kind     string        `json:"kind"`
	Name     string        `json:"name,omitempty"`
	Position string        `json:"position"`
	Node     fregeast.Node `json:"node"`
}

// programJSON is the JSON shape of one parsed source
type programJSON struct {
	Source string     `json:"source"`
	Items  []itemJSON `json:"items"`
	Errors []string   `json:"errors,omitempty"`
}

func printProgramJSON(name string, program *frege.Program) error {
	doc := programJSON{Source: name, Items: []itemJSON{}}

	for _, item := range program.Items {
		doc.Items = append(doc.Items, itemJSON{
			Kind:     item.Kind.String(),
			Name:     item.Name(),
			Position: item.Pos().String(),
			Node:     item.Node(),
		})
	}
	for _, perr := range program.Errors {
		doc.Errors = append(doc.Errors, perr.Error())
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode program: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
