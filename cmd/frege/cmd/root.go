package cmd

import (
	"fmt"
	"os"

	"github.com/msto63/frege/core/config"
	"github.com/msto63/frege/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "frege",
	Short: "Frege - front end for a small functional language",
	Long: `Frege reads a small functional language built from function
definitions, extern declarations and free-standing expressions.

Commands:
  parse      - Parse sources and print the items
  lex        - Dump the token stream of a source
  check      - Validate sources, exit non-zero on errors
  repl       - Line-oriented read-parse-print loop
  workbench  - Interactive parse workbench (TUI)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./configs/frege.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// initLogging keeps log output off the result stream
func initLogging() {
	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelWarn,
		Format: log.FormatConsole,
		Output: os.Stderr,
		Name:   "frege",
	})
	if verbose {
		logger.SetLevel(log.LevelDebug)
	}
	log.SetDefault(logger)
}

// loadAppConfig loads the config file when one is present. A missing
// file is not an error, flags and defaults apply instead.
func loadAppConfig() *config.Config {
	path := cfgFile
	if path == "" {
		path = "./configs/frege.toml"
	}

	cfg, err := config.LoadWithOptions(path, config.LoadOptions{
		EnvPrefix: "FREGE",
	})
	if err != nil {
		if cfgFile != "" {
			printError("failed to load config", err)
		}
		return nil
	}
	return cfg
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
