package cmd

import (
	"os"
	"path/filepath"

	frege "github.com/msto63/frege"
	"github.com/msto63/frege/core/config"
	"github.com/msto63/frege/internal/history"
)

// newEngine builds an engine from flags and the optional config file.
// Flags win over config values, zero values fall back to the engine
// defaults.
func newEngine(strict bool, maxDepth int) (*frege.Engine, error) {
	cfg := loadAppConfig()

	opts := frege.Options{
		StrictNumbers: strict,
		MaxDepth:      maxDepth,
	}
	if cfg != nil {
		if !opts.StrictNumbers {
			opts.StrictNumbers = cfg.GetBool("parser.strict_numbers", false)
		}
		if opts.MaxDepth == 0 {
			opts.MaxDepth = cfg.GetInt("parser.max_depth", 0)
		}
		opts.MaxSourceLength = cfg.GetInt("parser.max_source_length", 0)
	}

	return frege.NewEngine(opts)
}

// historyPath resolves the history database location
func historyPath(cfg *config.Config, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil {
		if path := cfg.GetString("history.path", ""); path != "" {
			return path
		}
	}
	return ""
}

// defaultHistoryPath places the history database in the user directory
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data/history.db"
	}
	return filepath.Join(home, ".frege", "history.db")
}

// openHistory opens the history store for the interactive commands. A
// nil store means persistence is off, either by flag or because the
// database could not be opened.
func openHistory(flagValue string, disabled bool) history.Store {
	if disabled {
		return nil
	}

	path := historyPath(loadAppConfig(), flagValue)
	if path == "" {
		path = defaultHistoryPath()
	}

	store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: path})
	if err != nil {
		// Interactive use still works without persistence
		printError("history disabled", err)
		return nil
	}
	return store
}
