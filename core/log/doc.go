// File: doc.go
// Title: Frege Logging Package Documentation
// Description: Structured logging for the Frege front end with leveled
//              output, multiple formats, and contextual fields.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

/*
Package log provides structured logging for the Frege front end.

Loggers are immutable: the With* methods return configured copies, so a
component can derive its own logger without affecting the parent. Every
entry carries a level, a timestamp, optional contextual fields, and an
optional error, rendered by one of three formatters:

  • FormatJSON — one JSON object per line, for machine consumption
  • FormatText — single human-readable lines with sorted fields
  • FormatConsole — the text format with per-level ANSI colors

Typical use:

	logger := log.NewWithConfig(log.Config{
		Level:  log.LevelDebug,
		Format: log.FormatConsole,
		Output: os.Stderr,
		Name:   "frege",
	}).WithField("component", "parser")

	logger.Info("item parsed", log.Fields{"kind": "definition"})

	timer := logger.StartTimer("parse")
	// ... work ...
	timer.Stop()

LogError understands the structured errors of core/error and picks the
log level from the error severity. A package-level default logger backs
the top-level Debug/Info/Warn/Error functions; SetDefault replaces it.
*/
package log
