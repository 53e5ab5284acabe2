// File: doc.go
// Title: Frege Configuration Package Documentation
// Description: Configuration loading with format auto-detection,
//              environment overrides, and typed access.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-16
// Modified: 2025-08-16
//
// Change History:
// - 2025-08-16 v0.1.0: Initial implementation

/*
Package config loads and serves configuration for the Frege front end.

Files are parsed as TOML or YAML, auto-detected from the file extension
and overridable through LoadOptions. Values resolve in a fixed order:
environment variables (FREGE_ prefix by default, dots become
underscores) win over file values, which win over programmatic
defaults.

	cfg, err := config.LoadWithOptions("./configs/frege.toml", config.LoadOptions{
		EnvPrefix: "FREGE",
		Defaults: map[string]interface{}{
			"parser.max_depth": 1000,
		},
	})

	depth := cfg.GetInt("parser.max_depth")
	strict := cfg.GetBool("parser.strict_numbers", false)

Keys use dot notation for nested values. The typed getters convert
between compatible representations (a "42" string satisfies GetInt)
and take an optional fallback for missing keys. The CLI reads
configuration once at startup; there is no file watching.
*/
package config
