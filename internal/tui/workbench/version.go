// ============================================================================
// Frege - Language Front End
// ============================================================================
//
// Package:     workbench
// Description: Version information for the workbench
// Author:      msto63 with Claude
// Created:     2025-08-21
// License:     MIT
// ============================================================================

package workbench

// Version information - set via ldflags during build
var (
	Version   = "0.1.0" // Semantic version
	BuildTime = ""      // Build timestamp
	GitCommit = ""      // Git commit hash
)
