// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so logging and callers
//              can prioritize them consistently.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package error

// Severity represents how serious an error is
type Severity int

const (
	// SeverityLow marks expected failures such as malformed user input
	SeverityLow Severity = iota

	// SeverityMedium marks failures that degrade a feature but leave the
	// program usable
	SeverityMedium

	// SeverityHigh marks failures of a whole subsystem
	SeverityHigh

	// SeverityCritical marks failures the program cannot continue from
	SeverityCritical
)

// String returns the lowercase name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode maps an error code to its default severity
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeStoreError, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium
	case CodeParseSyntax, CodeParseIncomplete, CodeInputTooLong,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
