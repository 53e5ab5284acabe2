// File: codes.go
// Title: Error Code Definitions
// Description: Defines the closed set of error codes used to classify
//              failures in the Frege front end, from parse errors over
//              configuration problems to store failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package error

// Code classifies an error for programmatic handling
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing
	CodeParseSyntax     Code = "PARSE_SYNTAX"
	CodeParseIncomplete Code = "PARSE_INCOMPLETE"
	CodeInputTooLong    Code = "INPUT_TOO_LONG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Persistence
	CodeStoreError Code = "STORE_ERROR"
)

// String returns the string form of the code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeParseSyntax, CodeParseIncomplete, CodeInputTooLong,
		CodeValidationFailed,
		CodeConfigError, CodeInvalidConfig,
		CodeStoreError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the code
func (c Code) Category() string {
	switch c {
	case CodeParseSyntax, CodeParseIncomplete, CodeInputTooLong:
		return "parse"
	case CodeValidationFailed:
		return "validation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStoreError:
		return "persistence"
	default:
		return "generic"
	}
}
