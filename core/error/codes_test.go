// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for the error code enumeration, validity checks,
//              and category mapping.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package error

import "testing"

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeInternal, "INTERNAL"},
		{CodeParseSyntax, "PARSE_SYNTAX"},
		{CodeParseIncomplete, "PARSE_INCOMPLETE"},
		{CodeInputTooLong, "INPUT_TOO_LONG"},
		{CodeStoreError, "STORE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("Code.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"known generic code", CodeInternal, true},
		{"known parse code", CodeParseSyntax, true},
		{"known config code", CodeInvalidConfig, true},
		{"unknown code", Code("INVALID_CODE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code     Code
		category string
	}{
		{CodeParseSyntax, "parse"},
		{CodeParseIncomplete, "parse"},
		{CodeInputTooLong, "parse"},
		{CodeValidationFailed, "validation"},
		{CodeConfigError, "configuration"},
		{CodeInvalidConfig, "configuration"},
		{CodeStoreError, "persistence"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
		{CodeNotFound, "generic"},
		{Code("SOMETHING_ELSE"), "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Code.Category() = %v, want %v", got, tt.category)
			}
		})
	}
}
