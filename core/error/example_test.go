// File: example_test.go
// Title: Error Module Examples
// Description: Usage examples for creating and wrapping structured
//              errors.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package error

import (
	"errors"
	"fmt"
)

// ExampleNew demonstrates creating a new error with metadata
func ExampleNew() {
	err := New("unexpected token in expression").
		WithCode(CodeParseSyntax).
		WithDetail("line", 3).
		WithOperation("parse")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: unexpected token in expression
	// Code: PARSE_SYNTAX
	// Severity: low
}

// ExampleWrap demonstrates wrapping an existing error with context
func ExampleWrap() {
	readErr := errors.New("unexpected end of input")

	err := Wrap(readErr, "parsing definition failed").
		WithCode(CodeParseIncomplete).
		WithOperation("parse")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Category:", err.Code().Category())

	// Output:
	// Error: parsing definition failed: unexpected end of input
	// Code: PARSE_INCOMPLETE
	// Category: parse
}
