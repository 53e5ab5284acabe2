// File: doc.go
// Title: Frege Error Package Documentation
// Description: Structured errors with codes, severities, and metadata
//              for consistent classification across the front end.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

/*
Package error provides structured errors for the Frege front end.

An Error carries a message, an optional cause, a classification Code, a
Severity, a timestamp, free-form details, and a captured stack trace.
It satisfies the standard error interface and unwraps for errors.Is and
errors.As, so structured and plain errors mix freely.

Errors are built fluently:

	err := error.Wrap(cause, "parsing definition failed").
		WithCode(error.CodeParseSyntax).
		WithOperation("parse").
		WithDetail("line", 3)

Wrapping a structured error keeps its code, severity, and details.
Setting a code adjusts the severity to the code's default unless a
severity was chosen explicitly. Wrap chains are capped at
MaxErrorChainDepth; deeper chains are flattened to their root cause so
a retry loop cannot grow errors without bound.

Codes form a closed set grouped by Category: parse failures
(CodeParseSyntax, CodeParseIncomplete, CodeInputTooLong),
configuration, validation, persistence, and a generic family.
*/
package error
