// File: doc.go
// Title: Frege String Utilities Documentation
// Description: String helpers shared across the front end: interning,
//              blank checks, identifier validation, truncation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

/*
Package stringx provides the string operations the Frege front end
needs beyond the standard library.

Intern returns one canonical backing string per distinct value; the
lexer interns identifier names so an AST full of repeated parameter and
callee names shares memory. The pool is capped and resets when full,
trading perfect sharing for a bound on growth.

IsBlank and friends classify strings without allocating, IsIdentifier
checks the strict ASCII letter-then-alphanumeric form the language uses
for names, and Truncate shortens display strings by runes so multi-byte
characters are never split mid-sequence.
*/
package stringx
