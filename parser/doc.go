// File: doc.go
// Title: Frege Parser Package Documentation
// Description: Implements the lexical analyzer and parser for Frege
//              source. Converts streaming character input into typed
//              AST representations with classified errors and position
//              information.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing capabilities for Frege source.

This package implements a recursive descent parser that converts Frege
source text into Abstract Syntax Tree (AST) representations. It includes:

  • Streaming lexical analyzer with single-character lookahead
  • Recursive descent parser with operator-precedence climbing
  • Classified parse errors with position information
  • Support for definitions, extern declarations, and expressions

The lexer reads from any io.Reader and never looks further ahead than
one character, so interactive sources work without buffering tricks.
The parser buffers exactly one token and exposes that buffer to its
caller, which dispatches top-level constructs on the current token.

Misuse of the parser API (reading the buffer before it is populated,
entering ParseDefinition without a 'def' token) panics. Malformed input
never panics: it is reported as a *ParseError carrying an ErrorKind,
the offending token, and its position.
*/
package parser
