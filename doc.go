// File: doc.go
// Title: Frege Language Front End Package Documentation
// Description: Implements the Frege language front end: streaming
//              lexer, recursive descent parser, typed AST, and a
//              high-level engine API for parsing complete sources and
//              driving interactive sessions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial Frege front end implementation

/*
Package frege implements the front end for the Frege expression language.

Package: frege
Title: Frege Language Front End
Description: Provides streaming lexical analysis, recursive descent
             parsing, and typed AST generation for Frege source.
             Frege is a small expression language with function
             definitions, external declarations, and floating-point
             arithmetic, designed as the parsing stage of a compiler
             or interpreter pipeline.
Author: msto63 with Claude Sonnet 4.0
Version: v0.1.0
Created: 2025-08-19
Modified: 2025-08-19

Change History:
- 2025-08-19 v0.1.0: Initial implementation

Key Features:
  • Streaming lexer with single-character lookahead over any io.Reader
  • Recursive descent parser with operator-precedence climbing
  • Typed AST with visitors, validation, and JSON serialization
  • Classified parse errors with exact source positions
  • Whole-source parsing with per-item error recovery
  • Incremental sessions for interactive (REPL) front ends
  • Structured logging and error handling via the core packages

# Frege Language Overview

Frege source is a sequence of top-level items: function definitions,
external declarations, and bare expressions. Semicolons may separate
items but are not required.

	# Compute the hypotenuse of a right triangle
	extern sqrt(x)

	def hyp(a b)
	    sqrt(a*a + b*b)

	hyp(3, 4)

## Grammar

	toplevel   := definition | extern | expression | ';'
	definition := 'def' prototype expression
	extern     := 'extern' prototype
	prototype  := identifier '(' identifier* ')'
	expression := primary (binop primary)*
	primary    := number
	            | identifier
	            | identifier '(' expression (',' expression)* ')'
	            | '(' expression ')'

Identifiers are ASCII letters followed by letters or digits. Numbers
are floating point; a leading dot as in ".5" is allowed. Comments run
from '#' to the end of the line. The binary operators in ascending
binding strength are '<' (10), '+' and '-' (20), and '*' (40); equal
strengths associate left.

Every top-level expression is wrapped in a function with an anonymous
prototype, so definitions and expressions share one representation
downstream.

# Basic Usage

Parse a complete source with the engine:

	import "github.com/msto63/frege"

	engine, err := frege.NewEngine(frege.Options{
		MaxDepth: 200,
	})
	if err != nil {
		log.Fatal("Failed to create Frege engine:", err)
	}

	program, err := engine.ParseString(context.Background(), source)
	if err != nil {
		log.Printf("Source has errors: %v", err)
	}

	// A program with errors still carries the items around them
	for _, item := range program.Items {
		fmt.Printf("%s %s at %s\n", item.Kind, item.Name(), item.Pos())
	}

Drive an interactive session one item at a time:

	session := engine.NewSession(os.Stdin)
	for {
		item, err := session.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if frege.IsIncomplete(err) {
				// Input ended mid-construct, read more
				continue
			}
			fmt.Println("error:", err)
			continue
		}
		fmt.Println("parsed:", item)
	}

# Architecture Components

## Parsing Pipeline

	Source (io.Reader) → Lexer → Tokens → Parser → AST → Program

### Lexer (parser package)

Tokenizes streaming input with one character of lookahead:

	type Token struct {
		Type     TokenType // EOF, DEF, EXTERN, IDENTIFIER, NUMBER, CHAR
		Value    string    // Raw lexeme
		Number   float64   // Numeric value for NUMBER tokens
		Char     rune      // Character for CHAR tokens
		Position int       // Byte offset
		Line     int       // Line number
		Column   int       // Column number
	}

### Parser (parser package)

Builds AST nodes by recursive descent with one token of lookahead:

	type Parser struct {
		lexer    *Lexer
		current  Token
		previous Token
		logger   *log.Logger
	}

Parse failures are classified (*ParseError with an ErrorKind); API
misuse such as reading the token buffer before it is populated panics.

### AST (ast package)

Typed nodes with positions, validation, visitors, and JSON output:

	type Function struct {
		Proto *Prototype
		Body  Expr
		Pos   Position
	}

### Engine (this package)

Coordinates the pipeline, recovers between items, and classifies
errors with core/error codes: CodeParseSyntax for malformed input and
CodeParseIncomplete for input that ended mid-construct.

# Integration with Core Packages

Logging uses the structured core/log package:

	logger := log.GetDefault().WithField("component", "frege-engine")
	timer := logger.StartTimer("frege_parse")
	defer timer.Stop()

Errors are wrapped with core/error for codes, severity, and details:

	if frege.IsIncomplete(err) {
		// prompt for continuation
	}
	if pe, ok := frege.AsParseError(err); ok {
		fmt.Printf("at %d:%d near %s\n", pe.Line, pe.Column, pe.Token)
	}

# Performance Characteristics

The front end is built for interactive use:

• Lexing: tens of nanoseconds per token, one small allocation per name
• Parsing: single pass, no backtracking, one token of lookahead
• Memory: identifier lexemes are interned across the source
• Recovery: one discarded token per failed item

For the command-line interface, configuration, and parse history, see
the cmd/frege and internal packages.
*/
package frege
