// File: doc.go
// Title: Frege Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes for parsed Frege
//              source: expressions, function prototypes, and function
//              definitions. Provides visitor patterns and tree utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for the Frege
expression language.

This package provides the node definitions, visitor patterns, and utilities
for representing and manipulating parsed Frege source as structured data.

The AST enables:
  • Structured representation of expressions, prototypes, and definitions
  • Tree traversal and collection via visitors
  • Static validation of node well-formedness
  • Rendering back to canonical source form and JSON
*/
package ast
