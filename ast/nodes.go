// File: nodes.go
// Title: Frege AST Node Definitions
// Description: Defines all AST node types for the Frege expression
//              language: number literals, variable references, binary
//              operations, calls, prototypes, and function definitions.
//              Provides string representations, JSON marshaling, and
//              validation methods.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial AST node definitions

package ast

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	fregestringx "github.com/msto63/frege/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-like representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error
}

// Position represents a position in the source input
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns the position in "line:column" form
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// NumberExpr represents a numeric literal
type NumberExpr struct {
	Value float64  // Literal value
	Pos   Position // Source position
}

// VariableExpr represents a reference to a named value
type VariableExpr struct {
	Name string   // Variable name
	Pos  Position // Source position
}

// BinaryExpr represents a binary operation (a + b, a < b, etc.)
type BinaryExpr struct {
	Op    rune     // Operator character ('+', '-', '*', '<')
	Left  Expr     // Left operand
	Right Expr     // Right operand
	Pos   Position // Source position
}

// CallExpr represents a function call
type CallExpr struct {
	Callee string   // Called function name
	Args   []Expr   // Ordered argument expressions
	Pos    Position // Source position
}

// Prototype represents a function signature: its name and the ordered
// list of parameter names. Parameter names are not required to be unique
// here; uniqueness is a later-stage concern.
type Prototype struct {
	Name   string   // Function name; empty for top-level expression wrappers
	Params []string // Ordered parameter names
	Pos    Position // Source position
}

// Function pairs a prototype with its single body expression. Top-level
// expressions are wrapped in a Function with an anonymous prototype so
// that definitions and expressions share one representation.
type Function struct {
	Proto *Prototype // Signature
	Body  Expr       // Body expression
	Pos   Position   // Source position
}

// Implementation of Expr interface for NumberExpr

func (ne *NumberExpr) String() string {
	return strconv.FormatFloat(ne.Value, 'g', -1, 64)
}

func (ne *NumberExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(ne)
}

func (ne *NumberExpr) Position() Position {
	return ne.Pos
}

func (ne *NumberExpr) Validate() error {
	return nil // any float value is well-formed
}

func (ne *NumberExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string  `json:"type"`
		Value float64 `json:"value"`
	}{"number", ne.Value})
}

func (ne *NumberExpr) exprNode() {}

// Implementation of Expr interface for VariableExpr

func (ve *VariableExpr) String() string {
	return ve.Name
}

func (ve *VariableExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariable(ve)
}

func (ve *VariableExpr) Position() Position {
	return ve.Pos
}

func (ve *VariableExpr) Validate() error {
	if fregestringx.IsBlank(ve.Name) {
		return fmt.Errorf("variable name is required")
	}
	if !fregestringx.IsIdentifier(ve.Name) {
		return fmt.Errorf("invalid variable name: %s", ve.Name)
	}
	return nil
}

func (ve *VariableExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"variable", ve.Name})
}

func (ve *VariableExpr) exprNode() {}

// Implementation of Expr interface for BinaryExpr

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %c %s)", be.Left.String(), be.Op, be.Right.String())
}

func (be *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinary(be)
}

func (be *BinaryExpr) Position() Position {
	return be.Pos
}

func (be *BinaryExpr) Validate() error {
	if be.Op == 0 {
		return fmt.Errorf("operator is required")
	}
	if be.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if be.Right == nil {
		return fmt.Errorf("right operand is required")
	}

	if err := be.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := be.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}

func (be *BinaryExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Op    string `json:"op"`
		Left  Expr   `json:"left"`
		Right Expr   `json:"right"`
	}{"binary", string(be.Op), be.Left, be.Right})
}

func (be *BinaryExpr) exprNode() {}

// Implementation of Expr interface for CallExpr

func (ce *CallExpr) String() string {
	args := make([]string, len(ce.Args))
	for i, arg := range ce.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", ce.Callee, strings.Join(args, ", "))
}

func (ce *CallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitCall(ce)
}

func (ce *CallExpr) Position() Position {
	return ce.Pos
}

func (ce *CallExpr) Validate() error {
	if fregestringx.IsBlank(ce.Callee) {
		return fmt.Errorf("callee name is required")
	}
	if !fregestringx.IsIdentifier(ce.Callee) {
		return fmt.Errorf("invalid callee name: %s", ce.Callee)
	}

	for i, arg := range ce.Args {
		if arg == nil {
			return fmt.Errorf("argument %d is nil", i)
		}
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}

	return nil
}

func (ce *CallExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Callee string `json:"callee"`
		Args   []Expr `json:"args"`
	}{"call", ce.Callee, ce.Args})
}

func (ce *CallExpr) exprNode() {}

// Implementation of Node interface for Prototype

func (p *Prototype) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(p.Params, " "))
}

func (p *Prototype) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrototype(p)
}

func (p *Prototype) Position() Position {
	return p.Pos
}

func (p *Prototype) Validate() error {
	// An empty name marks a top-level expression wrapper and is valid.
	if p.Name != "" && !fregestringx.IsIdentifier(p.Name) {
		return fmt.Errorf("invalid function name: %s", p.Name)
	}

	for i, param := range p.Params {
		if !fregestringx.IsIdentifier(param) {
			return fmt.Errorf("parameter %d: invalid name: %s", i, param)
		}
	}

	return nil
}

func (p *Prototype) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string   `json:"type"`
		Name   string   `json:"name"`
		Params []string `json:"params"`
	}{"prototype", p.Name, p.Params})
}

// IsAnonymous returns true for the synthetic prototype wrapped around a
// top-level expression.
func (p *Prototype) IsAnonymous() bool {
	return p.Name == ""
}

// Arity returns the number of declared parameters.
func (p *Prototype) Arity() int {
	return len(p.Params)
}

// Implementation of Node interface for Function

func (f *Function) String() string {
	if f.Proto != nil && f.Proto.IsAnonymous() {
		return f.Body.String()
	}
	return fmt.Sprintf("def %s %s", f.Proto.String(), f.Body.String())
}

func (f *Function) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunction(f)
}

func (f *Function) Position() Position {
	return f.Pos
}

func (f *Function) Validate() error {
	if f.Proto == nil {
		return fmt.Errorf("prototype is required")
	}
	if f.Body == nil {
		return fmt.Errorf("body expression is required")
	}

	if err := f.Proto.Validate(); err != nil {
		return fmt.Errorf("prototype: %w", err)
	}
	if err := f.Body.Validate(); err != nil {
		return fmt.Errorf("body: %w", err)
	}

	return nil
}

func (f *Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string     `json:"type"`
		Proto *Prototype `json:"prototype"`
		Body  Expr       `json:"body"`
	}{"function", f.Proto, f.Body})
}

// IsAnonymous returns true if this function wraps a top-level expression.
func (f *Function) IsAnonymous() bool {
	return f.Proto != nil && f.Proto.IsAnonymous()
}
