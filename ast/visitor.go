// File: visitor.go
// Title: Frege AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              Frege AST nodes. Provides a base visitor plus common
//              visitors for tree rendering, validation, and collection.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Visit expression nodes
	VisitNumber(expr *NumberExpr) interface{}
	VisitVariable(expr *VariableExpr) interface{}
	VisitBinary(expr *BinaryExpr) interface{}
	VisitCall(expr *CallExpr) interface{}

	// Visit declaration nodes
	VisitPrototype(proto *Prototype) interface{}
	VisitFunction(fn *Function) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitNumber(expr *NumberExpr) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitVariable(expr *VariableExpr) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitCall(expr *CallExpr) interface{} {
	for _, arg := range expr.Args {
		arg.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitPrototype(proto *Prototype) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitFunction(fn *Function) interface{} {
	if fn.Proto != nil {
		fn.Proto.Accept(bv)
	}
	if fn.Body != nil {
		fn.Body.Accept(bv)
	}
	return nil
}

// StringVisitor creates an indented tree representation of the AST
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the built string representation
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the internal buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) writeLine(format string, args ...interface{}) {
	for i := 0; i < sv.indent; i++ {
		sv.buffer.WriteString("  ")
	}
	sv.buffer.WriteString(fmt.Sprintf(format, args...))
	sv.buffer.WriteString("\n")
}

func (sv *StringVisitor) VisitNumber(expr *NumberExpr) interface{} {
	sv.writeLine("Number: %s", expr.String())
	return nil
}

func (sv *StringVisitor) VisitVariable(expr *VariableExpr) interface{} {
	sv.writeLine("Variable: %s", expr.Name)
	return nil
}

func (sv *StringVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	sv.writeLine("Binary: '%c'", expr.Op)
	sv.indent++
	if expr.Left != nil {
		expr.Left.Accept(sv)
	}
	if expr.Right != nil {
		expr.Right.Accept(sv)
	}
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitCall(expr *CallExpr) interface{} {
	sv.writeLine("Call: %s", expr.Callee)
	sv.indent++
	for _, arg := range expr.Args {
		arg.Accept(sv)
	}
	sv.indent--
	return nil
}

func (sv *StringVisitor) VisitPrototype(proto *Prototype) interface{} {
	if proto.IsAnonymous() {
		sv.writeLine("Prototype: (anonymous)")
	} else {
		sv.writeLine("Prototype: %s", proto.String())
	}
	return nil
}

func (sv *StringVisitor) VisitFunction(fn *Function) interface{} {
	sv.writeLine("Function:")
	sv.indent++
	if fn.Proto != nil {
		fn.Proto.Accept(sv)
	}
	if fn.Body != nil {
		sv.writeLine("Body:")
		sv.indent++
		fn.Body.Accept(sv)
		sv.indent--
	}
	sv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitNumber(expr *NumberExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("number validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitNumber(expr)
}

func (vv *ValidationVisitor) VisitVariable(expr *VariableExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("variable validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitVariable(expr)
}

func (vv *ValidationVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("binary expression validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitBinary(expr)
}

func (vv *ValidationVisitor) VisitCall(expr *CallExpr) interface{} {
	if err := expr.Validate(); err != nil {
		vv.addError(fmt.Errorf("call validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitCall(expr)
}

func (vv *ValidationVisitor) VisitPrototype(proto *Prototype) interface{} {
	if err := proto.Validate(); err != nil {
		vv.addError(fmt.Errorf("prototype validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitPrototype(proto)
}

func (vv *ValidationVisitor) VisitFunction(fn *Function) interface{} {
	if err := fn.Validate(); err != nil {
		vv.addError(fmt.Errorf("function validation failed: %w", err))
	}
	return vv.BaseVisitor.VisitFunction(fn)
}

// CollectorVisitor collects specific types of nodes from the AST
type CollectorVisitor struct {
	BaseVisitor
	Numbers    []*NumberExpr
	Variables  []*VariableExpr
	Calls      []*CallExpr
	Prototypes []*Prototype
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Numbers:    make([]*NumberExpr, 0),
		Variables:  make([]*VariableExpr, 0),
		Calls:      make([]*CallExpr, 0),
		Prototypes: make([]*Prototype, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Numbers = cv.Numbers[:0]
	cv.Variables = cv.Variables[:0]
	cv.Calls = cv.Calls[:0]
	cv.Prototypes = cv.Prototypes[:0]
}

func (cv *CollectorVisitor) VisitNumber(expr *NumberExpr) interface{} {
	cv.Numbers = append(cv.Numbers, expr)
	return nil
}

func (cv *CollectorVisitor) VisitVariable(expr *VariableExpr) interface{} {
	cv.Variables = append(cv.Variables, expr)
	return nil
}

// Override recursive visitor methods so children are visited with the
// collector, not the embedded base.
func (cv *CollectorVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(cv)
	}
	if expr.Right != nil {
		expr.Right.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitCall(expr *CallExpr) interface{} {
	cv.Calls = append(cv.Calls, expr)
	for _, arg := range expr.Args {
		arg.Accept(cv)
	}
	return nil
}

func (cv *CollectorVisitor) VisitPrototype(proto *Prototype) interface{} {
	cv.Prototypes = append(cv.Prototypes, proto)
	return nil
}

func (cv *CollectorVisitor) VisitFunction(fn *Function) interface{} {
	if fn.Proto != nil {
		fn.Proto.Accept(cv)
	}
	if fn.Body != nil {
		fn.Body.Accept(cv)
	}
	return nil
}

// Utility functions for working with visitors

// ValidateAST validates an AST node and returns any validation errors
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// ASTToString converts an AST node to an indented tree representation
func ASTToString(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// CollectNodes collects specific types of nodes from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
