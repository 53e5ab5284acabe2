// File: parser_test.go
// Title: Frege Parser Unit Tests
// Description: Unit tests for the Frege recursive descent parser
//              covering expression precedence and associativity,
//              definitions, extern declarations, top-level expression
//              wrapping, error classification, the lookahead buffer
//              contract, and nesting limits.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"strings"
	"testing"

	fregeast "github.com/msto63/frege/ast"
)

// parseExpr parses a single expression from input or fails the test
func parseExpr(t *testing.T, input string) fregeast.Expr {
	t.Helper()

	p := NewFromString(input, Options{})
	p.Advance()

	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression(%q) error = %v", input, err)
	}
	return expr
}

func TestParser_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Single number",
			input:    "42",
			expected: "42",
		},
		{
			name:     "Fractional number",
			input:    ".5",
			expected: "0.5",
		},
		{
			name:     "Single variable",
			input:    "x",
			expected: "x",
		},
		{
			name:     "Equal precedence associates left",
			input:    "a + b - c",
			expected: "((a + b) - c)",
		},
		{
			name:     "Multiplication binds tighter",
			input:    "a + b * c",
			expected: "(a + (b * c))",
		},
		{
			name:     "Comparison binds weakest",
			input:    "a < b + c",
			expected: "(a < (b + c))",
		},
		{
			name:     "Parentheses override precedence",
			input:    "(a + b) * c",
			expected: "((a + b) * c)",
		},
		{
			name:     "Nested parentheses",
			input:    "((a))",
			expected: "a",
		},
		{
			name:     "Call with one argument",
			input:    "bla(123)",
			expected: "bla(123)",
		},
		{
			name:     "Call with no arguments",
			input:    "foo()",
			expected: "foo()",
		},
		{
			name:     "Call with expression arguments",
			input:    "max(a + 1, b * 2)",
			expected: "max((a + 1), (b * 2))",
		},
		{
			name:     "Nested calls",
			input:    "f(g(x), y)",
			expected: "f(g(x), y)",
		},
		{
			name:     "Calls inside arithmetic",
			input:    "f(x) + g(y) * 2",
			expected: "(f(x) + (g(y) * 2))",
		},
		{
			name:     "Comment inside expression",
			input:    "a + # plus\nb",
			expected: "(a + b)",
		},
		{
			name:     "Long left-associative chain",
			input:    "a - b - c - d",
			expected: "(((a - b) - c) - d)",
		},
		{
			name:     "Mixed precedence chain",
			input:    "a * b + c * d < e",
			expected: "(((a * b) + (c * d)) < e)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := parseExpr(t, tt.input)
			if got := expr.String(); got != tt.expected {
				t.Errorf("parsed %q as %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParser_ExpressionShape(t *testing.T) {
	expr := parseExpr(t, "a + b * c")

	root, ok := expr.(*fregeast.BinaryExpr)
	if !ok {
		t.Fatalf("root node is %T; want *BinaryExpr", expr)
	}
	if root.Op != '+' {
		t.Errorf("root operator = %q; want '+'", root.Op)
	}

	left, ok := root.Left.(*fregeast.VariableExpr)
	if !ok || left.Name != "a" {
		t.Errorf("left operand = %v; want variable a", root.Left)
	}

	right, ok := root.Right.(*fregeast.BinaryExpr)
	if !ok {
		t.Fatalf("right operand is %T; want *BinaryExpr", root.Right)
	}
	if right.Op != '*' {
		t.Errorf("right operator = %q; want '*'", right.Op)
	}
}

func TestParser_NumberValues(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"0", 0},
		{"123", 123},
		{"12.34", 12.34},
		{".5", 0.5},
		{"5.", 5},
		{"12.34.1", 0}, // malformed numeral reads as zero by default
	}

	for _, tt := range tests {
		expr := parseExpr(t, tt.input)
		num, ok := expr.(*fregeast.NumberExpr)
		if !ok {
			t.Errorf("parse of %q produced %T; want *NumberExpr", tt.input, expr)
			continue
		}
		if num.Value != tt.value {
			t.Errorf("parse of %q = %v; want %v", tt.input, num.Value, tt.value)
		}
	}
}

func TestParser_Definitions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		params   string
	}{
		{
			name:     "Two parameters with comma",
			input:    "def bar( arg0, arg1) arg0 + arg1",
			expected: "def bar(arg0 arg1) (arg0 + arg1)",
			params:   "arg0 arg1",
		},
		{
			name:     "Space-separated parameters",
			input:    "def foo(a b) a",
			expected: "def foo(a b) a",
			params:   "a b",
		},
		{
			name:     "Stray commas are ignored",
			input:    "def foo(,a,,b,) a",
			expected: "def foo(a b) a",
			params:   "a b",
		},
		{
			name:     "No parameters",
			input:    "def one() 1",
			expected: "def one() 1",
			params:   "",
		},
		{
			name:     "Multiline body",
			input:    "def area(w h)\n  w * h",
			expected: "def area(w h) (w * h)",
			params:   "w h",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFromString(tt.input, Options{})
			p.Advance()

			fn, err := p.ParseDefinition()
			if err != nil {
				t.Fatalf("ParseDefinition(%q) error = %v", tt.input, err)
			}

			if got := fn.String(); got != tt.expected {
				t.Errorf("parsed %q as %q; want %q", tt.input, got, tt.expected)
			}
			if got := strings.Join(fn.Proto.Params, " "); got != tt.params {
				t.Errorf("parameters = %q; want %q", got, tt.params)
			}
			if fn.IsAnonymous() {
				t.Error("named definition reported as anonymous")
			}
		})
	}
}

func TestParser_DefinitionPositions(t *testing.T) {
	p := NewFromString("def bar(a) a", Options{})
	p.Advance()

	fn, err := p.ParseDefinition()
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}

	if fn.Pos != (fregeast.Position{Line: 1, Column: 1, Offset: 0}) {
		t.Errorf("function position = %v; want 1:1 offset 0", fn.Pos)
	}
	if fn.Proto.Pos != (fregeast.Position{Line: 1, Column: 5, Offset: 4}) {
		t.Errorf("prototype position = %v; want 1:5 offset 4", fn.Proto.Pos)
	}
}

func TestParser_Extern(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		arity    int
	}{
		{"extern sin(x)", "sin(x)", 1},
		{"extern atan2(y, x)", "atan2(y x)", 2},
		{"extern now()", "now()", 0},
	}

	for _, tt := range tests {
		p := NewFromString(tt.input, Options{})
		p.Advance()

		proto, err := p.ParseExtern()
		if err != nil {
			t.Fatalf("ParseExtern(%q) error = %v", tt.input, err)
		}

		if got := proto.String(); got != tt.expected {
			t.Errorf("parsed %q as %q; want %q", tt.input, got, tt.expected)
		}
		if proto.Arity() != tt.arity {
			t.Errorf("arity of %q = %d; want %d", tt.input, proto.Arity(), tt.arity)
		}
	}
}

func TestParser_TopLevelExpr(t *testing.T) {
	p := NewFromString("4 + 5", Options{})
	p.Advance()

	fn, err := p.ParseTopLevelExpr()
	if err != nil {
		t.Fatalf("ParseTopLevelExpr() error = %v", err)
	}

	if !fn.IsAnonymous() {
		t.Error("top-level expression wrapper is not anonymous")
	}
	if fn.Proto.Name != "" || len(fn.Proto.Params) != 0 {
		t.Errorf("wrapper prototype = %v; want empty name, no parameters", fn.Proto)
	}
	if got := fn.String(); got != "(4 + 5)" {
		t.Errorf("String() = %q; want %q", got, "(4 + 5)")
	}
}

// TestParser_SequentialItems drives the parser the way a REPL loop
// does: dispatch on the buffered token, parse one item, repeat. The
// token that stopped the previous item must be the one dispatched on.
func TestParser_SequentialItems(t *testing.T) {
	p := NewFromString("def f(x) x extern g() 2+3", Options{})
	p.Advance()

	if p.Current().Type != TokenDef {
		t.Fatalf("first token = %s; want DEF", p.Current())
	}
	fn, err := p.ParseDefinition()
	if err != nil {
		t.Fatalf("ParseDefinition() error = %v", err)
	}
	if fn.Proto.Name != "f" {
		t.Errorf("first item = %q; want definition of f", fn.Proto.Name)
	}

	if p.Current().Type != TokenExtern {
		t.Fatalf("token after definition = %s; want EXTERN", p.Current())
	}
	proto, err := p.ParseExtern()
	if err != nil {
		t.Fatalf("ParseExtern() error = %v", err)
	}
	if proto.Name != "g" {
		t.Errorf("second item = %q; want extern g", proto.Name)
	}

	if p.Current().Type != TokenNumber {
		t.Fatalf("token after extern = %s; want NUMBER", p.Current())
	}
	top, err := p.ParseTopLevelExpr()
	if err != nil {
		t.Fatalf("ParseTopLevelExpr() error = %v", err)
	}
	if got := top.String(); got != "(2 + 3)" {
		t.Errorf("third item = %q; want (2 + 3)", got)
	}

	if p.Current().Type != TokenEOF {
		t.Errorf("token after all items = %s; want EOF", p.Current())
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKind    ErrorKind
		wantMessage string
	}{
		{
			name:        "Unclosed parenthesis at end of input",
			input:       "(1 + 2",
			wantKind:    ErrorPrematureEOF,
			wantMessage: "expected ')'",
		},
		{
			name:        "Unclosed parenthesis before stray token",
			input:       "(1 + 2 x)",
			wantKind:    ErrorUnterminatedGroup,
			wantMessage: "expected ')'",
		},
		{
			name:        "Closing parenthesis alone",
			input:       ")",
			wantKind:    ErrorUnexpectedToken,
			wantMessage: "unknown token when expecting an expression",
		},
		{
			name:        "Operator without operand",
			input:       "1 + ",
			wantKind:    ErrorPrematureEOF,
			wantMessage: "unknown token when expecting an expression",
		},
		{
			name:        "Empty input as expression",
			input:       "",
			wantKind:    ErrorPrematureEOF,
			wantMessage: "unknown token when expecting an expression",
		},
		{
			name:        "Missing function name",
			input:       "def (a) x",
			wantKind:    ErrorUnexpectedToken,
			wantMessage: "expected function name in prototype",
		},
		{
			name:        "Missing parameter list",
			input:       "def foo x",
			wantKind:    ErrorUnexpectedToken,
			wantMessage: "expected function name in prototype",
		},
		{
			name:        "Definition cut off after def",
			input:       "def",
			wantKind:    ErrorPrematureEOF,
			wantMessage: "expected function name in prototype",
		},
		{
			name:        "Unclosed parameter list",
			input:       "def foo(a",
			wantKind:    ErrorPrematureEOF,
			wantMessage: "expected ')' in prototype",
		},
		{
			name:        "Stray token in parameter list",
			input:       "def foo(a;b) a",
			wantKind:    ErrorUnterminatedGroup,
			wantMessage: "expected ')' in prototype",
		},
		{
			name:        "Stray token in argument list",
			input:       "f(a x",
			wantKind:    ErrorUnterminatedGroup,
			wantMessage: "expected ')' or ',' in argument list",
		},
		{
			name:        "Unclosed argument list",
			input:       "f(a",
			wantKind:    ErrorPrematureEOF,
			wantMessage: "expected ')' or ',' in argument list",
		},
		{
			name:        "Extern missing name",
			input:       "extern (x)",
			wantKind:    ErrorUnexpectedToken,
			wantMessage: "expected function name in prototype",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFromString(tt.input, Options{})
			tok := p.Advance()

			var err error
			switch tok.Type {
			case TokenDef:
				_, err = p.ParseDefinition()
			case TokenExtern:
				_, err = p.ParseExtern()
			default:
				_, err = p.ParseTopLevelExpr()
			}

			if err == nil {
				t.Fatalf("parse of %q succeeded; want error", tt.input)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T; want *ParseError", err)
			}
			if pe.Kind != tt.wantKind {
				t.Errorf("error kind = %s; want %s", pe.Kind, tt.wantKind)
			}
			if pe.Message != tt.wantMessage {
				t.Errorf("error message = %q; want %q", pe.Message, tt.wantMessage)
			}
		})
	}
}

func TestParser_ErrorString(t *testing.T) {
	p := NewFromString("(", Options{})
	p.Advance()

	_, err := p.ParseTopLevelExpr()
	if err == nil {
		t.Fatal("parse of \"(\" succeeded; want error")
	}

	want := "parse error at line 1, column 1: unknown token when expecting an expression (near 'EOF')"
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}
}

func TestParser_ErrorPosition(t *testing.T) {
	p := NewFromString("f(a x", Options{})
	p.Advance()

	_, err := p.ParseTopLevelExpr()

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v; want *ParseError", err)
	}
	if pe.Line != 1 || pe.Column != 5 || pe.Position != 4 {
		t.Errorf("error at %d:%d offset %d; want 1:5 offset 4", pe.Line, pe.Column, pe.Position)
	}
	if pe.Token.Value != "x" {
		t.Errorf("error token = %s; want the stray identifier", pe.Token)
	}
}

// TestParser_FailedPrototypeKeepsToken verifies that a prototype
// rejected for a missing name leaves the offending token buffered, so a
// caller can decide how to resynchronize.
func TestParser_FailedPrototypeKeepsToken(t *testing.T) {
	p := NewFromString("def (a) x", Options{})
	p.Advance()

	if _, err := p.ParseDefinition(); err == nil {
		t.Fatal("ParseDefinition() succeeded; want error")
	}
	if !p.Current().Is('(') {
		t.Errorf("current token after failure = %s; want the '('", p.Current())
	}

	p = NewFromString("def foo x", Options{})
	p.Advance()

	if _, err := p.ParseDefinition(); err == nil {
		t.Fatal("ParseDefinition() succeeded; want error")
	}
	if p.Current().Value != "x" {
		t.Errorf("current token after failure = %s; want the stray identifier", p.Current())
	}
}

func TestParser_StrictNumbers(t *testing.T) {
	p := NewFromString("12.34.1", Options{StrictNumbers: true})
	p.Advance()

	_, err := p.ParseTopLevelExpr()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v; want *ParseError", err)
	}
	if pe.Kind != ErrorMalformedNumber {
		t.Errorf("error kind = %s; want %s", pe.Kind, ErrorMalformedNumber)
	}
	if pe.Message != "malformed numeric literal '12.34.1'" {
		t.Errorf("error message = %q", pe.Message)
	}

	// Well-formed numerals are unaffected
	p = NewFromString("12.34", Options{StrictNumbers: true})
	p.Advance()
	if _, err := p.ParseTopLevelExpr(); err != nil {
		t.Errorf("strict parse of well-formed numeral failed: %v", err)
	}
}

func TestParser_NestingDepth(t *testing.T) {
	const depth = 5

	within := strings.Repeat("(", depth-1) + "1" + strings.Repeat(")", depth-1)
	p := NewFromString(within, Options{MaxDepth: depth})
	p.Advance()
	if _, err := p.ParseTopLevelExpr(); err != nil {
		t.Errorf("parse at allowed depth failed: %v", err)
	}

	beyond := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	p = NewFromString(beyond, Options{MaxDepth: depth})
	p.Advance()

	_, err := p.ParseTopLevelExpr()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v; want *ParseError", err)
	}
	if pe.Kind != ErrorNestingTooDeep {
		t.Errorf("error kind = %s; want %s", pe.Kind, ErrorNestingTooDeep)
	}
	if pe.Message != "expression nesting too deep" {
		t.Errorf("error message = %q", pe.Message)
	}
}

func TestParser_CurrentBeforeAdvancePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Current() before first Advance did not panic")
		}
	}()

	p := NewFromString("1", Options{})
	p.Current()
}

func TestParser_DefinitionDispatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("ParseDefinition() on a non-def token did not panic")
		}
	}()

	p := NewFromString("foo", Options{})
	p.Advance()
	p.ParseDefinition()
}

func TestParser_ExternDispatchPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("ParseExtern() on a non-extern token did not panic")
		}
	}()

	p := NewFromString("def f(x) x", Options{})
	p.Advance()
	p.ParseExtern()
}

func TestParser_Previous(t *testing.T) {
	p := NewFromString("a b", Options{})

	if prev := p.Previous(); prev.Type != TokenEOF || prev.Value != "" {
		t.Errorf("Previous() before any Advance = %s; want zero token", prev)
	}

	p.Advance()
	p.Advance()

	if prev := p.Previous(); prev.Value != "a" {
		t.Errorf("Previous() = %s; want IDENTIFIER(a)", prev)
	}
	if cur := p.Current(); cur.Value != "b" {
		t.Errorf("Current() = %s; want IDENTIFIER(b)", cur)
	}
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		ch       rune
		expected int
	}{
		{'<', 10},
		{'+', 20},
		{'-', 20},
		{'*', 40},
		{'/', -1},
		{'>', -1},
		{'a', -1},
		{'(', -1},
	}

	for _, tt := range tests {
		if got := Precedence(tt.ch); got != tt.expected {
			t.Errorf("Precedence(%q) = %d; want %d", tt.ch, got, tt.expected)
		}
	}
}

func BenchmarkParseExpression(b *testing.B) {
	input := "a + b * c - d < e * (f + g)"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewFromString(input, Options{})
		p.Advance()
		if _, err := p.ParseExpression(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseDefinition(b *testing.B) {
	input := "def compute(a, b) a * b + (a - b)"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewFromString(input, Options{})
		p.Advance()
		if _, err := p.ParseDefinition(); err != nil {
			b.Fatal(err)
		}
	}
}
