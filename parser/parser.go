// File: parser.go
// Title: Frege Recursive Descent Parser
// Description: Implements the parsing phase of Frege processing.
//              Converts token streams into Abstract Syntax Trees using
//              recursive descent with operator-precedence climbing for
//              binary expressions. Maintains a one-token lookahead
//              buffer and reports errors with position information.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"io"
	"strings"

	fregeast "github.com/msto63/frege/ast"
	fregelog "github.com/msto63/frege/core/log"
)

// Parser implements recursive descent parsing for Frege source.
//
// The parser owns its lexer exclusively and buffers exactly one token of
// lookahead. The buffer is unpopulated until the first Advance call;
// accessing it earlier is a caller bug and panics. ParseDefinition and
// ParseExtern likewise require callers to have dispatched on the current
// token first and panic when entered on the wrong keyword. Malformed
// input, by contrast, is never a panic: it surfaces as a *ParseError
// return value and the parser stays usable after the caller
// resynchronizes (usually by one Advance).
type Parser struct {
	lexer    *Lexer
	current  Token // Current token
	previous Token // Previously consumed token
	primed   bool  // True once the first token has been buffered
	depth    int   // Current expression nesting depth
	logger   *fregelog.Logger
	options  Options
}

// Options configures parser behavior
type Options struct {
	// Logger receives debug output; defaults to the package default logger
	Logger *fregelog.Logger

	// MaxDepth bounds expression nesting so hostile input cannot grow
	// the call stack without limit. Defaults to 1000.
	MaxDepth int

	// StrictNumbers turns malformed numerals such as "12.34.1" into
	// parse errors instead of silently reading them as 0.0
	StrictNumbers bool
}

// ErrorKind classifies parse errors so callers can react
// programmatically instead of matching message text
type ErrorKind int

const (
	// ErrorUnexpectedToken marks a token that cannot start or continue
	// the construct being parsed
	ErrorUnexpectedToken ErrorKind = iota

	// ErrorUnterminatedGroup marks a missing closing delimiter in a
	// parenthesized expression, argument list, or parameter list
	ErrorUnterminatedGroup

	// ErrorMalformedNumber marks an invalid numeric literal; only
	// produced when Options.StrictNumbers is set
	ErrorMalformedNumber

	// ErrorPrematureEOF marks input that ended in the middle of a
	// construct
	ErrorPrematureEOF

	// ErrorNestingTooDeep marks input exceeding Options.MaxDepth
	ErrorNestingTooDeep
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorUnexpectedToken:
		return "unexpected token"
	case ErrorUnterminatedGroup:
		return "unterminated group"
	case ErrorMalformedNumber:
		return "malformed number"
	case ErrorPrematureEOF:
		return "premature end of input"
	case ErrorNestingTooDeep:
		return "nesting too deep"
	default:
		return "unknown"
	}
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (pe *ParseError) Error() string {
	near := pe.Token.Value
	if near == "" {
		near = pe.Token.Type.String()
	}
	return fmt.Sprintf("parse error at line %d, column %d: %s (near '%s')",
		pe.Line, pe.Column, pe.Message, near)
}

// New creates a parser reading from r with the given options
func New(r io.Reader, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = fregelog.GetDefault()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = 1000
	}

	return &Parser{
		lexer:   NewLexer(r),
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}
}

// NewFromString creates a parser over an in-memory input
func NewFromString(input string, opts Options) *Parser {
	return New(strings.NewReader(input), opts)
}

// Current returns the buffered token. It panics when called before the
// first Advance: entry points must be dispatched on a populated buffer.
func (p *Parser) Current() Token {
	if !p.primed {
		panic("parser: current token accessed before first Advance")
	}
	return p.current
}

// Previous returns the most recently consumed token. Before anything
// has been consumed it returns the zero token.
func (p *Parser) Previous() Token {
	return p.previous
}

// Advance pulls one token from the lexer into the buffer, discarding
// the previous buffered token, and returns the new current token.
func (p *Parser) Advance() Token {
	p.previous = p.current
	p.current = p.lexer.NextToken()
	p.primed = true
	return p.current
}

// Err exposes read failures on the underlying character source
func (p *Parser) Err() error {
	return p.lexer.Err()
}

// ParseDefinition parses a function definition:
//
//	definition := 'def' prototype expression
//
// The current token must be the 'def' keyword; calling this entry point
// on any other token is a caller bug and panics.
func (p *Parser) ParseDefinition() (*fregeast.Function, error) {
	if p.Current().Type != TokenDef {
		panic("parser: ParseDefinition called while current token is not 'def'")
	}

	pos := tokenPosition(p.current)
	p.logger.Debug("parsing definition", fregelog.Fields{
		"line":   pos.Line,
		"column": pos.Column,
	})
	p.Advance() // consume 'def'

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	return &fregeast.Function{Proto: proto, Body: body, Pos: pos}, nil
}

// ParseExtern parses an external declaration:
//
//	extern := 'extern' prototype
//
// The current token must be the 'extern' keyword; calling this entry
// point on any other token is a caller bug and panics.
func (p *Parser) ParseExtern() (*fregeast.Prototype, error) {
	if p.Current().Type != TokenExtern {
		panic("parser: ParseExtern called while current token is not 'extern'")
	}

	p.logger.Debug("parsing extern", fregelog.Fields{
		"line":   p.current.Line,
		"column": p.current.Column,
	})
	p.Advance() // consume 'extern'

	return p.parsePrototype()
}

// ParseTopLevelExpr parses one full expression and wraps it in a
// function with an anonymous prototype, so top-level expressions and
// named definitions share one representation downstream.
func (p *Parser) ParseTopLevelExpr() (*fregeast.Function, error) {
	pos := tokenPosition(p.Current())

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	proto := &fregeast.Prototype{Name: "", Params: nil, Pos: pos}
	return &fregeast.Function{Proto: proto, Body: expr, Pos: pos}, nil
}

// ParseExpression parses a full expression:
//
//	expression := primary (binop primary)*
func (p *Parser) ParseExpression() (fregeast.Expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.options.MaxDepth {
		return nil, p.parseError(ErrorNestingTooDeep, "expression nesting too deep")
	}

	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return p.parseBinOpRHS(0, lhs)
}

// parseBinOpRHS climbs a chain of binary operators. minPrec is the
// weakest operator binding this invocation may consume; encountering a
// weaker one (or a non-operator, precedence -1) returns the expression
// accumulated so far. When the operator after the right-hand primary
// binds tighter than the one just consumed, the right side is extended
// first by recursing with a raised threshold. Equal-precedence chains
// therefore associate left and tighter operators group right.
func (p *Parser) parseBinOpRHS(minPrec int, lhs fregeast.Expr) (fregeast.Expr, error) {
	for {
		tokPrec := tokPrecedence(p.current)
		if tokPrec < minPrec {
			return lhs, nil
		}

		binOp := p.current.Char
		pos := tokenPosition(p.current)
		p.Advance() // consume operator

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		nextPrec := tokPrecedence(p.current)
		if tokPrec < nextPrec {
			rhs, err = p.parseBinOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &fregeast.BinaryExpr{Op: binOp, Left: lhs, Right: rhs, Pos: pos}
	}
}

// parsePrimary dispatches on the current token:
//
//	primary := number | identifierexpr | '(' expression ')'
func (p *Parser) parsePrimary() (fregeast.Expr, error) {
	switch p.Current().Type {
	case TokenNumber:
		return p.parseNumberExpr()
	case TokenIdentifier:
		return p.parseIdentifierExpr()
	case TokenChar:
		if p.current.Char == '(' {
			return p.parseParenExpr()
		}
	}

	return nil, p.parseError(ErrorUnexpectedToken, "unknown token when expecting an expression")
}

// parseNumberExpr consumes a numeric literal
func (p *Parser) parseNumberExpr() (fregeast.Expr, error) {
	tok := p.current

	if !IsValidNumber(tok.Value) {
		if p.options.StrictNumbers {
			return nil, p.parseError(ErrorMalformedNumber,
				fmt.Sprintf("malformed numeric literal '%s'", tok.Value))
		}
		p.logger.Warn("malformed numeric literal, value defaults to 0", fregelog.Fields{
			"literal": tok.Value,
			"line":    tok.Line,
			"column":  tok.Column,
		})
	}

	p.Advance()
	return &fregeast.NumberExpr{Value: tok.Number, Pos: tokenPosition(tok)}, nil
}

// parseParenExpr parses a parenthesized expression. The parentheses
// group only; no AST node is produced for them.
func (p *Parser) parseParenExpr() (fregeast.Expr, error) {
	p.Advance() // consume '('

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if !p.current.Is(')') {
		return nil, p.parseError(ErrorUnterminatedGroup, "expected ')'")
	}
	p.Advance() // consume ')'

	return expr, nil
}

// parseIdentifierExpr parses a variable reference or, when the
// identifier is followed by '(', a call:
//
//	identifierexpr := identifier | identifier '(' expression* ')'
func (p *Parser) parseIdentifierExpr() (fregeast.Expr, error) {
	name := p.current.Value
	pos := tokenPosition(p.current)
	p.Advance() // consume identifier

	if !p.current.Is('(') {
		return &fregeast.VariableExpr{Name: name, Pos: pos}, nil
	}

	p.Advance() // consume '('

	var args []fregeast.Expr
	if p.current.Is(')') {
		p.Advance() // consume ')', zero-argument call
		return &fregeast.CallExpr{Callee: name, Args: args, Pos: pos}, nil
	}

	for {
		arg, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.current.Is(')') {
			p.Advance() // consume ')'
			break
		}
		if !p.current.Is(',') {
			return nil, p.parseError(ErrorUnterminatedGroup, "expected ')' or ',' in argument list")
		}
		p.Advance() // consume ','
	}

	return &fregeast.CallExpr{Callee: name, Args: args, Pos: pos}, nil
}

// parsePrototype parses a function signature:
//
//	prototype := identifier '(' (identifier | ',')* ')'
//
// The failure on a missing leading identifier does not consume the
// offending token, so the caller's position is unchanged. The parameter
// loop accepts commas anywhere between names without validating their
// placement; "foo(a b)", "foo(a, b)", and "foo(,a,,b,)" all declare the
// same two parameters.
func (p *Parser) parsePrototype() (*fregeast.Prototype, error) {
	if p.current.Type != TokenIdentifier {
		return nil, p.parseError(ErrorUnexpectedToken, "expected function name in prototype")
	}

	name := p.current.Value
	pos := tokenPosition(p.current)
	p.Advance() // consume function name

	if !p.current.Is('(') {
		return nil, p.parseError(ErrorUnexpectedToken, "expected function name in prototype")
	}

	var params []string
	for {
		tok := p.Advance() // first iteration consumes the '('
		if tok.Type == TokenIdentifier {
			params = append(params, tok.Value)
			continue
		}
		if tok.Is(',') {
			continue // separator, placement not validated
		}
		break // leave the unexpected token buffered
	}

	if !p.current.Is(')') {
		return nil, p.parseError(ErrorUnterminatedGroup, "expected ')' in prototype")
	}
	p.Advance() // consume ')'

	return &fregeast.Prototype{Name: name, Params: params, Pos: pos}, nil
}

// binopPrecedence fixes the binding strength of each binary operator.
// Characters absent from the table are not binary operators.
var binopPrecedence = map[rune]int{
	'<': 10,
	'+': 20,
	'-': 20,
	'*': 40,
}

// Precedence returns the binding strength of ch as a binary operator,
// or -1 when ch is not a binary operator
func Precedence(ch rune) int {
	if prec, ok := binopPrecedence[ch]; ok {
		return prec
	}
	return -1
}

// tokPrecedence returns the binary-operator precedence of a token
func tokPrecedence(tok Token) int {
	if tok.Type != TokenChar {
		return -1
	}
	return Precedence(tok.Char)
}

// tokenPosition converts a token's location into an AST position
func tokenPosition(tok Token) fregeast.Position {
	return fregeast.Position{
		Line:   tok.Line,
		Column: tok.Column,
		Offset: tok.Position,
	}
}

// parseError builds a ParseError at the current token. When input ended
// mid-construct the kind is overridden to ErrorPrematureEOF.
func (p *Parser) parseError(kind ErrorKind, message string) error {
	if p.current.Type == TokenEOF && kind != ErrorNestingTooDeep {
		kind = ErrorPrematureEOF
	}
	return &ParseError{
		Kind:     kind,
		Message:  message,
		Position: p.current.Position,
		Line:     p.current.Line,
		Column:   p.current.Column,
		Token:    p.current,
	}
}
