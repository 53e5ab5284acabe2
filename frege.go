// File: frege.go
// Title: Frege Main Interface and Engine
// Description: Provides the main Frege engine interface and high-level
//              API for parsing Frege source into programs. Integrates
//              the lexer, parser, and AST components and classifies
//              failures with the core error package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial Frege engine implementation

package frege

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	fregeast "github.com/msto63/frege/ast"
	fregeerror "github.com/msto63/frege/core/error"
	fregelog "github.com/msto63/frege/core/log"
	fregeparser "github.com/msto63/frege/parser"
	fregestringx "github.com/msto63/frege/utils/stringx"
)

// Engine represents the main Frege engine that coordinates lexing and
// parsing of complete sources
type Engine struct {
	logger  *fregelog.Logger
	options Options
}

// Options configures the Frege engine behavior
type Options struct {
	// Logger for Frege operations (optional, defaults to default logger)
	Logger *fregelog.Logger

	// MaxDepth bounds expression nesting (default: 1000)
	MaxDepth int

	// MaxSourceLength limits in-memory source length in bytes
	// (default: 1 MiB). Streaming readers are not length-checked.
	MaxSourceLength int

	// StrictNumbers rejects malformed numerals such as "12.34.1"
	// instead of reading them as 0.0
	StrictNumbers bool
}

// ItemKind identifies the kind of a top-level item
type ItemKind int

const (
	// ItemInvalid is the kind of the zero item
	ItemInvalid ItemKind = iota

	// ItemDefinition is a named function definition
	ItemDefinition

	// ItemExtern is an external function declaration
	ItemExtern

	// ItemExpression is a top-level expression wrapped in an anonymous
	// function
	ItemExpression
)

// String returns a human-readable name for the item kind
func (k ItemKind) String() string {
	switch k {
	case ItemDefinition:
		return "definition"
	case ItemExtern:
		return "extern"
	case ItemExpression:
		return "expression"
	default:
		return "invalid"
	}
}

// Item is one top-level item of a program. Definitions and expressions
// carry a Function; externs carry a Prototype.
type Item struct {
	Kind      ItemKind
	Function  *fregeast.Function
	Prototype *fregeast.Prototype
}

// Node returns the AST node of the item
func (i Item) Node() fregeast.Node {
	if i.Kind == ItemExtern {
		return i.Prototype
	}
	if i.Function != nil {
		return i.Function
	}
	return nil
}

// Name returns the declared name of the item. Expressions are
// anonymous and return an empty name.
func (i Item) Name() string {
	switch i.Kind {
	case ItemDefinition:
		return i.Function.Proto.Name
	case ItemExtern:
		return i.Prototype.Name
	default:
		return ""
	}
}

// Pos returns the source position of the item
func (i Item) Pos() fregeast.Position {
	node := i.Node()
	if node == nil {
		return fregeast.Position{}
	}
	return node.Position()
}

// String returns the canonical source form of the item
func (i Item) String() string {
	switch i.Kind {
	case ItemExtern:
		return "extern " + i.Prototype.String()
	case ItemDefinition, ItemExpression:
		return i.Function.String()
	default:
		return "<invalid item>"
	}
}

// Program is the result of parsing one source. Items holds every item
// parsed successfully, Errors every parse failure, in source order. A
// program with errors still carries all items around them.
type Program struct {
	Items  []Item
	Errors []error
}

// IsClean reports whether the program parsed without errors
func (p *Program) IsClean() bool {
	return len(p.Errors) == 0
}

// Count returns the number of items in the program
func (p *Program) Count() int {
	return len(p.Items)
}

// Definitions returns the named function definitions in source order
func (p *Program) Definitions() []*fregeast.Function {
	var defs []*fregeast.Function
	for _, item := range p.Items {
		if item.Kind == ItemDefinition {
			defs = append(defs, item.Function)
		}
	}
	return defs
}

// Externs returns the external declarations in source order
func (p *Program) Externs() []*fregeast.Prototype {
	var protos []*fregeast.Prototype
	for _, item := range p.Items {
		if item.Kind == ItemExtern {
			protos = append(protos, item.Prototype)
		}
	}
	return protos
}

// Expressions returns the top-level expression wrappers in source order
func (p *Program) Expressions() []*fregeast.Function {
	var exprs []*fregeast.Function
	for _, item := range p.Items {
		if item.Kind == ItemExpression {
			exprs = append(exprs, item.Function)
		}
	}
	return exprs
}

// Validate runs semantic validation over every item and returns the
// collected failures
func (p *Program) Validate() error {
	var errs []error
	for _, item := range p.Items {
		node := item.Node()
		if node == nil {
			continue
		}
		if err := node.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s at %s: %w", item.Kind, item.Pos(), err))
		}
	}
	return errors.Join(errs...)
}

// String returns a short summary of the program
func (p *Program) String() string {
	return fmt.Sprintf("program: %d items, %d errors", len(p.Items), len(p.Errors))
}

// NewEngine creates a new Frege engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:          fregelog.GetDefault(),
		MaxDepth:        1000,
		MaxSourceLength: 1 << 20,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxDepth != 0 {
			options.MaxDepth = provided.MaxDepth
		}
		if provided.MaxSourceLength != 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
		options.StrictNumbers = provided.StrictNumbers
	}

	if options.MaxDepth < 0 {
		return nil, fregeerror.New("maximum nesting depth must not be negative").
			WithCode(fregeerror.CodeInvalidConfig).
			WithDetail("maxDepth", options.MaxDepth)
	}
	if options.MaxSourceLength < 0 {
		return nil, fregeerror.New("maximum source length must not be negative").
			WithCode(fregeerror.CodeInvalidConfig).
			WithDetail("maxSourceLength", options.MaxSourceLength)
	}

	logger := options.Logger.WithField("component", "frege-engine")

	engine := &Engine{
		logger:  logger,
		options: options,
	}

	logger.Info("Frege engine initialized", fregelog.Fields{
		"maxDepth":        options.MaxDepth,
		"maxSourceLength": options.MaxSourceLength,
		"strictNumbers":   options.StrictNumbers,
	})

	return engine, nil
}

// Parse reads Frege source from r and parses it into a program. The
// returned program is never nil: it carries every item parsed before,
// between, and after failures. The returned error joins all parse
// failures; a nil error means a clean program.
//
// After each failed item the parser discards one token and resumes, so
// a single stray character does not swallow the rest of the source.
func (e *Engine) Parse(ctx context.Context, r io.Reader) (*Program, error) {
	timer := e.logger.StartTimer("frege_parse")

	program := &Program{}
	p := fregeparser.New(r, e.parserOptions())
	p.Advance()

	for {
		if err := ctx.Err(); err != nil {
			wrapped := fregeerror.Wrap(err, "parsing canceled").
				WithCode(fregeerror.CodeInternal).
				WithOperation("parse")
			timer.StopWithError(wrapped)
			return program, wrapped
		}

		tok := p.Current()
		if tok.Type == fregeparser.TokenEOF {
			break
		}
		if tok.Is(';') {
			p.Advance()
			continue
		}

		item, err := parseItem(p)
		if err != nil {
			program.Errors = append(program.Errors, e.wrapParseError(err))
			p.Advance() // discard the offending token before resuming
			continue
		}

		program.Items = append(program.Items, item)
		e.logger.Debug("parsed item", fregelog.Fields{
			"kind": item.Kind.String(),
			"name": item.Name(),
			"pos":  item.Pos().String(),
		})
	}

	if err := p.Err(); err != nil {
		program.Errors = append(program.Errors, fregeerror.Wrap(err, "reading source failed").
			WithCode(fregeerror.CodeInternal).
			WithOperation("read"))
	}

	err := errors.Join(program.Errors...)
	if err != nil {
		timer.StopWithError(err)
	} else {
		timer.Stop()
	}

	e.logger.Debug("source parsed", fregelog.Fields{
		"items":  len(program.Items),
		"errors": len(program.Errors),
	})

	return program, err
}

// ParseString parses an in-memory source. Blank input is a valid empty
// program, not an error.
func (e *Engine) ParseString(ctx context.Context, source string) (*Program, error) {
	if e.options.MaxSourceLength > 0 && len(source) > e.options.MaxSourceLength {
		return nil, fregeerror.New("source exceeds maximum length").
			WithCode(fregeerror.CodeInputTooLong).
			WithOperation("parse").
			WithDetails(map[string]interface{}{
				"length": len(source),
				"limit":  e.options.MaxSourceLength,
			})
	}

	return e.Parse(ctx, strings.NewReader(source))
}

// ParseFile opens and parses a source file
func (e *Engine) ParseFile(ctx context.Context, path string) (*Program, error) {
	if fregestringx.IsBlank(path) {
		return nil, fregeerror.New("source path cannot be empty").
			WithCode(fregeerror.CodeValidationFailed).
			WithOperation("parse-file")
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fregeerror.Wrap(err, "source file not found").
				WithCode(fregeerror.CodeNotFound).
				WithOperation("parse-file").
				WithDetail("path", path)
		}
		return nil, fregeerror.Wrap(err, "cannot open source file").
			WithCode(fregeerror.CodeInternal).
			WithOperation("parse-file").
			WithDetail("path", path)
	}
	defer f.Close()

	return e.Parse(ctx, f)
}

// ValidateSource checks whether a source parses cleanly
func (e *Engine) ValidateSource(source string) error {
	_, err := e.ParseString(context.Background(), source)
	return err
}

// parserOptions builds the parser configuration from engine options
func (e *Engine) parserOptions() fregeparser.Options {
	return fregeparser.Options{
		Logger:        e.logger,
		MaxDepth:      e.options.MaxDepth,
		StrictNumbers: e.options.StrictNumbers,
	}
}

// parseItem parses one top-level item, dispatching on the buffered
// token the way the grammar's driver loop does
func parseItem(p *fregeparser.Parser) (Item, error) {
	switch p.Current().Type {
	case fregeparser.TokenDef:
		fn, err := p.ParseDefinition()
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: ItemDefinition, Function: fn}, nil

	case fregeparser.TokenExtern:
		proto, err := p.ParseExtern()
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: ItemExtern, Prototype: proto}, nil

	default:
		fn, err := p.ParseTopLevelExpr()
		if err != nil {
			return Item{}, err
		}
		return Item{Kind: ItemExpression, Function: fn}, nil
	}
}

// wrapParseError wraps parser errors with Frege-specific context.
// Input that ended mid-construct is classified as incomplete so
// interactive callers can prompt for continuation instead of reporting
// a failure.
func (e *Engine) wrapParseError(err error) error {
	var pe *fregeparser.ParseError
	if !errors.As(err, &pe) {
		return fregeerror.Wrap(err, "parsing failed").
			WithCode(fregeerror.CodeParseSyntax).
			WithOperation("parse")
	}

	code := fregeerror.CodeParseSyntax
	if pe.Kind == fregeparser.ErrorPrematureEOF {
		code = fregeerror.CodeParseIncomplete
	}

	return fregeerror.Wrap(err, "invalid source").
		WithCode(code).
		WithOperation("parse").
		WithDetails(map[string]interface{}{
			"kind":   pe.Kind.String(),
			"line":   pe.Line,
			"column": pe.Column,
		})
}

// AsParseError extracts the underlying parser error, when err carries
// one, so callers can reach the exact token and position
func AsParseError(err error) (*fregeparser.ParseError, bool) {
	var pe *fregeparser.ParseError
	ok := errors.As(err, &pe)
	return pe, ok
}

// IsIncomplete reports whether err stems from input that ended in the
// middle of a construct. Interactive callers use this to read more
// input instead of reporting a failure.
func IsIncomplete(err error) bool {
	var fe *fregeerror.Error
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Code() == fregeerror.CodeParseIncomplete
}
