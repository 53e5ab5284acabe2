// File: lexer.go
// Title: Frege Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of Frege parsing.
//              Pulls characters one at a time from a streaming source and
//              produces tokens for the parser: keywords, identifiers,
//              numeric literals, and single-character tokens, with
//              position information for error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-18
// Modified: 2025-08-18
//
// Change History:
// - 2025-08-18 v0.1.0: Initial lexer implementation

package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	fregestringx "github.com/msto63/frege/utils/stringx"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEOF marks exhausted input; once reached it repeats forever
	TokenEOF TokenType = iota

	// Keywords
	TokenDef    // def
	TokenExtern // extern

	// Identifiers and literals
	TokenIdentifier // foo, arg0
	TokenNumber     // 123, 12.34

	// TokenChar carries any other single character: operators and
	// punctuation such as ( ) , ; + - * <
	TokenChar
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text (identifier name, numeral, character)
	Number   float64   // Parsed value for TokenNumber
	Char     rune      // Literal character for TokenChar
	Position int       // Byte position in input (0-based)
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenDef:
		return "DEF"
	case TokenExtern:
		return "EXTERN"
	case TokenIdentifier:
		return fmt.Sprintf("IDENTIFIER(%s)", t.Value)
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%s)", t.Value)
	case TokenChar:
		return fmt.Sprintf("CHAR(%s)", t.Value)
	default:
		return "UNKNOWN"
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenDef:
		return "DEF"
	case TokenExtern:
		return "EXTERN"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenChar:
		return "CHAR"
	default:
		return "UNKNOWN"
	}
}

// Is reports whether the token is the given single-character token.
func (t Token) Is(ch rune) bool {
	return t.Type == TokenChar && t.Char == ch
}

// Lexer performs lexical analysis over a streaming character source.
// It buffers exactly one character of lookahead and never reads further
// ahead than that. A lexer must not be shared between parsers.
type Lexer struct {
	reader   *bufio.Reader
	ch       byte  // Current char under examination
	eof      bool  // Source exhausted
	err      error // First non-EOF read error, if any
	position int   // Byte position of current char (0-based)
	line     int   // Current line number (1-based)
	column   int   // Current column number (1-based)
}

// NewLexer creates a new lexer reading from r. The first character is
// pulled lazily on the first NextToken call, so constructing a lexer on
// an interactive source does not block.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(r),
		ch:       ' ', // synthetic whitespace, consumed before the first token
		position: -1,
		line:     1,
		column:   0,
	}
}

// NewLexerFromString creates a new lexer for an in-memory input
func NewLexerFromString(input string) *Lexer {
	return NewLexer(strings.NewReader(input))
}

// NextToken returns the next token from the input. After the source is
// exhausted it returns the end-of-input token on every call.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch {
	case l.eof:
		return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}

	case isLetter(l.ch):
		return l.lexIdentifier(pos, line, column)

	case isDigit(l.ch) || l.ch == '.':
		return l.lexNumber(pos, line, column)

	case l.ch == '#':
		l.skipComment()
		return l.NextToken()

	default:
		ch := l.ch
		l.readChar()
		return Token{
			Type:     TokenChar,
			Value:    string(ch),
			Char:     rune(ch),
			Position: pos,
			Line:     line,
			Column:   column,
		}
	}
}

// Tokenize reads all remaining tokens including the terminating EOF
// token. The returned error reports a failed read on the underlying
/// source, never a lexical problem: this grammar has no invalid input at
// the token level.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}
	}

	return tokens, l.err
}

// Err returns the first non-EOF error seen while reading the source.
// Exhaustion itself is not an error.
func (l *Lexer) Err() error {
	return l.err
}

// readChar reads the next character and advances position tracking
func (l *Lexer) readChar() {
	b, err := l.reader.ReadByte()
	if err != nil {
		if !l.eof {
			if err != io.EOF {
				l.err = err
			}
			l.eof = true
			l.position++
		}
		l.ch = 0
		return
	}

	l.ch = b
	l.position++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// lexIdentifier reads a word starting with a letter and continuing with
// letters or digits, then classifies it as a keyword or identifier
func (l *Lexer) lexIdentifier(pos, line, column int) Token {
	var sb strings.Builder
	for isLetter(l.ch) || isDigit(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
	}

	word := sb.String()
	if tokType, ok := keywords[word]; ok {
		return Token{Type: tokType, Value: word, Position: pos, Line: line, Column: column}
	}

	// Identifier names repeat heavily across a source; intern them so
	// AST nodes share backing strings.
	return Token{
		Type:     TokenIdentifier,
		Value:    fregestringx.Intern(word),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// lexNumber reads a run of digits and dots and parses it as a float.
// A malformed numeral such as "12.34.1" does not fail: the token
// carries the value 0.0. Callers wanting stricter handling can re-check
// the raw text with IsValidNumber.
func (l *Lexer) lexNumber(pos, line, column int) Token {
	var sb strings.Builder
	for isDigit(l.ch) || l.ch == '.' {
		sb.WriteByte(l.ch)
		l.readChar()
	}

	raw := sb.String()
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		value = 0
	}

	return Token{
		Type:     TokenNumber,
		Value:    raw,
		Number:   value,
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// skipComment consumes a '#' comment. On return the line terminator is
// the current character, or the lexer is at end-of-input when the
// source ends inside the comment.
func (l *Lexer) skipComment() {
	for {
		l.readChar()
		if l.eof || l.ch == '\n' || l.ch == '\r' {
			return
		}
	}
}

// skipWhitespace skips consecutive ASCII whitespace characters
func (l *Lexer) skipWhitespace() {
	for isSpace(l.ch) {
		l.readChar()
	}
}

// Utility functions

// isLetter checks if the character is an ASCII letter
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if the character is an ASCII digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isSpace checks if the character is ASCII whitespace
func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Keywords map for identifier lookup
var keywords = map[string]TokenType{
	"def":    TokenDef,
	"extern": TokenExtern,
}

// IsKeyword checks if a string is a Frege keyword
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsValidIdentifier checks if a string can appear as an identifier
// token: a plain ASCII identifier that is not a keyword
func IsValidIdentifier(s string) bool {
	return fregestringx.IsIdentifier(s) && !IsKeyword(s)
}

// IsValidNumber checks if a string is a well-formed numeric literal
func IsValidNumber(s string) bool {
	if fregestringx.IsBlank(s) {
		return false
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// TokenizeInput is a convenience function that tokenizes an in-memory
// input completely
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexerFromString(input)
	return lexer.Tokenize()
}
