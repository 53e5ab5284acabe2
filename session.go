// File: session.go
// Title: Frege Interactive Parsing Session
// Description: Provides an incremental, item-at-a-time parsing session
//              over a streaming source. Sessions drive the parser the
//              way a REPL does: one top-level item per call, parse
//              failures surfaced per item, io.EOF at exhaustion.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial session implementation

package frege

import (
	"errors"
	"io"

	"github.com/google/uuid"

	fregeerror "github.com/msto63/frege/core/error"
	fregelog "github.com/msto63/frege/core/log"
	fregeparser "github.com/msto63/frege/parser"
)

// Session parses one source incrementally. Unlike Engine.Parse, which
// drains a source into a Program, a session hands out one top-level
// item per Next call, so interactive front ends can react between
// items. A session is not safe for concurrent use.
type Session struct {
	id      string
	engine  *Engine
	parser  *fregeparser.Parser
	logger  *fregelog.Logger
	started bool
	stats   SessionStats
}

// SessionStats counts what a session has processed so far
type SessionStats struct {
	Items  int
	Errors int
}

// NewSession creates an incremental parsing session reading from r.
// The source is consumed lazily: nothing is read until the first Next
// call, so interactive inputs work naturally.
func (e *Engine) NewSession(r io.Reader) *Session {
	id := uuid.NewString()

	s := &Session{
		id:     id,
		engine: e,
		parser: fregeparser.New(r, e.parserOptions()),
		logger: e.logger.WithFields(fregelog.Fields{
			"component": "frege-session",
			"session":   id,
		}),
	}

	s.logger.Debug("session created")
	return s
}

// ID returns the unique identifier of the session
func (s *Session) ID() string {
	return s.id
}

// Stats returns the running item and error counts of the session
func (s *Session) Stats() SessionStats {
	return s.stats
}

// Next parses and returns the next top-level item. Semicolons between
// items are skipped. At the end of the source Next returns io.EOF.
//
// A parse failure is returned as a classified error for that item
// only; the session discards one token and stays usable, so callers
// keep calling Next until io.EOF. Use IsIncomplete to distinguish
// input that merely ended too early. When the source itself fails,
// every subsequent Next returns that read error instead of io.EOF.
func (s *Session) Next() (Item, error) {
	if !s.started {
		s.parser.Advance()
		s.started = true
	}

	for {
		tok := s.parser.Current()

		if tok.Type == fregeparser.TokenEOF {
			if err := s.parser.Err(); err != nil {
				return Item{}, fregeerror.Wrap(err, "reading source failed").
					WithCode(fregeerror.CodeInternal).
					WithOperation("read").
					WithRequestID(s.id)
			}
			return Item{}, io.EOF
		}

		if tok.Is(';') {
			s.parser.Advance()
			continue
		}

		item, err := parseItem(s.parser)
		if err != nil {
			s.stats.Errors++
			s.parser.Advance() // discard the offending token
			return Item{}, s.engine.wrapParseError(err)
		}

		s.stats.Items++
		s.logger.Debug("session item parsed", fregelog.Fields{
			"kind": item.Kind.String(),
			"name": item.Name(),
			"pos":  item.Pos().String(),
		})
		return item, nil
	}
}

// Drain parses all remaining items into a program, collecting item
// errors the way Engine.Parse does
func (s *Session) Drain() (*Program, error) {
	program := &Program{}

	for {
		item, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			program.Errors = append(program.Errors, err)
			if s.Err() != nil {
				break // the source is dead, nothing more can arrive
			}
			continue
		}
		program.Items = append(program.Items, item)
	}

	return program, errors.Join(program.Errors...)
}

// Err exposes read failures on the underlying source
func (s *Session) Err() error {
	return s.parser.Err()
}
