// ============================================================================
// Frege - Language Front End
// ============================================================================
//
// Package:     workbench
// Description: Message types for async operations in the workbench
// Author:      msto63 with Claude
// Created:     2025-08-21
// License:     MIT
// ============================================================================

package workbench

import (
	"time"

	"github.com/msto63/frege/internal/history"
)

// ItemResult describes one successfully parsed item
type ItemResult struct {
	Kind     string // definition, extern, expression
	Name     string // declared name, empty for expressions
	Rendered string // canonical rendering of the item
	Line     int
	Column   int
}

// ResultEntry represents one submitted input and its outcome
type ResultEntry struct {
	Source    string        // the submitted source text
	Items     []ItemResult  // items parsed out of the source
	Errors    []string      // error messages, one per failed item
	System    string        // when set, the entry is a plain notice
	Timestamp time.Time     // when the input was submitted
	Duration  time.Duration // how long parsing took
}

// Message types for tea.Cmd async operations

// historyLoadedMsg is sent when earlier results are loaded from the store
type historyLoadedMsg struct {
	entries []*history.Entry
	err     error
}

// historySavedMsg is sent when results have been written to the store
type historySavedMsg struct {
	err error
}

// statsMsg is sent when store statistics are loaded
type statsMsg struct {
	stats map[string]interface{}
	err   error
}
