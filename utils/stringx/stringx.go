// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string operations the Frege
//              front end needs beyond the standard library: interning for
//              repeated identifiers, blank checks for validation, and
//              Unicode-safe truncation for diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// internLimit bounds the intern pool; source files with pathological
// identifier counts must not grow memory without bound.
const internLimit = 4096

var (
	internMu   sync.Mutex
	internPool = make(map[string]string, 64)
)

// Intern returns a canonical copy of s. Identifiers in source code repeat
// heavily (parameter names, callee names), so sharing one backing string
// per distinct name keeps AST memory small.
func Intern(s string) string {
	if s == "" {
		return ""
	}

	internMu.Lock()
	defer internMu.Unlock()

	if v, ok := internPool[s]; ok {
		return v
	}
	if len(internPool) >= internLimit {
		internPool = make(map[string]string, 64)
	}
	v := strings.Clone(s)
	internPool[v] = v
	return v
}

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string has length > 0.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank returns true if the string is empty or consists entirely of
// whitespace. Runs without allocating.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one
// non-whitespace character.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsIdentifier returns true if s is a plain ASCII identifier: a letter
// followed by any mix of letters and digits. Underscores are not part of
// the identifier alphabet.
func IsIdentifier(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
			// letters are valid anywhere
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxLen runes, appending ellipsis when
// anything was cut. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}
