package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry represents one parsed input in the history
type Entry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Source    string    `json:"source"`
	Kind      string    `json:"kind"` // definition, extern, expression
	Name      string    `json:"name,omitempty"`
	Rendered  string    `json:"rendered,omitempty"`
	Valid     bool      `json:"valid"`
	ErrorText string    `json:"error_text,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the interface for parse history persistence
type Store interface {
	// Append records one entry and fills in its ID
	Append(ctx context.Context, entry *Entry) error

	// List returns entries newest first
	List(ctx context.Context, limit, offset int) ([]*Entry, error)

	// BySession returns the last entries of one session in
	// chronological order
	BySession(ctx context.Context, sessionID string, limit int) ([]*Entry, error)

	// Search returns entries whose source contains the term, newest
	// first. Matching is case-insensitive for ASCII.
	Search(ctx context.Context, term string, limit int) ([]*Entry, error)

	// Prune removes all but the newest keep entries and reports how
	// many were removed
	Prune(ctx context.Context, keep int) (int64, error)

	// Utility
	Close() error
	Statistics(ctx context.Context) (map[string]interface{}, error)
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/history.db",
	}
}

// NewSQLiteStore creates a new SQLite-based history store
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- History table
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		source TEXT NOT NULL,
		kind TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		rendered TEXT NOT NULL DEFAULT '',
		valid INTEGER NOT NULL DEFAULT 1,
		error_text TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Indices
	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_kind ON history(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Append records one entry
func (s *SQLiteStore) Append(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.SessionID == "" {
		return fmt.Errorf("session ID is required")
	}
	if entry.Source == "" {
		return fmt.Errorf("source is required")
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO history (session_id, source, kind, name, rendered, valid, error_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.SessionID, entry.Source, entry.Kind, entry.Name, entry.Rendered, entry.Valid, entry.ErrorText, entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to append entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read entry ID: %w", err)
	}
	entry.ID = id

	return nil
}

// List returns entries newest first
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, source, kind, name, rendered, valid, error_text, created_at
		FROM history
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// BySession returns the last entries of one session in chronological
// order
func (s *SQLiteStore) BySession(ctx context.Context, sessionID string, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var query string
	var args []interface{}

	if limit > 0 {
		// Get last N entries
		query = `
			SELECT id, session_id, source, kind, name, rendered, valid, error_text, created_at
			FROM history
			WHERE session_id = ?
			ORDER BY id DESC
			LIMIT ?
		`
		args = []interface{}{sessionID, limit}
	} else {
		// Get all entries
		query = `
			SELECT id, session_id, source, kind, name, rendered, valid, error_text, created_at
			FROM history
			WHERE session_id = ?
			ORDER BY id ASC
		`
		args = []interface{}{sessionID}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get session entries: %w", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}

	// Reverse if we used DESC order
	if limit > 0 && len(entries) > 1 {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}

	return entries, nil
}

// Search returns entries whose source contains the term
func (s *SQLiteStore) Search(ctx context.Context, term string, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, source, kind, name, rendered, valid, error_text, created_at
		FROM history
		WHERE source LIKE '%' || ? || '%'
		ORDER BY id DESC
		LIMIT ?
	`, term, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Prune removes all but the newest keep entries
func (s *SQLiteStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative")
	}

	result, err := s.db.ExecContext(ctx, `
		DELETE FROM history
		WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune history: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned entries: %w", err)
	}

	return removed, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Statistics returns store statistics
func (s *SQLiteStore) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	// Total entries
	var total int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&total)
	stats["total_entries"] = total

	// Distinct sessions
	var sessions int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT session_id) FROM history`).Scan(&sessions)
	stats["total_sessions"] = sessions

	// Failed entries
	var failed int64
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history WHERE valid = 0`).Scan(&failed)
	stats["failed_entries"] = failed

	// Entries per kind
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM history GROUP BY kind`)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var kind string
			var count int64
			if err := rows.Scan(&kind, &count); err == nil {
				stats["kind_"+kind] = count
			}
		}
	}

	return stats, nil
}

// scanEntries reads all rows into entries
func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.Source, &entry.Kind, &entry.Name,
			&entry.Rendered, &entry.Valid, &entry.ErrorText, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	return entries, nil
}

// MemoryStore is an in-memory implementation for testing
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
	nextID  int64
}

// NewMemoryStore creates a new in-memory history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Append records one entry
func (s *MemoryStore) Append(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.SessionID == "" {
		return fmt.Errorf("session ID is required")
	}
	if entry.Source == "" {
		return fmt.Errorf("source is required")
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	entry.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, entry)
	return nil
}

// List returns entries newest first
func (s *MemoryStore) List(ctx context.Context, limit, offset int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	var result []*Entry
	for i := len(s.entries) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.entries[i])
	}
	return result, nil
}

// BySession returns the last entries of one session in chronological
// order
func (s *MemoryStore) BySession(ctx context.Context, sessionID string, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*Entry
	for _, entry := range s.entries {
		if entry.SessionID == sessionID {
			matched = append(matched, entry)
		}
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched, nil
}

// Search returns entries whose source contains the term
func (s *MemoryStore) Search(ctx context.Context, term string, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	term = strings.ToLower(term)

	var result []*Entry
	for i := len(s.entries) - 1; i >= 0 && len(result) < limit; i-- {
		if strings.Contains(strings.ToLower(s.entries[i].Source), term) {
			result = append(result, s.entries[i])
		}
	}
	return result, nil
}

// Prune removes all but the newest keep entries
func (s *MemoryStore) Prune(ctx context.Context, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative")
	}

	if keep >= len(s.entries) {
		return 0, nil
	}

	removed := int64(len(s.entries) - keep)
	s.entries = s.entries[len(s.entries)-keep:]
	return removed, nil
}

// Close is a no-op for memory store
func (s *MemoryStore) Close() error {
	return nil
}

// Statistics returns store statistics
func (s *MemoryStore) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make(map[string]struct{})
	var failed int64
	for _, entry := range s.entries {
		sessions[entry.SessionID] = struct{}{}
		if !entry.Valid {
			failed++
		}
	}

	return map[string]interface{}{
		"total_entries":  int64(len(s.entries)),
		"total_sessions": int64(len(sessions)),
		"failed_entries": failed,
	}, nil
}
