// Package store persists the history of operations run through the sandbox CLI.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"sandbox/internal/logging"
)

// Kind classifies a history record.
type Kind string

const (
	KindSort       Kind = "sort"
	KindCalc       Kind = "calc"
	KindAccumulate Kind = "accumulate"
)

// Record is one evaluated operation.
type Record struct {
	ID        string
	Kind      Kind
	Input     string
	Output    string
	Error     string
	CreatedAt time.Time
}

// Store manages the history database.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// Open creates or opens the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Get(logging.CategoryStore).Debug("history store opened", zap.String("path", dbPath))
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);
	CREATE INDEX IF NOT EXISTS idx_history_kind ON history(kind);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add inserts r, assigning an ID and timestamp when they are empty.
func (s *Store) Add(ctx context.Context, r Record) (Record, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, kind, input, output, error, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, string(r.Kind), r.Input, r.Output, r.Error, r.CreatedAt.UnixNano())
	if err != nil {
		return Record{}, fmt.Errorf("failed to insert history record: %w", err)
	}
	return r, nil
}

// Recent returns up to limit records, newest first. limit <= 0 returns all.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, kind, input, output, error, created_at FROM history ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r    Record
			kind string
			ts   int64
		)
		if err := rows.Scan(&r.ID, &kind, &r.Input, &r.Output, &r.Error, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		r.Kind = Kind(kind)
		r.CreatedAt = time.Unix(0, ts)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return n, nil
}

// Clear deletes every record and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}
