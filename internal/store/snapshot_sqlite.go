package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"bookvault/internal/book"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteSnapshot keeps the snapshot in a local SQLite database.
type SQLiteSnapshot struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteSnapshot opens (creating if needed) the database at path.
// ":memory:" is accepted for tests.
func NewSQLiteSnapshot(ctx context.Context, path string) (*SQLiteSnapshot, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if err := migrate(ctx, db, goose.DialectSQLite3, "migrations/sqlite"); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteSnapshot{db: db}, nil
}

// Read implements Snapshot.
func (s *SQLiteSnapshot) Read(ctx context.Context) ([]book.Book, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, false, &PersistenceError{Op: "read", Err: ErrStoreClosed}
	}

	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE slot = ?`, Slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &PersistenceError{Op: "read", Err: err}
	}

	books, err := decode([]byte(data))
	if err != nil {
		return nil, false, &PersistenceError{Op: "read", Err: err}
	}
	return books, true, nil
}

// Write implements Snapshot.
func (s *SQLiteSnapshot) Write(ctx context.Context, books []book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return &PersistenceError{Op: "write", Err: ErrStoreClosed}
	}

	data, err := encode(books)
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, Slot, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// Close implements Snapshot.
func (s *SQLiteSnapshot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
