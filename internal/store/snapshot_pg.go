package store

import (
	"context"
	"errors"
	"time"

	"bookvault/internal/book"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// SnapshotPG keeps the snapshot in Postgres, for kiosks and shared devices
// that already run a local database.
type SnapshotPG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewSnapshotPG migrates the schema and returns a store backed by db.
func NewSnapshotPG(ctx context.Context, db *pgxpool.Pool, timeout time.Duration) (*SnapshotPG, error) {
	sqlDB := stdlib.OpenDBFromPool(db)
	defer sqlDB.Close()

	if err := migrate(ctx, sqlDB, goose.DialectPostgres, "migrations/postgres"); err != nil {
		return nil, err
	}
	return &SnapshotPG{db: db, timeout: timeout}, nil
}

func (r *SnapshotPG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Read implements Snapshot.
func (r *SnapshotPG) Read(ctx context.Context) ([]book.Book, bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var data []byte
	err := r.db.QueryRow(timeoutCtx, `SELECT data FROM snapshots WHERE slot = $1`, Slot).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &PersistenceError{Op: "read", Err: err}
	}

	books, err := decode(data)
	if err != nil {
		return nil, false, &PersistenceError{Op: "read", Err: err}
	}
	return books, true, nil
}

// Write implements Snapshot.
func (r *SnapshotPG) Write(ctx context.Context, books []book.Book) error {
	data, err := encode(books)
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}

	const sql = `
		INSERT INTO snapshots (slot, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, sql, Slot, data); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	return nil
}

// Close implements Snapshot. The pool is owned by the caller.
func (r *SnapshotPG) Close() error { return nil }
