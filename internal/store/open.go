package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Backend names accepted by Open.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Options selects and configures a snapshot backend.
type Options struct {
	Backend string
	Path    string
	DSN     string
	Timeout time.Duration
}

// Open returns the configured snapshot store. Closing it releases everything
// Open acquired.
func Open(ctx context.Context, opts Options) (Snapshot, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileSnapshot(opts.Path), nil
	case BackendSQLite:
		return NewSQLiteSnapshot(ctx, opts.Path)
	case BackendPostgres:
		return openPG(ctx, opts)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", opts.Backend)
	}
}

type ownedPG struct {
	*SnapshotPG
	pool *pgxpool.Pool
}

func (o *ownedPG) Close() error {
	o.pool.Close()
	return nil
}

func openPG(ctx context.Context, opts Options) (Snapshot, error) {
	pool, err := pgxpool.New(ctx, opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("cannot create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("cannot ping database: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pg, err := NewSnapshotPG(ctx, pool, timeout)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &ownedPG{SnapshotPG: pg, pool: pool}, nil
}
