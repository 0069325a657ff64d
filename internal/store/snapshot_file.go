package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bookvault/internal/book"
)

// FileSnapshot keeps the snapshot as a JSON file.
type FileSnapshot struct {
	path string
	mu   sync.Mutex
}

func NewFileSnapshot(path string) *FileSnapshot {
	return &FileSnapshot{path: path}
}

// Read implements Snapshot.
func (s *FileSnapshot) Read(_ context.Context) ([]book.Book, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, &PersistenceError{Op: "read", Err: err}
	}

	books, err := decode(data)
	if err != nil {
		return nil, false, &PersistenceError{Op: "read", Err: fmt.Errorf("parsing %s: %w", s.path, err)}
	}
	return books, true, nil
}

// Write implements Snapshot. The file is replaced atomically.
func (s *FileSnapshot) Write(_ context.Context, books []book.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encode(books)
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistenceError{Op: "write", Err: fmt.Errorf("creating directory: %w", err)}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &PersistenceError{Op: "write", Err: fmt.Errorf("writing %s: %w", s.path, err)}
	}
	return nil
}

// Close implements Snapshot.
func (s *FileSnapshot) Close() error { return nil }
