package store

import (
	"context"
	"sync"

	"bookvault/internal/book"
)

// MemorySnapshot is an in-process snapshot for tests.
type MemorySnapshot struct {
	mu     sync.RWMutex
	data   []byte
	closed bool
}

func NewMemorySnapshot() *MemorySnapshot {
	return &MemorySnapshot{}
}

// Read implements Snapshot.
func (m *MemorySnapshot) Read(_ context.Context) ([]book.Book, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, &PersistenceError{Op: "read", Err: ErrStoreClosed}
	}
	if m.data == nil {
		return nil, false, nil
	}
	books, err := decode(m.data)
	if err != nil {
		return nil, false, &PersistenceError{Op: "read", Err: err}
	}
	return books, true, nil
}

// Write implements Snapshot.
func (m *MemorySnapshot) Write(_ context.Context, books []book.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return &PersistenceError{Op: "write", Err: ErrStoreClosed}
	}
	data, err := encode(books)
	if err != nil {
		return &PersistenceError{Op: "write", Err: err}
	}
	m.data = data
	return nil
}

// Raw returns the stored bytes, or nil if nothing was written.
func (m *MemorySnapshot) Raw() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out
}

// Seed stores raw bytes as if written by an earlier session.
func (m *MemorySnapshot) Seed(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
}

// Close implements Snapshot.
func (m *MemorySnapshot) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
