// Package store persists the on-device snapshot of the book cache.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"bookvault/internal/book"
)

// Slot is the name under which the snapshot is kept.
const Slot = "bookvault_books"

// ErrStoreClosed indicates the store has been closed.
var ErrStoreClosed = errors.New("snapshot store closed")

// Snapshot holds a single serialized copy of the cache.
//
// Read returns found=false when nothing has been written yet. Implementations
// must be safe for concurrent use.
type Snapshot interface {
	Read(ctx context.Context) (books []book.Book, found bool, err error)
	Write(ctx context.Context, books []book.Book) error
	Close() error
}

// PersistenceError reports a failed snapshot read or write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func encode(books []book.Book) ([]byte, error) {
	if books == nil {
		books = []book.Book{}
	}
	return json.Marshal(books)
}

// decode accepts snapshots written with either id field name. Entries that
// have no id are dropped.
func decode(data []byte) ([]book.Book, error) {
	var wires []book.Wire
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, err
	}
	out := make([]book.Book, 0, len(wires))
	for _, w := range wires {
		b, err := book.Normalize(w)
		if err != nil {
			log.Printf("snapshot: dropping entry: %v", err)
			continue
		}
		out = append(out, b)
	}
	return out, nil
}
