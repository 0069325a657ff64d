// Package catalog holds the in-memory working set of books.
package catalog

import (
	"sync"

	"bookvault/internal/book"
)

// Cache is an ordered set of books keyed by canonical id. The first element
// is the most recently added. No operation fails; callers validate first.
type Cache struct {
	mu    sync.RWMutex
	books []book.Book
}

func NewCache() *Cache {
	return &Cache{}
}

// ReplaceAll discards the current contents and installs books in order.
// Later duplicates of an id are dropped.
func (c *Cache) ReplaceAll(books []book.Book) {
	seen := make(map[string]bool, len(books))
	out := make([]book.Book, 0, len(books))
	for _, b := range books {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		out = append(out, b.Clone())
	}

	c.mu.Lock()
	c.books = out
	c.mu.Unlock()
}

// Prepend puts b at the front. An existing book with the same id is removed
// so the id stays unique.
func (c *Cache) Prepend(b book.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]book.Book, 0, len(c.books)+1)
	out = append(out, b.Clone())
	for _, existing := range c.books {
		if existing.ID != b.ID {
			out = append(out, existing)
		}
	}
	c.books = out
}

// RemoveByID drops the book with the given id. It reports whether one was found.
func (c *Cache) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, b := range c.books {
		if b.ID == id {
			c.books = append(c.books[:i:i], c.books[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy of the contents. Mutating it does not affect
// the cache.
func (c *Cache) Snapshot() []book.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]book.Book, len(c.books))
	for i, b := range c.books {
		out[i] = b.Clone()
	}
	return out
}

// Len returns the number of cached books.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}

// Contains reports whether a book with the id is cached.
func (c *Cache) Contains(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, b := range c.books {
		if b.ID == id {
			return true
		}
	}
	return false
}
