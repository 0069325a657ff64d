// Package catalogsync keeps the in-memory catalog, the on-device snapshot and
// the remote store consistent across load, insert and delete.
package catalogsync

import (
	"context"
	"fmt"
	"log"
	"sync"

	"bookvault/internal/book"
	"bookvault/internal/catalog"
	"bookvault/internal/store"
)

const (
	msgLoading       = "Loading books…"
	msgLoadFailed    = "Failed to load books."
	msgMissingFields = "Please provide both Title and Author."
	msgAdding        = "Adding book…"
	msgAdded         = "Book added!"
	msgAddFailed     = "Failed to add book."
	msgDeleted       = "Book deleted."
	msgDeleteFailed  = "Failed to delete book."
)

// Controller is the only writer of the cache and the snapshot. Operations
// hold a single lock from the remote call through the snapshot write, so
// overlapping calls complete one after another.
type Controller struct {
	mu        sync.Mutex
	gateway   Gateway
	snapshot  store.Snapshot
	presenter Presenter
	cache     *catalog.Cache
	restored  bool
}

// New builds a controller with an empty cache. A nil presenter discards output.
func New(gateway Gateway, snapshot store.Snapshot, presenter Presenter) *Controller {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	return &Controller{
		gateway:   gateway,
		snapshot:  snapshot,
		presenter: presenter,
		cache:     catalog.NewCache(),
	}
}

// Books returns a copy of the cache in display order.
func (c *Controller) Books() []book.Book {
	return c.cache.Snapshot()
}

// Len returns the number of cached books.
func (c *Controller) Len() int {
	return c.cache.Len()
}

// Restore installs the persisted snapshot, if any, without contacting the
// remote store. Only the first call reads the snapshot. An unreadable
// snapshot is logged and treated as absent.
func (c *Controller) Restore(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Result{Op: OpRestore, Source: SourceDevice}
	if c.restored {
		res.Skipped = true
		res.Count = c.cache.Len()
		return res
	}
	c.restored = true

	books, found, err := c.snapshot.Read(ctx)
	if err != nil {
		log.Printf("catalogsync: failed to read snapshot: %v", err)
		res.PersistErr = err
		res.Skipped = true
		return res
	}
	if !found {
		res.Skipped = true
		return res
	}

	c.cache.ReplaceAll(books)
	res.Count = c.cache.Len()
	res.Message = fmt.Sprintf("Loaded %d book(s) from your device.", res.Count)
	c.presenter.Render(c.cache.Snapshot())
	c.presenter.SetStatus(res.Message)
	return res
}

// EnterMain loads from the remote store only when the cache is empty.
func (c *Controller) EnterMain(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n := c.cache.Len(); n > 0 {
		return Result{Op: OpLoad, Source: SourceDevice, Count: n, Skipped: true}
	}
	return c.load(ctx)
}

// Load replaces the cache with the remote list. On failure the cache and
// snapshot are left as they were.
func (c *Controller) Load(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Controller) load(ctx context.Context) Result {
	res := Result{Op: OpLoad, Source: SourceServer}
	c.presenter.SetStatus(msgLoading)

	books, err := c.gateway.List(ctx)
	if err != nil {
		log.Printf("catalogsync: load failed: %v", err)
		res.Err = err
		res.Message = msgLoadFailed
		res.Count = c.cache.Len()
		c.presenter.SetStatus(res.Message)
		return res
	}

	c.cache.ReplaceAll(books)
	res.PersistErr = c.persist(ctx)
	res.Count = c.cache.Len()
	res.Message = fmt.Sprintf("Loaded %d book(s) from the server.", res.Count)
	c.presenter.Render(c.cache.Snapshot())
	c.presenter.SetStatus(res.Message)
	return res
}

// Insert validates draft, creates it remotely and puts the stored record at
// the front of the cache. The record returned by the server is used as is.
func (c *Controller) Insert(ctx context.Context, draft book.Draft) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Result{Op: OpInsert, Source: SourceServer}
	draft = draft.Trimmed()
	if err := draft.Validate(); err != nil {
		res.Err = err
		res.Message = msgMissingFields
		res.Count = c.cache.Len()
		c.presenter.SetFormMessage(res.Message)
		return res
	}

	c.presenter.SetFormMessage(msgAdding)
	created, err := c.gateway.Create(ctx, draft)
	if err != nil {
		log.Printf("catalogsync: insert %q failed: %v", draft.Title, err)
		res.Err = err
		res.Message = msgAddFailed
		res.Count = c.cache.Len()
		c.presenter.SetFormMessage(res.Message)
		return res
	}

	c.cache.Prepend(created)
	res.PersistErr = c.persist(ctx)
	res.Book = &created
	res.Count = c.cache.Len()
	res.Message = msgAdded
	c.presenter.Render(c.cache.Snapshot())
	c.presenter.SetFormMessage(res.Message)
	c.presenter.ResetForm()
	return res
}

// Delete removes the book remotely and then locally. The caller is expected
// to have confirmed the deletion. Failures are reported through Alert before
// Delete returns.
func (c *Controller) Delete(ctx context.Context, id string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Result{Op: OpDelete, Source: SourceServer}
	if id == "" {
		res.Err = &book.ValidationError{Fields: []string{"id"}}
		res.Count = c.cache.Len()
		return res
	}

	if err := c.gateway.Remove(ctx, id); err != nil {
		log.Printf("catalogsync: delete %s failed: %v", id, err)
		res.Err = err
		res.Message = msgDeleteFailed
		res.Count = c.cache.Len()
		c.presenter.Alert(res.Message)
		return res
	}

	c.cache.RemoveByID(id)
	res.PersistErr = c.persist(ctx)
	res.Count = c.cache.Len()
	res.Message = msgDeleted
	c.presenter.RemoveCard(id)
	c.presenter.SetStatus(res.Message)
	return res
}

// persist writes the cache to the snapshot. Failures are logged and returned
// for the Result but never undo the mutation.
func (c *Controller) persist(ctx context.Context) error {
	if err := c.snapshot.Write(ctx, c.cache.Snapshot()); err != nil {
		log.Printf("catalogsync: failed to save snapshot: %v", err)
		return err
	}
	return nil
}
