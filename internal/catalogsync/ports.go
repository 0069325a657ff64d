package catalogsync

import (
	"context"

	"bookvault/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=catalogsync

// Gateway is the remote store of record.
type Gateway interface {
	List(ctx context.Context) ([]book.Book, error)
	Create(ctx context.Context, draft book.Draft) (book.Book, error)
	Remove(ctx context.Context, id string) error
}

// Presenter receives everything the controller wants shown. Render gets a
// copy of the cache; the presenter may keep it.
type Presenter interface {
	SetStatus(msg string)
	SetFormMessage(msg string)
	ResetForm()
	Render(books []book.Book)
	RemoveCard(id string)
	Alert(msg string)
}

// NopPresenter discards all output.
type NopPresenter struct{}

func (NopPresenter) SetStatus(string) {}
func (NopPresenter) SetFormMessage(string) {}
func (NopPresenter) ResetForm() {}
func (NopPresenter) Render([]book.Book) {}
func (NopPresenter) RemoveCard(string) {}
func (NopPresenter) Alert(string) {}
