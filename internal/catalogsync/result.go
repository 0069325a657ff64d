package catalogsync

import (
	"errors"

	"bookvault/internal/book"
	"bookvault/internal/platform/bookstore"
	"bookvault/internal/store"
)

type Op string

const (
	OpRestore Op = "restore"
	OpLoad    Op = "load"
	OpInsert  Op = "insert"
	OpDelete  Op = "delete"
)

type Source string

const (
	SourceServer Source = "server"
	SourceDevice Source = "device"
)

// Result describes the outcome of one controller operation. Err is nil on
// success. PersistErr is set when the snapshot could not be saved; the
// operation still succeeded.
type Result struct {
	Op         Op
	Message    string
	Count      int
	Source     Source
	Book       *book.Book
	Skipped    bool
	Err        error
	PersistErr error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Kind classifies a failure.
type Kind string

const (
	KindNone        Kind = ""
	KindValidation  Kind = "validation"
	KindTransport   Kind = "transport"
	KindRemote      Kind = "remote"
	KindPersistence Kind = "persistence"
	KindUnknown     Kind = "unknown"
)

// KindOf maps err onto the failure taxonomy.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		validationErr  *book.ValidationError
		transportErr   *bookstore.TransportError
		remoteErr      *bookstore.RemoteError
		persistenceErr *store.PersistenceError
	)
	switch {
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &remoteErr):
		return KindRemote
	case errors.As(err, &transportErr):
		return KindTransport
	case errors.As(err, &persistenceErr):
		return KindPersistence
	default:
		return KindUnknown
	}
}
