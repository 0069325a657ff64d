package bookstore

import (
	"fmt"
)

// TransportError reports a failure to reach the service or to decode its
// response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError reports a response with a non-success status.
type RemoteError struct {
	Op         string
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s failed: %d", e.Op, e.StatusCode)
}
