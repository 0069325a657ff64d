// Package bookstore is the client for the remote books service.
package bookstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookvault/internal/book"
	"bookvault/internal/httpx"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://bookstore-api-six.vercel.app"
	booksPath      = "/api/books"
)

const tracerName = "bookvault/internal/platform/bookstore"

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithTracerProvider records spans with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// NewClient builds a client for baseURL. rps paces outgoing calls; zero or
// less disables pacing. Requests are never retried and carry no timeout
// other than the caller's context.
func NewClient(baseURL, userAgent string, rps int, opts ...Option) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Every(time.Second / time.Duration(rps))
	}
	c := &Client{
		httpClient: &http.Client{
			Transport: httpx.NewTransport(nil),
		},
		userAgent: userAgent,
		baseURL:   strings.TrimRight(baseURL, "/"),
		limiter:   rate.NewLimiter(limit, 1),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// listResponse is the object form of the list body.
type listResponse struct {
	Books []book.Wire `json:"books"`
}

// List fetches every book. The body may be a bare array or an object with a
// "books" array. Entries without an id are skipped.
func (c *Client) List(ctx context.Context) (_ []book.Book, err error) {
	const op = "GET /books"
	ctx, span := c.tracer.Start(ctx, "bookstore.list")
	defer func() { finishSpan(span, err) }()

	var raw json.RawMessage
	if err := c.do(ctx, op, http.MethodGet, booksPath, nil, &raw); err != nil {
		return nil, err
	}

	wires, err := decodeList(raw)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	out := make([]book.Book, 0, len(wires))
	for _, w := range wires {
		b, err := book.Normalize(w)
		if err != nil {
			log.Printf("bookstore: skipping record: %v", err)
			continue
		}
		out = append(out, b)
	}
	span.SetAttributes(attribute.Int("books.count", len(out)))
	return out, nil
}

func decodeList(raw json.RawMessage) ([]book.Wire, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}

	switch trimmed[0] {
	case '[':
		var wires []book.Wire
		if err := json.Unmarshal(trimmed, &wires); err != nil {
			return nil, fmt.Errorf("decode array: %w", err)
		}
		return wires, nil
	case '{':
		var res listResponse
		if err := json.Unmarshal(trimmed, &res); err != nil {
			return nil, fmt.Errorf("decode object: %w", err)
		}
		return res.Books, nil
	default:
		return nil, fmt.Errorf("unexpected list body starting with %q", trimmed[0])
	}
}

// Create posts a new book and returns the record the service stored.
func (c *Client) Create(ctx context.Context, draft book.Draft) (_ book.Book, err error) {
	const op = "POST /books"
	ctx, span := c.tracer.Start(ctx, "bookstore.create")
	defer func() { finishSpan(span, err) }()

	var w book.Wire
	if err := c.do(ctx, op, http.MethodPost, booksPath, draft.Trimmed(), &w); err != nil {
		return book.Book{}, err
	}

	created, err := book.Normalize(w)
	if err != nil {
		return book.Book{}, &TransportError{Op: op, Err: err}
	}
	span.SetAttributes(attribute.String("book.id", created.ID))
	return created, nil
}

// Remove deletes the book with the given id.
func (c *Client) Remove(ctx context.Context, id string) (err error) {
	const op = "DELETE /books"
	ctx, span := c.tracer.Start(ctx, "bookstore.remove", trace.WithAttributes(attribute.String("book.id", id)))
	defer func() { finishSpan(span, err) }()

	return c.do(ctx, op, http.MethodDelete, booksPath+"/"+url.PathEscape(id), nil, nil)
}

// do performs one round trip. A nil target discards the response body.
func (c *Client) do(ctx context.Context, op, method, path string, body any, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: op, Err: err}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RemoteError{Op: op, StatusCode: resp.StatusCode}
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
