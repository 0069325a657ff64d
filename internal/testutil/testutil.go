// Package testutil provides an in-process stand-in for the remote books
// service.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// BookServer serves /api/books from memory. Records are stored as raw JSON
// objects so tests can use either id field name.
type BookServer struct {
	*httptest.Server

	mu       sync.Mutex
	books    []map[string]any
	nextID   int
	requests map[string]int

	wrapList   bool
	failStatus map[string]int
}

// NewBookServer starts a server seeded with books and closes it at test end.
func NewBookServer(t testing.TB, books ...map[string]any) *BookServer {
	t.Helper()
	s := &BookServer{
		books:      books,
		nextID:     100,
		requests:   make(map[string]int),
		failStatus: make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Fail makes every request with method answer status. Zero restores normal
// handling.
func (s *BookServer) Fail(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus[method] = status
}

// WrapList makes GET answer {"books": [...]} instead of a bare array.
func (s *BookServer) WrapList(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wrapList = on
}

// Requests returns how many requests were made with method.
func (s *BookServer) Requests(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method]
}

// Len returns the number of stored books.
func (s *BookServer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.books)
}

func (s *BookServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests[r.Method]++
	if code := s.failStatus[r.Method]; code != 0 {
		w.WriteHeader(code)
		return
	}

	const prefix = "/api/books"
	switch {
	case r.Method == http.MethodGet && r.URL.Path == prefix:
		var body any = s.books
		if s.books == nil {
			body = []any{}
		}
		if s.wrapList {
			body = map[string]any{"books": body}
		}
		writeJSON(w, http.StatusOK, body)

	case r.Method == http.MethodPost && r.URL.Path == prefix:
		var in map[string]any
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.nextID++
		in["_id"] = strconv.Itoa(s.nextID)
		s.books = append([]map[string]any{in}, s.books...)
		writeJSON(w, http.StatusCreated, in)

	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, prefix+"/"):
		id := strings.TrimPrefix(r.URL.Path, prefix+"/")
		for i, b := range s.books {
			if b["id"] == id || b["_id"] == id {
				s.books = append(s.books[:i], s.books[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
