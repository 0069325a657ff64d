package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingID is returned when a record carries neither "id" nor "_id".
var ErrMissingID = errors.New("book has no id")

// Book is one catalog entry with its canonical id.
type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        *int   `json:"year,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// Clone returns a copy of b that shares no memory with it.
func (b Book) Clone() Book {
	if b.Year != nil {
		year := *b.Year
		b.Year = &year
	}
	return b
}

// WireID is an identifier as sent by the remote service: a JSON string or
// number. Any other JSON value decodes to the empty id.
type WireID string

func (id *WireID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = WireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*id = WireID(n.String())
		return nil
	}
	*id = ""
	return nil
}

// Wire is a book as the remote service delivers it. The identifier arrives
// under either "id" or "_id" and must go through Normalize before use.
type Wire struct {
	ID          WireID          `json:"id"`
	LegacyID    WireID          `json:"_id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Year        json.RawMessage `json:"year,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Description string          `json:"description,omitempty"`
}

// Normalize maps a wire record to a Book, resolving the id field.
// "id" wins over "_id" when both are present.
func Normalize(w Wire) (Book, error) {
	id := strings.TrimSpace(string(w.ID))
	if id == "" {
		id = strings.TrimSpace(string(w.LegacyID))
	}
	if id == "" {
		return Book{}, fmt.Errorf("normalize %q: %w", w.Title, ErrMissingID)
	}
	return Book{
		ID:          id,
		Title:       w.Title,
		Author:      w.Author,
		Year:        parseYear(w.Year),
		ImageURL:    w.ImageURL,
		Description: w.Description,
	}, nil
}

// parseYear accepts a JSON number or a numeric string holding a whole number.
// Anything else, including fractions and values outside the int32 range, is
// treated as absent.
func parseYear(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		n = json.Number(strings.TrimSpace(s))
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return nil
		}
		v = int(f)
	} else if v > math.MaxInt32 || v < math.MinInt32 {
		return nil
	}
	return &v
}
