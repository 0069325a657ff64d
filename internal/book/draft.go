package book

import (
	"strings"
)

// Draft is the user-supplied input for creating a book.
// Blank optional fields are omitted from the request body.
type Draft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Year        *int   `json:"year,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Description string `json:"description,omitempty"`
}

// ValidationError reports required draft fields that are blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Trimmed returns a copy of d with surrounding whitespace removed.
func (d Draft) Trimmed() Draft {
	return Draft{
		Title:       strings.TrimSpace(d.Title),
		Author:      strings.TrimSpace(d.Author),
		Year:        d.Year,
		ImageURL:    strings.TrimSpace(d.ImageURL),
		Description: strings.TrimSpace(d.Description),
	}
}

// Validate checks that title and author are present after trimming.
func (d Draft) Validate() error {
	t := d.Trimmed()
	var missing []string
	if t.Title == "" {
		missing = append(missing, "title")
	}
	if t.Author == "" {
		missing = append(missing, "author")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
