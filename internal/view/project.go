// Package view turns the cached books into something a terminal can show.
package view

import (
	"strconv"

	"bookvault/internal/book"
)

const (
	EmptyMessage    = "No books yet. Be the first to add one!"
	untitled        = "Untitled"
	unknownAuthor   = "Unknown"
	noImage         = "No Image"
	bylineSeparator = " • "
)

// Card is the display form of one book. ID is the key used to delete it.
type Card struct {
	ID          string
	Title       string
	Byline      string
	Image       string
	HasImage    bool
	Description string
}

// Projection is the full display for a cache snapshot.
type Projection struct {
	Cards []Card
	Empty string
}

// Project maps books to cards in order. It depends only on its input.
func Project(books []book.Book) Projection {
	if len(books) == 0 {
		return Projection{Empty: EmptyMessage}
	}

	cards := make([]Card, len(books))
	for i, b := range books {
		cards[i] = cardFor(b)
	}
	return Projection{Cards: cards}
}

func cardFor(b book.Book) Card {
	c := Card{
		ID:          b.ID,
		Title:       b.Title,
		Byline:      b.Author,
		Image:       b.ImageURL,
		HasImage:    b.ImageURL != "",
		Description: b.Description,
	}
	if c.Title == "" {
		c.Title = untitled
	}
	if c.Byline == "" {
		c.Byline = unknownAuthor
	}
	if b.Year != nil && *b.Year != 0 {
		c.Byline += bylineSeparator + strconv.Itoa(*b.Year)
	}
	if !c.HasImage {
		c.Image = noImage
	}
	return c
}

// Without returns a copy of p minus the card with the given id.
func (p Projection) Without(id string) Projection {
	out := make([]Card, 0, len(p.Cards))
	for _, c := range p.Cards {
		if c.ID != id {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return Projection{Empty: EmptyMessage}
	}
	return Projection{Cards: out}
}
