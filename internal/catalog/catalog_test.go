package catalog

import (
	"testing"

	"bookvault/internal/book"

	"github.com/stretchr/testify/assert"
)

func ids(books []book.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestCache_ReplaceAll(t *testing.T) {
	c := NewCache()
	c.Prepend(book.Book{ID: "old"})

	c.ReplaceAll([]book.Book{{ID: "3"}, {ID: "1"}, {ID: "3", Title: "dup"}, {ID: "2"}})

	assert.Equal(t, []string{"3", "1", "2"}, ids(c.Snapshot()))
	assert.Empty(t, c.Snapshot()[0].Title, "first occurrence wins")
	assert.False(t, c.Contains("old"))
}

func TestCache_Prepend(t *testing.T) {
	c := NewCache()
	c.ReplaceAll([]book.Book{{ID: "1"}, {ID: "2"}})

	t.Run("new id goes first", func(t *testing.T) {
		c.Prepend(book.Book{ID: "9"})
		assert.Equal(t, []string{"9", "1", "2"}, ids(c.Snapshot()))
	})

	t.Run("existing id moves to front", func(t *testing.T) {
		c.Prepend(book.Book{ID: "2", Title: "updated"})
		snap := c.Snapshot()
		assert.Equal(t, []string{"2", "9", "1"}, ids(snap))
		assert.Equal(t, "updated", snap[0].Title)
	})
}

func TestCache_RemoveByID(t *testing.T) {
	c := NewCache()
	c.ReplaceAll([]book.Book{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	assert.True(t, c.RemoveByID("2"))
	assert.Equal(t, []string{"1", "3"}, ids(c.Snapshot()))

	assert.False(t, c.RemoveByID("missing"))
	assert.Equal(t, 2, c.Len())
}

func TestCache_SnapshotIsACopy(t *testing.T) {
	c := NewCache()
	c.ReplaceAll([]book.Book{{ID: "1", Title: "Dune"}})

	snap := c.Snapshot()
	snap[0].Title = "changed"

	assert.Equal(t, "Dune", c.Snapshot()[0].Title)
}

func TestCache_YearIsNotShared(t *testing.T) {
	year := 1965
	c := NewCache()
	c.ReplaceAll([]book.Book{{ID: "1", Year: &year}})

	*c.Snapshot()[0].Year = 1
	assert.Equal(t, 1965, *c.Snapshot()[0].Year)

	year = 2
	assert.Equal(t, 1965, *c.Snapshot()[0].Year, "input slice is copied on the way in")

	added := 1815
	c.Prepend(book.Book{ID: "2", Year: &added})
	added = 0
	assert.Equal(t, 1815, *c.Snapshot()[0].Year)
}

func TestCache_RemoveDoesNotAliasSnapshot(t *testing.T) {
	c := NewCache()
	c.ReplaceAll([]book.Book{{ID: "1"}, {ID: "2"}, {ID: "3"}})
	before := c.Snapshot()

	c.RemoveByID("1")

	assert.Equal(t, []string{"1", "2", "3"}, ids(before))
	assert.Equal(t, []string{"2", "3"}, ids(c.Snapshot()))
}
