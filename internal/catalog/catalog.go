// Package catalog holds the in-memory book catalog and its flat-file persistence.
package catalog

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/jgoulah/homedash/pkg/models"
)

var (
	// ErrEmptyCatalog is returned by queries against a catalog with no books
	ErrEmptyCatalog = errors.New("no books available")

	// ErrBookNotFound is returned when no book matches a search key or ISBN
	ErrBookNotFound = errors.New("book not found")
)

// Catalog is an insertion-ordered collection of books. ISBNs are not required
// to be unique.
type Catalog struct {
	books []models.Book
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{}
}

// Len returns the number of books
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns a copy of the books in catalog order
func (c *Catalog) Books() []models.Book {
	out := make([]models.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Add appends a book without checking for an existing ISBN
func (c *Catalog) Add(book models.Book) {
	c.books = append(c.books, book)
}

// Replace swaps the whole catalog contents for books
func (c *Catalog) Replace(books []models.Book) {
	c.books = make([]models.Book, len(books))
	copy(c.books, books)
}

// Search returns every book whose title equals key ignoring case, or whose
// ISBN equals key exactly, in catalog order
func (c *Catalog) Search(key string) ([]models.Book, error) {
	if len(c.books) == 0 {
		return nil, ErrEmptyCatalog
	}

	var found []models.Book
	for _, b := range c.books {
		if strings.EqualFold(b.Title, key) || b.ISBN == key {
			found = append(found, b)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBookNotFound, key)
	}
	return found, nil
}

// Remove deletes the first book with the given ISBN and returns it
func (c *Catalog) Remove(isbn string) (models.Book, error) {
	if len(c.books) == 0 {
		return models.Book{}, ErrEmptyCatalog
	}

	for i, b := range c.books {
		if b.ISBN == isbn {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return b, nil
		}
	}
	return models.Book{}, fmt.Errorf("%w: isbn %q", ErrBookNotFound, isbn)
}

// Header is the column heading line for Display
var Header = fmt.Sprintf("%-30s %-20s %-15s %-10s", "Title", "Author", "ISBN", "Status")

// Display returns the header, a separator and one formatted row per book
func (c *Catalog) Display() (iter.Seq[string], error) {
	if len(c.books) == 0 {
		return nil, ErrEmptyCatalog
	}

	books := c.Books()
	return func(yield func(string) bool) {
		if !yield(Header) || !yield(strings.Repeat("-", 80)) {
			return
		}
		for _, b := range books {
			if !yield(b.Row()) {
				return
			}
		}
	}, nil
}
