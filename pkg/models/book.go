package models

import "fmt"

// Book statuses. Status is free text; these are the two values the catalog uses.
const (
	StatusAvailable = "Available"
	StatusIssued    = "Issued"
)

// Book represents a catalog record
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Status string `json:"status"`
}

// NewBook creates a book, defaulting an empty status to Available
func NewBook(title, author, isbn, status string) Book {
	if status == "" {
		status = StatusAvailable
	}
	return Book{
		Title:  title,
		Author: author,
		ISBN:   isbn,
		Status: status,
	}
}

// Row formats the book as a fixed-width display row
func (b Book) Row() string {
	return fmt.Sprintf("%-30s %-20s %-15s %-10s", b.Title, b.Author, b.ISBN, b.Status)
}
