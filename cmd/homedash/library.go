package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/homedash/internal/catalog"
	"github.com/jgoulah/homedash/pkg/models"
	"github.com/spf13/cobra"
)

var libraryFile string

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Mini library catalog",
	Long: `Starts the interactive library menu: add, search, remove and display books,
and save or load the catalog flat file.`,
	Args: cobra.NoArgs,
	RunE: runLibraryMenu,
}

func init() {
	libraryCmd.PersistentFlags().StringVar(&libraryFile, "file", "", "catalog file (default is ./library.txt)")
	rootCmd.AddCommand(libraryCmd)
}

// getLibraryPath returns the catalog file path
func getLibraryPath() (string, error) {
	if libraryFile != "" {
		return libraryFile, nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	return cfg.GetLibraryFile(), nil
}

func runLibraryMenu(cmd *cobra.Command, args []string) error {
	path, err := getLibraryPath()
	if err != nil {
		return err
	}

	libraryMenu(catalog.New(), path).run(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
	return nil
}

// libraryMenu builds the interactive menu over one catalog
func libraryMenu(c *catalog.Catalog, path string) *menu {
	return &menu{
		header: "\n===== MINI LIBRARY MENU =====\n",
		items: []menuItem{
			{label: "Add Book", run: func(p *prompter) { promptAdd(p, c) }},
			{label: "Search Book", run: func(p *prompter) {
				if key, ok := p.ask("Enter Book Title or ISBN to search: "); ok {
					searchBooks(p.out, c, key)
				}
			}},
			{label: "Remove Book", run: func(p *prompter) {
				if isbn, ok := p.ask("Enter ISBN of the book to remove: "); ok {
					removeBook(p.out, c, isbn)
				}
			}},
			{label: "Display All Books", run: func(p *prompter) { displayBooks(p.out, c) }},
			{label: "Save Records", run: func(p *prompter) { saveCatalog(p.out, c, path) }},
			{label: "Load Records", run: func(p *prompter) { loadCatalog(p.out, c, path) }},
		},
		exit:    "Exit",
		prompt:  "Enter your choice (1-7): ",
		goodbye: "Exiting program... Goodbye!",
		invalid: "Invalid choice, please try again!",
	}
}

// promptAdd asks for the four book fields and appends the book
func promptAdd(p *prompter, c *catalog.Catalog) {
	var fields [4]string
	prompts := [4]string{
		"Enter Book Title: ",
		"Enter Author Name: ",
		"Enter ISBN Number: ",
		"Enter Status (Available/Issued): ",
	}
	for i, prompt := range prompts {
		answer, ok := p.ask(prompt)
		if !ok {
			return
		}
		fields[i] = answer
	}

	c.Add(models.NewBook(fields[0], fields[1], fields[2], fields[3]))
	fmt.Fprintln(p.out, "\nBook added successfully!")
}

func searchBooks(w io.Writer, c *catalog.Catalog, key string) {
	found, err := c.Search(key)
	switch {
	case errors.Is(err, catalog.ErrEmptyCatalog):
		fmt.Fprintln(w, "No books available!")
	case errors.Is(err, catalog.ErrBookNotFound):
		fmt.Fprintln(w, "Book not found!")
	default:
		for _, b := range found {
			fmt.Fprintln(w, "\nBook Found:")
			fmt.Fprintln(w, b.Row())
		}
	}
}

// removeBook removes one book by ISBN and reports whether it was found
func removeBook(w io.Writer, c *catalog.Catalog, isbn string) bool {
	_, err := c.Remove(isbn)
	switch {
	case errors.Is(err, catalog.ErrEmptyCatalog):
		fmt.Fprintln(w, "No books available!")
		return false
	case errors.Is(err, catalog.ErrBookNotFound):
		fmt.Fprintln(w, "Book not found!")
		return false
	}
	fmt.Fprintln(w, "Book removed successfully!")
	return true
}

func displayBooks(w io.Writer, c *catalog.Catalog) {
	rows, err := c.Display()
	if err != nil {
		fmt.Fprintln(w, "No books available!")
		return
	}

	fmt.Fprintln(w)
	for row := range rows {
		fmt.Fprintln(w, row)
	}
}

func saveCatalog(w io.Writer, c *catalog.Catalog, path string) error {
	if err := catalog.Save(path, c); err != nil {
		fmt.Fprintln(w, "Error saving file:", err)
		return err
	}
	fmt.Fprintf(w, "Records saved to %s successfully!\n", path)
	return nil
}

func loadCatalog(w io.Writer, c *catalog.Catalog, path string) error {
	result, err := catalog.Load(path, c)
	if errors.Is(err, catalog.ErrCatalogFileNotFound) {
		fmt.Fprintf(w, "%s not found!\n", path)
		return err
	}
	if err != nil {
		fmt.Fprintln(w, "Error loading file:", err)
		return err
	}

	fmt.Fprintf(w, "Records loaded successfully from %s! (%s books", path, humanize.Comma(int64(result.Loaded)))
	if result.Discarded > 0 {
		fmt.Fprintf(w, ", %s malformed line(s) skipped", humanize.Comma(int64(result.Discarded)))
	}
	fmt.Fprintln(w, ")")
	return nil
}
