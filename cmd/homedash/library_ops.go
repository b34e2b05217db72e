package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jgoulah/homedash/internal/catalog"
	"github.com/jgoulah/homedash/pkg/models"
	"github.com/spf13/cobra"
)

var (
	addTitle  string
	addAuthor string
	addISBN   string
	addStatus string
)

var libraryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog file",
	Long:  `Appends a book to the catalog file. Books sharing an ISBN are allowed.`,
	Args:  cobra.NoArgs,
	RunE:  runLibraryAdd,
}

var librarySearchCmd = &cobra.Command{
	Use:   "search [title|isbn]",
	Short: "Search books by title (any case) or exact ISBN",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibrarySearch,
}

var libraryRemoveCmd = &cobra.Command{
	Use:   "remove [isbn]",
	Short: "Remove the first book with the given ISBN",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryRemove,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all books in the catalog file",
	Args:  cobra.NoArgs,
	RunE:  runLibraryList,
}

func init() {
	libraryAddCmd.Flags().StringVar(&addTitle, "title", "", "Book title")
	libraryAddCmd.Flags().StringVar(&addAuthor, "author", "", "Author name")
	libraryAddCmd.Flags().StringVar(&addISBN, "isbn", "", "ISBN number")
	libraryAddCmd.Flags().StringVar(&addStatus, "status", models.StatusAvailable, "Status (Available or Issued)")
	cobra.CheckErr(libraryAddCmd.MarkFlagRequired("title"))
	cobra.CheckErr(libraryAddCmd.MarkFlagRequired("isbn"))

	libraryCmd.AddCommand(libraryAddCmd, librarySearchCmd, libraryRemoveCmd, libraryListCmd)
}

// openCatalog loads the catalog file; a missing file yields an empty catalog
func openCatalog(w io.Writer) (*catalog.Catalog, string, error) {
	path, err := getLibraryPath()
	if err != nil {
		return nil, "", err
	}

	c := catalog.New()
	if _, err := catalog.Load(path, c); err != nil {
		if errors.Is(err, catalog.ErrCatalogFileNotFound) {
			fmt.Fprintf(w, "%s not found, starting with an empty catalog\n", path)
			return c, path, nil
		}
		return nil, "", fmt.Errorf("loading catalog: %w", err)
	}
	return c, path, nil
}

func runLibraryAdd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	c, path, err := openCatalog(out)
	if err != nil {
		return err
	}

	c.Add(models.NewBook(addTitle, addAuthor, addISBN, addStatus))
	fmt.Fprintln(out, "Book added successfully!")

	if err := saveCatalog(out, c, path); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}

func runLibrarySearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	c, _, err := openCatalog(out)
	if err != nil {
		return err
	}

	searchBooks(out, c, args[0])
	return nil
}

func runLibraryRemove(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	c, path, err := openCatalog(out)
	if err != nil {
		return err
	}

	if !removeBook(out, c, args[0]) {
		return nil
	}
	if err := saveCatalog(out, c, path); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	return nil
}

func runLibraryList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	c, _, err := openCatalog(out)
	if err != nil {
		return err
	}

	displayBooks(out, c)
	return nil
}
