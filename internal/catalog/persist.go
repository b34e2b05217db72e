package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jgoulah/homedash/pkg/models"
)

// ErrCatalogFileNotFound is returned by Load when the catalog file does not exist
var ErrCatalogFileNotFound = errors.New("catalog file not found")

// fieldCount is the number of comma-separated fields per book line
const fieldCount = 4

// LoadResult reports how many lines were accepted and discarded
type LoadResult struct {
	Loaded    int
	Discarded int
}

// Save writes the catalog to path, one title,author,isbn,status line per book.
// Fields are not escaped; a comma inside a field will not survive a reload.
func Save(path string, c *Catalog) error {
	// Ensure directory exists
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating catalog file: %w", err)
	}
	defer f.Close()

	if err := Encode(f, c.books); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing catalog file: %w", err)
	}
	return nil
}

// Load replaces the catalog contents with the books read from path. The
// catalog is left untouched if the file cannot be read.
func Load(path string, c *Catalog) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LoadResult{}, fmt.Errorf("%w: %s", ErrCatalogFileNotFound, path)
		}
		return LoadResult{}, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	books, result, err := Decode(f)
	if err != nil {
		return LoadResult{}, fmt.Errorf("reading catalog file: %w", err)
	}

	c.Replace(books)
	return result, nil
}

// Encode writes books in the flat line format
func Encode(w io.Writer, books []models.Book) error {
	bw := bufio.NewWriter(w)
	for _, b := range books {
		line := strings.Join([]string{b.Title, b.Author, b.ISBN, b.Status}, ",")
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses the flat line format. Lines that do not split into exactly
// four fields are discarded.
func Decode(r io.Reader) ([]models.Book, LoadResult, error) {
	var (
		books  []models.Book
		result LoadResult
	)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			fields := strings.Split(strings.TrimSpace(line), ",")
			if len(fields) == fieldCount {
				books = append(books, models.Book{
					Title:  fields[0],
					Author: fields[1],
					ISBN:   fields[2],
					Status: fields[3],
				})
				result.Loaded++
			} else {
				result.Discarded++
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, LoadResult{}, err
		}
	}

	return books, result, nil
}
