package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/homedash/internal/catalog"
	"github.com/jgoulah/homedash/internal/config"
	"github.com/jgoulah/homedash/internal/dashboard"
	"github.com/jgoulah/homedash/internal/report"
	"github.com/jgoulah/homedash/internal/usage"
	"github.com/jgoulah/homedash/pkg/models"
)

type fakePlotter struct{}

func (fakePlotter) Plot(readings []models.Reading, path string) error {
	return os.WriteFile(path, []byte("png"), 0o644)
}

func testSession(dir string) *dashboard.Session {
	cfg := config.Defaults()
	return dashboard.New(usage.NewIngestor(), &report.Exporter{
		Dir:          dir,
		ReadingsFile: cfg.GetReadingsFile(),
		SummaryFile:  cfg.GetSummaryFile(),
		PlotFile:     cfg.GetPlotFile(),
		Plotter:      fakePlotter{},
	})
}

func runWithInput(m *menu, input string) string {
	var out bytes.Buffer
	m.run(newPrompter(strings.NewReader(input), &out))
	return out.String()
}

func TestDashboardMenuFlow(t *testing.T) {
	dir := t.TempDir()
	jan := filepath.Join(dir, "jan.csv")
	require.NoError(t, os.WriteFile(jan, []byte("Date,Usage\n2025-01-01,10\n2025-01-15,20\n"), 0o644))
	missing := filepath.Join(dir, "feb.csv")

	input := strings.Join([]string{
		"2",
		"4",
		"1",
		jan + ", " + missing,
		"9",
		"2",
		"3",
		"4",
		"5",
	}, "\n") + "\n"
	out := runWithInput(dashboardMenu(testSession(dir)), input)

	assert.Contains(t, out, "HOUSEHOLD ELECTRICITY USE DASHBOARD")
	assert.Contains(t, out, "5. Exit")
	assert.Contains(t, out, "No data loaded.")
	assert.Contains(t, out, "Load and analyze data before exporting.")
	assert.Contains(t, out, "Loaded: "+jan)
	assert.Contains(t, out, "ERROR: File not found → "+missing)
	assert.Contains(t, out, "Data loading complete. Total records: 2")
	assert.Contains(t, out, "Invalid selection. Try again.")
	assert.Contains(t, out, "Total electricity consumption: 30.00 units")
	assert.Contains(t, out, "Plot saved as "+filepath.Join(dir, config.DefaultPlotFile))
	assert.Contains(t, out, "Files exported:")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))

	assert.FileExists(t, filepath.Join(dir, config.DefaultReadingsFile))
	assert.FileExists(t, filepath.Join(dir, config.DefaultSummaryFile))
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	out := runWithInput(dashboardMenu(testSession(t.TempDir())), "1\n")
	assert.Contains(t, out, "Files: ")
	assert.NotContains(t, out, "Goodbye!")
}

func TestLibraryMenuFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	c := catalog.New()

	input := strings.Join([]string{
		"4",
		"2", "Dune",
		"1", "Dune", "Frank Herbert", "111", "Available",
		"1", "dune", "Frank Herbert", "222", "Issued",
		"2", "DUNE",
		"2", "Emma",
		"3", "111",
		"3", "111",
		"5",
		"0",
		"7",
	}, "\n") + "\n"
	out := runWithInput(libraryMenu(c, path), input)

	assert.Contains(t, out, "===== MINI LIBRARY MENU =====")
	assert.Contains(t, out, "No books available!")
	assert.Equal(t, 2, strings.Count(out, "Book added successfully!"))
	assert.Equal(t, 2, strings.Count(out, "Book Found:"))
	assert.Contains(t, out, "Book not found!")
	assert.Equal(t, 1, strings.Count(out, "Book removed successfully!"))
	assert.Contains(t, out, "Records saved to "+path+" successfully!")
	assert.Contains(t, out, "Invalid choice, please try again!")
	assert.True(t, strings.HasSuffix(out, "Exiting program... Goodbye!\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dune,Frank Herbert,222,Issued\n", string(data))
}

func TestLibraryMenuLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.txt")
	c := catalog.New()

	out := runWithInput(libraryMenu(c, path), "6\n7\n")
	assert.Contains(t, out, path+" not found!")

	require.NoError(t, os.WriteFile(path, []byte("Dune,Frank Herbert,111,Available\nbad,line\n"), 0o644))
	out = runWithInput(libraryMenu(c, path), "6\n4\n7\n")
	assert.Contains(t, out, "Records loaded successfully from "+path+"! (1 books, 1 malformed line(s) skipped)")
	assert.Contains(t, out, catalog.Header)
	assert.Equal(t, 1, c.Len())
}

func TestMenuReadsVeryLongInputLine(t *testing.T) {
	input := strings.Repeat("9", 70000) + "\n5\n"
	out := runWithInput(dashboardMenu(testSession(t.TempDir())), input)

	assert.Contains(t, out, "Invalid selection. Try again.")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestLibraryMenuKeepsFieldsAsTyped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.txt")
	c := catalog.New()

	input := strings.Join([]string{
		" 1 ", " Dune", "Frank Herbert ", " 111", "Available",
		"2", "111",
		"2", " 111",
		"5",
		"7",
	}, "\n") + "\n"
	out := runWithInput(libraryMenu(c, path), input)

	assert.Equal(t, 1, strings.Count(out, "Book not found!"))
	assert.Equal(t, 1, strings.Count(out, "Book Found:"))

	books := c.Books()
	require.Len(t, books, 1)
	assert.Equal(t, models.Book{Title: " Dune", Author: "Frank Herbert ", ISBN: " 111", Status: "Available"}, books[0])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, " Dune,Frank Herbert , 111,Available\n", string(data))
}
