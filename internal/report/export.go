package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jgoulah/homedash/internal/usage"
	"github.com/jgoulah/homedash/pkg/models"
)

// ErrNothingToExport is returned when there are no readings or no analysis to export
var ErrNothingToExport = errors.New("nothing to export: load and analyze data first")

// ErrNoPlotter is returned by Plot when no plotter is configured
var ErrNoPlotter = errors.New("no plotter configured")

// Plotter renders a usage trend for date-ordered readings
type Plotter interface {
	Plot(readings []models.Reading, path string) error
}

// ExportedFile is a file written by an export
type ExportedFile struct {
	Path string
	Size int64
}

// Exporter writes readings, the analysis summary and the trend plot into Dir
type Exporter struct {
	Dir          string
	ReadingsFile string
	SummaryFile  string
	PlotFile     string
	Plotter      Plotter // Optional; the plot is skipped when nil
}

// Export writes all report files. Nothing is written unless both readings and
// an analysis are present.
func (e *Exporter) Export(readings []models.Reading, analysis *usage.Analysis) ([]ExportedFile, error) {
	if len(readings) == 0 || analysis == nil {
		return nil, ErrNothingToExport
	}

	if err := e.ensureDir(); err != nil {
		return nil, err
	}

	var files []ExportedFile

	readingsPath := filepath.Join(e.Dir, e.ReadingsFile)
	if err := writeFile(readingsPath, func(w io.Writer) error {
		return WriteReadingsCSV(w, readings)
	}); err != nil {
		return files, fmt.Errorf("writing readings: %w", err)
	}
	files = append(files, statFile(readingsPath))

	summaryPath := filepath.Join(e.Dir, e.SummaryFile)
	if err := writeFile(summaryPath, func(w io.Writer) error {
		return WriteSummary(w, analysis)
	}); err != nil {
		return files, fmt.Errorf("writing summary: %w", err)
	}
	files = append(files, statFile(summaryPath))

	if e.Plotter != nil {
		plotPath, err := e.plot(readings)
		if err != nil {
			return files, err
		}
		files = append(files, statFile(plotPath))
	}

	return files, nil
}

// Plot renders only the trend chart and returns its path
func (e *Exporter) Plot(readings []models.Reading) (string, error) {
	if len(readings) == 0 {
		return "", ErrNothingToExport
	}
	if e.Plotter == nil {
		return "", ErrNoPlotter
	}
	if err := e.ensureDir(); err != nil {
		return "", err
	}
	return e.plot(readings)
}

func (e *Exporter) plot(readings []models.Reading) (string, error) {
	path := filepath.Join(e.Dir, e.PlotFile)
	if err := e.Plotter.Plot(readings, path); err != nil {
		return "", fmt.Errorf("writing plot: %w", err)
	}
	return path, nil
}

func (e *Exporter) ensureDir() error {
	if e.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// WriteReadingsCSV writes a Date,Usage header and one row per reading
func WriteReadingsCSV(w io.Writer, readings []models.Reading) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{usage.DateColumn, usage.UsageColumn}); err != nil {
		return err
	}
	for _, r := range readings {
		if err := writer.Write([]string{r.DateString(), r.UsageString()}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummary writes the plain-text analysis summary
func WriteSummary(w io.Writer, a *usage.Analysis) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Electricity Usage Summary")
	fmt.Fprintln(bw, "=========================")
	fmt.Fprintf(bw, "Total Usage: %.2f\n", a.TotalUsage)
	fmt.Fprintf(bw, "Average Daily: %.2f\n", a.AverageDaily)
	fmt.Fprintf(bw, "Min Usage: %s on %s\n", a.Min.UsageString(), a.Min.DateString())
	fmt.Fprintf(bw, "Max Usage: %s on %s\n", a.Max.UsageString(), a.Max.DateString())
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Monthly Totals:")
	for _, m := range a.MonthlyTotals {
		fmt.Fprintf(bw, "  %s: %.2f\n", m.Month, m.Total)
	}
	return bw.Flush()
}

// writeFile creates path and closes it on every exit path
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func statFile(path string) ExportedFile {
	file := ExportedFile{Path: path}
	if info, err := os.Stat(path); err == nil {
		file.Size = info.Size()
	}
	return file
}
