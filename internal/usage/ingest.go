package usage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jgoulah/homedash/pkg/models"
)

// Required CSV column names (exact, case-sensitive)
const (
	DateColumn  = "Date"
	UsageColumn = "Usage"
)

// errEmptyField marks a row skipped without a report because a required field is blank
var errEmptyField = errors.New("empty field")

// SourceReport describes the outcome of loading one input source
type SourceReport struct {
	Source         string
	Records        int        // Readings accepted from this source
	Skipped        []RowError // Rows dropped because a field failed to parse
	MissingColumns []string   // Required columns absent from the header
	Err            error      // Set when the source could not be opened or read to the end
}

// LoadResult summarizes a full load across all sources
type LoadResult struct {
	Sources []SourceReport
	Total   int
}

// Failed returns the reports of sources that ended with an error
func (r LoadResult) Failed() []SourceReport {
	var failed []SourceReport
	for _, s := range r.Sources {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Ingestor parses CSV usage files into a Store
type Ingestor struct {
	open func(name string) (io.ReadCloser, error)
}

// NewIngestor creates an ingestor that reads from the local filesystem
func NewIngestor() *Ingestor {
	return &Ingestor{open: openFile}
}

func openFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Load replaces the contents of store with the readings parsed from sources.
// A failing source or row never aborts the batch; failures are listed in the result.
func (in *Ingestor) Load(store *Store, sources []string) LoadResult {
	store.Reset()

	var result LoadResult
	for _, source := range sources {
		source = strings.TrimSpace(source)
		if source == "" {
			continue
		}
		result.Sources = append(result.Sources, in.loadSource(store, source))
	}

	store.sortByDate()
	result.Total = store.Len()
	return result
}

func (in *Ingestor) loadSource(store *Store, source string) SourceReport {
	report := SourceReport{Source: source}

	f, err := in.open(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			report.Err = &SourceError{Source: source, Err: ErrSourceNotFound}
		} else {
			report.Err = &SourceError{Source: source, Err: fmt.Errorf("opening file: %w", err)}
		}
		return report
	}
	defer f.Close()

	if err := readReadings(f, store, &report); err != nil {
		report.Err = &SourceError{Source: source, Err: err}
	}
	return report
}

// readReadings adds each valid row to store as it is read. Rows read before an
// error stay in the store.
func readReadings(r io.Reader, store *Store, report *SourceReport) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Read header to find column indices
	header, err := reader.Read()
	if err == io.EOF {
		report.MissingColumns = []string{DateColumn, UsageColumn}
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}

	dateCol, usageCol := -1, -1
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		switch {
		case col == DateColumn && dateCol == -1:
			dateCol = i
		case col == UsageColumn && usageCol == -1:
			usageCol = i
		}
	}
	if dateCol == -1 {
		report.MissingColumns = append(report.MissingColumns, DateColumn)
	}
	if usageCol == -1 {
		report.MissingColumns = append(report.MissingColumns, UsageColumn)
	}
	if len(report.MissingColumns) > 0 {
		// Every row would lack a required field
		return nil
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading CSV row: %w", err)
		}

		line, _ := reader.FieldPos(0)
		reading, err := parseRow(record, dateCol, usageCol, line)
		if err != nil {
			var rowErr RowError
			if errors.As(err, &rowErr) {
				report.Skipped = append(report.Skipped, rowErr)
			}
			continue
		}

		store.add(reading)
		report.Records++
	}
}

// parseRow validates one data row. It returns errEmptyField for rows missing a
// value and a RowError for values that fail to parse.
func parseRow(record []string, dateCol, usageCol, line int) (models.Reading, error) {
	if len(record) <= dateCol || len(record) <= usageCol {
		return models.Reading{}, errEmptyField
	}

	dateStr := strings.TrimSpace(record[dateCol])
	usageStr := strings.TrimSpace(record[usageCol])
	if dateStr == "" || usageStr == "" {
		return models.Reading{}, errEmptyField
	}

	date, err := time.Parse(models.DateLayout, dateStr)
	if err != nil {
		return models.Reading{}, RowError{Line: line, Field: DateColumn, Value: dateStr, Reason: "expected YYYY-MM-DD"}
	}

	usage, err := strconv.ParseFloat(usageStr, 64)
	if err != nil {
		return models.Reading{}, RowError{Line: line, Field: UsageColumn, Value: usageStr, Reason: "not a number"}
	}
	if math.IsNaN(usage) || math.IsInf(usage, 0) {
		return models.Reading{}, RowError{Line: line, Field: UsageColumn, Value: usageStr, Reason: "not a finite number"}
	}
	if usage < 0 {
		return models.Reading{}, RowError{Line: line, Field: UsageColumn, Value: usageStr, Reason: "negative usage"}
	}

	return models.Reading{Date: date, Usage: usage}, nil
}
