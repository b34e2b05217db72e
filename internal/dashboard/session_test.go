package dashboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgoulah/homedash/internal/report"
	"github.com/jgoulah/homedash/internal/usage"
	"github.com/jgoulah/homedash/pkg/models"
)

type stubPlotter struct{ calls int }

func (p *stubPlotter) Plot(readings []models.Reading, path string) error {
	p.calls++
	return os.WriteFile(path, []byte("png"), 0o644)
}

func newSession(t *testing.T) (*Session, string, *stubPlotter) {
	t.Helper()
	dir := t.TempDir()
	plotter := &stubPlotter{}
	exp := &report.Exporter{
		Dir:          filepath.Join(dir, "out"),
		ReadingsFile: "electricity_summary_output.csv",
		SummaryFile:  "analysis_summary.txt",
		PlotFile:     "usage_plot.png",
		Plotter:      plotter,
	}
	return New(usage.NewIngestor(), exp), dir, plotter
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmptySessionGuards(t *testing.T) {
	s, _, plotter := newSession(t)

	_, err := s.Analyze()
	assert.ErrorIs(t, err, usage.ErrNoData)

	_, err = s.Plot()
	assert.ErrorIs(t, err, usage.ErrNoData)

	_, err = s.Export()
	assert.ErrorIs(t, err, report.ErrNothingToExport)

	assert.Zero(t, plotter.calls)
}

func TestReloadInvalidatesAnalysis(t *testing.T) {
	s, dir, _ := newSession(t)
	a := writeCSV(t, dir, "a.csv", "Date,Usage\n2025-01-01,10\n")
	b := writeCSV(t, dir, "b.csv", "Date,Usage\n2025-02-01,4\n2025-02-02,6\n")

	s.Load([]string{a})
	first, err := s.Analyze()
	require.NoError(t, err)
	cached, ok := s.Analysis()
	require.True(t, ok)
	assert.Same(t, first, cached)

	s.Load([]string{b})
	_, ok = s.Analysis()
	assert.False(t, ok)
	assert.Equal(t, 2, s.Store().Len())
}

func TestExportRecomputesStaleAnalysis(t *testing.T) {
	s, dir, plotter := newSession(t)
	a := writeCSV(t, dir, "a.csv", "Date,Usage\n2025-01-01,10\n")
	b := writeCSV(t, dir, "b.csv", "Date,Usage\n2025-02-01,4\n2025-02-02,6\n")

	s.Load([]string{a})
	_, err := s.Analyze()
	require.NoError(t, err)
	s.Load([]string{b})

	files, err := s.Export()
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, 1, plotter.calls)

	summary, err := os.ReadFile(files[1].Path)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "Total Usage: 10.00")
	assert.Contains(t, string(summary), "  2025-02: 10.00")
	assert.NotContains(t, string(summary), "2025-01")

	_, ok := s.Analysis()
	assert.True(t, ok)
}

func TestPlot(t *testing.T) {
	s, dir, plotter := newSession(t)
	s.Load([]string{writeCSV(t, dir, "a.csv", "Date,Usage\n2025-01-01,10\n")})

	path, err := s.Plot()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "usage_plot.png"), path)
	assert.Equal(t, 1, plotter.calls)
}
