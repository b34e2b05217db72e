package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOutputDir, cfg.GetOutputDir())
	assert.Equal(t, DefaultReadingsFile, cfg.GetReadingsFile())
	assert.Equal(t, DefaultSummaryFile, cfg.GetSummaryFile())
	assert.Equal(t, DefaultPlotFile, cfg.GetPlotFile())
	assert.Equal(t, DefaultLibraryFile, cfg.GetLibraryFile())
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
usage:
  sources: [jan.csv, feb.csv]
  output_dir: reports
  plot_file: trend.png
library:
  file: books.txt
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"jan.csv", "feb.csv"}, cfg.Usage.Sources)
	assert.Equal(t, "reports", cfg.GetOutputDir())
	assert.Equal(t, "trend.png", cfg.GetPlotFile())
	assert.Equal(t, DefaultSummaryFile, cfg.GetSummaryFile())
	assert.Equal(t, "books.txt", cfg.GetLibraryFile())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("usage: [unclosed"), 0o600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, Save(path, Defaults()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}
