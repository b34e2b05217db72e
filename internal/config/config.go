package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default file names, matching what the dashboard and library have always written
const (
	DefaultReadingsFile = "electricity_summary_output.csv"
	DefaultSummaryFile  = "analysis_summary.txt"
	DefaultPlotFile     = "usage_plot.png"
	DefaultLibraryFile  = "library.txt"
	DefaultOutputDir    = "."
)

// Config holds the application configuration
type Config struct {
	Usage   UsageConfig   `yaml:"usage"`
	Library LibraryConfig `yaml:"library"`
}

// UsageConfig holds the electricity dashboard settings
type UsageConfig struct {
	Sources      []string `yaml:"sources,omitempty"`       // CSV files loaded when none are given
	OutputDir    string   `yaml:"output_dir,omitempty"`    // Directory for exported files
	ReadingsFile string   `yaml:"readings_file,omitempty"` // e.g., "electricity_summary_output.csv"
	SummaryFile  string   `yaml:"summary_file,omitempty"`
	PlotFile     string   `yaml:"plot_file,omitempty"`
}

// LibraryConfig holds the library catalog settings
type LibraryConfig struct {
	File string `yaml:"file,omitempty"` // Flat file the catalog is saved to and loaded from
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// Defaults returns a config with every setting filled in
func Defaults() *Config {
	return &Config{
		Usage: UsageConfig{
			OutputDir:    DefaultOutputDir,
			ReadingsFile: DefaultReadingsFile,
			SummaryFile:  DefaultSummaryFile,
			PlotFile:     DefaultPlotFile,
		},
		Library: LibraryConfig{File: DefaultLibraryFile},
	}
}

// GetOutputDir returns the export directory, defaulting to the current directory
func (c *Config) GetOutputDir() string {
	if c.Usage.OutputDir == "" {
		return DefaultOutputDir
	}
	return c.Usage.OutputDir
}

// GetReadingsFile returns the readings export file name
func (c *Config) GetReadingsFile() string {
	if c.Usage.ReadingsFile == "" {
		return DefaultReadingsFile
	}
	return c.Usage.ReadingsFile
}

// GetSummaryFile returns the summary report file name
func (c *Config) GetSummaryFile() string {
	if c.Usage.SummaryFile == "" {
		return DefaultSummaryFile
	}
	return c.Usage.SummaryFile
}

// GetPlotFile returns the trend plot file name
func (c *Config) GetPlotFile() string {
	if c.Usage.PlotFile == "" {
		return DefaultPlotFile
	}
	return c.Usage.PlotFile
}

// GetLibraryFile returns the catalog flat file path
func (c *Config) GetLibraryFile() string {
	if c.Library.File == "" {
		return DefaultLibraryFile
	}
	return c.Library.File
}
