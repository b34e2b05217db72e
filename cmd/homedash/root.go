package main

import (
	"github.com/jgoulah/homedash/internal/config"
	"github.com/jgoulah/homedash/internal/dashboard"
	"github.com/jgoulah/homedash/internal/report"
	"github.com/jgoulah/homedash/internal/usage"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	outDir  string
)

var rootCmd = &cobra.Command{
	Use:   "homedash",
	Short: "Household electricity dashboard and mini library catalog",
	Long: `HomeDash bundles two small console tools.
The usage dashboard loads daily electricity readings from CSV files, summarizes them,
plots the trend and exports the results. The library keeps a catalog of books in a
flat text file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "directory for exported files (default is .)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file, applying command-line overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, err
	}
	if outDir != "" {
		cfg.Usage.OutputDir = outDir
	}
	return cfg, nil
}

// newSession builds a dashboard session from the config
func newSession(cfg *config.Config) *dashboard.Session {
	exporter := &report.Exporter{
		Dir:          cfg.GetOutputDir(),
		ReadingsFile: cfg.GetReadingsFile(),
		SummaryFile:  cfg.GetSummaryFile(),
		PlotFile:     cfg.GetPlotFile(),
		Plotter:      report.NewGonumPlotter(),
	}
	return dashboard.New(usage.NewIngestor(), exporter)
}
