package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jgoulah/homedash/internal/dashboard"
	"github.com/jgoulah/homedash/internal/report"
	"github.com/jgoulah/homedash/internal/usage"
	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:     "usage",
	Aliases: []string{"dashboard"},
	Short:   "Household electricity use dashboard",
	Long: `Starts the interactive electricity dashboard: load CSV files with Date and Usage
columns, view the usage analysis, plot the trend and export the results.`,
	Args: cobra.NoArgs,
	RunE: runUsageMenu,
}

var usageAnalyzeCmd = &cobra.Command{
	Use:   "analyze [file.csv...]",
	Short: "Load CSV files and print the usage analysis",
	RunE:  runUsageAnalyze,
}

var usagePlotCmd = &cobra.Command{
	Use:   "plot [file.csv...]",
	Short: "Load CSV files and save the usage trend plot",
	RunE:  runUsagePlot,
}

var usageExportCmd = &cobra.Command{
	Use:   "export [file.csv...]",
	Short: "Load CSV files and export readings, summary and plot",
	RunE:  runUsageExport,
}

func init() {
	usageCmd.AddCommand(usageAnalyzeCmd, usagePlotCmd, usageExportCmd)
	rootCmd.AddCommand(usageCmd)
}

func runUsageMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Welcome to the Electricity Use Dashboard!")
	dashboardMenu(newSession(cfg)).run(newPrompter(cmd.InOrStdin(), out))
	return nil
}

// dashboardMenu builds the interactive menu over one session
func dashboardMenu(s *dashboard.Session) *menu {
	rule := strings.Repeat("=", 50)
	return &menu{
		header: "\n" + rule + "\n     HOUSEHOLD ELECTRICITY USE DASHBOARD\n" + rule + "\n",
		footer: rule + "\n",
		items: []menuItem{
			{label: "Load electricity data from CSV files", run: func(p *prompter) { promptLoad(p, s) }},
			{label: "View usage analysis", run: func(p *prompter) { showAnalysis(p.out, s) }},
			{label: "Plot usage trend", run: func(p *prompter) { savePlot(p.out, s) }},
			{label: "Export results", run: func(p *prompter) { exportResults(p.out, s) }},
		},
		exit:    "Exit",
		prompt:  "Choose an option: ",
		goodbye: "Goodbye!",
		invalid: "Invalid selection. Try again.",
	}
}

// sourcesFromArgs returns the CSV files named on the command line, or the configured ones
func sourcesFromArgs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if len(cfg.Usage.Sources) == 0 {
		return nil, fmt.Errorf("no CSV files given and no usage.sources in %s", getConfigPath())
	}
	return cfg.Usage.Sources, nil
}

// oneShotSession loads config and sources for a non-interactive command
func oneShotSession(cmd *cobra.Command, args []string, name string) (*dashboard.Session, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "=== %s started at %s ===\n", name, time.Now().Format("2006-01-02 15:04:05 MST"))

	sources, err := sourcesFromArgs(args)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	s := newSession(cfg)
	printLoadResult(cmd.OutOrStdout(), s.Load(sources))
	return s, nil
}

func runUsageAnalyze(cmd *cobra.Command, args []string) error {
	s, err := oneShotSession(cmd, args, "Analyze")
	if err != nil {
		return err
	}
	showAnalysis(cmd.OutOrStdout(), s)
	return nil
}

func runUsagePlot(cmd *cobra.Command, args []string) error {
	s, err := oneShotSession(cmd, args, "Plot")
	if err != nil {
		return err
	}
	savePlot(cmd.OutOrStdout(), s)
	return nil
}

func runUsageExport(cmd *cobra.Command, args []string) error {
	s, err := oneShotSession(cmd, args, "Export")
	if err != nil {
		return err
	}
	exportResults(cmd.OutOrStdout(), s)
	return nil
}

// promptLoad asks for a comma separated list of CSV files and loads them
func promptLoad(p *prompter, s *dashboard.Session) {
	fmt.Fprintln(p.out, "\nEnter CSV file names (comma separated):")
	fmt.Fprintln(p.out, "Example: jan.csv, feb.csv, mar.csv")
	answer, ok := p.ask("Files: ")
	if !ok {
		return
	}
	printLoadResult(p.out, s.Load(strings.Split(answer, ",")))
}

// printLoadResult reports each source and the total number of readings
func printLoadResult(w io.Writer, result usage.LoadResult) {
	for _, src := range result.Sources {
		switch {
		case errors.Is(src.Err, usage.ErrSourceNotFound):
			fmt.Fprintf(w, "ERROR: File not found → %s\n", src.Source)
			continue
		case src.Err != nil:
			var srcErr *usage.SourceError
			cause := src.Err
			if errors.As(src.Err, &srcErr) {
				cause = srcErr.Err
			}
			fmt.Fprintf(w, "ERROR loading %s: %v\n", src.Source, cause)
		default:
			fmt.Fprintf(w, "Loaded: %s\n", src.Source)
		}

		if len(src.MissingColumns) > 0 {
			fmt.Fprintf(w, "⚠ %s: missing column(s) %s\n", src.Source, strings.Join(src.MissingColumns, ", "))
		}
		if len(src.Skipped) > 0 {
			fmt.Fprintf(w, "⚠ %s: skipped %s invalid row(s)\n", src.Source, humanize.Comma(int64(len(src.Skipped))))
		}
	}

	fmt.Fprintf(w, "\nData loading complete. Total records: %s\n", humanize.Comma(int64(result.Total)))
}

// showAnalysis computes and prints the usage summary
func showAnalysis(w io.Writer, s *dashboard.Session) {
	a, err := s.Analyze()
	if errors.Is(err, usage.ErrNoData) {
		fmt.Fprintln(w, "\nNo data loaded.")
		return
	}
	if err != nil {
		fmt.Fprintf(w, "\nERROR analyzing usage: %v\n", err)
		return
	}
	report.PrintAnalysis(w, a)
}

// savePlot writes the trend chart
func savePlot(w io.Writer, s *dashboard.Session) {
	path, err := s.Plot()
	if errors.Is(err, usage.ErrNoData) {
		fmt.Fprintln(w, "\nNo data loaded.")
		return
	}
	if err != nil {
		fmt.Fprintf(w, "\nERROR plotting usage: %v\n", err)
		return
	}
	fmt.Fprintf(w, "\nPlot saved as %s\n", path)
}

// exportResults writes the readings, summary and plot files
func exportResults(w io.Writer, s *dashboard.Session) {
	files, err := s.Export()
	if errors.Is(err, report.ErrNothingToExport) {
		fmt.Fprintln(w, "\nLoad and analyze data before exporting.")
		return
	}
	if err != nil {
		fmt.Fprintf(w, "\nERROR exporting results: %v\n", err)
		for _, f := range files {
			fmt.Fprintf(w, " - %s (%s, written before the failure)\n", f.Path, humanize.Bytes(uint64(f.Size)))
		}
		return
	}

	fmt.Fprintln(w, "\nFiles exported:")
	for _, f := range files {
		fmt.Fprintf(w, " - %s (%s)\n", f.Path, humanize.Bytes(uint64(f.Size)))
	}
}
