package main

import (
	"fmt"

	"github.com/jgoulah/homedash/internal/report"
	"github.com/spf13/cobra"
)

var listMonth string

var usageListCmd = &cobra.Command{
	Use:   "list [file.csv...]",
	Short: "List loaded usage readings",
	Long:  `Loads the CSV files and displays every reading in date order with the total.`,
	RunE:  runList,
}

func init() {
	usageListCmd.Flags().StringVar(&listMonth, "month", "", "Only show readings for this month (YYYY-MM)")
	usageCmd.AddCommand(usageListCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := oneShotSession(cmd, args, "List")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	readings := s.Store().Readings()
	if len(readings) == 0 {
		fmt.Fprintln(out, "No data found")
		return nil
	}

	// Filter by month if specified
	if listMonth != "" {
		filtered := readings[:0]
		for _, r := range readings {
			if r.MonthKey() == listMonth {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			fmt.Fprintf(out, "No data found for %s\n", listMonth)
			return nil
		}
		readings = filtered
	}

	fmt.Fprintln(out, "\nUsage Data:")
	report.PrintReadings(out, readings)
	return nil
}
