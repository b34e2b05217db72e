package report

import (
	"fmt"
	"io"

	"github.com/jgoulah/homedash/internal/usage"
	"github.com/jgoulah/homedash/pkg/models"
)

// PrintAnalysis writes the on-screen usage summary
func PrintAnalysis(w io.Writer, a *usage.Analysis) {
	fmt.Fprintln(w, "\n===== ELECTRICITY USAGE SUMMARY =====")
	fmt.Fprintf(w, "Total electricity consumption: %.2f units\n", a.TotalUsage)
	fmt.Fprintf(w, "Average daily usage: %.2f units\n", a.AverageDaily)
	fmt.Fprintf(w, "Minimum daily usage: %s on %s\n", a.Min.UsageString(), a.Min.DateString())
	fmt.Fprintf(w, "Maximum daily usage: %s on %s\n", a.Max.UsageString(), a.Max.DateString())
	fmt.Fprintln(w, "\nMonthly Totals:")
	for _, m := range a.MonthlyTotals {
		fmt.Fprintf(w, "  %s: %.2f units\n", m.Month, m.Total)
	}
}

// PrintReadings writes a table of readings followed by the total
func PrintReadings(w io.Writer, readings []models.Reading) {
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "%-12s  %10s\n", "Date", "kWh")
	fmt.Fprintln(w, "----------------------------------------")

	var total float64
	for _, r := range readings {
		fmt.Fprintf(w, "%-12s  %10.2f\n", r.DateString(), r.Usage)
		total += r.Usage
	}

	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintf(w, "Total: %.2f kWh (%d records)\n", total, len(readings))
}
