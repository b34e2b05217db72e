package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for readings on input and output
const DateLayout = "2006-01-02"

// MonthLayout is the year-month format used to group readings
const MonthLayout = "2006-01"

// Reading represents a single day's electricity usage
type Reading struct {
	Date  time.Time `json:"date"`
	Usage float64   `json:"usage"` // Units consumed (kWh)
}

// MonthKey returns the YYYY-MM grouping key for the reading
func (r Reading) MonthKey() string {
	return r.Date.Format(MonthLayout)
}

// DateString returns the reading date as YYYY-MM-DD
func (r Reading) DateString() string {
	return r.Date.Format(DateLayout)
}

// UsageString returns the usage in its natural real-number form (10 -> "10.0", 12.5 -> "12.5")
func (r Reading) UsageString() string {
	return FormatUsage(r.Usage)
}

// FormatUsage renders a usage value using the shortest representation that round-trips,
// always keeping a decimal point. Magnitudes of 1e16 and above, or below 1e-4,
// use exponent form (1e+16, 1.5e-05).
func FormatUsage(v float64) string {
	if abs := math.Abs(v); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
