package usage

import "github.com/jgoulah/homedash/pkg/models"

// Analysis holds summary statistics computed from one generation of a Store
type Analysis struct {
	TotalUsage    float64
	AverageDaily  float64
	Min           models.Reading
	Max           models.Reading
	MonthlyTotals []MonthTotal
	Readings      int
	Generation    uint64
}

// Analyze computes statistics over the store. Min and max ties resolve to the
// earliest date. Returns ErrNoData for an empty store.
func Analyze(store *Store) (*Analysis, error) {
	if store.IsEmpty() {
		return nil, ErrNoData
	}

	readings := store.readings
	a := &Analysis{
		Min:           readings[0],
		Max:           readings[0],
		MonthlyTotals: store.MonthlyTotals(),
		Readings:      len(readings),
		Generation:    store.Generation(),
	}

	for _, r := range readings {
		a.TotalUsage += r.Usage
		if r.Usage < a.Min.Usage {
			a.Min = r
		}
		if r.Usage > a.Max.Usage {
			a.Max = r
		}
	}
	a.AverageDaily = a.TotalUsage / float64(len(readings))

	return a, nil
}

// IsCurrent reports whether the analysis was computed from the store's current contents
func (a *Analysis) IsCurrent(store *Store) bool {
	return a != nil && a.Generation == store.Generation()
}
