package usage

import (
	"sort"

	"github.com/jgoulah/homedash/pkg/models"
)

// MonthTotal is the accumulated usage for one calendar month
type MonthTotal struct {
	Month string  // YYYY-MM
	Total float64
}

// Store holds the currently loaded readings and their monthly totals.
// Monthly totals are kept in the order months were first seen.
type Store struct {
	readings   []models.Reading
	months     []MonthTotal
	monthIndex map[string]int
	generation uint64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{monthIndex: make(map[string]int)}
}

// Reset clears all readings and monthly totals and starts a new generation
func (s *Store) Reset() {
	s.readings = nil
	s.months = nil
	s.monthIndex = make(map[string]int)
	s.generation++
}

// Generation identifies the current contents; it changes on every Reset
func (s *Store) Generation() uint64 {
	return s.generation
}

// Len returns the number of loaded readings
func (s *Store) Len() int {
	return len(s.readings)
}

// IsEmpty reports whether no readings are loaded
func (s *Store) IsEmpty() bool {
	return len(s.readings) == 0
}

// Readings returns a copy of the loaded readings
func (s *Store) Readings() []models.Reading {
	out := make([]models.Reading, len(s.readings))
	copy(out, s.readings)
	return out
}

// MonthlyTotals returns a copy of the monthly totals in first-seen order
func (s *Store) MonthlyTotals() []MonthTotal {
	out := make([]MonthTotal, len(s.months))
	copy(out, s.months)
	return out
}

// MonthTotal returns the total for a YYYY-MM key
func (s *Store) MonthTotal(month string) (float64, bool) {
	i, ok := s.monthIndex[month]
	if !ok {
		return 0, false
	}
	return s.months[i].Total, true
}

// add appends a reading and accumulates it into its month
func (s *Store) add(r models.Reading) {
	s.readings = append(s.readings, r)

	key := r.MonthKey()
	if i, ok := s.monthIndex[key]; ok {
		s.months[i].Total += r.Usage
		return
	}
	s.monthIndex[key] = len(s.months)
	s.months = append(s.months, MonthTotal{Month: key, Total: r.Usage})
}

// sortByDate orders readings by date, keeping insertion order for equal dates
func (s *Store) sortByDate() {
	sort.SliceStable(s.readings, func(i, j int) bool {
		return s.readings[i].Date.Before(s.readings[j].Date)
	})
}
