// Package dashboard ties the usage store, analysis and report export together
// for one interactive or one-shot session.
package dashboard

import (
	"github.com/jgoulah/homedash/internal/report"
	"github.com/jgoulah/homedash/internal/usage"
)

// Session owns the loaded readings and the most recent analysis
type Session struct {
	store    *usage.Store
	ingestor *usage.Ingestor
	exporter *report.Exporter
	analysis *usage.Analysis
}

// New creates a session with an empty store
func New(ingestor *usage.Ingestor, exporter *report.Exporter) *Session {
	return &Session{
		store:    usage.NewStore(),
		ingestor: ingestor,
		exporter: exporter,
	}
}

// Store returns the session's reading store
func (s *Session) Store() *usage.Store {
	return s.store
}

// Load replaces the loaded readings and drops any cached analysis
func (s *Session) Load(sources []string) usage.LoadResult {
	s.analysis = nil
	return s.ingestor.Load(s.store, sources)
}

// Analyze computes and caches statistics for the loaded readings
func (s *Session) Analyze() (*usage.Analysis, error) {
	a, err := usage.Analyze(s.store)
	if err != nil {
		return nil, err
	}
	s.analysis = a
	return a, nil
}

// Analysis returns the cached analysis if it matches the loaded readings
func (s *Session) Analysis() (*usage.Analysis, bool) {
	if !s.analysis.IsCurrent(s.store) {
		return nil, false
	}
	return s.analysis, true
}

// Plot renders the trend chart and returns its path
func (s *Session) Plot() (string, error) {
	if s.store.IsEmpty() {
		return "", usage.ErrNoData
	}
	return s.exporter.Plot(s.store.Readings())
}

// Export writes all report files. A stale or missing analysis is recomputed first.
func (s *Session) Export() ([]report.ExportedFile, error) {
	if s.store.IsEmpty() {
		return nil, report.ErrNothingToExport
	}

	a, ok := s.Analysis()
	if !ok {
		var err error
		if a, err = s.Analyze(); err != nil {
			return nil, err
		}
	}
	return s.exporter.Export(s.store.Readings(), a)
}
