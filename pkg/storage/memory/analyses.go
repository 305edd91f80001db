// Package memory keeps demand analyses in process memory. It backs CLI runs
// against CSV data where no database is configured.
package memory

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/storage"
	"slices"
	"strings"
	"sync"
)

type AnalysisStore struct {
	mu       sync.RWMutex
	analyses map[domain.PostalCode]*domain.DemandAnalysis
}

var _ storage.DemandAnalysisRepository = (*AnalysisStore)(nil)

// NewAnalysisStore returns an empty store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{analyses: map[domain.PostalCode]*domain.DemandAnalysis{}}
}

// SaveAnalysis replaces any analysis stored for the same postal code.
func (s *AnalysisStore) SaveAnalysis(_ context.Context, a *domain.DemandAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyses[a.PostalCode()] = a

	return nil
}

// FindAnalysisByPostalCode returns nil when nothing is stored.
func (s *AnalysisStore) FindAnalysisByPostalCode(_ context.Context, pc domain.PostalCode) (*domain.DemandAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.analyses[pc], nil
}

// FindAllAnalyses returns the analyses ordered by postal code.
func (s *AnalysisStore) FindAllAnalyses(_ context.Context) ([]*domain.DemandAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.DemandAnalysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *domain.DemandAnalysis) int {
		return strings.Compare(a.PostalCode().Value(), b.PostalCode().Value())
	})

	return out, nil
}

func (s *AnalysisStore) DeleteAnalysis(_ context.Context, pc domain.PostalCode) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.analyses[pc]; !ok {
		return false, nil
	}
	delete(s.analyses, pc)

	return true, nil
}

func (s *AnalysisStore) AnalysisExists(_ context.Context, pc domain.PostalCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.analyses[pc]

	return ok, nil
}

func (s *AnalysisStore) CountAnalyses(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.analyses)), nil
}
