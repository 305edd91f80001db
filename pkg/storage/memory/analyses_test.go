package memory_test

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/storage/memory"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func analysis(t *testing.T, pc string, population, stations int) *domain.DemandAnalysis {
	t.Helper()
	pop, err := domain.NewPopulationData(domain.MustPostalCode(pc), population)
	require.NoError(t, err)
	a, err := domain.NewDemandAnalysis(pop, stations, nil)
	require.NoError(t, err)

	return a
}

func TestAnalysisStore(t *testing.T) {
	s := memory.NewAnalysisStore()
	ctx := context.Background()
	mitte := domain.MustPostalCode("10115")

	got, err := s.FindAnalysisByPostalCode(ctx, mitte)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.SaveAnalysis(ctx, analysis(t, "12043", 25000, 2)))
	require.NoError(t, s.SaveAnalysis(ctx, analysis(t, "10115", 30000, 5)))
	require.NoError(t, s.SaveAnalysis(ctx, analysis(t, "10115", 3000, 5)))

	got, err = s.FindAnalysisByPostalCode(ctx, mitte)
	require.NoError(t, err)
	require.Equal(t, 3000, got.Population(), "save replaces")

	n, err := s.CountAnalyses(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	all, err := s.FindAllAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "10115", all[0].PostalCode().Value())

	ok, err := s.AnalysisExists(ctx, mitte)
	require.NoError(t, err)
	require.True(t, ok)

	deleted, err := s.DeleteAnalysis(ctx, mitte)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteAnalysis(ctx, mitte)
	require.NoError(t, err)
	require.False(t, deleted)

	ok, err = s.AnalysisExists(ctx, mitte)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAnalysisStore_Concurrent(t *testing.T) {
	s := memory.NewAnalysisStore()
	ctx := context.Background()
	codes := []string{"10115", "10117", "10119", "10178", "12043", "13353"}

	analyses := make([]*domain.DemandAnalysis, 60)
	for i := range analyses {
		analyses[i] = analysis(t, codes[i%len(codes)], 1000*i, i%7)
	}

	var wg sync.WaitGroup
	for _, a := range analyses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SaveAnalysis(ctx, a)
			_, _ = s.FindAllAnalyses(ctx)
			_, _ = s.AnalysisExists(ctx, a.PostalCode())
		}()
	}
	wg.Wait()

	n, err := s.CountAnalyses(ctx)
	require.NoError(t, err)
	require.EqualValues(t, len(codes), n)
}
