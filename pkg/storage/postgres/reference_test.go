package postgres_test

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_ReferenceData(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	mitte := domain.MustPostalCode("10115")
	neukoelln := domain.MustPostalCode("12043")

	s1, err := domain.NewChargingStation(mitte, 52.53, 13.38, 22, "Stromnetz Berlin")
	require.NoError(t, err)
	s2, err := domain.NewChargingStation(mitte, 52.54, 13.39, 150, "Allego")
	require.NoError(t, err)
	p1, err := domain.NewPopulationData(mitte, 30000)
	require.NoError(t, err)
	p2, err := domain.NewPopulationData(neukoelln, 25000)
	require.NoError(t, err)
	g1, err := domain.NewGeoLocationFromWKT(mitte, squareWKT)
	require.NoError(t, err)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if err := s.ReplaceStations(ctx, []domain.ChargingStation{s1, s2}); err != nil {
			return err
		}
		if err := s.ReplacePopulation(ctx, []domain.PopulationData{p2, p1}); err != nil {
			return err
		}

		return s.ReplaceGeoLocations(ctx, []domain.GeoLocation{g1})
	})
	require.NoError(t, err)

	stations, err := pg.FindStationsByPostalCode(ctx, mitte)
	require.NoError(t, err)
	require.Equal(t, []domain.ChargingStation{s1, s2}, stations)

	stations, err = pg.FindStationsByPostalCode(ctx, neukoelln)
	require.NoError(t, err)
	require.Empty(t, stations)

	pop, err := pg.FindPopulationByPostalCode(ctx, neukoelln)
	require.NoError(t, err)
	require.NotNil(t, pop)
	require.Equal(t, 25000, pop.Population())

	pop, err = pg.FindPopulationByPostalCode(ctx, domain.MustPostalCode("13353"))
	require.NoError(t, err)
	require.Nil(t, pop)

	codes, err := pg.PostalCodes(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.PostalCode{mitte, neukoelln}, codes)

	geo, err := pg.FindGeoLocationByPostalCode(ctx, mitte)
	require.NoError(t, err)
	require.NotNil(t, geo)
	require.Equal(t, g1.Boundary(), geo.Boundary())

	geo, err = pg.FindGeoLocationByPostalCode(ctx, neukoelln)
	require.NoError(t, err)
	require.Nil(t, geo)

	// A second import replaces rather than appends.
	require.NoError(t, pg.ReplaceStations(ctx, []domain.ChargingStation{s2}))
	stations, err = pg.FindStationsByPostalCode(ctx, mitte)
	require.NoError(t, err)
	require.Equal(t, []domain.ChargingStation{s2}, stations)
}

func TestPgSQL_ReplaceStations_LargeBatch(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	mitte := domain.MustPostalCode("10115")
	stations := make([]domain.ChargingStation, 2500)
	for i := range stations {
		s, err := domain.NewChargingStation(mitte, 52.5, 13.4, float64(i%300), "")
		require.NoError(t, err)
		stations[i] = s
	}

	require.NoError(t, pg.ReplaceStations(ctx, stations))

	got, err := pg.FindStationsByPostalCode(ctx, mitte)
	require.NoError(t, err)
	require.Len(t, got, len(stations))
}
