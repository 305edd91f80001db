package domain_test

import (
	"evdemand/pkg/domain"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

const (
	squareWKT     = "POLYGON ((13.4 52.5, 13.5 52.5, 13.5 52.6, 13.4 52.6, 13.4 52.5))"
	twoSquaresWKT = "MULTIPOLYGON (((13.4 52.5, 13.5 52.5, 13.5 52.6, 13.4 52.6, 13.4 52.5)), " +
		"((13.6 52.5, 13.7 52.5, 13.7 52.6, 13.6 52.6, 13.6 52.5)))"
)

func TestNewGeoLocationFromWKT_Polygon(t *testing.T) {
	g, err := domain.NewGeoLocationFromWKT(mitte, squareWKT)
	require.NoError(t, err)
	require.False(t, g.Empty())
	require.Equal(t, mitte, g.PostalCode())

	poly, ok := g.Boundary().(orb.Polygon)
	require.True(t, ok, "boundary is %T", g.Boundary())
	require.Len(t, poly, 1)
	require.Len(t, poly[0], 5)
}

func TestNewGeoLocationFromWKT_MultiPolygon(t *testing.T) {
	g, err := domain.NewGeoLocationFromWKT(mitte, twoSquaresWKT)
	require.NoError(t, err)
	require.False(t, g.Empty())

	mp, ok := g.Boundary().(orb.MultiPolygon)
	require.True(t, ok)
	require.Len(t, mp, 2)
}

func TestNewGeoLocationFromWKT_IrregularWhitespace(t *testing.T) {
	g, err := domain.NewGeoLocationFromWKT(mitte,
		"POLYGON  ((13.4  52.5,\n 13.5 52.5,\t13.5 52.6, 13.4 52.6, 13.4 52.5))")
	require.NoError(t, err)
	require.False(t, g.Empty())
}

func TestNewGeoLocationFromWKT_DropsExtraOrdinates(t *testing.T) {
	tests := []struct {
		name string
		wkt  string
	}{
		{"polygon z", "POLYGON Z ((13.4 52.5 0, 13.5 52.5 0, 13.5 52.6 0, 13.4 52.6 0, 13.4 52.5 0))"},
		{"polygon zm", "POLYGON ZM ((13.4 52.5 0 1, 13.5 52.5 0 1, 13.5 52.6 0 1, 13.4 52.6 0 1, 13.4 52.5 0 1))"},
		{"polygon m lowercase", "polygon m ((13.4 52.5 7, 13.5 52.5 7, 13.5 52.6 7, 13.4 52.6 7, 13.4 52.5 7))"},
		{"implicit z", "POLYGON ((13.4 52.5 34.1, 13.5 52.5 34.1, 13.5 52.6 34.1, 13.4 52.6 34.1, 13.4 52.5 34.1))"},
	}
	flat, err := domain.NewGeoLocationFromWKT(mitte, squareWKT)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := domain.NewGeoLocationFromWKT(mitte, tt.wkt)
			require.NoError(t, err)
			require.False(t, g.Empty())
			require.Equal(t, flat.WKT(), g.WKT())
		})
	}

	g, err := domain.NewGeoLocationFromWKT(mitte,
		"MULTIPOLYGON Z (((13.4 52.5 1, 13.5 52.5 1, 13.5 52.6 1, 13.4 52.6 1, 13.4 52.5 1)), "+
			"((13.6 52.5 1, 13.7 52.5 1, 13.7 52.6 1, 13.6 52.6 1, 13.6 52.5 1)))")
	require.NoError(t, err)
	mp, ok := g.Boundary().(orb.MultiPolygon)
	require.True(t, ok)
	require.Len(t, mp, 2)
}

func TestNewGeoLocationFromWKT_Errors(t *testing.T) {
	tests := []struct {
		name string
		wkt  string
		kind error
	}{
		{"empty string", "", domain.ErrInvalidGeoLocation},
		{"whitespace only", "   ", domain.ErrBoundaryParse},
		{"garbage", "INVALID WKT STRING", domain.ErrBoundaryParse},
		{"incomplete ring", "POLYGON ((13.4 52.5, 13.5 52.5, 13.4 52.5))", domain.ErrBoundaryParse},
		{"open ring", "POLYGON ((13.4 52.5, 13.5 52.5, 13.5 52.6, 13.4 52.6))", domain.ErrBoundaryParse},
		{"point", "POINT (13.4 52.5)", domain.ErrBoundaryParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewGeoLocationFromWKT(mitte, tt.wkt)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.kind)
			require.True(t, domain.IsValidation(err))
		})
	}
}

func TestNewGeoLocationFromWKT_EmptyMessage(t *testing.T) {
	_, err := domain.NewGeoLocationFromWKT(mitte, "")
	require.EqualError(t, err, "Geo Location boundary cannot be None or empty.")
}

func TestNewGeoLocation_PrebuiltGeometry(t *testing.T) {
	square := orb.Polygon{{{13.4, 52.5}, {13.5, 52.5}, {13.5, 52.6}, {13.4, 52.6}, {13.4, 52.5}}}

	g, err := domain.NewGeoLocation(mitte, square)
	require.NoError(t, err)
	require.Equal(t, square, g.Boundary())

	_, err = domain.NewGeoLocation(mitte, orb.Collection{square})
	require.NoError(t, err)
}

func TestNewGeoLocation_NilOrEmpty(t *testing.T) {
	for name, g := range map[string]orb.Geometry{
		"nil":                   nil,
		"empty collection":      orb.Collection{},
		"empty polygon":         orb.Polygon{},
		"empty multipolygon":    orb.MultiPolygon{},
		"collection of empties": orb.Collection{orb.Polygon{}, orb.MultiPolygon{}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := domain.NewGeoLocation(mitte, g)
			require.ErrorIs(t, err, domain.ErrInvalidGeoLocation)
		})
	}
}

func TestGeoLocation_EmptyIsIdempotent(t *testing.T) {
	g, err := domain.NewGeoLocationFromWKT(mitte, squareWKT)
	require.NoError(t, err)
	for range 3 {
		require.False(t, g.Empty())
	}
	require.True(t, domain.GeoLocation{}.Empty())
}

func TestGeoLocation_Contains(t *testing.T) {
	g, err := domain.NewGeoLocationFromWKT(mitte, twoSquaresWKT)
	require.NoError(t, err)

	require.True(t, g.Contains(52.55, 13.45))
	require.True(t, g.Contains(52.55, 13.65))
	require.False(t, g.Contains(52.55, 13.55))
	require.False(t, g.Contains(13.45, 52.55), "lat/lon must not be swapped")
}

func TestGeoLocation_AreaKm2(t *testing.T) {
	g, err := domain.NewGeoLocationFromWKT(mitte, squareWKT)
	require.NoError(t, err)

	// 0.1° x 0.1° at 52.5°N is roughly 6.8 km x 11.1 km.
	require.InDelta(t, 75.0, g.AreaKm2(), 5.0)
}

func TestGeoLocation_WKTRoundTrip(t *testing.T) {
	g, err := domain.NewGeoLocationFromWKT(mitte, squareWKT)
	require.NoError(t, err)

	again, err := domain.NewGeoLocationFromWKT(mitte, g.WKT())
	require.NoError(t, err)
	require.Equal(t, g.Boundary(), again.Boundary())
}
