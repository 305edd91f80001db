package csvstore_test

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/storage/csvstore"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const (
	stationsCSV = "Ladesäulenregister der Bundesnetzagentur;;;\n" +
		"Stand: 01.03.2026;;;\n" +
		";;;\n" +
		"Betreiber;Straße;Postleitzahl;Ort;Breitengrad;Längengrad;Nennleistung Ladeeinrichtung [kW]\n" +
		"Allego GmbH;Invalidenstraße 1;10115;Berlin;52,5312;13,3842;150\n" +
		"Stromnetz Berlin GmbH;Chausseestraße 2;10115;Berlin;52,53;13,38;22\n" +
		"SWM;Marienplatz 1;80331;München;48,137;11,575;50\n" +
		"Kaputt;Karl-Marx-Straße 3;12043;Berlin;nördlich;13,43;11\n" +
		"Ionity;Sonnenallee 4;12043;Berlin;52,48;13,44;350\n" +
		";;;;;;\n"

	populationCSV = "\ufeffplz;einwohner\n" +
		"10115;30000\n" +
		"12043;25000,0\n" +
		"13353;-5\n" +
		"10115;1\n" +
		"abc;100\n" +
		"10178;\n"

	geoCSV = "PLZ;geometry\n" +
		"10115;POLYGON ((13.4 52.5, 13.5 52.5, 13.5 52.6, 13.4 52.6, 13.4 52.5))\n" +
		"12043;NOT WKT\n" +
		"20095;POLYGON ((9.9 53.5, 10.0 53.5, 10.0 53.6, 9.9 53.6, 9.9 53.5))\n" +
		"13353;\n"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o600))

	return p
}

func windows1252(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)

	return b
}

func loadFixtures(t *testing.T) *csvstore.Store {
	t.Helper()
	dir := t.TempDir()

	s, err := csvstore.Load(context.Background(), csvstore.Options{
		StationsPath:   writeFile(t, dir, "stations.csv", windows1252(t, stationsCSV)),
		PopulationPath: writeFile(t, dir, "population.csv", []byte(populationCSV)),
		GeoDataPath:    writeFile(t, dir, "geo.csv", []byte(geoCSV)),
	})
	require.NoError(t, err)

	return s
}

func TestLoad_Stations(t *testing.T) {
	s := loadFixtures(t)
	ctx := context.Background()

	stations, err := s.FindStationsByPostalCode(ctx, domain.MustPostalCode("10115"))
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "Allego GmbH", stations[0].Operator)
	assert.InDelta(t, 52.5312, stations[0].Latitude, 1e-9)
	assert.InDelta(t, 13.3842, stations[0].Longitude, 1e-9)
	assert.InDelta(t, 150.0, stations[0].PowerCapacity.Kilowatts(), 1e-9)
	assert.Equal(t, domain.ChargingUltra, stations[0].ChargingCategory())

	stations, err = s.FindStationsByPostalCode(ctx, domain.MustPostalCode("12043"))
	require.NoError(t, err)
	require.Len(t, stations, 1, "row with an unparsable latitude is skipped")

	stations, err = s.FindStationsByPostalCode(ctx, domain.MustPostalCode("13353"))
	require.NoError(t, err)
	require.Empty(t, stations)

	require.Len(t, s.Stations(), 3)
	require.Equal(t, "10115", s.Stations()[0].PostalCode.Value())
}

func TestLoad_Population(t *testing.T) {
	s := loadFixtures(t)
	ctx := context.Background()

	p, err := s.FindPopulationByPostalCode(ctx, domain.MustPostalCode("10115"))
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, 30000, p.Population(), "first row wins over duplicates")

	p, err = s.FindPopulationByPostalCode(ctx, domain.MustPostalCode("12043"))
	require.NoError(t, err)
	require.Equal(t, 25000, p.Population())

	p, err = s.FindPopulationByPostalCode(ctx, domain.MustPostalCode("13353"))
	require.NoError(t, err)
	require.Nil(t, p, "negative population is skipped")

	codes, err := s.PostalCodes(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.PostalCode{domain.MustPostalCode("10115"), domain.MustPostalCode("12043")}, codes)
	require.Len(t, s.Population(), 2)
}

func TestLoad_GeoData(t *testing.T) {
	s := loadFixtures(t)
	ctx := context.Background()

	g, err := s.FindGeoLocationByPostalCode(ctx, domain.MustPostalCode("10115"))
	require.NoError(t, err)
	require.NotNil(t, g)
	require.False(t, g.Empty())

	g, err = s.FindGeoLocationByPostalCode(ctx, domain.MustPostalCode("12043"))
	require.NoError(t, err)
	require.Nil(t, g)

	require.Len(t, s.GeoLocations(), 1)
}

func TestLoad_Stats(t *testing.T) {
	stats := loadFixtures(t).Stats()
	require.Len(t, stats, 3)

	byFile := map[string]csvstore.LoadStats{}
	for _, st := range stats {
		byFile[filepath.Base(st.File)] = st
	}

	assert.Equal(t, 5, byFile["stations.csv"].Rows)
	assert.Equal(t, 3, byFile["stations.csv"].Loaded)
	assert.Equal(t, 2, byFile["stations.csv"].Skipped)

	assert.Equal(t, 6, byFile["population.csv"].Rows)
	assert.Equal(t, 2, byFile["population.csv"].Loaded)
	assert.Equal(t, 4, byFile["population.csv"].Skipped)

	assert.Equal(t, 4, byFile["geo.csv"].Rows)
	assert.Equal(t, 1, byFile["geo.csv"].Loaded)
	assert.Equal(t, 3, byFile["geo.csv"].Skipped)
}

func TestLoad_OptionalFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := csvstore.Load(context.Background(), csvstore.Options{
		PopulationPath: writeFile(t, dir, "population.csv", []byte(populationCSV)),
	})
	require.NoError(t, err)
	require.Len(t, s.Stats(), 1)

	stations, err := s.FindStationsByPostalCode(context.Background(), domain.MustPostalCode("10115"))
	require.NoError(t, err)
	require.Empty(t, stations)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		opts csvstore.Options
	}{
		{
			name: "missing file",
			opts: csvstore.Options{PopulationPath: filepath.Join(dir, "nope.csv")},
		},
		{
			name: "no header",
			opts: csvstore.Options{PopulationPath: writeFile(t, dir, "noheader.csv", []byte("a;b\n1;2\n"))},
		},
		{
			name: "missing population column",
			opts: csvstore.Options{PopulationPath: writeFile(t, dir, "nopop.csv", []byte("PLZ;Bezirk\n10115;Mitte\n"))},
		},
		{
			name: "missing power column",
			opts: csvstore.Options{StationsPath: writeFile(t, dir, "nopower.csv",
				[]byte("Postleitzahl;Breitengrad;Längengrad\n10115;52,5;13,4\n"))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := csvstore.Load(context.Background(), tt.opts)
			require.Error(t, err)
		})
	}
}
