// Package csvstore serves charging stations, population and postal code
// boundaries from the public CSV exports. The files are loaded once into
// memory; the store is read-only and safe for concurrent use.
package csvstore

import (
	"context"
	"evdemand/pkg/domain"
	"evdemand/pkg/logger"
	"evdemand/pkg/storage"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Column aliases, matched case-insensitively.
var (
	postalCodeColumns = []string{"PLZ", "Postleitzahl"}                                    //nolint: gochecknoglobals
	populationColumns = []string{"Einwohner", "population"}                                //nolint: gochecknoglobals
	geometryColumns   = []string{"geometry"}                                               //nolint: gochecknoglobals
	latitudeColumns   = []string{"Breitengrad", "latitude"}                                //nolint: gochecknoglobals
	longitudeColumns  = []string{"Längengrad", "longitude"}                                //nolint: gochecknoglobals
	powerColumns      = []string{"Nennleistung Ladeeinrichtung [kW]", "Anschlussleistung"} //nolint: gochecknoglobals
	operatorColumns   = []string{"Betreiber", "operator"}                                  //nolint: gochecknoglobals
)

// Options names the three input files. Empty paths are skipped, leaving the
// corresponding lookups empty.
type Options struct {
	StationsPath   string
	PopulationPath string
	GeoDataPath    string
}

// LoadStats summarises one file.
type LoadStats struct {
	File    string
	Rows    int
	Loaded  int
	Skipped int
}

type Store struct {
	stations   map[domain.PostalCode][]domain.ChargingStation
	population map[domain.PostalCode]domain.PopulationData
	geo        map[domain.PostalCode]domain.GeoLocation
	stats      []LoadStats
}

var _ storage.ReferenceStorage = (*Store)(nil)

// Load reads the configured files concurrently.
func Load(ctx context.Context, opts Options) (*Store, error) {
	s := &Store{
		stations:   map[domain.PostalCode][]domain.ChargingStation{},
		population: map[domain.PostalCode]domain.PopulationData{},
		geo:        map[domain.PostalCode]domain.GeoLocation{},
	}

	var stationStats, populationStats, geoStats LoadStats
	g, ctx := errgroup.WithContext(ctx)
	if opts.StationsPath != "" {
		g.Go(func() (err error) {
			s.stations, stationStats, err = loadStations(ctx, opts.StationsPath)

			return err
		})
	}
	if opts.PopulationPath != "" {
		g.Go(func() (err error) {
			s.population, populationStats, err = loadPopulation(ctx, opts.PopulationPath)

			return err
		})
	}
	if opts.GeoDataPath != "" {
		g.Go(func() (err error) {
			s.geo, geoStats, err = loadGeoData(ctx, opts.GeoDataPath)

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, st := range []LoadStats{stationStats, populationStats, geoStats} {
		if st.File == "" {
			continue
		}
		s.stats = append(s.stats, st)
		logger.Info(ctx, "loaded csv data",
			zap.String("file", st.File),
			zap.Int("rows", st.Rows),
			zap.Int("loaded", st.Loaded),
			zap.Int("skipped", st.Skipped))
	}

	return s, nil
}

// Stats returns one entry per loaded file.
func (s *Store) Stats() []LoadStats { return slices.Clone(s.stats) }

// FindStationsByPostalCode returns the loaded stations of pc.
func (s *Store) FindStationsByPostalCode(_ context.Context, pc domain.PostalCode) ([]domain.ChargingStation, error) {
	return slices.Clone(s.stations[pc]), nil
}

// FindPopulationByPostalCode returns nil when pc was not in the file.
func (s *Store) FindPopulationByPostalCode(_ context.Context, pc domain.PostalCode) (*domain.PopulationData, error) {
	p, ok := s.population[pc]
	if !ok {
		return nil, nil
	}

	return &p, nil
}

// PostalCodes lists the postal codes with population data, ascending.
func (s *Store) PostalCodes(_ context.Context) ([]domain.PostalCode, error) {
	return sortedKeys(s.population), nil
}

// FindGeoLocationByPostalCode returns nil when pc has no boundary.
func (s *Store) FindGeoLocationByPostalCode(_ context.Context, pc domain.PostalCode) (*domain.GeoLocation, error) {
	g, ok := s.geo[pc]
	if !ok {
		return nil, nil
	}

	return &g, nil
}

// Stations returns every loaded station ordered by postal code.
func (s *Store) Stations() []domain.ChargingStation {
	var out []domain.ChargingStation
	for _, pc := range sortedKeys(s.stations) {
		out = append(out, s.stations[pc]...)
	}

	return out
}

// Population returns every population record ordered by postal code.
func (s *Store) Population() []domain.PopulationData {
	out := make([]domain.PopulationData, 0, len(s.population))
	for _, pc := range sortedKeys(s.population) {
		out = append(out, s.population[pc])
	}

	return out
}

// GeoLocations returns every boundary ordered by postal code.
func (s *Store) GeoLocations() []domain.GeoLocation {
	out := make([]domain.GeoLocation, 0, len(s.geo))
	for _, pc := range sortedKeys(s.geo) {
		out = append(out, s.geo[pc])
	}

	return out
}

func sortedKeys[V any](m map[domain.PostalCode]V) []domain.PostalCode {
	keys := make([]domain.PostalCode, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b domain.PostalCode) int {
		switch {
		case a.Value() < b.Value():
			return -1
		case a.Value() > b.Value():
			return 1
		default:
			return 0
		}
	})

	return keys
}

// skip logs a rejected data row; row counts from 1 after the header.
func skip(ctx context.Context, file string, row int, err error) {
	logger.Debug(ctx, "skipping csv row", zap.String("file", file), zap.Int("row", row), zap.Error(err))
}

func loadStations(ctx context.Context, path string) (map[domain.PostalCode][]domain.ChargingStation, LoadStats, error) {
	stats := LoadStats{File: path}
	t, err := readTable(path, postalCodeColumns)
	if err != nil {
		return nil, stats, err
	}

	pcCol, _ := lookup(t.columns, postalCodeColumns)
	latCol, okLat := lookup(t.columns, latitudeColumns)
	lonCol, okLon := lookup(t.columns, longitudeColumns)
	powerCol, okPower := lookup(t.columns, powerColumns)
	if !okLat || !okLon || !okPower {
		return nil, stats, fmt.Errorf("%s: missing latitude, longitude or power column", path)
	}
	opCol, okOp := lookup(t.columns, operatorColumns)
	if !okOp {
		opCol = -1
	}

	out := map[domain.PostalCode][]domain.ChargingStation{}
	for i, rec := range t.rows {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		stats.Rows++

		s, err := parseStation(rec, pcCol, latCol, lonCol, powerCol, opCol)
		if err != nil {
			stats.Skipped++
			skip(ctx, path, i+1, err)

			continue
		}
		out[s.PostalCode] = append(out[s.PostalCode], s)
		stats.Loaded++
	}

	return out, stats, nil
}

func parseStation(rec []string, pcCol, latCol, lonCol, powerCol, opCol int) (domain.ChargingStation, error) {
	pc, err := domain.NewPostalCode(field(rec, pcCol))
	if err != nil {
		return domain.ChargingStation{}, err
	}
	lat, err := parseDecimal(field(rec, latCol))
	if err != nil {
		return domain.ChargingStation{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := parseDecimal(field(rec, lonCol))
	if err != nil {
		return domain.ChargingStation{}, fmt.Errorf("longitude: %w", err)
	}
	power, err := parseDecimal(field(rec, powerCol))
	if err != nil {
		return domain.ChargingStation{}, fmt.Errorf("power: %w", err)
	}

	return domain.NewChargingStation(pc, lat, lon, power, field(rec, opCol))
}

func loadPopulation(ctx context.Context, path string) (map[domain.PostalCode]domain.PopulationData, LoadStats, error) {
	stats := LoadStats{File: path}
	t, err := readTable(path, postalCodeColumns)
	if err != nil {
		return nil, stats, err
	}

	pcCol, _ := lookup(t.columns, postalCodeColumns)
	popCol, ok := lookup(t.columns, populationColumns)
	if !ok {
		return nil, stats, fmt.Errorf("%s: missing population column", path)
	}

	out := map[domain.PostalCode]domain.PopulationData{}
	for i, rec := range t.rows {
		stats.Rows++

		p, err := parsePopulation(rec, pcCol, popCol)
		if err == nil {
			if _, dup := out[p.PostalCode()]; dup {
				err = fmt.Errorf("duplicate postal code %s", p.PostalCode())
			}
		}
		if err != nil {
			stats.Skipped++
			skip(ctx, path, i+1, err)

			continue
		}
		out[p.PostalCode()] = p
		stats.Loaded++
	}

	return out, stats, nil
}

func parsePopulation(rec []string, pcCol, popCol int) (domain.PopulationData, error) {
	pc, err := domain.NewPostalCode(field(rec, pcCol))
	if err != nil {
		return domain.PopulationData{}, err
	}
	n, err := parseCount(field(rec, popCol))
	if err != nil {
		return domain.PopulationData{}, fmt.Errorf("population: %w", err)
	}

	return domain.NewPopulationData(pc, n)
}

func loadGeoData(ctx context.Context, path string) (map[domain.PostalCode]domain.GeoLocation, LoadStats, error) {
	stats := LoadStats{File: path}
	t, err := readTable(path, postalCodeColumns)
	if err != nil {
		return nil, stats, err
	}

	pcCol, _ := lookup(t.columns, postalCodeColumns)
	geomCol, ok := lookup(t.columns, geometryColumns)
	if !ok {
		return nil, stats, fmt.Errorf("%s: missing geometry column", path)
	}

	out := map[domain.PostalCode]domain.GeoLocation{}
	for i, rec := range t.rows {
		stats.Rows++

		pc, err := domain.NewPostalCode(field(rec, pcCol))
		var g domain.GeoLocation
		if err == nil {
			g, err = domain.NewGeoLocationFromWKT(pc, field(rec, geomCol))
		}
		if err == nil {
			if _, dup := out[pc]; dup {
				err = fmt.Errorf("duplicate postal code %s", pc)
			}
		}
		if err != nil {
			stats.Skipped++
			skip(ctx, path, i+1, err)

			continue
		}
		out[pc] = g
		stats.Loaded++
	}

	return out, stats, nil
}
