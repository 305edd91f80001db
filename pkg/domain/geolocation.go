package domain

import (
	"evdemand/pkg/serrors"
	"regexp"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"
)

const emptyBoundaryMessage = "Geo Location boundary cannot be None or empty."

var (
	// dimensionTag matches the Z, M or ZM marker after a geometry keyword.
	dimensionTag = regexp.MustCompile(`(?i)([a-z]) (?:zm|z|m)\(`) //nolint: gochecknoglobals
	// extraOrdinates matches a coordinate with a third and maybe fourth value.
	extraOrdinates = regexp.MustCompile(`([^ ,()]+ [^ ,()]+)(?: [^ ,()]+){1,2}`) //nolint: gochecknoglobals
)

// minRingPoints is the smallest closed ring: a triangle plus the repeated
// first point.
const minRingPoints = 4

// GeoLocation is the boundary of one postal code area. Coordinates are WGS84
// with X as longitude and Y as latitude.
type GeoLocation struct {
	postalCode PostalCode
	boundary   orb.Geometry
}

// NewGeoLocationFromWKT parses a POLYGON or MULTIPOLYGON boundary. An empty
// string is an invalid location; anything else that does not parse, including
// whitespace only text, is a parse error.
func NewGeoLocationFromWKT(pc PostalCode, boundaryWKT string) (GeoLocation, error) {
	if boundaryWKT == "" {
		return GeoLocation{}, serrors.With(ErrInvalidGeoLocation, emptyBoundaryMessage)
	}

	normalized := normalizeWKT(boundaryWKT)
	if normalized == "" {
		return GeoLocation{}, serrors.With(ErrBoundaryParse, "could not parse boundary: blank WKT")
	}

	g, err := wkt.Unmarshal(flattenWKT(normalized))
	if err != nil {
		return GeoLocation{}, serrors.Wrap(ErrBoundaryParse, err, "could not parse boundary")
	}

	return NewGeoLocation(pc, g)
}

// normalizeWKT collapses whitespace runs and drops spaces next to
// parentheses and commas, which is the form the parser emits itself.
func normalizeWKT(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	for _, tok := range []string{"(", ")", ","} {
		s = strings.ReplaceAll(s, " "+tok, tok)
		s = strings.ReplaceAll(s, tok+" ", tok)
	}

	return s
}

// flattenWKT drops Z and M ordinates; areas and containment are planar.
// Input must be normalized.
func flattenWKT(s string) string {
	s = dimensionTag.ReplaceAllString(s, "$1(")

	return extraOrdinates.ReplaceAllString(s, "$1")
}

// NewGeoLocation accepts a pre-built boundary geometry.
func NewGeoLocation(pc PostalCode, boundary orb.Geometry) (GeoLocation, error) {
	if isEmptyBoundary(boundary) {
		return GeoLocation{}, serrors.With(ErrInvalidGeoLocation, emptyBoundaryMessage)
	}
	if err := validateBoundary(boundary); err != nil {
		return GeoLocation{}, err
	}

	return GeoLocation{postalCode: pc, boundary: boundary}, nil
}

func (g GeoLocation) PostalCode() PostalCode { return g.postalCode }

// Boundary returns the parsed geometry.
func (g GeoLocation) Boundary() orb.Geometry { return g.boundary }

// Empty reports whether the boundary holds no area. Constructed locations are
// never empty; the zero value is.
func (g GeoLocation) Empty() bool {
	return isEmptyBoundary(g.boundary)
}

// WKT returns the canonical text form of the boundary.
func (g GeoLocation) WKT() string {
	if g.boundary == nil {
		return ""
	}

	return wkt.MarshalString(g.boundary)
}

// AreaKm2 returns the geodesic area of the boundary in square kilometres.
func (g GeoLocation) AreaKm2() float64 {
	if g.boundary == nil {
		return 0
	}

	return geo.Area(g.boundary) / 1e6
}

// Contains reports whether the coordinate lies inside the boundary.
func (g GeoLocation) Contains(lat, lon float64) bool {
	return boundaryContains(g.boundary, orb.Point{lon, lat})
}

func boundaryContains(g orb.Geometry, p orb.Point) bool {
	switch b := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(b, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(b, p)
	case orb.Collection:
		for _, part := range b {
			if boundaryContains(part, p) {
				return true
			}
		}
	}

	return false
}

func isEmptyBoundary(g orb.Geometry) bool {
	switch b := g.(type) {
	case nil:
		return true
	case orb.Polygon:
		return len(b) == 0
	case orb.MultiPolygon:
		for _, p := range b {
			if len(p) > 0 {
				return false
			}
		}

		return true
	case orb.Collection:
		for _, part := range b {
			if !isEmptyBoundary(part) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func validateBoundary(g orb.Geometry) error {
	switch b := g.(type) {
	case orb.Polygon:
		return validatePolygon(b)
	case orb.MultiPolygon:
		for _, p := range b {
			if err := validatePolygon(p); err != nil {
				return err
			}
		}

		return nil
	case orb.Collection:
		for _, part := range b {
			if err := validateBoundary(part); err != nil {
				return err
			}
		}

		return nil
	default:
		return serrors.With(ErrBoundaryParse,
			"could not parse boundary: %s is not a polygon or multipolygon", g.GeoJSONType())
	}
}

func validatePolygon(p orb.Polygon) error {
	for _, ring := range p {
		if len(ring) < minRingPoints {
			return serrors.With(ErrBoundaryParse,
				"could not parse boundary: ring needs at least %d points, got %d", minRingPoints, len(ring))
		}
		if ring[0] != ring[len(ring)-1] {
			return serrors.With(ErrBoundaryParse, "could not parse boundary: ring is not closed")
		}
	}

	return nil
}
