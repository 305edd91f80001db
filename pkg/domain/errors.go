package domain

import (
	"errors"
	"evdemand/pkg/serrors"
)

// Validation kinds raised while constructing domain values.
var (
	ErrInvalidPostalCode   = serrors.NewKind("INVALID_POSTAL_CODE")
	ErrNegativePopulation  = serrors.NewKind("NEGATIVE_POPULATION")
	ErrInvalidGeoLocation  = serrors.NewKind("INVALID_GEO_LOCATION")
	ErrInvalidStationCount = serrors.NewKind("INVALID_STATION_COUNT")
	ErrInvalidStation      = serrors.NewKind("INVALID_STATION")
)

// ErrBoundaryParse is returned when boundary text is not valid polygon WKT.
// The parser error stays reachable through errors.Is/As.
var ErrBoundaryParse = serrors.NewKind("BOUNDARY_PARSE")

// IsValidation reports whether err was raised by domain validation or
// boundary parsing, i.e. whether the input itself was at fault.
func IsValidation(err error) bool {
	for _, k := range []error{
		ErrInvalidPostalCode,
		ErrNegativePopulation,
		ErrInvalidGeoLocation,
		ErrInvalidStationCount,
		ErrInvalidStation,
		ErrBoundaryParse,
	} {
		if errors.Is(err, k) {
			return true
		}
	}

	return false
}
