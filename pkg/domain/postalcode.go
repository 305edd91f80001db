package domain

import (
	"evdemand/pkg/serrors"
	"strconv"
	"strings"
)

const (
	postalCodeLength = 5
	// berlinMinPostalCode and berlinMaxPostalCode bound the numeric range of
	// Berlin postal codes (Mitte 10115 to Spandau/Wannsee 14199).
	berlinMinPostalCode = 10115
	berlinMaxPostalCode = 14199
)

// berlinPrefixes lists the leading two digits used by Berlin postal codes.
var berlinPrefixes = map[string]struct{}{ //nolint: gochecknoglobals
	"10": {},
	"12": {},
	"13": {},
	"14": {},
}

// PostalCode is a validated Berlin postal code. The zero value is not a
// valid postal code; use NewPostalCode.
type PostalCode struct {
	value string
}

// NewPostalCode trims raw and validates format (five ASCII digits) and
// region (Berlin prefix and range).
func NewPostalCode(raw string) (PostalCode, error) {
	v := strings.TrimSpace(raw)

	if len(v) != postalCodeLength {
		return PostalCode{}, serrors.With(ErrInvalidPostalCode,
			"Invalid postal code %q: must be exactly %d digits", raw, postalCodeLength)
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return PostalCode{}, serrors.With(ErrInvalidPostalCode,
				"Invalid postal code %q: must be numeric", raw)
		}
	}
	if _, ok := berlinPrefixes[v[:2]]; !ok {
		return PostalCode{}, serrors.With(ErrInvalidPostalCode,
			"Invalid postal code %q: not a Berlin postal code (must start with 10, 12, 13 or 14)", raw)
	}
	n, _ := strconv.Atoi(v)
	if n < berlinMinPostalCode || n > berlinMaxPostalCode {
		return PostalCode{}, serrors.With(ErrInvalidPostalCode,
			"Invalid postal code %q: outside Berlin range %d-%d", raw, berlinMinPostalCode, berlinMaxPostalCode)
	}

	return PostalCode{value: v}, nil
}

// MustPostalCode is NewPostalCode for literals known to be valid.
func MustPostalCode(raw string) PostalCode {
	pc, err := NewPostalCode(raw)
	if err != nil {
		panic(err)
	}

	return pc
}

// Value returns the five digit code.
func (p PostalCode) Value() string { return p.value }

func (p PostalCode) String() string { return p.value }

// IsZero reports whether p was never validated.
func (p PostalCode) IsZero() bool { return p.value == "" }

// Equals compares two postal codes by value.
func (p PostalCode) Equals(other PostalCode) bool { return p.value == other.value }

// MarshalText implements encoding.TextMarshaler.
func (p PostalCode) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and validates the input.
func (p *PostalCode) UnmarshalText(text []byte) error {
	pc, err := NewPostalCode(string(text))
	if err != nil {
		return err
	}
	*p = pc

	return nil
}
