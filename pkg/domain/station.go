package domain

import (
	"evdemand/pkg/serrors"
	"math"
)

// ChargingCategory classifies a station by its rated power.
type ChargingCategory string

const (
	// ChargingNormal is AC charging and wallboxes below 50 kW.
	ChargingNormal ChargingCategory = "NORMAL"
	// ChargingFast is DC charging from 50 to 149 kW.
	ChargingFast ChargingCategory = "FAST"
	// ChargingUltra is DC charging at 150 kW and above.
	ChargingUltra ChargingCategory = "ULTRA"
)

const (
	fastChargerMinKW  = 50
	ultraChargerMinKW = 150
)

// PowerCapacity is a station's rated power in kilowatts.
type PowerCapacity float64

// NewPowerCapacity rejects negative and non-finite values.
func NewPowerCapacity(kw float64) (PowerCapacity, error) {
	if kw < 0 || math.IsNaN(kw) || math.IsInf(kw, 0) {
		return 0, serrors.With(ErrInvalidStation, "Power capacity must be a non-negative number, got: %v", kw)
	}

	return PowerCapacity(kw), nil
}

func (p PowerCapacity) Kilowatts() float64 { return float64(p) }

// ChargingStation is a single public charging point from the register.
type ChargingStation struct {
	PostalCode    PostalCode
	Latitude      float64
	Longitude     float64
	PowerCapacity PowerCapacity
	Operator      string
}

// NewChargingStation validates coordinates and power.
func NewChargingStation(pc PostalCode, lat, lon, powerKW float64, operator string) (ChargingStation, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ChargingStation{}, serrors.With(ErrInvalidStation,
			"Invalid coordinates for station in %s: lat=%v lon=%v", pc, lat, lon)
	}
	power, err := NewPowerCapacity(powerKW)
	if err != nil {
		return ChargingStation{}, err
	}

	return ChargingStation{
		PostalCode:    pc,
		Latitude:      lat,
		Longitude:     lon,
		PowerCapacity: power,
		Operator:      operator,
	}, nil
}

// IsFastCharger reports a rated power of at least 50 kW.
func (s ChargingStation) IsFastCharger() bool {
	return s.PowerCapacity.Kilowatts() >= fastChargerMinKW
}

func (s ChargingStation) ChargingCategory() ChargingCategory {
	kw := s.PowerCapacity.Kilowatts()
	switch {
	case kw >= ultraChargerMinKW:
		return ChargingUltra
	case kw >= fastChargerMinKW:
		return ChargingFast
	default:
		return ChargingNormal
	}
}
