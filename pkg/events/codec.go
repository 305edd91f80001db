package events

import (
	"evdemand/pkg/domain"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Encode renders e as a flat JSON object. Every object carries event_id,
// event_type, occurred_at and postal_code, followed by the event's own fields.
func Encode(e domain.Event) ([]byte, error) {
	if e == nil {
		return nil, errors.New("nil event")
	}

	var enc jx.Encoder
	enc.ObjStart()
	enc.FieldStart("event_id")
	enc.Str(e.ID().String())
	enc.FieldStart("event_type")
	enc.Str(e.EventType())
	enc.FieldStart("occurred_at")
	enc.Str(e.OccurredAt().UTC().Format(time.RFC3339Nano))
	enc.FieldStart("postal_code")
	enc.Str(e.AggregateKey())

	switch ev := e.(type) {
	case domain.PostalCodeValidated, domain.NoStationsFound:
	case domain.StationSearchPerformed:
		enc.FieldStart("stations_found")
		enc.Int(ev.StationsFound)
		enc.FieldStart("search_parameters")
		encodeParams(&enc, ev.SearchParameters)
	case domain.StationSearchFailed:
		enc.FieldStart("error_message")
		enc.Str(ev.ErrorMessage)
		if ev.ErrorType != "" {
			enc.FieldStart("error_type")
			enc.Str(ev.ErrorType)
		}
	case domain.DemandAnalysisCalculated:
		enc.FieldStart("population")
		enc.Int(ev.Population)
		enc.FieldStart("station_count")
		enc.Int(ev.StationCount)
		enc.FieldStart("demand_priority")
		enc.Str(string(ev.DemandPriority))
		enc.FieldStart("coverage_assessment")
		enc.Str(string(ev.CoverageAssessment))
		enc.FieldStart("residents_per_station")
		enc.Float64(ev.ResidentsPerStation)
	default:
		return nil, errors.Errorf("unsupported event %T", e)
	}
	enc.ObjEnd()

	return enc.Bytes(), nil
}

func encodeParams(enc *jx.Encoder, params map[string]string) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	enc.ObjStart()
	for _, k := range keys {
		enc.FieldStart(k)
		enc.Str(params[k])
	}
	enc.ObjEnd()
}
