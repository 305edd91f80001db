package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event type names, as returned by Event.EventType.
const (
	EventPostalCodeValidated      = "PostalCodeValidated"
	EventStationSearchPerformed   = "StationSearchPerformed"
	EventStationSearchFailed      = "StationSearchFailed"
	EventNoStationsFound          = "NoStationsFound"
	EventDemandAnalysisCalculated = "DemandAnalysisCalculated"
)

// Event is something that happened in the domain. Events are immutable.
type Event interface {
	ID() uuid.UUID
	OccurredAt() time.Time
	EventType() string
	// AggregateKey identifies what the event is about; for all current
	// events this is the postal code.
	AggregateKey() string
}

// EventMeta carries the identity and timestamp shared by every event.
type EventMeta struct {
	EventID   uuid.UUID
	Timestamp time.Time
}

func newEventMeta() EventMeta {
	return EventMeta{EventID: uuid.New(), Timestamp: now()}
}

func (m EventMeta) ID() uuid.UUID         { return m.EventID }
func (m EventMeta) OccurredAt() time.Time { return m.Timestamp }

// PostalCodeValidated is emitted once a postal code passed format, region and
// range validation.
type PostalCodeValidated struct {
	EventMeta
	PostalCode PostalCode
}

func NewPostalCodeValidated(pc PostalCode) PostalCodeValidated {
	return PostalCodeValidated{EventMeta: newEventMeta(), PostalCode: pc}
}

func (PostalCodeValidated) EventType() string      { return EventPostalCodeValidated }
func (e PostalCodeValidated) AggregateKey() string { return e.PostalCode.Value() }

// StationSearchPerformed is emitted after a successful station lookup, even
// when nothing was found.
type StationSearchPerformed struct {
	EventMeta
	PostalCode       PostalCode
	StationsFound    int
	SearchParameters map[string]string
}

func NewStationSearchPerformed(pc PostalCode, found int, params map[string]string) StationSearchPerformed {
	cp := make(map[string]string, len(params))
	for k, v := range params {
		cp[k] = v
	}

	return StationSearchPerformed{
		EventMeta:        newEventMeta(),
		PostalCode:       pc,
		StationsFound:    found,
		SearchParameters: cp,
	}
}

func (StationSearchPerformed) EventType() string      { return EventStationSearchPerformed }
func (e StationSearchPerformed) AggregateKey() string { return e.PostalCode.Value() }

// StationSearchFailed is emitted when a station lookup errored. ErrorType is
// optional.
type StationSearchFailed struct {
	EventMeta
	PostalCode   PostalCode
	ErrorMessage string
	ErrorType    string
}

func NewStationSearchFailed(pc PostalCode, message, errorType string) StationSearchFailed {
	return StationSearchFailed{
		EventMeta:    newEventMeta(),
		PostalCode:   pc,
		ErrorMessage: message,
		ErrorType:    errorType,
	}
}

func (StationSearchFailed) EventType() string      { return EventStationSearchFailed }
func (e StationSearchFailed) AggregateKey() string { return e.PostalCode.Value() }

// NoStationsFound marks a successful search with zero results, i.e. a
// coverage gap.
type NoStationsFound struct {
	EventMeta
	PostalCode PostalCode
}

func NewNoStationsFound(pc PostalCode) NoStationsFound {
	return NoStationsFound{EventMeta: newEventMeta(), PostalCode: pc}
}

func (NoStationsFound) EventType() string      { return EventNoStationsFound }
func (e NoStationsFound) AggregateKey() string { return e.PostalCode.Value() }

// DemandAnalysisCalculated carries the outcome of a demand analysis.
type DemandAnalysisCalculated struct {
	EventMeta
	PostalCode          PostalCode
	Population          int
	StationCount        int
	DemandPriority      DemandPriority
	CoverageAssessment  CoverageAssessment
	ResidentsPerStation float64
}

func (DemandAnalysisCalculated) EventType() string      { return EventDemandAnalysisCalculated }
func (e DemandAnalysisCalculated) AggregateKey() string { return e.PostalCode.Value() }
