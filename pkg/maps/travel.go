package maps

import (
	"encoding/json"
	"strings"
)

// TravelMode selects the means of transport.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

var travelModes = NewCodeTable("TravelMode",
	TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit)

// ParseTravelMode looks up a travel mode by its exact wire code.
func ParseTravelMode(code string) (TravelMode, error) { return travelModes.Parse(code) }

// TravelModes lists every travel mode.
func TravelModes() []TravelMode { return travelModes.All() }

func (m TravelMode) String() string { return string(m) }

func (m TravelMode) MarshalText() ([]byte, error) { return travelModes.Marshal(m) }

func (m *TravelMode) UnmarshalText(text []byte) error { return travelModes.Unmarshal(text, m) }

// UnmarshalJSON accepts the upper-case spelling used in response bodies.
func (m *TravelMode) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(strings.ToLower(code)))
}

// Avoid is a route restriction.
type Avoid string

const (
	AvoidTolls    Avoid = "tolls"
	AvoidHighways Avoid = "highways"
	AvoidFerries  Avoid = "ferries"
	AvoidIndoor   Avoid = "indoor"
)

var restrictions = NewCodeTable("Avoid", AvoidTolls, AvoidHighways, AvoidFerries, AvoidIndoor)

// ParseAvoid looks up a route restriction by its wire code.
func ParseAvoid(code string) (Avoid, error) { return restrictions.Parse(code) }

// Restrictions lists every route restriction.
func Restrictions() []Avoid { return restrictions.All() }

func (a Avoid) String() string { return string(a) }

func (a Avoid) MarshalText() ([]byte, error) { return restrictions.Marshal(a) }

func (a *Avoid) UnmarshalText(text []byte) error { return restrictions.Unmarshal(text, a) }

// TrafficModel picks the assumption used for in-traffic durations.
type TrafficModel string

const (
	TrafficModelBestGuess   TrafficModel = "best_guess"
	TrafficModelPessimistic TrafficModel = "pessimistic"
	TrafficModelOptimistic  TrafficModel = "optimistic"
)

var trafficModels = NewCodeTable("TrafficModel",
	TrafficModelBestGuess, TrafficModelPessimistic, TrafficModelOptimistic)

// ParseTrafficModel looks up a traffic model by its wire code.
func ParseTrafficModel(code string) (TrafficModel, error) { return trafficModels.Parse(code) }

// TrafficModels lists every traffic model.
func TrafficModels() []TrafficModel { return trafficModels.All() }

func (t TrafficModel) String() string { return string(t) }

func (t TrafficModel) MarshalText() ([]byte, error) { return trafficModels.Marshal(t) }

func (t *TrafficModel) UnmarshalText(text []byte) error { return trafficModels.Unmarshal(text, t) }

// TransitMode is a preferred public transport vehicle.
type TransitMode string

const (
	TransitModeBus    TransitMode = "bus"
	TransitModeSubway TransitMode = "subway"
	TransitModeTrain  TransitMode = "train"
	TransitModeTram   TransitMode = "tram"
	// TransitModeRail is shorthand for train, tram and subway.
	TransitModeRail TransitMode = "rail"
)

var transitModes = NewCodeTable("TransitMode",
	TransitModeBus, TransitModeSubway, TransitModeTrain, TransitModeTram, TransitModeRail)

// ParseTransitMode looks up a transit vehicle preference by its wire code.
func ParseTransitMode(code string) (TransitMode, error) { return transitModes.Parse(code) }

// TransitModes lists every transit mode.
func TransitModes() []TransitMode { return transitModes.All() }

func (t TransitMode) String() string { return string(t) }

func (t TransitMode) MarshalText() ([]byte, error) { return transitModes.Marshal(t) }

func (t *TransitMode) UnmarshalText(text []byte) error { return transitModes.Unmarshal(text, t) }

// TransitRoutePreference biases transit routes.
type TransitRoutePreference string

const (
	TransitRoutePreferenceLessWalking    TransitRoutePreference = "less_walking"
	TransitRoutePreferenceFewerTransfers TransitRoutePreference = "fewer_transfers"
)

var transitRoutePreferences = NewCodeTable("TransitRoutePreference",
	TransitRoutePreferenceLessWalking, TransitRoutePreferenceFewerTransfers)

// TransitRoutePreferences lists every transit route preference.
func TransitRoutePreferences() []TransitRoutePreference { return transitRoutePreferences.All() }

// ParseTransitRoutePreference looks up a transit route preference by its wire code.
func ParseTransitRoutePreference(code string) (TransitRoutePreference, error) {
	return transitRoutePreferences.Parse(code)
}

func (p TransitRoutePreference) String() string { return string(p) }

func (p TransitRoutePreference) MarshalText() ([]byte, error) {
	return transitRoutePreferences.Marshal(p)
}

func (p *TransitRoutePreference) UnmarshalText(text []byte) error {
	return transitRoutePreferences.Unmarshal(text, p)
}

// UnitSystem controls the units of distance texts in responses.
type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

var unitSystems = NewCodeTable("UnitSystem", UnitSystemMetric, UnitSystemImperial)

// ParseUnitSystem looks up a unit system by its wire code.
func ParseUnitSystem(code string) (UnitSystem, error) { return unitSystems.Parse(code) }

// UnitSystems lists every unit system.
func UnitSystems() []UnitSystem { return unitSystems.All() }

func (u UnitSystem) String() string { return string(u) }

func (u UnitSystem) MarshalText() ([]byte, error) { return unitSystems.Marshal(u) }

func (u *UnitSystem) UnmarshalText(text []byte) error { return unitSystems.Unmarshal(text, u) }
