package maps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validateRoute(o RouteOptions) error {
	for _, rule := range RouteRules() {
		if err := rule(o); err != nil {
			return err
		}
	}
	return nil
}

func TestRouteOptionsEncodeOrder(t *testing.T) {
	arrival := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	o := RouteOptions{
		ArrivalTime:            &arrival,
		Language:               ptr(LanguageFinnish),
		Region:                 ptr(RegionFinland),
		Restrictions:           []Avoid{AvoidTolls, AvoidFerries},
		TransitModes:           []TransitMode{TransitModeBus, TransitModeTram},
		TransitRoutePreference: ptr(TransitRoutePreferenceLessWalking),
		TravelMode:             ptr(TravelModeTransit),
		UnitSystem:             ptr(UnitSystemMetric),
	}

	var q Query
	o.Encode(&q)
	assert.Equal(t,
		"arrival_time=1704099600&language=fi&region=fi&avoid=tolls%7Cferries&transit_mode=bus%7Ctram&transit_routing_preference=less_walking&mode=transit&units=metric",
		q.Encode())
}

func TestArrivalTimeOutsideTransit(t *testing.T) {
	arrival := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	err := validateRoute(RouteOptions{ArrivalTime: &arrival, TravelMode: ptr(TravelModeDriving)})
	var arrivalErr *ArrivalTimeIsForTransitOnlyError
	require.ErrorAs(t, err, &arrivalErr)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "driving")
	assert.Contains(t, err.Error(), "2024-01-01 09:00:00 AM")

	// the service picks the mode when none is set
	assert.NoError(t, validateRoute(RouteOptions{ArrivalTime: &arrival}))

	assert.NoError(t, validateRoute(RouteOptions{ArrivalTime: &arrival, TravelMode: ptr(TravelModeTransit)}))
}

func TestTransitOnlyOptions(t *testing.T) {
	err := validateRoute(RouteOptions{TransitModes: []TransitMode{TransitModeRail}, TravelMode: ptr(TravelModeWalking)})
	var modeErr *TransitModeIsForTransitOnlyError
	require.ErrorAs(t, err, &modeErr)
	assert.Equal(t, "rail", modeErr.TransitModes)

	err = validateRoute(RouteOptions{
		TransitRoutePreference: ptr(TransitRoutePreferenceFewerTransfers),
		TravelMode:             ptr(TravelModeBicycling),
	})
	var prefErr *TransitRoutePreferenceIsForTransitOnlyError
	require.ErrorAs(t, err, &prefErr)
	assert.Equal(t, TravelModeBicycling, prefErr.TravelMode)

	assert.NoError(t, validateRoute(RouteOptions{
		TransitModes:           []TransitMode{TransitModeRail},
		TransitRoutePreference: ptr(TransitRoutePreferenceFewerTransfers),
	}))
}

func TestBothTimeAnchors(t *testing.T) {
	arrival := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	err := validateRoute(RouteOptions{
		ArrivalTime:   &arrival,
		DepartureTime: ptr(DepartNow()),
		TravelMode:    ptr(TravelModeTransit),
	})
	var anchorErr *EitherDepartureTimeOrArrivalTimeError
	require.ErrorAs(t, err, &anchorErr)
	assert.Equal(t, "now", anchorErr.DepartureTime)

	err = validateRoute(RouteOptions{ArrivalTime: &arrival, DepartureTime: ptr(DepartNow())})
	require.ErrorAs(t, err, &anchorErr)
}

func TestTrafficModelNeedsDeparture(t *testing.T) {
	err := validateRoute(RouteOptions{TrafficModel: ptr(TrafficModelPessimistic)})
	var trafficErr *TrafficModelRequiresDepartureTimeError
	require.ErrorAs(t, err, &trafficErr)

	assert.NoError(t, validateRoute(RouteOptions{TrafficModel: ptr(TrafficModelPessimistic), DepartureTime: ptr(DepartNow())}))
}

func TestRuleOrder(t *testing.T) {
	arrival := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	// violates arrival, transit mode and anchor rules; the arrival rule is first
	err := validateRoute(RouteOptions{
		ArrivalTime:   &arrival,
		DepartureTime: ptr(DepartNow()),
		TransitModes:  []TransitMode{TransitModeBus},
		TravelMode:    ptr(TravelModeDriving),
	})
	var arrivalErr *ArrivalTimeIsForTransitOnlyError
	assert.ErrorAs(t, err, &arrivalErr)
}

func TestLift(t *testing.T) {
	type wrapper struct{ route RouteOptions }
	rule := Lift(func(w wrapper) RouteOptions { return w.route }, CheckTrafficModel)
	assert.Error(t, rule(wrapper{route: RouteOptions{TrafficModel: ptr(TrafficModelOptimistic)}}))
	assert.NoError(t, rule(wrapper{}))
}
