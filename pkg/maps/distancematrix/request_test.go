package distancematrix

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/richxcame/mapsclient/pkg/maps"
	"github.com/richxcame/mapsclient/pkg/maps/mapstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stops(names ...string) []maps.Waypoint {
	waypoints := make([]maps.Waypoint, len(names))
	for i, name := range names {
		waypoints[i] = maps.Stop(maps.Address(name))
	}
	return waypoints
}

func numbered(n int) []maps.Waypoint {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("stop %d", i)
	}
	return stops(names...)
}

func TestQuery(t *testing.T) {
	req := New(nil, stops("Vancouver BC", "Seattle"), stops("San Francisco")).
		WithDestinations(maps.Stop(maps.Coordinates(maps.LatLng{Lat: 37.4, Lng: -122.1}))).
		WithTravelMode(maps.TravelModeBicycling).
		WithLanguage(maps.LanguageFrenchCanada).
		WithUnitSystem(maps.UnitSystemImperial)

	require.NoError(t, req.Validate())
	query, err := req.Query()
	require.NoError(t, err)
	assert.Equal(t,
		"destinations=San+Francisco%7C37.400000%2C-122.100000&origins=Vancouver+BC%7CSeattle&language=fr-CA&mode=bicycling&units=imperial",
		query)
}

func TestTransitArrival(t *testing.T) {
	arrival := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	req := New(nil, stops("New York"), stops("Boston")).
		WithTravelMode(maps.TravelModeTransit).
		WithArrivalTime(arrival)
	require.NoError(t, req.Validate())

	params, err := req.Params()
	require.NoError(t, err)
	value, ok := params.Get("arrival_time")
	assert.True(t, ok)
	assert.Equal(t, "1704099600", value)
}

func TestSharedRouteRules(t *testing.T) {
	err := New(nil, stops("a"), stops("b")).
		WithTravelMode(maps.TravelModeWalking).
		WithTransitRoutePreference(maps.TransitRoutePreferenceLessWalking).
		Validate()
	var prefErr *maps.TransitRoutePreferenceIsForTransitOnlyError
	assert.ErrorAs(t, err, &prefErr)

	err = New(nil, stops("a"), stops("b")).
		WithTrafficModel(maps.TrafficModelBestGuess).
		Validate()
	var trafficErr *maps.TrafficModelRequiresDepartureTimeError
	assert.ErrorAs(t, err, &trafficErr)
}

func TestTransitOptionsWithoutMode(t *testing.T) {
	arrival := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	req := New(nil, stops("New York"), stops("Boston")).
		WithArrivalTime(arrival).
		WithTransitModes(maps.TransitModeBus).
		WithTransitRoutePreference(maps.TransitRoutePreferenceLessWalking)
	require.NoError(t, req.Validate())

	query, err := req.Query()
	require.NoError(t, err)
	assert.Equal(t,
		"destinations=Boston&origins=New+York&arrival_time=1704099600&transit_mode=bus&transit_routing_preference=less_walking",
		query)

	err = New(nil, stops("a"), stops("b")).
		WithArrivalTime(arrival).
		WithDepartureTime(maps.DepartNow()).
		Validate()
	var anchorErr *maps.EitherDepartureTimeOrArrivalTimeError
	assert.ErrorAs(t, err, &anchorErr)
}

func TestDimensions(t *testing.T) {
	var dimErr *MaxDimensionsExceededError

	err := New(nil, nil, stops("b")).Validate()
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 0, dimErr.Origins)
	assert.ErrorIs(t, err, maps.ErrInvalidRequest)

	err = New(nil, numbered(26), stops("b")).Validate()
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 26, dimErr.Origins)

	assert.NoError(t, New(nil, numbered(25), numbered(4)).Validate())
}

func TestElements(t *testing.T) {
	err := New(nil, numbered(11), numbered(10)).Validate()
	var elemErr *MaxElementsExceededError
	require.ErrorAs(t, err, &elemErr)
	assert.Equal(t, 110, elemErr.Elements)

	assert.NoError(t, New(nil, numbered(10), numbered(10)).Validate())
}

func TestRouteRulesRunBeforeDimensions(t *testing.T) {
	err := New(nil, nil, nil).
		WithTravelMode(maps.TravelModeDriving).
		WithTransitModes(maps.TransitModeBus).
		Validate()
	var modeErr *maps.TransitModeIsForTransitOnlyError
	assert.ErrorAs(t, err, &modeErr)
}

func TestOriginsAppend(t *testing.T) {
	req := New(nil, stops("a"), stops("z")).WithOrigins(stops("b")...).WithOrigins(stops("c")...)
	require.NoError(t, req.Validate())
	params, err := req.Params()
	require.NoError(t, err)
	origins, _ := params.Get("origins")
	assert.Equal(t, "a|b|c", origins)
}

func TestNewCopiesInput(t *testing.T) {
	origins := stops("a", "b")
	req := New(nil, origins, stops("z"))
	origins[0] = maps.Stop(maps.Address("tampered"))

	require.NoError(t, req.Validate())
	query, err := req.Query()
	require.NoError(t, err)
	assert.Contains(t, query, "origins=a%7Cb")
}

func TestFailedValidationLeavesRequestUnchanged(t *testing.T) {
	req := New(nil, numbered(30), stops("b"))
	before := req.core.Snapshot()
	assert.Error(t, req.Validate())
	assert.Equal(t, before, req.core.Snapshot())
}

func TestExecute(t *testing.T) {
	body := `{
	  "status": "OK",
	  "origin_addresses": ["Vancouver, BC, Canada"],
	  "destination_addresses": ["San Francisco, CA, USA", "Nowhere"],
	  "rows": [{"elements": [
	    {"status": "OK", "distance": {"text": "1,528 km", "value": 1528000}, "duration": {"text": "15 hours", "value": 54000}},
	    {"status": "NOT_FOUND"}
	  ]}]
	}`
	transport := new(mapstest.MockTransport)
	transport.On("Do", mock.Anything, Endpoint, "destinations=San+Francisco%7CNowhere&origins=Vancouver").
		Return([]byte(body), nil)

	resp, err := New(transport, stops("Vancouver"), stops("San Francisco", "Nowhere")).Execute(context.Background())
	require.NoError(t, err)

	first, ok := resp.Element(0, 0)
	require.True(t, ok)
	assert.True(t, first.OK())
	assert.Equal(t, 1528000, first.Distance.Meters)

	second, ok := resp.Element(0, 1)
	require.True(t, ok)
	assert.False(t, second.OK())

	_, ok = resp.Element(1, 0)
	assert.False(t, ok)
	transport.AssertExpectations(t)
}

func TestExecuteMaxElementsStatus(t *testing.T) {
	transport := new(mapstest.MockTransport)
	transport.On("Do", mock.Anything, Endpoint, mock.Anything).
		Return([]byte(`{"status":"MAX_ELEMENTS_EXCEEDED","rows":[]}`), nil)

	_, err := New(transport, stops("a"), stops("b")).Execute(context.Background())
	var apiErr *maps.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.CallerFault())
}
