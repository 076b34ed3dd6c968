package directions

import "github.com/richxcame/mapsclient/pkg/maps"

// Response is the body of a directions reply.
type Response struct {
	Status               maps.Status       `json:"status"`
	ErrorMessage         string            `json:"error_message,omitempty"`
	GeocodedWaypoints    []GeocodedPoint   `json:"geocoded_waypoints"`
	Routes               []Route           `json:"routes"`
	AvailableTravelModes []maps.TravelMode `json:"available_travel_modes,omitempty"`
}

// Err reports a failure status as *maps.APIError.
func (r *Response) Err() error {
	return r.Status.Err(Endpoint.Family, r.ErrorMessage)
}

// GeocodedPoint describes how an origin, destination or waypoint was geocoded.
type GeocodedPoint struct {
	GeocoderStatus string   `json:"geocoder_status"`
	PlaceID        string   `json:"place_id"`
	Types          []string `json:"types"`
	PartialMatch   bool     `json:"partial_match,omitempty"`
}

type Route struct {
	Summary          string        `json:"summary"`
	Legs             []Leg         `json:"legs"`
	WaypointOrder    []int         `json:"waypoint_order"`
	OverviewPolyline maps.Polyline `json:"overview_polyline"`
	Bounds           maps.Bounds   `json:"bounds"`
	Copyrights       string        `json:"copyrights"`
	Warnings         []string      `json:"warnings"`
	Fare             *maps.Fare    `json:"fare,omitempty"`
}

// Distance sums the leg distances in meters.
func (r Route) Distance() int {
	total := 0
	for _, leg := range r.Legs {
		total += leg.Distance.Meters
	}
	return total
}

// Leg is the part of a route between two consecutive stops.
type Leg struct {
	StartAddress      string          `json:"start_address"`
	EndAddress        string          `json:"end_address"`
	StartLocation     maps.LatLng     `json:"start_location"`
	EndLocation       maps.LatLng     `json:"end_location"`
	Distance          maps.Distance   `json:"distance"`
	Duration          maps.Duration   `json:"duration"`
	DurationInTraffic *maps.Duration  `json:"duration_in_traffic,omitempty"`
	ArrivalTime       *maps.LocalTime `json:"arrival_time,omitempty"`
	DepartureTime     *maps.LocalTime `json:"departure_time,omitempty"`
	Steps             []Step          `json:"steps"`
}

type Step struct {
	HTMLInstructions string          `json:"html_instructions"`
	TravelMode       maps.TravelMode `json:"travel_mode,omitempty"`
	Maneuver         string          `json:"maneuver,omitempty"`
	Distance         maps.Distance   `json:"distance"`
	Duration         maps.Duration   `json:"duration"`
	StartLocation    maps.LatLng     `json:"start_location"`
	EndLocation      maps.LatLng     `json:"end_location"`
	Polyline         maps.Polyline   `json:"polyline"`
	TransitDetails   *TransitDetails `json:"transit_details,omitempty"`
	Steps            []Step          `json:"steps,omitempty"`
}

type TransitDetails struct {
	DepartureStop TransitStop    `json:"departure_stop"`
	ArrivalStop   TransitStop    `json:"arrival_stop"`
	DepartureTime maps.LocalTime `json:"departure_time"`
	ArrivalTime   maps.LocalTime `json:"arrival_time"`
	Headsign      string         `json:"headsign"`
	Headway       int            `json:"headway,omitempty"`
	NumStops      int            `json:"num_stops"`
	Line          TransitLine    `json:"line"`
}

type TransitStop struct {
	Name     string      `json:"name"`
	Location maps.LatLng `json:"location"`
}

type TransitLine struct {
	Name      string          `json:"name"`
	ShortName string          `json:"short_name"`
	Color     string          `json:"color"`
	TextColor string          `json:"text_color"`
	Vehicle   TransitVehicle  `json:"vehicle"`
	Agencies  []TransitAgency `json:"agencies"`
}

type TransitVehicle struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

type TransitAgency struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Phone string `json:"phone,omitempty"`
}
