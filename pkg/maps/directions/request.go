// Package directions builds and dispatches Directions API requests.
package directions

import (
	"context"
	"time"

	"github.com/richxcame/mapsclient/pkg/maps"
)

// Endpoint is the Directions API resource.
var Endpoint = maps.Endpoint{Family: "directions", Service: maps.ServiceMaps, Path: "/directions/json"}

type params struct {
	origin            maps.Location
	destination       maps.Location
	alternatives      *bool
	route             maps.RouteOptions
	waypoints         []maps.Waypoint
	optimizeWaypoints bool
}

// Request accumulates the parameters of one directions query. Every With*
// call invalidates a previous Validate.
type Request struct {
	core      maps.Core[params]
	transport maps.Transport
}

// New starts a request from origin to destination. transport may be nil for
// requests that are only serialized.
func New(transport maps.Transport, origin, destination maps.Location) *Request {
	return &Request{
		core:      maps.NewCore(params{origin: origin, destination: destination}, rules, encode),
		transport: transport,
	}
}

// WithAlternatives asks for more than one route when available.
func (r *Request) WithAlternatives(alternatives bool) *Request {
	r.core.Update(func(p *params) { p.alternatives = &alternatives })
	return r
}

// WithArrivalTime sets the desired arrival time. Transit only.
func (r *Request) WithArrivalTime(arrival time.Time) *Request {
	r.core.Update(func(p *params) { p.route.ArrivalTime = &arrival })
	return r
}

// WithDepartureTime sets when to leave, now or at a given instant.
func (r *Request) WithDepartureTime(departure maps.DepartureTime) *Request {
	r.core.Update(func(p *params) { p.route.DepartureTime = &departure })
	return r
}

// WithLanguage sets the language of the returned text.
func (r *Request) WithLanguage(language maps.Language) *Request {
	r.core.Update(func(p *params) { p.route.Language = &language })
	return r
}

// WithRegion biases results towards a region.
func (r *Request) WithRegion(region maps.Region) *Request {
	r.core.Update(func(p *params) { p.route.Region = &region })
	return r
}

// WithRestrictions adds features to avoid. Repeated calls accumulate.
func (r *Request) WithRestrictions(restrictions ...maps.Avoid) *Request {
	r.core.Update(func(p *params) { p.route.Restrictions = append(p.route.Restrictions, restrictions...) })
	return r
}

// WithTrafficModel sets the traffic assumption. Requires a departure time.
func (r *Request) WithTrafficModel(model maps.TrafficModel) *Request {
	r.core.Update(func(p *params) { p.route.TrafficModel = &model })
	return r
}

// WithTransitModes adds preferred vehicles. Repeated calls accumulate.
func (r *Request) WithTransitModes(modes ...maps.TransitMode) *Request {
	r.core.Update(func(p *params) { p.route.TransitModes = append(p.route.TransitModes, modes...) })
	return r
}

// WithTransitRoutePreference biases transit routes. Transit only.
func (r *Request) WithTransitRoutePreference(preference maps.TransitRoutePreference) *Request {
	r.core.Update(func(p *params) { p.route.TransitRoutePreference = &preference })
	return r
}

// WithTravelMode sets the travel mode. The service assumes driving when unset.
func (r *Request) WithTravelMode(mode maps.TravelMode) *Request {
	r.core.Update(func(p *params) { p.route.TravelMode = &mode })
	return r
}

// WithUnitSystem sets the units of the text fields in the response.
func (r *Request) WithUnitSystem(units maps.UnitSystem) *Request {
	r.core.Update(func(p *params) { p.route.UnitSystem = &units })
	return r
}

// WithWaypoints adds intermediate points. Repeated calls accumulate.
func (r *Request) WithWaypoints(waypoints ...maps.Waypoint) *Request {
	r.core.Update(func(p *params) { p.waypoints = append(p.waypoints, waypoints...) })
	return r
}

// WithOptimizedWaypoints lets the service reorder the waypoints.
func (r *Request) WithOptimizedWaypoints(optimize bool) *Request {
	r.core.Update(func(p *params) { p.optimizeWaypoints = optimize })
	return r
}

// Validate checks the parameter combination.
func (r *Request) Validate() error {
	return r.core.Validate()
}

// Query returns the encoded query of a validated request, without the key.
func (r *Request) Query() (string, error) {
	return r.core.Query()
}

// Params returns the query pairs of a validated request.
func (r *Request) Params() (maps.Query, error) {
	return r.core.Params()
}

// Get dispatches a validated request.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	query, err := r.core.Query()
	if err != nil {
		return nil, err
	}
	return maps.Fetch[Response](ctx, r.transport, Endpoint, query)
}

// Execute validates and dispatches the request.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func encode(p params) maps.Query {
	var q maps.Query
	q.Add("destination", p.destination.String())
	q.Add("origin", p.origin.String())
	if p.alternatives != nil {
		q.Add("alternatives", maps.FormatBool(*p.alternatives))
	}
	p.route.Encode(&q)
	if len(p.waypoints) > 0 {
		waypoints := maps.JoinWaypoints(p.waypoints)
		if p.optimizeWaypoints {
			waypoints = "optimize:true|" + waypoints
		}
		q.Add("waypoints", waypoints)
	}
	return q
}
