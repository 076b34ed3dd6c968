// Package distancematrix builds and dispatches Distance Matrix API requests.
package distancematrix

import (
	"context"
	"time"

	"github.com/richxcame/mapsclient/pkg/maps"
)

// Endpoint is the Distance Matrix API resource.
var Endpoint = maps.Endpoint{Family: "distancematrix", Service: maps.ServiceMaps, Path: "/distancematrix/json"}

type params struct {
	origins      []maps.Waypoint
	destinations []maps.Waypoint
	route        maps.RouteOptions
}

// Request accumulates the parameters of one matrix query.
type Request struct {
	core      maps.Core[params]
	transport maps.Transport
}

// New starts a request for every origin to every destination.
func New(transport maps.Transport, origins, destinations []maps.Waypoint) *Request {
	p := params{
		origins:      append([]maps.Waypoint(nil), origins...),
		destinations: append([]maps.Waypoint(nil), destinations...),
	}
	return &Request{
		core:      maps.NewCore(p, rules, encode),
		transport: transport,
	}
}

// WithOrigins adds origins. Repeated calls accumulate.
func (r *Request) WithOrigins(origins ...maps.Waypoint) *Request {
	r.core.Update(func(p *params) { p.origins = append(p.origins, origins...) })
	return r
}

// WithDestinations adds destinations. Repeated calls accumulate.
func (r *Request) WithDestinations(destinations ...maps.Waypoint) *Request {
	r.core.Update(func(p *params) { p.destinations = append(p.destinations, destinations...) })
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
	q.Add("destinations", maps.JoinWaypoints(p.destinations))
	q.Add("origins", maps.JoinWaypoints(p.origins))
	p.route.Encode(&q)
	return q
}
