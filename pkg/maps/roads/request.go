// Package roads builds and dispatches Snap to Roads requests.
package roads

import (
	"context"
	"strings"

	"github.com/richxcame/mapsclient/pkg/maps"
)

// Endpoint is the Snap to Roads resource on the Roads API host.
var Endpoint = maps.Endpoint{Family: "roads", Service: maps.ServiceRoads, Path: "/snapToRoads"}

type params struct {
	path        []maps.LatLng
	interpolate *bool
}

// Request accumulates the parameters of one snap to roads query.
type Request struct {
	core      maps.Core[params]
	transport maps.Transport
}

// New starts a request for a GPS trace.
func New(transport maps.Transport, path []maps.LatLng) *Request {
	return &Request{
		core:      maps.NewCore(params{path: append([]maps.LatLng(nil), path...)}, rules, encode),
		transport: transport,
	}
}

// WithInterpolation asks for extra points so the result follows the road
// geometry between the given points.
func (r *Request) WithInterpolation(interpolate bool) *Request {
	r.core.Update(func(p *params) { p.interpolate = &interpolate })
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
	points := make([]string, len(p.path))
	for i, ll := range p.path {
		points[i] = ll.String()
	}

	var q maps.Query
	q.Add("path", strings.Join(points, "|"))
	if p.interpolate != nil {
		q.Add("interpolate", maps.FormatBool(*p.interpolate))
	}
	return q
}
