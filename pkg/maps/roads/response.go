package roads

import (
	"github.com/richxcame/mapsclient/pkg/geo"
	"github.com/richxcame/mapsclient/pkg/maps"
)

// Response is the body of a snap to roads reply. Failures arrive with a
// non-2xx HTTP status and an Error body instead of a status field.
type Response struct {
	SnappedPoints  []SnappedPoint `json:"snappedPoints"`
	WarningMessage string         `json:"warningMessage,omitempty"`
	Error          *Status        `json:"error,omitempty"`
}

// Status is the google.rpc error body of the Roads API.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Err reports the error body as *maps.APIError.
func (r *Response) Err() error {
	if r.Error == nil {
		return nil
	}
	return &maps.APIError{Family: Endpoint.Family, Status: r.Error.Status, Message: r.Error.Message, HTTPStatus: r.Error.Code}
}

// Path returns the snapped coordinates in order.
func (r *Response) Path() []maps.LatLng {
	path := make([]maps.LatLng, len(r.SnappedPoints))
	for i, point := range r.SnappedPoints {
		path[i] = point.Location.LatLng()
	}
	return path
}

// Length is the length of the snapped path in meters.
func (r *Response) Length() float64 {
	return geo.PathLength(r.Path())
}

// SnappedPoint is a point on a road. OriginalIndex is set for points that
// correspond to an input point and nil for interpolated ones.
type SnappedPoint struct {
	Location      Location `json:"location"`
	OriginalIndex *int     `json:"originalIndex,omitempty"`
	PlaceID       string   `json:"placeId"`
}

// Interpolated reports whether the point was added between input points.
func (p SnappedPoint) Interpolated() bool {
	return p.OriginalIndex == nil
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatLng converts the location to the shared coordinate type.
func (l Location) LatLng() maps.LatLng {
	return maps.LatLng{Lat: l.Latitude, Lng: l.Longitude}
}
