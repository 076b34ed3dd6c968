package distancematrix

import (
	"github.com/richxcame/mapsclient/pkg/maps"
)

// ElementStatus is the status of one origin/destination pair.
type ElementStatus string

const (
	ElementStatusOK                     ElementStatus = "OK"
	ElementStatusNotFound               ElementStatus = "NOT_FOUND"
	ElementStatusZeroResults            ElementStatus = "ZERO_RESULTS"
	ElementStatusMaxRouteLengthExceeded ElementStatus = "MAX_ROUTE_LENGTH_EXCEEDED"
)

// Response is the body of a matrix reply. Rows follow the origins, elements
// within a row follow the destinations.
type Response struct {
	Status               maps.Status `json:"status"`
	ErrorMessage         string      `json:"error_message,omitempty"`
	OriginAddresses      []string    `json:"origin_addresses"`
	DestinationAddresses []string    `json:"destination_addresses"`
	Rows                 []Row       `json:"rows"`
}

// Err reports a failure status as *maps.APIError.
func (r *Response) Err() error {
	return r.Status.Err(Endpoint.Family, r.ErrorMessage)
}

// Element returns the cell for origin i and destination j.
func (r *Response) Element(i, j int) (Element, bool) {
	if i < 0 || i >= len(r.Rows) || j < 0 || j >= len(r.Rows[i].Elements) {
		return Element{}, false
	}
	return r.Rows[i].Elements[j], true
}

type Row struct {
	Elements []Element `json:"elements"`
}

type Element struct {
	Status            ElementStatus  `json:"status"`
	Distance          maps.Distance  `json:"distance"`
	Duration          maps.Duration  `json:"duration"`
	DurationInTraffic *maps.Duration `json:"duration_in_traffic,omitempty"`
	Fare              *maps.Fare     `json:"fare,omitempty"`
}

// OK reports whether the pair could be routed.
func (e Element) OK() bool {
	return e.Status == ElementStatusOK
}
