package maps

import (
	"context"
	"encoding/json"
)

// Service names the upstream host an endpoint belongs to.
type Service int

const (
	ServiceMaps Service = iota
	ServiceRoads
)

func (s Service) String() string {
	if s == ServiceRoads {
		return "roads"
	}
	return "maps"
}

// Endpoint is the fixed location of one request family.
type Endpoint struct {
	Family  string
	Service Service
	Path    string
}

// Reply is implemented by family response types. Err reports a failure
// status carried in the body.
type Reply interface {
	Err() error
}

// Decoder turns one response body into a reply. It is called once per
// attempt.
type Decoder func(body []byte) error

// Transport dispatches an encoded query to an endpoint.
type Transport interface {
	Do(ctx context.Context, endpoint Endpoint, query string, decode Decoder) error
}

// Fetch dispatches query and decodes the response into a fresh R.
func Fetch[R any, PR interface {
	*R
	Reply
}](ctx context.Context, t Transport, endpoint Endpoint, query string) (*R, error) {
	if t == nil {
		return nil, ErrNoTransport
	}

	var result *R
	err := t.Do(ctx, endpoint, query, func(body []byte) error {
		decoded := new(R)
		if err := json.Unmarshal(body, decoded); err != nil {
			return &DecodeError{Family: endpoint.Family, Err: err}
		}
		result = decoded
		return PR(decoded).Err()
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
