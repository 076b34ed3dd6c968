// Package mapstest provides test doubles for code that dispatches requests.
package mapstest

import (
	"context"

	"github.com/richxcame/mapsclient/pkg/maps"
	"github.com/stretchr/testify/mock"
)

// MockTransport is a testify mock of maps.Transport. Expectations are set on
// (ctx, endpoint, query) and return (body []byte, err error): a non-nil body
// is passed to the decoder before err is returned.
type MockTransport struct {
	mock.Mock
}

// Do records the call and feeds the stubbed body to decode.
func (m *MockTransport) Do(ctx context.Context, endpoint maps.Endpoint, query string, decode maps.Decoder) error {
	args := m.Called(ctx, endpoint, query)
	if body, ok := args.Get(0).([]byte); ok && body != nil {
		if err := decode(body); err != nil {
			return err
		}
	}
	return args.Error(1)
}
