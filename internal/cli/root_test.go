package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/richxcame/mapsclient/pkg/config"
	"github.com/richxcame/mapsclient/pkg/maps"
	"github.com/richxcame/mapsclient/pkg/maps/directions"
	"github.com/richxcame/mapsclient/pkg/maps/mapstest"
	"github.com/richxcame/mapsclient/pkg/maps/places"
	"github.com/richxcame/mapsclient/pkg/maps/roads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, transport maps.Transport, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SENTRY_DSN", "")
	t.Setenv("OTEL_ENABLED", "false")

	factory := func(cfg *config.Config) (maps.Transport, error) {
		return transport, nil
	}
	root := NewRootCommand(factory)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand(t, nil, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "mapsctl builds Directions")
}

func TestUnknownFlag(t *testing.T) {
	_, err := executeCommand(t, nil, "--invalid-flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag: --invalid-flag")
}

func TestDirectionsDryRun(t *testing.T) {
	out, err := executeCommand(t, nil, "directions",
		"--origin", "New York", "--destination", "Boston",
		"--mode", "transit", "--arrival", "2024-01-01T09:00:00Z", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "destination=Boston&origin=New+York&arrival_time=1704099600&mode=transit\n", out)
}

func TestDirectionsValidationError(t *testing.T) {
	_, err := executeCommand(t, nil, "directions",
		"--origin", "New York", "--destination", "Boston",
		"--mode", "driving", "--arrival", "2024-01-01T09:00:00Z", "--dry-run")
	var arrivalErr *maps.ArrivalTimeIsForTransitOnlyError
	require.ErrorAs(t, err, &arrivalErr)
	assert.Contains(t, err.Error(), "driving")
}

func TestDirectionsUnknownMode(t *testing.T) {
	_, err := executeCommand(t, nil, "directions", "--origin", "a", "--destination", "b", "--mode", "teleport", "--dry-run")
	assert.ErrorIs(t, err, maps.ErrInvalidCode)
}

func TestDirectionsRequiresOrigin(t *testing.T) {
	_, err := executeCommand(t, nil, "directions", "--destination", "Boston", "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "origin")
}

func TestDirectionsDispatch(t *testing.T) {
	transport := new(mapstest.MockTransport)
	transport.On("Do", mock.Anything, directions.Endpoint, "destination=Boston&origin=New+York&avoid=tolls%7Cferries&mode=driving").
		Return([]byte(`{"status":"OK","routes":[{"summary":"I-95 N","legs":[]}]}`), nil)

	out, err := executeCommand(t, transport, "directions",
		"--origin", "New York", "--destination", "Boston",
		"--mode", "driving", "--avoid", "tolls", "--avoid", "ferries")
	require.NoError(t, err)

	var resp directions.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Routes, 1)
	assert.Equal(t, "I-95 N", resp.Routes[0].Summary)
	transport.AssertExpectations(t)
}

func TestDirectionsDispatchFailure(t *testing.T) {
	transport := new(mapstest.MockTransport)
	transport.On("Do", mock.Anything, directions.Endpoint, mock.Anything).
		Return([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`), nil)

	_, err := executeCommand(t, transport, "directions", "--origin", "a", "--destination", "b")
	var apiErr *maps.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "REQUEST_DENIED", apiErr.Status)
}

func TestMatrixDryRun(t *testing.T) {
	out, err := executeCommand(t, nil, "matrix",
		"--origin", "Vancouver BC", "--origin", "Seattle",
		"--destination", "San Francisco", "--mode", "bicycling", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "destinations=San+Francisco&origins=Vancouver+BC%7CSeattle&mode=bicycling\n", out)
}

func TestMatrixWithoutOrigins(t *testing.T) {
	_, err := executeCommand(t, nil, "matrix", "--destination", "b", "--dry-run")
	assert.ErrorIs(t, err, maps.ErrInvalidRequest)
}

func TestPlaceDryRun(t *testing.T) {
	out, err := executeCommand(t, nil, "place", "ChIJ3S-JXmauEmsRUcIaWtf4MzE",
		"--field", "name,reviews", "--reviews-sort", "newest", "--session-token", "tok", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "place_id=ChIJ3S-JXmauEmsRUcIaWtf4MzE&fields=name%2Creviews&reviews_sort=newest&sessiontoken=tok\n", out)
}

func TestPlaceReviewsSortWithoutReviews(t *testing.T) {
	_, err := executeCommand(t, nil, "place", "abc", "--field", "name", "--reviews-sort", "newest", "--dry-run")
	var sortErr *places.ReviewsSortWithoutReviewsFieldError
	assert.ErrorAs(t, err, &sortErr)
}

func TestSnapDryRun(t *testing.T) {
	out, err := executeCommand(t, nil, "snap",
		"--point", "60.170880,24.942795", "--point", "60.170879,24.942796", "--interpolate", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "path=60.170880%2C24.942795%7C60.170879%2C24.942796&interpolate=true\n", out)
}

func TestSnapDispatch(t *testing.T) {
	transport := new(mapstest.MockTransport)
	transport.On("Do", mock.Anything, roads.Endpoint, "path=60.170880%2C24.942795").
		Return([]byte(`{"snappedPoints":[{"location":{"latitude":60.17,"longitude":24.94},"originalIndex":0,"placeId":"p"}]}`), nil)

	out, err := executeCommand(t, transport, "snap", "--point", "60.170880,24.942795")
	require.NoError(t, err)
	assert.Contains(t, out, `"placeId": "p"`)
	transport.AssertExpectations(t)
}

func TestSnapWithoutPoints(t *testing.T) {
	_, err := executeCommand(t, nil, "snap", "--dry-run")
	var emptyErr *roads.EmptyPathError
	assert.ErrorAs(t, err, &emptyErr)
}
