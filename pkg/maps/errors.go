package maps

import (
	"errors"
	"fmt"
	"strings"

	"github.com/richxcame/mapsclient/pkg/resilience"
)

var (
	// ErrNotValidated is returned when a query is serialized or dispatched
	// before the request passed validation.
	ErrNotValidated = errors.New("maps: request has not been validated")
	// ErrInvalidRequest matches every validation rule failure.
	ErrInvalidRequest = errors.New("maps: invalid request")
	// ErrInvalidCode matches every unrecognised wire code.
	ErrInvalidCode = errors.New("maps: unrecognized code")
	// ErrMissingAPIKey is returned by NewClient without an API key.
	ErrMissingAPIKey = errors.New("maps: API key is required")
	// ErrNoTransport is returned when dispatching a request built without a client.
	ErrNoTransport = errors.New("maps: request has no transport")
)

// InvalidCodeError reports a string that is not part of a type's code set.
type InvalidCodeError struct {
	Type string
	Code string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("maps: %q is not a valid %s code", e.Code, e.Type)
}

func (e *InvalidCodeError) Is(target error) bool {
	return target == ErrInvalidCode
}

// InvalidLatLngError reports coordinates outside [-90,90] x [-180,180].
type InvalidLatLngError struct {
	Lat float64
	Lng float64
}

func (e *InvalidLatLngError) Error() string {
	return fmt.Sprintf("maps: coordinate (%g, %g) is out of range", e.Lat, e.Lng)
}

func (e *InvalidLatLngError) Is(target error) bool {
	return target == ErrInvalidCode
}

// ArrivalTimeIsForTransitOnlyError: an arrival time was set with a travel
// mode other than transit.
type ArrivalTimeIsForTransitOnlyError struct {
	TravelMode  TravelMode
	ArrivalTime string
}

func (e *ArrivalTimeIsForTransitOnlyError) Error() string {
	return fmt.Sprintf("maps: arrival time (%s) can only be used with the %q travel mode, not %q",
		e.ArrivalTime, TravelModeTransit, e.TravelMode)
}

func (e *ArrivalTimeIsForTransitOnlyError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// TransitModeIsForTransitOnlyError: transit modes were set with a travel
// mode other than transit.
type TransitModeIsForTransitOnlyError struct {
	TravelMode   TravelMode
	TransitModes string
}

func (e *TransitModeIsForTransitOnlyError) Error() string {
	return fmt.Sprintf("maps: transit modes (%s) can only be used with the %q travel mode, not %q",
		e.TransitModes, TravelModeTransit, e.TravelMode)
}

func (e *TransitModeIsForTransitOnlyError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// TransitRoutePreferenceIsForTransitOnlyError: a transit route preference was
// set with a travel mode other than transit.
type TransitRoutePreferenceIsForTransitOnlyError struct {
	TravelMode TravelMode
	Preference TransitRoutePreference
}

func (e *TransitRoutePreferenceIsForTransitOnlyError) Error() string {
	return fmt.Sprintf("maps: transit route preference (%s) can only be used with the %q travel mode, not %q",
		e.Preference, TravelModeTransit, e.TravelMode)
}

func (e *TransitRoutePreferenceIsForTransitOnlyError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// EitherDepartureTimeOrArrivalTimeError: both temporal anchors were set.
type EitherDepartureTimeOrArrivalTimeError struct {
	ArrivalTime   string
	DepartureTime string
}

func (e *EitherDepartureTimeOrArrivalTimeError) Error() string {
	return fmt.Sprintf("maps: arrival time (%s) and departure time (%s) cannot both be set",
		e.ArrivalTime, e.DepartureTime)
}

func (e *EitherDepartureTimeOrArrivalTimeError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// TrafficModelRequiresDepartureTimeError: a traffic model without a
// departure time is silently ignored upstream, so it is rejected here.
type TrafficModelRequiresDepartureTimeError struct {
	TrafficModel TrafficModel
}

func (e *TrafficModelRequiresDepartureTimeError) Error() string {
	return fmt.Sprintf("maps: traffic model (%s) requires a departure time", e.TrafficModel)
}

func (e *TrafficModelRequiresDepartureTimeError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// APIError is a failure reported by the remote service in its response body.
type APIError struct {
	Family     string
	Status     string
	Message    string
	HTTPStatus int
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "maps: %s request failed with status %s", e.Family, e.Status)
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.HTTPStatus != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.HTTPStatus)
	}
	return b.String()
}

// Retryable reports whether repeating the same query may succeed.
func (e *APIError) Retryable() bool {
	switch e.Status {
	case string(StatusUnknownError), "UNAVAILABLE", "INTERNAL":
		return true
	}
	return resilience.IsRetryableHTTPStatus(e.HTTPStatus)
}

// CallerFault reports statuses caused by the request itself rather than by
// the health of the upstream.
func (e *APIError) CallerFault() bool {
	switch e.Status {
	case string(StatusInvalidRequest), string(StatusNotFound), string(StatusRequestDenied),
		string(StatusMaxWaypointsExceeded), string(StatusMaxRouteLengthExceeded),
		string(StatusMaxElementsExceeded), string(StatusMaxDimensionsExceeded),
		"INVALID_ARGUMENT", "PERMISSION_DENIED":
		return true
	}
	return false
}

// DecodeError wraps a response body that could not be parsed.
type DecodeError struct {
	Family string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("maps: failed to parse %s response: %v", e.Family, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsCallerError reports errors that the caller can fix by changing the
// request: validation failures, unknown codes and caller-fault API statuses.
func IsCallerError(err error) bool {
	if errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrInvalidCode) || errors.Is(err, ErrNotValidated) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.CallerFault()
}
