package maps

import "strings"

const (
	placeIDPrefix  = "place_id:"
	polylinePrefix = "enc:"
	viaPrefix      = "via:"
)

type locationKind int

const (
	locationUnset locationKind = iota
	locationAddress
	locationLatLng
	locationPlaceID
)

// Location identifies a point by street address, coordinates or place id.
type Location struct {
	kind    locationKind
	address string
	latLng  LatLng
	placeID string
}

// Address is a location given as free text, geocoded upstream.
func Address(address string) Location {
	return Location{kind: locationAddress, address: address}
}

// Coordinates is a location given as a coordinate pair.
func Coordinates(ll LatLng) Location {
	return Location{kind: locationLatLng, latLng: ll}
}

// PlaceID is a location given as a Google place id.
func PlaceID(id string) Location {
	return Location{kind: locationPlaceID, placeID: id}
}

// IsZero reports whether the location was never set.
func (l Location) IsZero() bool {
	return l.kind == locationUnset
}

// LatLng returns the coordinates of a coordinate location.
func (l Location) LatLng() (LatLng, bool) {
	return l.latLng, l.kind == locationLatLng
}

// String renders the wire form.
func (l Location) String() string {
	switch l.kind {
	case locationAddress:
		return l.address
	case locationLatLng:
		return l.latLng.String()
	case locationPlaceID:
		return placeIDPrefix + l.placeID
	default:
		return ""
	}
}

// ParseLocation inverts Location.String. Anything that is neither a place id
// nor a valid coordinate pair is taken as an address.
func ParseLocation(s string) Location {
	if id, ok := strings.CutPrefix(s, placeIDPrefix); ok {
		return PlaceID(id)
	}
	if ll, err := ParseLatLng(s); err == nil {
		return Coordinates(ll)
	}
	return Address(s)
}

// Waypoint is an intermediate point of a route: a Location or an encoded
// polyline. A via waypoint shapes the route without splitting it into legs.
type Waypoint struct {
	location Location
	polyline string
	via      bool
}

// Stop returns a waypoint at loc.
func Stop(loc Location) Waypoint {
	return Waypoint{location: loc}
}

// EncodedPolyline returns a waypoint made of the points of an encoded polyline.
func EncodedPolyline(polyline string) Waypoint {
	return Waypoint{polyline: polyline}
}

// Via returns a copy of w marked as pass-through.
func (w Waypoint) Via() Waypoint {
	w.via = true
	return w
}

// IsVia reports whether the waypoint is pass-through.
func (w Waypoint) IsVia() bool {
	return w.via
}

// String renders the wire form.
func (w Waypoint) String() string {
	var b strings.Builder
	if w.via {
		b.WriteString(viaPrefix)
	}
	if w.polyline != "" {
		b.WriteString(polylinePrefix)
		b.WriteString(w.polyline)
		b.WriteByte(':')
	} else {
		b.WriteString(w.location.String())
	}
	return b.String()
}

// ParseWaypoint inverts Waypoint.String.
func ParseWaypoint(s string) Waypoint {
	rest, via := strings.CutPrefix(s, viaPrefix)

	var w Waypoint
	if enc, ok := strings.CutPrefix(rest, polylinePrefix); ok && strings.HasSuffix(enc, ":") {
		w = EncodedPolyline(strings.TrimSuffix(enc, ":"))
	} else {
		w = Stop(ParseLocation(rest))
	}
	w.via = via
	return w
}

// JoinWaypoints renders waypoints pipe separated.
func JoinWaypoints(waypoints []Waypoint) string {
	codes := make([]string, len(waypoints))
	for i, w := range waypoints {
		codes[i] = w.String()
	}
	return strings.Join(codes, "|")
}
