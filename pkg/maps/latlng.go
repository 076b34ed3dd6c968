package maps

import (
	"fmt"
	"strconv"
	"strings"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewLatLng returns the coordinate or an *InvalidLatLngError when either
// component is out of range.
func NewLatLng(lat, lng float64) (LatLng, error) {
	ll := LatLng{Lat: lat, Lng: lng}
	if !ll.Valid() {
		return LatLng{}, &InvalidLatLngError{Lat: lat, Lng: lng}
	}
	return ll, nil
}

// Valid reports whether both components are in range.
func (ll LatLng) Valid() bool {
	return ll.Lat >= -90 && ll.Lat <= 90 && ll.Lng >= -180 && ll.Lng <= 180
}

// String renders the wire form "lat,lng" with six decimals.
func (ll LatLng) String() string {
	return strconv.FormatFloat(ll.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(ll.Lng, 'f', 6, 64)
}

// ParseLatLng parses "lat,lng".
func ParseLatLng(s string) (LatLng, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return LatLng{}, &InvalidCodeError{Type: "LatLng", Code: s}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("%w: %v", &InvalidCodeError{Type: "LatLng", Code: s}, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("%w: %v", &InvalidCodeError{Type: "LatLng", Code: s}, err)
	}
	return NewLatLng(lat, lng)
}
