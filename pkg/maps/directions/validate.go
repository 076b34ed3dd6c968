package directions

import (
	"fmt"

	"github.com/richxcame/mapsclient/pkg/maps"
)

// WaypointsNotSupportedForTransitError: transit directions cannot route
// through waypoints.
type WaypointsNotSupportedForTransitError struct {
	Waypoints string
}

func (e *WaypointsNotSupportedForTransitError) Error() string {
	return fmt.Sprintf("maps: waypoints (%s) are not supported with the %q travel mode", e.Waypoints, maps.TravelModeTransit)
}

func (e *WaypointsNotSupportedForTransitError) Is(target error) bool {
	return target == maps.ErrInvalidRequest
}

var rules = []maps.Rule[params]{
	maps.Lift(routeOf, maps.CheckArrivalTime),
	maps.Lift(routeOf, maps.CheckTransitModes),
	maps.Lift(routeOf, maps.CheckTransitRoutePreference),
	maps.Lift(routeOf, maps.CheckTimeAnchor),
	maps.Lift(routeOf, maps.CheckTrafficModel),
	checkWaypoints,
}

func routeOf(p params) maps.RouteOptions { return p.route }

func checkWaypoints(p params) error {
	if len(p.waypoints) > 0 && p.route.TravelMode != nil && *p.route.TravelMode == maps.TravelModeTransit {
		return &WaypointsNotSupportedForTransitError{Waypoints: maps.JoinWaypoints(p.waypoints)}
	}
	return nil
}
