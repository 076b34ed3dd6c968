package maps

import (
	"strconv"
	"strings"
	"time"
)

// RouteOptions are the optional parameters shared by the routing families
// (Directions and Distance Matrix). Unset scalars are nil; sequences grow
// with every call that adds to them.
type RouteOptions struct {
	ArrivalTime            *time.Time
	DepartureTime          *DepartureTime
	Language               *Language
	Region                 *Region
	Restrictions           []Avoid
	TrafficModel           *TrafficModel
	TransitModes           []TransitMode
	TransitRoutePreference *TransitRoutePreference
	TravelMode             *TravelMode
	UnitSystem             *UnitSystem
}

// nonTransit reports whether a travel mode was set to something other than
// transit. An unset mode leaves the choice to the service.
func (o RouteOptions) nonTransit() bool {
	return o.TravelMode != nil && *o.TravelMode != TravelModeTransit
}

// Encode appends the options in canonical order, from arrival_time to units.
func (o RouteOptions) Encode(q *Query) {
	if o.ArrivalTime != nil {
		q.Add("arrival_time", UnixCode(*o.ArrivalTime))
	}
	if o.DepartureTime != nil {
		q.Add("departure_time", o.DepartureTime.Code())
	}
	if o.Language != nil {
		q.Add("language", o.Language.String())
	}
	if o.Region != nil {
		q.Add("region", o.Region.String())
	}
	if len(o.Restrictions) > 0 {
		q.Add("avoid", joinCodes(o.Restrictions))
	}
	if o.TrafficModel != nil {
		q.Add("traffic_model", o.TrafficModel.String())
	}
	if len(o.TransitModes) > 0 {
		q.Add("transit_mode", joinCodes(o.TransitModes))
	}
	if o.TransitRoutePreference != nil {
		q.Add("transit_routing_preference", o.TransitRoutePreference.String())
	}
	if o.TravelMode != nil {
		q.Add("mode", o.TravelMode.String())
	}
	if o.UnitSystem != nil {
		q.Add("units", o.UnitSystem.String())
	}
}

func joinCodes[T ~string](values []T) string {
	codes := make([]string, len(values))
	for i, v := range values {
		codes[i] = string(v)
	}
	return strings.Join(codes, "|")
}

// CheckArrivalTime rejects an arrival time outside transit mode.
func CheckArrivalTime(o RouteOptions) error {
	if o.ArrivalTime != nil && o.nonTransit() {
		return &ArrivalTimeIsForTransitOnlyError{TravelMode: *o.TravelMode, ArrivalTime: FormatTime(*o.ArrivalTime)}
	}
	return nil
}

// CheckTransitModes rejects transit modes outside transit mode.
func CheckTransitModes(o RouteOptions) error {
	if len(o.TransitModes) > 0 && o.nonTransit() {
		return &TransitModeIsForTransitOnlyError{TravelMode: *o.TravelMode, TransitModes: joinCodes(o.TransitModes)}
	}
	return nil
}

// CheckTransitRoutePreference rejects a route preference outside transit mode.
func CheckTransitRoutePreference(o RouteOptions) error {
	if o.TransitRoutePreference != nil && o.nonTransit() {
		return &TransitRoutePreferenceIsForTransitOnlyError{TravelMode: *o.TravelMode, Preference: *o.TransitRoutePreference}
	}
	return nil
}

// CheckTimeAnchor rejects requests with both an arrival and a departure time.
func CheckTimeAnchor(o RouteOptions) error {
	if o.ArrivalTime != nil && o.DepartureTime != nil {
		return &EitherDepartureTimeOrArrivalTimeError{
			ArrivalTime:   FormatTime(*o.ArrivalTime),
			DepartureTime: o.DepartureTime.String(),
		}
	}
	return nil
}

// CheckTrafficModel rejects a traffic model without a departure time.
func CheckTrafficModel(o RouteOptions) error {
	if o.TrafficModel != nil && o.DepartureTime == nil {
		return &TrafficModelRequiresDepartureTimeError{TrafficModel: *o.TrafficModel}
	}
	return nil
}

// RouteRules lists the route option checks in evaluation order.
func RouteRules() []Rule[RouteOptions] {
	return []Rule[RouteOptions]{
		CheckArrivalTime,
		CheckTransitModes,
		CheckTransitRoutePreference,
		CheckTimeAnchor,
		CheckTrafficModel,
	}
}

// Lift adapts a rule over one part of a parameter set to the whole set.
func Lift[P, Part any](part func(P) Part, rule Rule[Part]) Rule[P] {
	return func(params P) error {
		return rule(part(params))
	}
}

// FormatBool renders the wire form of a boolean flag.
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}
