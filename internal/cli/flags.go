package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/richxcame/mapsclient/pkg/maps"
)

// parseTime accepts RFC 3339 or Unix seconds.
func parseTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	secs, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC 3339 or Unix seconds", value)
	}
	return time.Unix(secs, 0), nil
}

// parseDeparture accepts "now", RFC 3339 or Unix seconds.
func parseDeparture(value string) (maps.DepartureTime, error) {
	if value == "now" {
		return maps.DepartNow(), nil
	}
	t, err := parseTime(value)
	if err != nil {
		return maps.DepartureTime{}, err
	}
	return maps.DepartAt(t), nil
}

func parseEach[T any](values []string, parse func(string) (T, error)) ([]T, error) {
	parsed := make([]T, 0, len(values))
	for _, v := range values {
		p, err := parse(v)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, p)
	}
	return parsed, nil
}

func parseWaypoints(values []string) []maps.Waypoint {
	waypoints := make([]maps.Waypoint, len(values))
	for i, v := range values {
		waypoints[i] = maps.ParseWaypoint(v)
	}
	return waypoints
}

// routeFlags are the options shared by the directions and matrix commands.
type routeFlags struct {
	mode              string
	arrival           string
	departure         string
	avoid             []string
	transitModes      []string
	transitPreference string
	trafficModel      string
	units             string
	language          string
	region            string
}

// routeSetters receives parsed route options; implemented by both routing
// request types.
type routeSetters[R any] interface {
	WithTravelMode(maps.TravelMode) R
	WithArrivalTime(time.Time) R
	WithDepartureTime(maps.DepartureTime) R
	WithRestrictions(...maps.Avoid) R
	WithTransitModes(...maps.TransitMode) R
	WithTransitRoutePreference(maps.TransitRoutePreference) R
	WithTrafficModel(maps.TrafficModel) R
	WithUnitSystem(maps.UnitSystem) R
	WithLanguage(maps.Language) R
	WithRegion(maps.Region) R
}

func applyRouteFlags[R any](f routeFlags, req routeSetters[R]) error {
	if f.mode != "" {
		mode, err := maps.ParseTravelMode(f.mode)
		if err != nil {
			return err
		}
		req.WithTravelMode(mode)
	}
	if f.arrival != "" {
		arrival, err := parseTime(f.arrival)
		if err != nil {
			return err
		}
		req.WithArrivalTime(arrival)
	}
	if f.departure != "" {
		departure, err := parseDeparture(f.departure)
		if err != nil {
			return err
		}
		req.WithDepartureTime(departure)
	}
	if len(f.avoid) > 0 {
		avoid, err := parseEach(f.avoid, maps.ParseAvoid)
		if err != nil {
			return err
		}
		req.WithRestrictions(avoid...)
	}
	if len(f.transitModes) > 0 {
		modes, err := parseEach(f.transitModes, maps.ParseTransitMode)
		if err != nil {
			return err
		}
		req.WithTransitModes(modes...)
	}
	if f.transitPreference != "" {
		preference, err := maps.ParseTransitRoutePreference(f.transitPreference)
		if err != nil {
			return err
		}
		req.WithTransitRoutePreference(preference)
	}
	if f.trafficModel != "" {
		model, err := maps.ParseTrafficModel(f.trafficModel)
		if err != nil {
			return err
		}
		req.WithTrafficModel(model)
	}
	if f.units != "" {
		units, err := maps.ParseUnitSystem(f.units)
		if err != nil {
			return err
		}
		req.WithUnitSystem(units)
	}
	return applyLocale(f.language, f.region, req)
}

type localeSetters[R any] interface {
	WithLanguage(maps.Language) R
	WithRegion(maps.Region) R
}

func applyLocale[R any](language, region string, req localeSetters[R]) error {
	if language != "" {
		lang, err := maps.ParseLanguage(language)
		if err != nil {
			return err
		}
		req.WithLanguage(lang)
	}
	if region != "" {
		r, err := maps.ParseRegion(region)
		if err != nil {
			return err
		}
		req.WithRegion(r)
	}
	return nil
}
