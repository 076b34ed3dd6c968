package distancematrix

import (
	"fmt"

	"github.com/richxcame/mapsclient/pkg/maps"
)

const (
	// MaxDimension is the largest number of origins or of destinations.
	MaxDimension = 25
	// MaxElements caps origins times destinations.
	MaxElements = 100
)

// MaxDimensionsExceededError: one side of the matrix is empty or too long.
type MaxDimensionsExceededError struct {
	Origins      int
	Destinations int
}

func (e *MaxDimensionsExceededError) Error() string {
	return fmt.Sprintf("maps: matrix needs 1 to %d origins and destinations, got %d origins and %d destinations",
		MaxDimension, e.Origins, e.Destinations)
}

func (e *MaxDimensionsExceededError) Is(target error) bool {
	return target == maps.ErrInvalidRequest
}

// MaxElementsExceededError: the matrix has too many cells.
type MaxElementsExceededError struct {
	Elements int
}

func (e *MaxElementsExceededError) Error() string {
	return fmt.Sprintf("maps: matrix has %d elements, at most %d are allowed", e.Elements, MaxElements)
}

func (e *MaxElementsExceededError) Is(target error) bool {
	return target == maps.ErrInvalidRequest
}

var rules = []maps.Rule[params]{
	maps.Lift(routeOf, maps.CheckArrivalTime),
	maps.Lift(routeOf, maps.CheckTransitModes),
	maps.Lift(routeOf, maps.CheckTransitRoutePreference),
	maps.Lift(routeOf, maps.CheckTimeAnchor),
	maps.Lift(routeOf, maps.CheckTrafficModel),
	checkDimensions,
	checkElements,
}

func routeOf(p params) maps.RouteOptions { return p.route }

func checkDimensions(p params) error {
	if inRange(len(p.origins)) && inRange(len(p.destinations)) {
		return nil
	}
	return &MaxDimensionsExceededError{Origins: len(p.origins), Destinations: len(p.destinations)}
}

func inRange(n int) bool {
	return n >= 1 && n <= MaxDimension
}

func checkElements(p params) error {
	if elements := len(p.origins) * len(p.destinations); elements > MaxElements {
		return &MaxElementsExceededError{Elements: elements}
	}
	return nil
}
