package roads

import (
	"fmt"

	"github.com/richxcame/mapsclient/pkg/maps"
)

// MaxPathPoints is the longest trace accepted in one request.
const MaxPathPoints = 100

// EmptyPathError: there is nothing to snap.
type EmptyPathError struct{}

func (e *EmptyPathError) Error() string {
	return "maps: snap to roads needs at least one point"
}

func (e *EmptyPathError) Is(target error) bool {
	return target == maps.ErrInvalidRequest
}

// PathTooLongError: the trace has more than MaxPathPoints points.
type PathTooLongError struct {
	Points int
}

func (e *PathTooLongError) Error() string {
	return fmt.Sprintf("maps: path has %d points, at most %d are allowed", e.Points, MaxPathPoints)
}

func (e *PathTooLongError) Is(target error) bool {
	return target == maps.ErrInvalidRequest
}

var rules = []maps.Rule[params]{
	func(p params) error {
		if len(p.path) == 0 {
			return &EmptyPathError{}
		}
		return nil
	},
	func(p params) error {
		if len(p.path) > MaxPathPoints {
			return &PathTooLongError{Points: len(p.path)}
		}
		return nil
	},
}
