package resilience

import "context"

// FallbackFunc is executed when the breaker is open or overloaded.
type FallbackFunc func(ctx context.Context, err error) (interface{}, error)

// FailFast returns a fallback that reports the open breaker together with the
// upstream it protects, so callers can tell which dependency is unavailable.
func FailFast(upstream string) FallbackFunc {
	return func(ctx context.Context, err error) (interface{}, error) {
		return nil, &UnavailableError{Upstream: upstream, Cause: err}
	}
}

// UnavailableError is returned by FailFast fallbacks.
type UnavailableError struct {
	Upstream string
	Cause    error
}

func (e *UnavailableError) Error() string {
	return e.Upstream + " unavailable: " + e.Cause.Error()
}

// Is lets callers match the error against ErrCircuitOpen.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrCircuitOpen
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
