package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestCircuitBreakerTripsAndReturnsOpenError(t *testing.T) {
	breaker := NewCircuitBreaker(Settings{
		Name:             "test-breaker",
		Timeout:          50 * time.Millisecond,
		Interval:         50 * time.Millisecond,
		FailureThreshold: 2,
		SuccessThreshold: 1,
	}, nil)

	ctx := context.Background()
	failingOp := func(context.Context) (interface{}, error) {
		return nil, errBoom
	}

	for i := 0; i < 2; i++ {
		_, err := breaker.Execute(ctx, failingOp)
		require.ErrorIs(t, err, errBoom, "iteration %d", i)
	}

	assert.False(t, breaker.Allow(), "breaker should be open after consecutive failures")

	_, err := breaker.Execute(ctx, func(context.Context) (interface{}, error) {
		return "ok", nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, float64(1), testutil.ToFloat64(breakerStateGauge.WithLabelValues("test-breaker")))
}

func TestCircuitBreakerPassesThroughOnSuccess(t *testing.T) {
	breaker := NewCircuitBreaker(Settings{
		Name:             "success-breaker",
		Timeout:          time.Second,
		Interval:         time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 1,
	}, nil)

	result, err := breaker.Execute(context.Background(), func(context.Context) (interface{}, error) {
		return "response", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "response", result)
}

func TestCircuitBreakerIgnoresSuccessfulErrors(t *testing.T) {
	errCaller := errors.New("caller mistake")
	breaker := NewCircuitBreaker(Settings{
		Name:             "caller-errors",
		Timeout:          time.Second,
		FailureThreshold: 1,
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errCaller)
		},
	}, nil)

	for i := 0; i < 3; i++ {
		_, err := breaker.Execute(context.Background(), func(context.Context) (interface{}, error) {
			return nil, errCaller
		})
		assert.ErrorIs(t, err, errCaller)
	}
	assert.True(t, breaker.Allow())
}

func TestCircuitBreakerFailFastFallback(t *testing.T) {
	breaker := NewCircuitBreaker(Settings{
		Name:             "fallback-breaker",
		Timeout:          time.Minute,
		FailureThreshold: 1,
	}, FailFast("google-maps"))

	_, err := breaker.Execute(context.Background(), func(context.Context) (interface{}, error) {
		return nil, errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = breaker.Execute(context.Background(), func(context.Context) (interface{}, error) {
		return "unreachable", nil
	})
	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "google-maps", unavailable.Upstream)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestNilCircuitBreakerRunsOperation(t *testing.T) {
	var breaker *CircuitBreaker

	result, err := breaker.Execute(context.Background(), func(context.Context) (interface{}, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.True(t, breaker.Allow())
}

func TestBuildSettings(t *testing.T) {
	settings := BuildSettings("maps", 60, 30, 5, 2)

	assert.Equal(t, "maps", settings.Name)
	assert.Equal(t, time.Minute, settings.Interval)
	assert.Equal(t, 30*time.Second, settings.Timeout)
	assert.Equal(t, uint32(5), settings.FailureThreshold)
	assert.Equal(t, uint32(2), settings.SuccessThreshold)
}
