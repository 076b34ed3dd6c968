package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/richxcame/mapsclient/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsBodyAndForwardsHeaders(t *testing.T) {
	var gotCorrelation, gotAgent, gotCustom string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCorrelation = r.Header.Get(CorrelationIDHeader)
		gotAgent = r.Header.Get("User-Agent")
		gotCustom = r.Header.Get("X-Custom")
		assert.Equal(t, "/directions/json", r.URL.Path)
		assert.Equal(t, "origin=a", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, WithUserAgent("mapsctl/test"))
	ctx := logger.ContextWithCorrelationID(context.Background(), "corr-1")

	body, err := client.Get(ctx, "/directions/json?origin=a", map[string]string{"X-Custom": "yes"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"OK"}`, string(body))
	assert.Equal(t, "corr-1", gotCorrelation)
	assert.Equal(t, "mapsctl/test", gotAgent)
	assert.Equal(t, "yes", gotCustom)
}

func TestGetWrapsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Get(context.Background(), "/", nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "down", string(httpErr.Body))
	assert.Equal(t, "HTTP 503: down", httpErr.Error())
}

func TestGetRateLimiterRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, WithRateLimit(0.001, 1))

	_, err := client.Get(context.Background(), "/", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = client.Get(ctx, "/", nil)
	assert.Error(t, err)
}

func TestWithRateLimitDisabled(t *testing.T) {
	client := NewClient("http://example.invalid", time.Second, WithRateLimit(0, 0))
	assert.Nil(t, client.limiter)
}

func TestEnsureCorrelationID(t *testing.T) {
	ctx := EnsureCorrelationID(context.Background())
	generated := logger.CorrelationIDFromContext(ctx)
	assert.Len(t, generated, 36)

	same := EnsureCorrelationID(ctx)
	assert.Equal(t, generated, logger.CorrelationIDFromContext(same))
}

func TestGetRedactsQueryInTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, time.Second)
	_, err := client.Get(context.Background(), "/directions/json?origin=a&key=secret", nil)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
	assert.Contains(t, err.Error(), "REDACTED")
}
