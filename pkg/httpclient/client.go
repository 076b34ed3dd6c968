package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/richxcame/mapsclient/pkg/logger"
	"golang.org/x/time/rate"
)

// CorrelationIDHeader carries the request correlation ID to the upstream.
const CorrelationIDHeader = "X-Correlation-ID"

// Client wraps http.Client with a base URL, optional rate limiting and
// correlation-id propagation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	userAgent  string
}

// Option configures the HTTP client
type Option func(*Client)

// WithRateLimit caps outgoing requests per second. A non-positive rate
// disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithHTTPClient swaps the underlying http.Client, mostly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a new HTTP client
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the URL prefix requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get makes a GET request to baseURL+path and returns the response body.
// Responses with status >= 400 come back as *HTTPError carrying the body.
func (c *Client) Get(ctx context.Context, path string, headers map[string]string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	injectCorrelationID(ctx, req)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", redactQuery(err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	return respBody, nil
}

// HTTPError represents an HTTP error response
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// EnsureCorrelationID returns ctx unchanged when it already carries a
// correlation ID, otherwise a copy holding a fresh one.
func EnsureCorrelationID(ctx context.Context) context.Context {
	if logger.CorrelationIDFromContext(ctx) != "" {
		return ctx
	}
	return logger.ContextWithCorrelationID(ctx, uuid.NewString())
}

func injectCorrelationID(ctx context.Context, req *http.Request) {
	if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
		req.Header.Set(CorrelationIDHeader, correlationID)
	}
}

// redactQuery drops the query string from the URL reported by transport
// errors, since it may carry credentials.
func redactQuery(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil && u.RawQuery != "" {
			u.RawQuery = "REDACTED"
			urlErr.URL = u.String()
		}
	}
	return err
}
