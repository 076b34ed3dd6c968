package maps

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/richxcame/mapsclient/pkg/config"
	"github.com/richxcame/mapsclient/pkg/httpclient"
	"github.com/richxcame/mapsclient/pkg/logger"
	"github.com/richxcame/mapsclient/pkg/resilience"
	"github.com/richxcame/mapsclient/pkg/tracing"
	"go.uber.org/zap"
)

const (
	tracerName   = "github.com/richxcame/mapsclient/pkg/maps"
	upstreamName = "google-maps"
)

// Client is the HTTP Transport for the Google Maps Platform web services.
type Client struct {
	apiKey  string
	maps    *httpclient.Client
	roads   *httpclient.Client
	retry   resilience.RetryConfig
	breaker *resilience.CircuitBreaker
	log     *zap.Logger
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	breaker     *resilience.CircuitBreaker
	log         *zap.Logger
	httpOptions []httpclient.Option
}

// WithCircuitBreaker guards every attempt with breaker.
func WithCircuitBreaker(breaker *resilience.CircuitBreaker) Option {
	return func(o *clientOptions) {
		o.breaker = breaker
	}
}

// WithLogger replaces the global logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *clientOptions) {
		o.log = log
	}
}

// WithHTTPOptions passes options to both underlying HTTP clients.
func WithHTTPOptions(opts ...httpclient.Option) Option {
	return func(o *clientOptions) {
		o.httpOptions = append(o.httpOptions, opts...)
	}
}

// NewClient creates a Client from configuration.
func NewClient(cfg *config.MapsConfig, opts ...Option) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := clientOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.log == nil {
		options.log = logger.Get()
	}

	httpOptions := append([]httpclient.Option{
		httpclient.WithRateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst),
	}, options.httpOptions...)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultMapsBaseURL
	}
	roadsURL := cfg.RoadsURL
	if roadsURL == "" {
		roadsURL = config.DefaultRoadsBaseURL
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.MaxRetries + 1
	if backoff := cfg.RetryBackoff(); backoff > 0 {
		retry.InitialBackoff = backoff
	}
	retry.RetryableChecker = IsRetryable

	return &Client{
		apiKey:  cfg.APIKey,
		maps:    httpclient.NewClient(baseURL, cfg.Timeout(), httpOptions...),
		roads:   httpclient.NewClient(roadsURL, cfg.Timeout(), httpOptions...),
		retry:   retry,
		breaker: options.breaker,
		log:     options.log,
	}, nil
}

// BreakerSettings returns circuit breaker settings that do not count
// caller-fault API statuses as upstream failures.
func BreakerSettings(cfg config.CircuitBreakerConfig) resilience.Settings {
	s := cfg.SettingsFor(upstreamName)
	settings := resilience.BuildSettings(upstreamName, s.IntervalSeconds, s.TimeoutSeconds, s.FailureThreshold, s.SuccessThreshold)
	settings.IsSuccessful = func(err error) bool {
		return err == nil || IsCallerError(err)
	}
	return settings
}

// Do sends query to endpoint, retrying transient failures, and hands each
// response body to decode.
func (c *Client) Do(ctx context.Context, endpoint Endpoint, query string, decode Decoder) error {
	ctx = httpclient.EnsureCorrelationID(ctx)
	start := time.Now()

	err := tracing.TraceOutboundCall(ctx, tracerName, upstreamName, endpoint.Family, func(ctx context.Context) error {
		_, err := resilience.RetryWithBreaker(ctx, c.retry, c.breaker, func(ctx context.Context) (interface{}, error) {
			return nil, c.attempt(ctx, endpoint, query, decode)
		}, "maps."+endpoint.Family)
		return err
	},
		tracing.RequestFamilyKey.String(endpoint.Family),
		tracing.QueryLengthKey.Int(len(query)),
	)

	observeRequest(endpoint.Family, err, time.Since(start))
	if err != nil {
		c.log.Warn("maps request failed",
			zap.String("family", endpoint.Family),
			zap.String("correlation_id", logger.CorrelationIDFromContext(ctx)),
			zap.Error(err),
		)
	}
	return err
}

func (c *Client) attempt(ctx context.Context, endpoint Endpoint, query string, decode Decoder) error {
	client := c.maps
	if endpoint.Service == ServiceRoads {
		client = c.roads
	}

	c.log.Debug("maps request",
		zap.String("family", endpoint.Family),
		zap.String("url", client.BaseURL()+endpoint.Path),
		zap.String("query", query),
		zap.String("correlation_id", logger.CorrelationIDFromContext(ctx)),
		zap.String("trace_id", tracing.GetTraceID(ctx)),
	)

	body, err := client.Get(ctx, endpoint.Path+"?"+c.withKey(query), nil)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			return decodeHTTPError(endpoint, httpErr, decode)
		}
		return err
	}

	return decode(body)
}

func (c *Client) withKey(query string) string {
	if query == "" {
		return "key=" + url.QueryEscape(c.apiKey)
	}
	return query + "&key=" + url.QueryEscape(c.apiKey)
}

// decodeHTTPError surfaces the status carried in an error body, falling back
// to the HTTP error itself when the body has none.
func decodeHTTPError(endpoint Endpoint, httpErr *httpclient.HTTPError, decode Decoder) error {
	err := decode(httpErr.Body)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		apiErr.HTTPStatus = httpErr.StatusCode
		if apiErr.Family == "" {
			apiErr.Family = endpoint.Family
		}
		return apiErr
	}
	return httpErr
}

// IsRetryable reports whether a dispatch error is transient.
func IsRetryable(err error) bool {
	var (
		apiErr    *APIError
		httpErr   *httpclient.HTTPError
		decodeErr *DecodeError
	)
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Retryable()
	case errors.As(err, &decodeErr):
		return false
	case errors.As(err, &httpErr):
		return resilience.IsRetryableHTTPStatus(httpErr.StatusCode)
	default:
		return true
	}
}
