package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/richxcame/mapsclient/pkg/logger"
	"github.com/richxcame/mapsclient/pkg/maps"
)

// ErrSentryNotConfigured is returned by InitSentry without a DSN.
var ErrSentryNotConfigured = stderrors.New("sentry DSN is not configured")

// SentryConfig holds configuration for Sentry integration
type SentryConfig struct {
	DSN              string
	Environment      string
	Release          string
	SampleRate       float64
	Debug            bool
	ServerName       string
	AttachStacktrace bool
}

// DefaultSentryConfig returns a Sentry configuration read from SENTRY_* variables
func DefaultSentryConfig() *SentryConfig {
	return &SentryConfig{
		DSN:              os.Getenv("SENTRY_DSN"),
		Environment:      getEnvironment(),
		Release:          os.Getenv("SENTRY_RELEASE"),
		SampleRate:       getSampleRate(),
		Debug:            os.Getenv("SENTRY_DEBUG") == "true",
		ServerName:       os.Getenv("SERVICE_NAME"),
		AttachStacktrace: true,
	}
}

// InitSentry initializes the Sentry SDK with the given configuration
func InitSentry(config *SentryConfig) error {
	if config == nil || config.DSN == "" {
		return ErrSentryNotConfigured
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              config.DSN,
		Environment:      config.Environment,
		Release:          config.Release,
		SampleRate:       config.SampleRate,
		Debug:            config.Debug,
		ServerName:       config.ServerName,
		AttachStacktrace: config.AttachStacktrace,
		BeforeSend:       scrubEvent,
		BeforeBreadcrumb: func(breadcrumb *sentry.Breadcrumb, hint *sentry.BreadcrumbHint) *sentry.Breadcrumb {
			breadcrumb.Message = scrubKey(breadcrumb.Message)
			return breadcrumb
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize sentry: %w", err)
	}

	return nil
}

// Flush flushes the Sentry buffer
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// CaptureRequestError reports a failed maps request, tagged with its family
// and the correlation ID carried by ctx. Errors the caller caused are skipped.
func CaptureRequestError(ctx context.Context, err error, family, query string) *sentry.EventID {
	if !ShouldReportError(err) {
		return nil
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("request_family", family)
		if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
			scope.SetTag("correlation_id", correlationID)
		}

		var apiErr *maps.APIError
		if stderrors.As(err, &apiErr) {
			scope.SetTag("api_status", apiErr.Status)
		}
		scope.SetExtra("query", query)
	})

	return hub.CaptureException(err)
}

// AddBreadcrumbForRequest records a dispatched maps request
func AddBreadcrumbForRequest(family, query string, duration time.Duration, err error) {
	level := sentry.LevelInfo
	if err != nil {
		level = sentry.LevelError
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Type:      "http",
		Category:  "maps.request",
		Level:     level,
		Message:   fmt.Sprintf("%s %s", family, query),
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"family":      family,
			"duration_ms": duration.Milliseconds(),
		},
	})
}

// ShouldReportError reports whether err is worth an alert: it is not nil, not
// a cancellation and not something the caller can fix by changing the request.
func ShouldReportError(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) {
		return false
	}
	return !maps.IsCallerError(err)
}

var apiKeyPattern = regexp.MustCompile(`([?&]key=)[^&\s"]+`)

// scrubKey removes API keys from URLs embedded in text.
func scrubKey(s string) string {
	return apiKeyPattern.ReplaceAllString(s, "${1}REDACTED")
}

func scrubEvent(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
	event.Message = scrubKey(event.Message)
	for i := range event.Exception {
		event.Exception[i].Value = scrubKey(event.Exception[i].Value)
	}
	return event
}

// Helper functions

func getEnvironment() string {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = os.Getenv("SENTRY_ENVIRONMENT")
	}
	if env == "" {
		env = "development"
	}
	return env
}

func getSampleRate() float64 {
	rate, err := strconv.ParseFloat(os.Getenv("SENTRY_SAMPLE_RATE"), 64)
	if err != nil {
		return 1.0
	}
	return rate
}
