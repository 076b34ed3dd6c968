// Package cli implements the mapsctl command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/richxcame/mapsclient/pkg/config"
	sentryerrors "github.com/richxcame/mapsclient/pkg/errors"
	"github.com/richxcame/mapsclient/pkg/httpclient"
	"github.com/richxcame/mapsclient/pkg/logger"
	"github.com/richxcame/mapsclient/pkg/maps"
	"github.com/richxcame/mapsclient/pkg/resilience"
	"github.com/richxcame/mapsclient/pkg/tracing"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const serviceName = "mapsctl"

// TransportFactory builds the transport used to dispatch requests.
type TransportFactory func(cfg *config.Config) (maps.Transport, error)

type app struct {
	configPath string
	logLevel   string
	dryRun     bool

	newTransport TransportFactory
	cfg          *config.Config
	tracer       *sdktrace.TracerProvider
	sentry       bool
}

// Execute runs mapsctl and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand(DefaultTransport).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree around a transport factory.
func NewRootCommand(factory TransportFactory) *cobra.Command {
	a := &app{newTransport: factory}

	root := &cobra.Command{
		Use:   "mapsctl",
		Short: "Build, validate and send Google Maps Platform requests",
		Long: `mapsctl builds Directions, Distance Matrix, Place Details and Snap to Roads
queries, checks the parameter combination before anything is sent and prints
either the canonical query (--dry-run) or the JSON response.

The API key is read from GOOGLE_MAPS_API_KEY and never appears in printed queries.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (optional, environment variables take precedence)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, "validate and print the query without sending it")

	root.AddCommand(
		newDirectionsCommand(a),
		newMatrixCommand(a),
		newPlaceCommand(a),
		newSnapCommand(a),
		newVersionCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serviceName, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := a.logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logger.Init(cfg.Environment, level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	sentryConfig := sentryerrors.DefaultSentryConfig()
	sentryConfig.ServerName = serviceName
	sentryConfig.Release = Version
	if err := sentryerrors.InitSentry(sentryConfig); err != nil {
		if !errors.Is(err, sentryerrors.ErrSentryNotConfigured) {
			logger.Warn("Failed to initialize Sentry, continuing without error tracking", zap.Error(err))
		}
	} else {
		a.sentry = true
	}

	tp, err := tracing.InitTracer(tracing.Config{
		ServiceName:    serviceName,
		ServiceVersion: cfg.Tracing.ServiceVersion,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.Tracing.OTLPEndpoint,
		SampleRate:     cfg.Tracing.SampleRate,
		Enabled:        cfg.Tracing.Enabled,
	}, logger.Get())
	if err != nil {
		logger.Warn("Failed to initialize tracer, continuing without tracing", zap.Error(err))
	}
	a.tracer = tp

	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Warn("Failed to shutdown tracer", zap.Error(err))
		}
	}
	if a.sentry {
		sentryerrors.Flush(2 * time.Second)
	}
	_ = logger.Sync()
	return nil
}

// transport returns nil in dry-run mode, where nothing is dispatched.
func (a *app) transport() (maps.Transport, error) {
	if a.dryRun {
		return nil, nil
	}
	return a.newTransport(a.cfg)
}

// DefaultTransport builds a maps.Client, guarded by a circuit breaker when
// one is enabled in the configuration.
func DefaultTransport(cfg *config.Config) (maps.Transport, error) {
	opts := []maps.Option{
		maps.WithHTTPOptions(httpclient.WithUserAgent(serviceName + "/" + Version)),
	}
	if cfg.Resilience.CircuitBreaker.Enabled {
		breaker := resilience.NewCircuitBreaker(
			maps.BreakerSettings(cfg.Resilience.CircuitBreaker),
			resilience.FailFast("google-maps"),
		)
		opts = append(opts, maps.WithCircuitBreaker(breaker))
	}

	client, err := maps.NewClient(&cfg.Maps, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
