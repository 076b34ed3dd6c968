package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(original) })
	return recorder
}

func TestTraceOutboundCallRecordsClientSpan(t *testing.T) {
	recorder := recordSpans(t)

	err := TraceOutboundCall(context.Background(), "test", "google-maps", "directions",
		func(ctx context.Context) error {
			assert.True(t, trace.SpanContextFromContext(ctx).IsValid())
			return nil
		},
		RequestFamilyKey.String("directions"),
	)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "google-maps.directions", span.Name())
	assert.Equal(t, trace.SpanKindClient, span.SpanKind())
	assert.Equal(t, codes.Ok, span.Status().Code)
	assert.Contains(t, span.Attributes(), PeerServiceKey.String("google-maps"))
	assert.Contains(t, span.Attributes(), RequestFamilyKey.String("directions"))
}

func TestTraceOutboundCallRecordsError(t *testing.T) {
	recorder := recordSpans(t)
	boom := errors.New("boom")

	err := TraceOutboundCall(context.Background(), "test", "google-maps", "roads",
		func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestInitTracerDisabled(t *testing.T) {
	tp, err := InitTracer(Config{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestConfigureSamplerDefaultsByEnvironment(t *testing.T) {
	assert.Contains(t, configureSampler(Config{Environment: "production"}).Description(), "0.1")
	assert.Contains(t, configureSampler(Config{Environment: "development"}).Description(), "AlwaysOnSampler")
	assert.Contains(t, configureSampler(Config{SampleRate: 0.25}).Description(), "0.25")
}

func TestGetTraceID(t *testing.T) {
	recordSpans(t)
	assert.Empty(t, GetTraceID(context.Background()))

	var traceID string
	err := TraceOutboundCall(context.Background(), "test", "google-maps", "places",
		func(ctx context.Context) error {
			traceID = GetTraceID(ctx)
			return nil
		})
	require.NoError(t, err)
	assert.Len(t, traceID, 32)
}
