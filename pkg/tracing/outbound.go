package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Outbound call span attributes
const (
	PeerServiceKey   = attribute.Key("peer.service")
	RequestFamilyKey = attribute.Key("maps.request_family")
	QueryLengthKey   = attribute.Key("maps.query_length")
)

// TraceOutboundCall runs fn inside a client span named "<service>.<operation>"
// and records its error, if any, on the span.
func TraceOutboundCall(ctx context.Context, tracerName, service, operation string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := StartSpan(ctx, tracerName, fmt.Sprintf("%s.%s", service, operation),
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()

	span.SetAttributes(PeerServiceKey.String(service))
	span.SetAttributes(attrs...)

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	return err
}
