// Package observability configures OpenTelemetry tracing for the API
// process and offers the span helpers used by the service layer.
//
// HTTP spans come from otelgin in the router, SQL spans from the gorm
// tracing plugin installed by repo.Open, and one span per resource mutation
// from Start/End in the services. All of them share the global provider
// installed by SetupOTel.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials"

	"github.com/tbourn/go-crud-backend/internal/config"
)

// InstrumentationName identifies spans created by this module.
const InstrumentationName = "github.com/tbourn/go-crud-backend"

// Span attribute keys for resource operations.
const (
	AttrEntity    = attribute.Key("crud.entity")
	AttrOperation = attribute.Key("crud.operation")
)

// newExporter builds the OTLP/gRPC span exporter; tests swap it for an
// in-memory one.
var newExporter = func(ctx context.Context, cfg config.OTELConfig) (sdktrace.SpanExporter, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	} else {
		opts = append(opts, otlptracegrpc.WithTLSCredentials(credentials.NewClientTLSFromCert(nil, "")))
	}
	return otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
}

func serviceResource(ctx context.Context, name, version string) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(name), semconv.ServiceVersion(version)),
		resource.WithTelemetrySDK(),
	)
}

// SetupOTel installs the global tracer provider (parent-based ratio
// sampling, batched OTLP export) and the W3C trace-context and baggage
// propagators. It returns the flush-and-stop function. When tracing is
// disabled nothing global changes and the returned function is a no-op.
func SetupOTel(ctx context.Context, cfg config.OTELConfig, version string) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	res, err := serviceResource(ctx, cfg.ServiceName, version)
	if err != nil {
		return nil, err
	}
	exp, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown, nil
}

// Start opens an internal span named "<entity>.<op>" (e.g. "User.delete").
// Keys are not recorded since a person's key is a national identity number.
func Start(ctx context.Context, entity, op string) (context.Context, trace.Span) {
	return otel.Tracer(InstrumentationName).Start(ctx, entity+"."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(AttrEntity.String(entity), AttrOperation.String(op)),
	)
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
