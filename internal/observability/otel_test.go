package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-crud-backend/internal/config"
)

// keepGlobals restores the global provider and propagator after the test.
func keepGlobals(t *testing.T) {
	t.Helper()
	tp, prop := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(prop)
	})
}

// inMemory routes SetupOTel's exporter to a recorder for the test.
func inMemory(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exp := tracetest.NewInMemoryExporter()
	orig := newExporter
	newExporter = func(context.Context, config.OTELConfig) (sdktrace.SpanExporter, error) { return exp, nil }
	t.Cleanup(func() { newExporter = orig })
	return exp
}

func enabled(name string) config.OTELConfig {
	return config.OTELConfig{Enabled: true, Insecure: true, Endpoint: "localhost:4317", ServiceName: name, SampleRatio: 1}
}

func TestSetupOTel_Disabled(t *testing.T) {
	keepGlobals(t)
	before := otel.GetTracerProvider()

	shutdown, err := SetupOTel(context.Background(), config.OTELConfig{Endpoint: "ignored:4317"}, "v0")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestSetupOTel_ExportsWithServiceResource(t *testing.T) {
	keepGlobals(t)
	exp := inMemory(t)

	shutdown, err := SetupOTel(context.Background(), enabled("crud-api"), "v1.2.3")
	require.NoError(t, err)
	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	require.True(t, ok)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	_, span := otel.Tracer("test").Start(context.Background(), "GET /api/users")
	span.End()
	require.NoError(t, tp.ForceFlush(context.Background()))

	// The in-memory exporter forgets its spans on shutdown.
	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	attrs := spans[0].Resource.Attributes()
	assert.Contains(t, attrs, semconv.ServiceName("crud-api"))
	assert.Contains(t, attrs, semconv.ServiceVersion("v1.2.3"))
}

func TestSetupOTel_PropagatesTraceContext(t *testing.T) {
	keepGlobals(t)
	inMemory(t)

	shutdown, err := SetupOTel(context.Background(), enabled("crud-api"), "v1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	ctx, span := otel.Tracer("test").Start(context.Background(), "outbound")
	defer span.End()

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	require.NotEmpty(t, carrier.Get("traceparent"))

	got := trace.SpanContextFromContext(otel.GetTextMapPropagator().Extract(context.Background(), carrier))
	assert.Equal(t, span.SpanContext().TraceID(), got.TraceID())
}

func TestSetupOTel_RealExporterBuildsLazily(t *testing.T) {
	for _, insecure := range []bool{true, false} {
		keepGlobals(t)
		cfg := enabled("crud-api")
		cfg.Insecure = insecure

		shutdown, err := SetupOTel(context.Background(), cfg, "v1")
		require.NoError(t, err, "insecure=%v", insecure)

		sctx, scancel := context.WithTimeout(context.Background(), 0)
		_ = shutdown(sctx)
		scancel()
	}
}

func TestSetupOTel_ExporterErrorLeavesGlobals(t *testing.T) {
	keepGlobals(t)
	orig := newExporter
	t.Cleanup(func() { newExporter = orig })
	newExporter = func(context.Context, config.OTELConfig) (sdktrace.SpanExporter, error) {
		return nil, errors.New("collector unreachable")
	}
	tp, prop := otel.GetTracerProvider(), otel.GetTextMapPropagator()

	_, err := SetupOTel(context.Background(), enabled("crud-api"), "v1")
	assert.EqualError(t, err, "collector unreachable")
	assert.Equal(t, tp, otel.GetTracerProvider())
	assert.Equal(t, prop, otel.GetTextMapPropagator())
}

func TestStartEnd(t *testing.T) {
	keepGlobals(t)
	exp := tracetest.NewInMemoryExporter()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp)))

	_, ok := Start(context.Background(), "Category", "create")
	End(ok, nil)
	_, bad := Start(context.Background(), "User", "delete")
	End(bad, errors.New("User not found with id: 9"))

	spans := exp.GetSpans()
	require.Len(t, spans, 2)

	assert.Equal(t, "Category.create", spans[0].Name)
	assert.Equal(t, trace.SpanKindInternal, spans[0].SpanKind)
	assert.ElementsMatch(t, []attribute.KeyValue{AttrEntity.String("Category"), AttrOperation.String("create")}, spans[0].Attributes)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, InstrumentationName, spans[0].InstrumentationScope.Name)

	assert.Equal(t, "User.delete", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, "User not found with id: 9", spans[1].Status.Description)
	require.Len(t, spans[1].Events, 1)
	assert.Equal(t, "exception", spans[1].Events[0].Name)
}
