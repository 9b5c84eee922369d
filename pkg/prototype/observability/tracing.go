package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/randalmurphal/prototype"

// CloneSpanName is the name of the span wrapping one registry clone.
const CloneSpanName = "prototype.clone"

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCloneSpan starts a span for one clone operation.
	StartCloneSpan(ctx context.Context, registry, id, mode, opID string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the span carried by ctx.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

type otelSpanManager struct {
	tracer trace.Tracer
}

// NewSpanManager returns a SpanManager backed by the global tracer
// provider. Spans follow whatever provider is installed with
// otel.SetTracerProvider, even one installed later.
func NewSpanManager() SpanManager {
	return &otelSpanManager{tracer: otel.Tracer(instrumentationName)}
}

// NewSpanManagerFor returns a SpanManager that creates spans from tp.
func NewSpanManagerFor(tp trace.TracerProvider) SpanManager {
	return &otelSpanManager{tracer: tp.Tracer(instrumentationName)}
}

func (m *otelSpanManager) StartCloneSpan(ctx context.Context, registry, id, mode, opID string) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, CloneSpanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("registry.name", registry),
			attribute.String("clone.id", id),
			attribute.String("clone.mode", mode),
			attribute.String("clone.op_id", opID),
		),
	)
}

func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// EndSpanWithError sets the span status from err and ends it.
// A nil span is ignored.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	defer span.End()
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
