package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NoopMetrics discards every measurement. It is the registrar default.
type NoopMetrics struct{}

func (NoopMetrics) RecordClone(context.Context, string, string, time.Duration, error) {}

func (NoopMetrics) RecordRegister(context.Context, string, bool) {}

// NoopSpanManager starts no spans. StartCloneSpan hands back ctx as is,
// together with whatever span ctx already carries, and never ends it.
type NoopSpanManager struct{}

func (NoopSpanManager) StartCloneSpan(ctx context.Context, _, _, _, _ string) (context.Context, trace.Span) {
	return ctx, trace.SpanFromContext(ctx)
}

func (NoopSpanManager) EndSpanWithError(trace.Span, error) {}

func (NoopSpanManager) AddSpanEvent(context.Context, string, ...attribute.KeyValue) {}

var (
	_ MetricsRecorder = NoopMetrics{}
	_ SpanManager     = NoopSpanManager{}
)
