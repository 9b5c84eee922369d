package observability

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordClone records a clone with its mode, duration and error status.
	RecordClone(ctx context.Context, registry, mode string, duration time.Duration, err error)

	// RecordRegister records a template registration.
	RecordRegister(ctx context.Context, registry string, replaced bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	cloneOps      metric.Int64Counter
	cloneLatency  metric.Float64Histogram
	cloneErrors   metric.Int64Counter
	registrations metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily creates the instruments on the global meter
// provider. They are shared by every recorder from NewMetricsRecorder.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.Meter(instrumentationName))
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	cloneOps, err := meter.Int64Counter("prototype.clone.operations",
		metric.WithDescription("Number of clone operations"),
	)
	if err != nil {
		return nil, err
	}

	cloneLatency, err := meter.Float64Histogram("prototype.clone.latency_ms",
		metric.WithDescription("Clone latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cloneErrors, err := meter.Int64Counter("prototype.clone.errors",
		metric.WithDescription("Number of failed clone operations"),
	)
	if err != nil {
		return nil, err
	}

	registrations, err := meter.Int64Counter("prototype.registry.registrations",
		metric.WithDescription("Number of template registrations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		cloneOps:      cloneOps,
		cloneLatency:  cloneLatency,
		cloneErrors:   cloneErrors,
		registrations: registrations,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderFor returns a MetricsRecorder whose instruments are
// created on mp. Unlike NewMetricsRecorder it reports instrument errors.
func NewMetricsRecorderFor(mp metric.MeterProvider) (MetricsRecorder, error) {
	m, err := newOtelMetrics(mp.Meter(instrumentationName))
	if err != nil {
		return nil, fmt.Errorf("create clone instruments: %w", err)
	}
	return m, nil
}

// RecordClone records a clone operation.
func (m *otelMetrics) RecordClone(ctx context.Context, registry, mode string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(
		attribute.String("registry", registry),
		attribute.String("mode", mode),
	)

	m.cloneOps.Add(ctx, 1, attrs)
	m.cloneLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if err != nil {
		m.cloneErrors.Add(ctx, 1, attrs)
	}
}

// RecordRegister records a registration.
func (m *otelMetrics) RecordRegister(ctx context.Context, registry string, replaced bool) {
	m.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("registry", registry),
		attribute.Bool("replaced", replaced),
	))
}
