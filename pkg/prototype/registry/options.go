package registry

import (
	"log/slog"

	"github.com/randalmurphal/prototype/pkg/prototype/observability"
)

// settings holds Registrar configuration.
type settings struct {
	name    string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// defaultSettings returns a silent configuration: no logger, no-op
// metrics and tracing.
func defaultSettings() settings {
	return settings{
		name:    "default",
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a Registrar.
type Option func(*settings)

// WithName sets the registrar name used in errors, logs, metrics and spans.
// Default: "default"
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithLogger enables structured logging of registrations and clones.
// Clone records are logged at debug level, failures at warn.
//
// Example:
//
//	r := registry.New[string](registry.WithLogger(slog.Default()))
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorder. A nil recorder disables metrics.
//
// Example:
//
//	r := registry.New[string](registry.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(s *settings) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		s.metrics = m
	}
}

// WithTracing sets the span manager. A nil manager disables tracing.
func WithTracing(sm observability.SpanManager) Option {
	return func(s *settings) {
		if sm == nil {
			sm = observability.NoopSpanManager{}
		}
		s.spans = sm
	}
}
