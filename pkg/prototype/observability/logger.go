// Package observability provides structured logging, metrics, and tracing
// for registry clone operations.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds registry context to a logger.
// Returns a new logger with registry and op_id fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "shapes", cc.ID())
//	enriched.Debug("cloning") // includes registry, op_id
func EnrichLogger(logger *slog.Logger, registry, opID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("registry", registry),
		slog.String("op_id", opID),
	)
}

// LogRegister logs a template registration.
func LogRegister(logger *slog.Logger, id string, replaced bool) {
	if logger == nil {
		return
	}
	logger.Debug("prototype registered",
		slog.String("id", id),
		slog.Bool("replaced", replaced),
	)
}

// LogCloneStart logs the start of a clone.
func LogCloneStart(logger *slog.Logger, id, mode string) {
	if logger == nil {
		return
	}
	logger.Debug("clone starting",
		slog.String("id", id),
		slog.String("mode", mode),
	)
}

// LogCloneComplete logs a successful clone.
func LogCloneComplete(logger *slog.Logger, id, mode string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("clone completed",
		slog.String("id", id),
		slog.String("mode", mode),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogCloneError logs a failed clone, including lookups of unknown ids.
func LogCloneError(logger *slog.Logger, id, mode string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("clone failed",
		slog.String("id", id),
		slog.String("mode", mode),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
