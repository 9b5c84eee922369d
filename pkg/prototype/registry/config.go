package registry

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/randalmurphal/prototype/pkg/prototype/config"
	"github.com/randalmurphal/prototype/pkg/prototype/observability"
)

// FromConfig builds a registrar from cfg and registers every entry of its
// "templates" object. Recognized keys:
//
//	name       registrar name (default "default")
//	log_level  enables a stderr text logger at that level
//	metrics    true to record OpenTelemetry metrics
//	tracing    true to emit OpenTelemetry spans
//	templates  id -> template data
//
// opts are applied after the config-derived options and win over them.
func FromConfig(cfg config.Config, opts ...Option) (*Registrar[string], error) {
	derived := []Option{WithName(cfg.String("name", "default"))}
	if cfg.Has("log_level") {
		level := cfg.LogLevel("log_level", slog.LevelInfo)
		derived = append(derived, WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		)))
	}
	if cfg.Bool("metrics", false) {
		derived = append(derived, WithMetrics(observability.NewMetricsRecorder()))
	}
	if cfg.Bool("tracing", false) {
		derived = append(derived, WithTracing(observability.NewSpanManager()))
	}

	r := New[string](append(derived, opts...)...)

	if !cfg.Has("templates") {
		return r, nil
	}
	templates := cfg.Map("templates")
	if templates == nil {
		return nil, fmt.Errorf("registry %s: templates must be an object", r.Name())
	}
	r.RegisterMany(templates)
	return r, nil
}
