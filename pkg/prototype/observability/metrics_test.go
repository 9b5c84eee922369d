package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns a recorder on a fresh meter provider together
// with the provider's reader.
func newTestMetrics(t *testing.T) (MetricsRecorder, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	})

	m, err := NewMetricsRecorderFor(provider)
	require.NoError(t, err)
	return m, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumFor returns the counter value for the data point carrying key=value.
func sumFor(t *testing.T, m *metricdata.Metrics, key, value string) (int64, bool) {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "Expected Sum type")
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value(attribute.Key(key)); ok && v.AsString() == value {
			return dp.Value, true
		}
	}
	return 0, false
}

func TestNewMetricsRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(original)
		_ = provider.Shutdown(context.Background())
	})

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)
	assert.Same(t, recorder, NewMetricsRecorder(), "instruments are shared")

	recorder.RecordClone(context.Background(), "global", "deep", time.Millisecond, nil)
	metric := findMetric(collectMetrics(t, reader), "prototype.clone.operations")
	require.NotNil(t, metric)
	v, found := sumFor(t, metric, "registry", "global")
	assert.True(t, found)
	assert.Equal(t, int64(1), v)
}

func TestRecordClone(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	t.Run("counts operations", func(t *testing.T) {
		m.RecordClone(ctx, "shapes", "deep", 2*time.Millisecond, nil)

		metric := findMetric(collectMetrics(t, reader), "prototype.clone.operations")
		require.NotNil(t, metric)
		v, found := sumFor(t, metric, "registry", "shapes")
		assert.True(t, found)
		assert.GreaterOrEqual(t, v, int64(1))
	})

	t.Run("records latency", func(t *testing.T) {
		m.RecordClone(ctx, "shapes", "shallow", 3*time.Millisecond, nil)

		metric := findMetric(collectMetrics(t, reader), "prototype.clone.latency_ms")
		require.NotNil(t, metric)
		hist, ok := metric.Data.(metricdata.Histogram[float64])
		require.True(t, ok, "Expected Histogram type")
		assert.NotEmpty(t, hist.DataPoints)
	})

	t.Run("counts errors only on failure", func(t *testing.T) {
		m.RecordClone(ctx, "failing", "deep", time.Millisecond, errors.New("boom"))
		m.RecordClone(ctx, "clean", "deep", time.Millisecond, nil)

		metric := findMetric(collectMetrics(t, reader), "prototype.clone.errors")
		require.NotNil(t, metric)

		v, found := sumFor(t, metric, "registry", "failing")
		assert.True(t, found)
		assert.Equal(t, int64(1), v)

		_, found = sumFor(t, metric, "registry", "clean")
		assert.False(t, found)
	})
}

func TestRecordRegister(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordRegister(context.Background(), "shapes", false)
	m.RecordRegister(context.Background(), "shapes", true)

	metric := findMetric(collectMetrics(t, reader), "prototype.registry.registrations")
	require.NotNil(t, metric)

	sum, ok := metric.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)
}
