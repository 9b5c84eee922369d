package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}

	assert.NotPanics(t, func() {
		m.RecordClone(context.Background(), "r", "deep", time.Second, errors.New("x"))
		m.RecordClone(context.TODO(), "", "", 0, nil)
		m.RecordRegister(context.Background(), "r", true)
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}

	t.Run("returns same context", func(t *testing.T) {
		ctx := context.Background()
		newCtx, span := sm.StartCloneSpan(ctx, "r", "a", "deep", "op")

		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("end and events do not panic", func(t *testing.T) {
		_, span := sm.StartCloneSpan(context.Background(), "", "", "", "")
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(context.Background(), "event")
			sm.EndSpanWithError(span, errors.New("x"))
			sm.EndSpanWithError(nil, nil)
		})
	})
}
