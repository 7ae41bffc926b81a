package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		l := zap.NewExample()
		assert.Same(t, l, FromContext(WithContext(context.Background(), l)))
	})

	t.Run("falls back to nop", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("ignores values of the wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")
		assert.NotNil(t, FromContext(ctx))
	})
}

func TestWithRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx, l := WithRequestID(context.Background(), zap.New(core), "req-1")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	l.Info("hello")
	require.Equal(t, 1, recorded.Len())
	assert.Equal(t, "req-1", recorded.All()[0].ContextMap()["request_id"])
}

func TestContextLogger(t *testing.T) {
	t.Run("logger from ctx is not enriched twice", func(t *testing.T) {
		core, recorded := observer.New(zapcore.InfoLevel)
		ctx, _ := WithRequestID(context.Background(), zap.New(core), "req-2")

		L(ctx).Info("order created")

		entry := recorded.All()[0]
		count := 0
		for _, f := range entry.Context {
			if f.Key == "request_id" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("explicit logger picks up request and idempotency key", func(t *testing.T) {
		core, recorded := observer.New(zapcore.DebugLevel)
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-3")
		ctx = WithIdempotencyKey(ctx, "idem-1")

		cl := WithLogger(ctx, zap.New(core)).With(zap.String("order_number", "PRD-800001"))
		cl.Debug("d")
		cl.Warn("w")

		require.Equal(t, 2, recorded.Len())
		for _, e := range recorded.All() {
			fields := e.ContextMap()
			assert.Equal(t, "req-3", fields["request_id"])
			assert.Equal(t, "idem-1", fields["idempotency_key"])
			assert.Equal(t, "PRD-800001", fields["order_number"])
			assert.Len(t, e.Context, 3)
		}
	})

	t.Run("nil logger does not panic", func(t *testing.T) {
		cl := &ContextLogger{ctx: context.Background()}
		assert.NotPanics(t, func() {
			cl.Info("x")
			cl.Error("y")
			_ = cl.Zap()
		})
	})
}
