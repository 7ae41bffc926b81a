package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/erp/production/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "ProductionOrder", uuid.New())}
}

type testHandler struct {
	mu         sync.Mutex
	eventTypes []string
	handled    []shared.DomainEvent
	err        error
	panicWith  any
}

func newTestHandler(eventTypes ...string) *testHandler {
	return &testHandler{eventTypes: eventTypes}
}

func (h *testHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handled = append(h.handled, event)
	if h.panicWith != nil {
		panic(h.panicWith)
	}
	return h.err
}

func (h *testHandler) EventTypes() []string { return h.eventTypes }

func (h *testHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handled)
}

func startedBus(t *testing.T) *InMemoryEventBus {
	t.Helper()
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))
	return bus
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("routes by event type", func(t *testing.T) {
		bus := startedBus(t)
		lines := newTestHandler("ProductionLineCompleted")
		orders := newTestHandler("ProductionOrderCreated")
		bus.Subscribe(lines)
		bus.Subscribe(orders)

		require.NoError(t, bus.Publish(ctx,
			newTestEvent("ProductionLineCompleted"),
			newTestEvent("ProductionLineCompleted"),
			newTestEvent("ProductionOrderCreated"),
		))

		assert.Equal(t, 2, lines.count())
		assert.Equal(t, 1, orders.count())
	})

	t.Run("explicit types override the handler's own", func(t *testing.T) {
		bus := startedBus(t)
		h := newTestHandler("A")
		bus.Subscribe(h, "B")

		require.NoError(t, bus.Publish(ctx, newTestEvent("A"), newTestEvent("B")))
		assert.Equal(t, 1, h.count())
	})

	t.Run("wildcard handler receives everything", func(t *testing.T) {
		bus := startedBus(t)
		all := newTestHandler()
		bus.Subscribe(all)

		require.NoError(t, bus.Publish(ctx, newTestEvent("A"), newTestEvent("B")))
		assert.Equal(t, 2, all.count())
	})

	t.Run("failing handlers do not stop the others", func(t *testing.T) {
		bus := startedBus(t)
		failing := newTestHandler("A")
		failing.err = errors.New("ledger down")
		panicking := newTestHandler("A")
		panicking.panicWith = "boom"
		ok := newTestHandler("A")
		bus.Subscribe(failing)
		bus.Subscribe(panicking)
		bus.Subscribe(ok)

		err := bus.Publish(ctx, newTestEvent("A"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ledger down")
		assert.Contains(t, err.Error(), "panicked")
		assert.Equal(t, 1, ok.count())
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		bus := startedBus(t)
		h := newTestHandler("A")
		bus.Subscribe(h)
		bus.Unsubscribe(h)

		require.NoError(t, bus.Publish(ctx, newTestEvent("A")))
		assert.Equal(t, 0, h.count())
	})

	t.Run("stopped bus rejects events", func(t *testing.T) {
		bus := startedBus(t)
		h := newTestHandler("A")
		bus.Subscribe(h)
		require.NoError(t, bus.Stop(ctx))

		assert.ErrorIs(t, bus.Publish(ctx, newTestEvent("A")), ErrBusStopped)
		assert.Equal(t, 0, h.count())
	})
}

func TestHandlerRegistry(t *testing.T) {
	r := NewHandlerRegistry()
	a := newTestHandler()
	b := newTestHandler()

	r.Register(a, "X", "Y")
	r.Register(a, "X")
	r.Register(b)

	assert.Equal(t, []shared.EventHandler{a, b}, r.GetHandlers("X"))
	assert.Equal(t, []shared.EventHandler{b}, r.GetHandlers("Z"))
	assert.Len(t, r.GetAllHandlers(), 2)

	r.Unregister(a)
	assert.Equal(t, []shared.EventHandler{b}, r.GetHandlers("X"))
	assert.Len(t, r.GetAllHandlers(), 1)
}
