package eventbus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/logger"
	mocks "github.com/Priyareddy001/Company-portal-sub000/mocks/port/core"
)

func testEvent(userID string) entity.LedgerEvent {
	return entity.LedgerEvent{
		ID:         "evt-" + userID,
		Action:     entity.ActionCheckIn,
		UserID:     userID,
		OccurredAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
	}
}

func newTestBus(t *testing.T) (*Bus, *mocks.MockMetrics) {
	metrics := mocks.NewMockMetrics(t)
	return NewBus(logger.NewNoopLogger(), metrics), metrics
}

func TestBus_DeliversInRegistrationOrder(t *testing.T) {
	bus, _ := newTestBus(t)

	var order []string
	bus.Subscribe("first", func(_ context.Context, _ entity.LedgerEvent) error {
		order = append(order, "first")
		return nil
	})
	bus.Subscribe("second", func(_ context.Context, _ entity.LedgerEvent) error {
		order = append(order, "second")
		return nil
	})
	bus.Subscribe("third", func(_ context.Context, _ entity.LedgerEvent) error {
		order = append(order, "third")
		return nil
	})

	bus.Publish(context.Background(), testEvent("u1"))

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBus_HandlerReceivesEvent(t *testing.T) {
	bus, _ := newTestBus(t)

	var got entity.LedgerEvent
	bus.Subscribe("recorder", func(_ context.Context, evt entity.LedgerEvent) error {
		got = evt
		return nil
	})

	evt := testEvent("u1")
	bus.Publish(context.Background(), evt)

	assert.Equal(t, evt, got)
}

func TestBus_FailingHandlersDoNotStopDelivery(t *testing.T) {
	bus, metrics := newTestBus(t)
	metrics.EXPECT().RecordListenerFailure("panicky").Return().Once()
	metrics.EXPECT().RecordListenerFailure("erroring").Return().Once()

	var reached bool
	bus.Subscribe("panicky", func(_ context.Context, _ entity.LedgerEvent) error {
		panic("boom")
	})
	bus.Subscribe("erroring", func(_ context.Context, _ entity.LedgerEvent) error {
		return errors.New("listener failed")
	})
	bus.Subscribe("healthy", func(_ context.Context, _ entity.LedgerEvent) error {
		reached = true
		return nil
	})

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), testEvent("u1"))
	})
	assert.True(t, reached)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus, _ := newTestBus(t)

	var calls int
	sub := bus.Subscribe("counter", func(_ context.Context, _ entity.LedgerEvent) error {
		calls++
		return nil
	})

	bus.Publish(context.Background(), testEvent("u1"))
	sub.Unsubscribe()
	bus.Publish(context.Background(), testEvent("u1"))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())

	t.Run("second unsubscribe is a no-op", func(t *testing.T) {
		other := bus.Subscribe("other", func(_ context.Context, _ entity.LedgerEvent) error { return nil })

		sub.Unsubscribe()

		assert.Equal(t, 1, bus.Len())
		other.Unsubscribe()
		assert.Equal(t, 0, bus.Len())
	})
}

func TestBus_NoReplayForLateSubscribers(t *testing.T) {
	bus, _ := newTestBus(t)
	bus.Publish(context.Background(), testEvent("u1"))

	var calls int
	bus.Subscribe("late", func(_ context.Context, _ entity.LedgerEvent) error {
		calls++
		return nil
	})

	assert.Equal(t, 0, calls)
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	bus, _ := newTestBus(t)

	var secondCalls int
	var firstSub interface{ Unsubscribe() }
	firstSub = bus.Subscribe("self-removing", func(_ context.Context, _ entity.LedgerEvent) error {
		firstSub.Unsubscribe()
		return nil
	})
	bus.Subscribe("second", func(_ context.Context, _ entity.LedgerEvent) error {
		secondCalls++
		return nil
	})

	bus.Publish(context.Background(), testEvent("u1"))
	bus.Publish(context.Background(), testEvent("u1"))

	assert.Equal(t, 2, secondCalls)
	assert.Equal(t, 1, bus.Len())
}

func TestBus_ConcurrentPublishAndSubscribe(t *testing.T) {
	bus, metrics := newTestBus(t)
	metrics.EXPECT().RecordListenerFailure(mock.Anything).Return().Maybe()

	var mu sync.Mutex
	var delivered int
	bus.Subscribe("counter", func(_ context.Context, _ entity.LedgerEvent) error {
		mu.Lock()
		delivered++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Publish(context.Background(), testEvent("u1"))
		}()
		go func() {
			defer wg.Done()
			sub := bus.Subscribe("transient", func(_ context.Context, _ entity.LedgerEvent) error { return nil })
			sub.Unsubscribe()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, bus.Len())
	assert.Equal(t, 20, delivered)
}

func TestBus_SubscribeNilHandlerPanics(t *testing.T) {
	bus, _ := newTestBus(t)

	assert.Panics(t, func() {
		bus.Subscribe("nil", nil)
	})
}
