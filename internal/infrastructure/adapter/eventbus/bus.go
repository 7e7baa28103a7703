package eventbus

import (
	"context"
	"fmt"
	"sync"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	evport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/event"
)

// Bus is an in-process publisher/subscriber for ledger events.
// Publish delivers synchronously, in registration order, to the handlers
// registered at the time of the call. Late subscribers get no replay.
type Bus struct {
	logger  coreport.Logger
	metrics coreport.Metrics

	mu       sync.RWMutex
	nextID   uint64
	handlers []registration
}

type registration struct {
	id      uint64
	name    string
	handler evport.Handler
}

var (
	_ evport.Publisher  = (*Bus)(nil)
	_ evport.Subscriber = (*Bus)(nil)
)

// NewBus creates an empty bus
func NewBus(logger coreport.Logger, metrics coreport.Metrics) *Bus {
	return &Bus{
		logger:  logger,
		metrics: metrics,
	}
}

// Subscribe registers handler and returns the handle that removes it
func (b *Bus) Subscribe(name string, handler evport.Handler) evport.Subscription {
	if handler == nil {
		panic("eventbus: nil handler")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	reg := registration{id: b.nextID, name: name, handler: handler}
	b.handlers = append(b.handlers, reg)

	b.logger.Debug("Event handler subscribed", map[string]any{
		"listener": name,
	})

	return &subscription{bus: b, id: reg.id}
}

// Publish delivers evt to every current handler. Handler failures are
// logged and counted; they never reach the caller.
func (b *Bus) Publish(ctx context.Context, evt entity.LedgerEvent) {
	b.mu.RLock()
	handlers := make([]registration, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, reg := range handlers {
		if err := b.deliver(ctx, reg, evt); err != nil {
			b.metrics.RecordListenerFailure(reg.name)
			b.logger.Error("Event handler failed", map[string]any{
				"listener": reg.name,
				"event_id": evt.ID,
				"action":   string(evt.Action),
				"user_id":  evt.UserID,
				"error":    err.Error(),
			})
		}
	}
}

// Len returns the number of registered handlers
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

func (b *Bus) deliver(ctx context.Context, reg registration, evt entity.LedgerEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return reg.handler(ctx, evt)
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, reg := range b.handlers {
		if reg.id == id {
			b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
			b.logger.Debug("Event handler unsubscribed", map[string]any{
				"listener": reg.name,
			})
			return
		}
	}
}

type subscription struct {
	bus  *Bus
	id   uint64
	once sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s.id)
	})
}
