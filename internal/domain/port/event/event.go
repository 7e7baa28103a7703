package event

import (
	"context"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
)

// Handler reacts to a ledger event. A returned error is logged by the bus.
type Handler func(ctx context.Context, evt entity.LedgerEvent) error

// Subscription is the handle of one registered handler
type Subscription interface {
	// Unsubscribe removes the handler. Calling it more than once is a no-op.
	Unsubscribe()
}

// Publisher broadcasts "a ledger changed" to every current subscriber
type Publisher interface {
	Publish(ctx context.Context, evt entity.LedgerEvent)
}

// Subscriber registers handlers for ledger events
type Subscriber interface {
	// Subscribe registers handler under a name used in logs and metrics
	Subscribe(name string, handler Handler) Subscription
}
