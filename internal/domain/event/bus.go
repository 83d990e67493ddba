package event

import (
	"context"
	"sync"

	"market/internal/domain/repository"
	"market/internal/errors"
)

// Handler reacts to one dispatched event. It receives the repository factory
// bound to the publishing write's transaction, so everything a handler writes
// commits or rolls back together with the primary change.
type Handler func(ctx context.Context, repos repository.RepositoryFactory, evt Event) error

// Bus dispatches events synchronously on the caller's goroutine. Handlers for
// one event name run in registration order, and the first handler error
// aborts the rest of the chain and propagates to the publisher.
//
// The bus itself holds no transaction state; concurrency control for
// same-row mutations lives in the repositories' atomic update operations.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for the named event. Registration order is
// dispatch order. Subscribe is meant to be called during startup wiring,
// before any Publish.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
}

// Publish dispatches evt to every handler registered for its name. An error
// from any handler is returned immediately, wrapped with the event name, and
// the remaining handlers are skipped.
func (b *Bus) Publish(ctx context.Context, repos repository.RepositoryFactory, evt Event) error {
	b.mu.RLock()
	chain := b.handlers[evt.Name()]
	b.mu.RUnlock()

	for _, handler := range chain {
		if err := handler(ctx, repos, evt); err != nil {
			return errors.Wrapf(err, "dispatch %s", evt.Name())
		}
	}

	return nil
}
