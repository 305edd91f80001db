// Package events dispatches domain events to in-process handlers.
package events

import (
	"context"
	"errors"
	"evdemand/pkg/domain"
	"sync"
)

// Handler reacts to a single event. Handlers run synchronously in
// registration order and are never retried.
type Handler func(ctx context.Context, e domain.Event) error

// Publisher delivers events to whoever is interested.
type Publisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Bus is a Publisher that fans events out to registered handlers. It is safe
// for concurrent use.
type Bus struct {
	mu     sync.RWMutex
	byType map[string][]Handler
	all    []Handler
}

var _ Publisher = (*Bus)(nil)

// NewBus returns a bus without subscribers.
func NewBus() *Bus {
	return &Bus{byType: make(map[string][]Handler)}
}

// Subscribe registers h for events whose EventType is eventType.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.byType[eventType] = append(b.byType[eventType], h)
}

// SubscribeAll registers h for every event.
func (b *Bus) SubscribeAll(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.all = append(b.all, h)
}

// Publish hands every event to its handlers. A failing handler does not stop
// the others; all errors are joined into the result.
func (b *Bus) Publish(ctx context.Context, events ...domain.Event) error {
	var errs []error
	for _, e := range events {
		for _, h := range b.handlersFor(e.EventType()) {
			if err := h(ctx, e); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

func (b *Bus) handlersFor(eventType string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Handler, 0, len(b.byType[eventType])+len(b.all))
	out = append(out, b.byType[eventType]...)

	return append(out, b.all...)
}
