// Package eventbus provides an in-process pub/sub bus for domain events.
// The ledger and handlers publish after commit; subscribers process
// asynchronously on a single consumer goroutine, which keeps
// SQLite-backed subscribers free of concurrent writes. An external
// broker could replace this without changing the Handler contract.
package eventbus

import (
	"context"
	"log"
	"sync"

	"github.com/axento/books/internal/event"
)

// Handler processes a domain event. Implementations must be safe for
// concurrent calls from different goroutines.
type Handler interface {
	HandleEvent(ctx context.Context, evt event.DomainEvent) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt event.DomainEvent) error

func (f HandlerFunc) HandleEvent(ctx context.Context, evt event.DomainEvent) error {
	return f(ctx, evt)
}

type namedHandler struct {
	name    string
	handler Handler
}

// Bus fans published events out to every subscriber, in order, from one
// consumer goroutine. Publishing never blocks; when the buffer is full
// the event is dropped with a warning.
type Bus struct {
	mu          sync.RWMutex
	subscribers []namedHandler
	stopped     bool

	events chan event.DomainEvent
	done   chan struct{}
}

// New creates a Bus with the given channel buffer size.
func New(bufSize int) *Bus {
	if bufSize < 1 {
		bufSize = 256
	}
	return &Bus{
		events: make(chan event.DomainEvent, bufSize),
		done:   make(chan struct{}),
	}
}

// Subscribe registers a named handler. Must be called before Start.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, namedHandler{name: name, handler: h})
}

// Publish enqueues an event for dispatch. Events published after Stop,
// or while the buffer is full, are dropped and logged. The read lock is
// held across the send so Stop cannot close the channel mid-send.
func (b *Bus) Publish(ctx context.Context, evt event.DomainEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		log.Printf("eventbus: stopped, dropping event %s (%s)", evt.EventType, evt.ID)
		return
	}
	select {
	case b.events <- evt:
	default:
		log.Printf("eventbus: buffer full, dropping event %s (%s)", evt.EventType, evt.ID)
	}
}

// Start launches the consumer goroutine. It runs until Stop is called
// or the context is cancelled; either way buffered events are drained
// before it exits.
func (b *Bus) Start(ctx context.Context) {
	go b.run(ctx)
}

func (b *Bus) run(ctx context.Context) {
	defer close(b.done)
	for {
		select {
		case evt, ok := <-b.events:
			if !ok {
				return
			}
			b.dispatch(ctx, evt)
		case <-ctx.Done():
			b.drain(ctx)
			return
		}
	}
}

// drain delivers whatever is already buffered, then returns.
func (b *Bus) drain(ctx context.Context) {
	for {
		select {
		case evt, ok := <-b.events:
			if !ok {
				return
			}
			b.dispatch(ctx, evt)
		default:
			return
		}
	}
}

// Stop shuts the bus down and waits for the consumer goroutine to
// finish dispatching buffered events. It returns regardless of whether
// the Start context has been cancelled. Idempotent.
func (b *Bus) Stop() {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		<-b.done
		return
	}
	b.stopped = true
	b.mu.Unlock()

	close(b.events)
	<-b.done
}

func (b *Bus) dispatch(ctx context.Context, evt event.DomainEvent) {
	b.mu.RLock()
	subs := b.subscribers
	b.mu.RUnlock()

	for _, s := range subs {
		if err := s.handler.HandleEvent(ctx, evt); err != nil {
			log.Printf("eventbus: %s handler error for %s: %v", s.name, evt.EventType, err)
		}
	}
}
