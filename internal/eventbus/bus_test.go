package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axento/books/internal/event"
)

type collector struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (c *collector) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, evt)
	return nil
}

func (c *collector) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := New(16)
	a := &collector{}
	b := &collector{}
	bus.Subscribe("a", a)
	bus.Subscribe("b", b)

	ctx, cancel := context.WithCancel(context.Background())
	bus.Start(ctx)

	for i := 0; i < 3; i++ {
		bus.Publish(ctx, event.NewBusinessCreated(event.BusinessCreatedPayload{
			BusinessID: "b1", Name: "Acme", Currency: "USD",
		}))
	}

	require.Eventually(t, func() bool {
		return a.len() == 3 && b.len() == 3
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	bus.Stop()
}

func TestBus_DrainsOnStop(t *testing.T) {
	bus := New(16)
	c := &collector{}
	bus.Subscribe("c", c)

	ctx, cancel := context.WithCancel(context.Background())
	bus.Start(ctx)

	for i := 0; i < 5; i++ {
		bus.Publish(ctx, event.NewBaselineUpdated(event.BaselineUpdatedPayload{BusinessID: "b1"}))
	}
	cancel()
	bus.Stop()

	assert.Equal(t, 5, c.len())
}

func TestBus_StopReturnsWithoutContextCancel(t *testing.T) {
	bus := New(16)
	c := &collector{}
	bus.Subscribe("c", c)

	ctx := context.Background()
	bus.Start(ctx)
	bus.Publish(ctx, event.NewBusinessCreated(event.BusinessCreatedPayload{BusinessID: "b1"}))

	// Stop alone must shut the consumer down; the Start context stays live.
	stopped := make(chan struct{})
	go func() {
		bus.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return while the start context was still live")
	}
	assert.Equal(t, 1, c.len())
}

func TestBus_PublishAfterStopIsDropped(t *testing.T) {
	bus := New(16)
	c := &collector{}
	bus.Subscribe("c", c)

	ctx := context.Background()
	bus.Start(ctx)
	bus.Stop()

	bus.Publish(ctx, event.NewBusinessCreated(event.BusinessCreatedPayload{BusinessID: "b1"}))
	assert.Equal(t, 0, c.len())

	// Stop is idempotent.
	bus.Stop()
}

func TestBus_HandlerErrorDoesNotStopDispatch(t *testing.T) {
	bus := New(16)
	c := &collector{}
	bus.Subscribe("failing", HandlerFunc(func(context.Context, event.DomainEvent) error {
		return assert.AnError
	}))
	bus.Subscribe("ok", c)

	ctx, cancel := context.WithCancel(context.Background())
	bus.Start(ctx)

	bus.Publish(ctx, event.NewBusinessCreated(event.BusinessCreatedPayload{BusinessID: "b1"}))

	require.Eventually(t, func() bool { return c.len() == 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	bus.Stop()
}
