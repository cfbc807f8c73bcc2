package eventbus

import (
	"context"
	"log"

	"github.com/axento/books/internal/event"
)

// LogConsumer logs all domain events for observability.
type LogConsumer struct{}

func NewLogConsumer() *LogConsumer { return &LogConsumer{} }

func (c *LogConsumer) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	log.Printf("event: %s [%s/%s] %s business=%s",
		evt.EventType, evt.Category, evt.Weight, evt.Summary, evt.BusinessID)
	return nil
}
