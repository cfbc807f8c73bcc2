// Package event defines domain events and an in-memory feed of recent ones.
// Events are published to the in-process bus after the database work that
// produced them has committed.
package event

import (
	"context"
	"sort"
	"sync"
)

// Publisher sends domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, evt DomainEvent)
}

// NopPublisher discards events. Useful when no bus is wired.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, DomainEvent) {}

// RecentStore keeps the last N domain events in memory for the activity
// feed. It implements the bus Handler interface. No persistence: the feed
// is a convenience view, the ledger is the source of truth.
type RecentStore struct {
	mu     sync.RWMutex
	events []DomainEvent
	max    int
	next   int
	full   bool
}

// NewRecentStore creates a store holding at most max events.
func NewRecentStore(max int) *RecentStore {
	if max < 1 {
		max = 256
	}
	return &RecentStore{events: make([]DomainEvent, max), max: max}
}

func (s *RecentStore) HandleEvent(_ context.Context, evt DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[s.next] = evt
	s.next = (s.next + 1) % s.max
	if s.next == 0 {
		s.full = true
	}
	return nil
}

// Recent returns up to limit events, newest first. An empty businessID
// returns events for all businesses.
func (s *RecentStore) Recent(businessID string, limit int) []DomainEvent {
	if limit <= 0 || limit > s.max {
		limit = s.max
	}

	s.mu.RLock()
	n := s.max
	if !s.full {
		n = s.next
	}
	matched := make([]DomainEvent, 0, n)
	for i := 0; i < n; i++ {
		e := s.events[i]
		if businessID != "" && e.BusinessID != businessID {
			continue
		}
		matched = append(matched, e)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].OccurredAt.After(matched[j].OccurredAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}
