package event

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeEvents(t *testing.T, s *RecentStore, events ...DomainEvent) {
	t.Helper()
	for _, evt := range events {
		require.NoError(t, s.HandleEvent(context.Background(), evt))
	}
}

func testEvent(businessID string, at time.Time) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "statement_completed",
		OccurredAt: at,
		BusinessID: businessID,
		Summary:    "test",
	}
}

func TestRecentStore_NewestFirst(t *testing.T) {
	s := NewRecentStore(10)
	base := time.Now()
	storeEvents(t, s,
		testEvent("biz-1", base),
		testEvent("biz-1", base.Add(time.Second)),
		testEvent("biz-1", base.Add(2*time.Second)),
	)

	got := s.Recent("", 10)
	require.Len(t, got, 3)
	assert.True(t, got[0].OccurredAt.After(got[1].OccurredAt))
	assert.True(t, got[1].OccurredAt.After(got[2].OccurredAt))
}

func TestRecentStore_FiltersByBusiness(t *testing.T) {
	s := NewRecentStore(10)
	base := time.Now()
	storeEvents(t, s,
		testEvent("biz-1", base),
		testEvent("biz-2", base.Add(time.Second)),
		testEvent("biz-1", base.Add(2*time.Second)),
	)

	got := s.Recent("biz-1", 10)
	require.Len(t, got, 2)
	for _, evt := range got {
		assert.Equal(t, "biz-1", evt.BusinessID)
	}
}

func TestRecentStore_EvictsOldest(t *testing.T) {
	s := NewRecentStore(3)
	base := time.Now()
	for i := 0; i < 5; i++ {
		storeEvents(t, s, DomainEvent{
			ID:         fmt.Sprintf("evt-%d", i),
			OccurredAt: base.Add(time.Duration(i) * time.Second),
			BusinessID: "biz-1",
		})
	}

	got := s.Recent("", 10)
	require.Len(t, got, 3)
	assert.Equal(t, "evt-4", got[0].ID)
	assert.Equal(t, "evt-2", got[2].ID)
}

func TestRecentStore_LimitApplies(t *testing.T) {
	s := NewRecentStore(10)
	base := time.Now()
	for i := 0; i < 6; i++ {
		storeEvents(t, s, testEvent("biz-1", base.Add(time.Duration(i)*time.Second)))
	}

	assert.Len(t, s.Recent("", 4), 4)
}

func TestEventConstructors_FillCanonicalFields(t *testing.T) {
	evt := NewStatementCompleted(StatementCompletedPayload{
		StatementID:         "s1",
		BusinessID:          "b1",
		OriginalName:        "jan.csv",
		TransactionsCreated: 2,
	})
	assert.NotEmpty(t, evt.ID)
	assert.Equal(t, "statement_completed", evt.EventType)
	assert.Equal(t, "b1", evt.BusinessID)
	assert.Equal(t, "statement", evt.Category)
	assert.NotEmpty(t, evt.Summary)
	assert.NotEmpty(t, evt.Payload)
	assert.False(t, evt.OccurredAt.IsZero())

	failed := NewStatementFailed(StatementFailedPayload{BusinessID: "b1", OriginalName: "x.csv", Reason: "boom"})
	assert.Equal(t, "negative", failed.Polarity)
	assert.Equal(t, "critical", failed.Weight)
}
