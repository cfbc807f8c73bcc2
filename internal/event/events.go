package event

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DomainEvent carries the canonical shape of every domain event.
type DomainEvent struct {
	ID         string
	EventType  string
	OccurredAt time.Time
	BusinessID string
	Summary    string
	Category   string // "statement", "transaction", "business", "position"
	Weight     string // "critical", "major", "minor", "info"
	Polarity   string // "positive", "negative", "neutral"
	Payload    json.RawMessage
}

func newID() string { return uuid.New().String() }

func mustJSON(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}

// ── Statement events ─────────────────────────────────────────────────────────

// StatementCompletedPayload carries event-specific data for StatementCompleted.
type StatementCompletedPayload struct {
	StatementID         string `json:"statement_id"`
	BusinessID          string `json:"business_id"`
	OriginalName        string `json:"original_name"`
	TransactionsCreated int    `json:"transactions_created"`
	SkippedRows         int    `json:"skipped_rows"`
	BalanceCents        int64  `json:"balance_cents"`
	Forced              bool   `json:"forced"`
}

func NewStatementCompleted(p StatementCompletedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "statement_completed",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    fmt.Sprintf("Statement %s processed: %d transactions, %d skipped", p.OriginalName, p.TransactionsCreated, p.SkippedRows),
		Category:   "statement",
		Weight:     "major",
		Polarity:   "positive",
		Payload:    mustJSON(p),
	}
}

// StatementFailedPayload carries event-specific data for StatementFailed.
type StatementFailedPayload struct {
	StatementID  string `json:"statement_id"`
	BusinessID   string `json:"business_id"`
	OriginalName string `json:"original_name"`
	Reason       string `json:"reason"`
}

func NewStatementFailed(p StatementFailedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "statement_failed",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    fmt.Sprintf("Statement %s failed: %s", p.OriginalName, p.Reason),
		Category:   "statement",
		Weight:     "critical",
		Polarity:   "negative",
		Payload:    mustJSON(p),
	}
}

// StatementDeletedPayload carries event-specific data for StatementDeleted.
type StatementDeletedPayload struct {
	StatementID         string `json:"statement_id"`
	BusinessID          string `json:"business_id"`
	OriginalName        string `json:"original_name"`
	TransactionsRemoved int    `json:"transactions_removed"`
}

func NewStatementDeleted(p StatementDeletedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "statement_deleted",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    fmt.Sprintf("Statement %s deleted, %d transactions removed", p.OriginalName, p.TransactionsRemoved),
		Category:   "statement",
		Weight:     "major",
		Polarity:   "neutral",
		Payload:    mustJSON(p),
	}
}

// ── Transaction events ───────────────────────────────────────────────────────

// TransactionCreatedPayload carries event-specific data for TransactionCreated.
type TransactionCreatedPayload struct {
	TransactionID string    `json:"transaction_id"`
	BusinessID    string    `json:"business_id"`
	Date          time.Time `json:"date"`
	Type          string    `json:"type"`
	AmountCents   int64     `json:"amount_cents"`
	Category      string    `json:"category"`
}

func NewTransactionCreated(p TransactionCreatedPayload) DomainEvent {
	polarity := "positive"
	if p.Type == "expense" {
		polarity = "neutral"
	}
	return DomainEvent{
		ID:         newID(),
		EventType:  "transaction_created",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    fmt.Sprintf("%s of %d cents recorded in %s", p.Type, p.AmountCents, p.Category),
		Category:   "transaction",
		Weight:     "minor",
		Polarity:   polarity,
		Payload:    mustJSON(p),
	}
}

// TransactionDeletedPayload carries event-specific data for TransactionDeleted.
type TransactionDeletedPayload struct {
	TransactionID string `json:"transaction_id"`
	BusinessID    string `json:"business_id"`
	Type          string `json:"type"`
	AmountCents   int64  `json:"amount_cents"`
}

func NewTransactionDeleted(p TransactionDeletedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "transaction_deleted",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    fmt.Sprintf("%s of %d cents deleted", p.Type, p.AmountCents),
		Category:   "transaction",
		Weight:     "minor",
		Polarity:   "neutral",
		Payload:    mustJSON(p),
	}
}

// ── Business events ──────────────────────────────────────────────────────────

// BusinessCreatedPayload carries event-specific data for BusinessCreated.
type BusinessCreatedPayload struct {
	BusinessID string `json:"business_id"`
	Name       string `json:"name"`
	Currency   string `json:"currency"`
}

func NewBusinessCreated(p BusinessCreatedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "business_created",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    fmt.Sprintf("Business %q onboarded", p.Name),
		Category:   "business",
		Weight:     "major",
		Polarity:   "positive",
		Payload:    mustJSON(p),
	}
}

// BaselineUpdatedPayload carries event-specific data for BaselineUpdated.
type BaselineUpdatedPayload struct {
	BusinessID string `json:"business_id"`
	UpdatedBy  string `json:"updated_by"`
}

func NewBaselineUpdated(p BaselineUpdatedPayload) DomainEvent {
	return DomainEvent{
		ID:         newID(),
		EventType:  "baseline_updated",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    "Opening balances updated",
		Category:   "business",
		Weight:     "minor",
		Polarity:   "neutral",
		Payload:    mustJSON(p),
	}
}

// ── Position events ──────────────────────────────────────────────────────────

// PositionRecomputedPayload carries event-specific data for PositionRecomputed.
type PositionRecomputedPayload struct {
	BusinessID       string `json:"business_id"`
	TotalAssets      int64  `json:"total_assets_cents"`
	TotalLiabilities int64  `json:"total_liabilities_cents"`
	NetWorth         int64  `json:"net_worth_cents"`
}

func NewPositionRecomputed(p PositionRecomputedPayload) DomainEvent {
	polarity := "positive"
	if p.NetWorth < 0 {
		polarity = "negative"
	}
	return DomainEvent{
		ID:         newID(),
		EventType:  "position_recomputed",
		OccurredAt: time.Now(),
		BusinessID: p.BusinessID,
		Summary:    fmt.Sprintf("Financial position updated, net worth %d cents", p.NetWorth),
		Category:   "position",
		Weight:     "info",
		Polarity:   polarity,
		Payload:    mustJSON(p),
	}
}
