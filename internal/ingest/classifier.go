package ingest

import (
	"context"
	"log"
	"time"
)

// Transaction types. These mirror the enum values on the Transaction
// schema; keeping them as plain strings here lets the classifier stay
// independent of generated code.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Fallback categories and confidence used when no enrichment service is
// consulted (or when it degrades).
const (
	CategoryIncome      = "Income"
	CategoryExpenses    = "Expenses"
	DefaultConfidence   = 0.8
	defaultEnrichWindow = 2 * time.Second
)

// Classification is the classifier's verdict for one row.
type Classification struct {
	Type       string
	Category   string
	Confidence float64
}

// ClassifiedRow pairs a parsed row with its classification, ready for
// the ledger writer.
type ClassifiedRow struct {
	Row
	Classification
}

// Enricher is an optional external classification service. It is a soft
// dependency: any error from Classify means the deterministic rule is
// used instead, and ingestion continues.
type Enricher interface {
	Classify(ctx context.Context, row Row) (Classification, error)
}

// Classifier assigns type, category and confidence to parsed rows.
// With a nil enricher it is fully deterministic.
type Classifier struct {
	enricher Enricher
	timeout  time.Duration
}

// NewClassifier creates a classifier. enricher may be nil. A timeout of
// zero uses a short default; enrichment must never stall an upload.
func NewClassifier(enricher Enricher, timeout time.Duration) *Classifier {
	if timeout <= 0 {
		timeout = defaultEnrichWindow
	}
	return &Classifier{enricher: enricher, timeout: timeout}
}

// Classify returns a valid classification for the row. It never fails:
// the deterministic rule is the floor.
func (c *Classifier) Classify(ctx context.Context, row Row) Classification {
	base := fallbackClassification(row)
	if c.enricher == nil {
		return base
	}

	enrichCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	enriched, err := c.enricher.Classify(enrichCtx, row)
	if err != nil {
		log.Printf("classifier: enrichment degraded, using fallback: %v", err)
		return base
	}
	return sanitize(enriched, base)
}

// ClassifyAll classifies a batch of rows in order.
func (c *Classifier) ClassifyAll(ctx context.Context, rows []Row) []ClassifiedRow {
	out := make([]ClassifiedRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ClassifiedRow{Row: row, Classification: c.Classify(ctx, row)})
	}
	return out
}

// fallbackClassification is the deterministic rule: the sign of the
// amount decides everything.
func fallbackClassification(row Row) Classification {
	if row.AmountCents >= 0 {
		return Classification{Type: TypeIncome, Category: CategoryIncome, Confidence: DefaultConfidence}
	}
	return Classification{Type: TypeExpense, Category: CategoryExpenses, Confidence: DefaultConfidence}
}

// sanitize validates an enrichment response before it is allowed near
// the transaction model. Shape violations fall back wholesale; a valid
// shape with an out-of-range confidence is clamped.
func sanitize(enriched, base Classification) Classification {
	if enriched.Type != TypeIncome && enriched.Type != TypeExpense {
		log.Printf("classifier: enrichment returned unknown type %q, using fallback", enriched.Type)
		return base
	}
	if enriched.Category == "" {
		enriched.Category = base.Category
	}
	if enriched.Confidence < 0 {
		enriched.Confidence = 0
	}
	if enriched.Confidence > 1 {
		enriched.Confidence = 1
	}
	return enriched
}
