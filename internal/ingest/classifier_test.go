package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnricher struct {
	result Classification
	err    error
	delay  time.Duration
}

func (f *fakeEnricher) Classify(ctx context.Context, _ Row) (Classification, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return Classification{}, ctx.Err()
		}
	}
	return f.result, f.err
}

func TestClassifier_FallbackBySign(t *testing.T) {
	c := NewClassifier(nil, 0)

	income := c.Classify(context.Background(), Row{AmountCents: 10000})
	assert.Equal(t, TypeIncome, income.Type)
	assert.Equal(t, CategoryIncome, income.Category)
	assert.Equal(t, DefaultConfidence, income.Confidence)

	expense := c.Classify(context.Background(), Row{AmountCents: -4000})
	assert.Equal(t, TypeExpense, expense.Type)
	assert.Equal(t, CategoryExpenses, expense.Category)

	// Zero counts as income.
	zero := c.Classify(context.Background(), Row{AmountCents: 0})
	assert.Equal(t, TypeIncome, zero.Type)
}

func TestClassifier_EnricherOverrides(t *testing.T) {
	c := NewClassifier(&fakeEnricher{
		result: Classification{Type: TypeExpense, Category: "Software", Confidence: 0.95},
	}, 0)

	got := c.Classify(context.Background(), Row{AmountCents: 10000})
	assert.Equal(t, TypeExpense, got.Type)
	assert.Equal(t, "Software", got.Category)
	assert.Equal(t, 0.95, got.Confidence)
}

func TestClassifier_EnricherErrorFallsBack(t *testing.T) {
	c := NewClassifier(&fakeEnricher{err: errors.New("quota exceeded")}, 0)

	got := c.Classify(context.Background(), Row{AmountCents: -500})
	assert.Equal(t, TypeExpense, got.Type)
	assert.Equal(t, CategoryExpenses, got.Category)
	assert.Equal(t, DefaultConfidence, got.Confidence)
}

func TestClassifier_EnricherTimeoutFallsBack(t *testing.T) {
	c := NewClassifier(&fakeEnricher{
		result: Classification{Type: TypeExpense, Category: "Slow"},
		delay:  time.Second,
	}, 10*time.Millisecond)

	start := time.Now()
	got := c.Classify(context.Background(), Row{AmountCents: 100})
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, TypeIncome, got.Type)
	assert.Equal(t, CategoryIncome, got.Category)
}

func TestClassifier_SanitizesEnrichment(t *testing.T) {
	// Unknown type falls back wholesale.
	c := NewClassifier(&fakeEnricher{
		result: Classification{Type: "transfer", Category: "Weird", Confidence: 0.9},
	}, 0)
	got := c.Classify(context.Background(), Row{AmountCents: 100})
	assert.Equal(t, TypeIncome, got.Type)
	assert.Equal(t, CategoryIncome, got.Category)

	// Empty category keeps the fallback category.
	c = NewClassifier(&fakeEnricher{
		result: Classification{Type: TypeExpense, Confidence: 0.9},
	}, 0)
	got = c.Classify(context.Background(), Row{AmountCents: -100})
	assert.Equal(t, CategoryExpenses, got.Category)

	// Out-of-range confidence is clamped.
	c = NewClassifier(&fakeEnricher{
		result: Classification{Type: TypeExpense, Category: "Ads", Confidence: 1.7},
	}, 0)
	got = c.Classify(context.Background(), Row{AmountCents: -100})
	assert.Equal(t, 1.0, got.Confidence)

	c = NewClassifier(&fakeEnricher{
		result: Classification{Type: TypeExpense, Category: "Ads", Confidence: -0.2},
	}, 0)
	got = c.Classify(context.Background(), Row{AmountCents: -100})
	assert.Equal(t, 0.0, got.Confidence)
}

func TestClassifier_ClassifyAllKeepsOrder(t *testing.T) {
	c := NewClassifier(nil, 0)
	rows := []Row{
		{Description: "a", AmountCents: 100},
		{Description: "b", AmountCents: -200},
		{Description: "c", AmountCents: 300},
	}
	out := c.ClassifyAll(context.Background(), rows)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].Description)
	assert.Equal(t, TypeIncome, out[0].Type)
	assert.Equal(t, "b", out[1].Description)
	assert.Equal(t, TypeExpense, out[1].Type)
	assert.Equal(t, "c", out[2].Description)
}
