package ingest

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axento/books/ent"
	"github.com/axento/books/ent/statement"
	"github.com/axento/books/ent/transaction"

	_ "github.com/axento/books/ent/runtime"
	_ "modernc.org/sqlite"
)

// openTestClient opens an in-memory SQLite client the same way the
// server does. The modernc driver registers as "sqlite", so the client
// is built from a sql.DB rather than ent.Open.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func newTestBusiness(t *testing.T, l *Ledger, baseline Baseline) *ent.Business {
	t.Helper()
	biz, err := l.CreateBusiness(context.Background(), CreateBusinessParams{
		Name:     "Acme Consulting",
		Baseline: baseline,
		Actor:    "tester",
	})
	require.NoError(t, err)
	return biz
}

func checksum(seed string) string {
	return strings.Repeat(seed, 64/len(seed))
}

func testRows() []ClassifiedRow {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []ClassifiedRow{
		{
			Row:            Row{Date: day, Description: "Client payment", AmountCents: 10000},
			Classification: Classification{Type: TypeIncome, Category: "Income", Confidence: 0.8},
		},
		{
			Row:            Row{Date: day.AddDate(0, 0, 1), Description: "Office rent", AmountCents: -4000},
			Classification: Classification{Type: TypeExpense, Category: "Rent", Confidence: 0.9},
		},
	}
}

func TestLedger_CreateBusinessSeedsPosition(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{CurrentAssetsCents: 500_00, CommonStockCents: 100_00})

	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500_00), pos.CurrentAssetsCents)
	assert.Equal(t, int64(500_00), pos.TotalAssetsCents)
	assert.Equal(t, int64(500_00), pos.NetWorthCents)
	assert.Equal(t, int64(400_00), pos.RetainedEarningsCents)
}

func TestLedger_ProcessCommitsAtomicUnit(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	res, err := l.Process(ctx, biz.ID, Upload{
		OriginalName: "jan.csv",
		StoredName:   "stored-jan.csv",
		Checksum:     checksum("ab"),
		Rows:         testRows(),
		Skipped:      1,
		Actor:        "tester",
	})
	require.NoError(t, err)

	assert.Equal(t, statement.StatusCompleted, res.Statement.Status)
	assert.Equal(t, 2, res.TransactionsCreated)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, int64(10000), res.TotalRevenueCents)
	assert.Equal(t, int64(4000), res.TotalExpensesCents)
	assert.Equal(t, int64(6000), res.BalanceCents)
	assert.Equal(t, int64(6000), res.Statement.BalanceCents)
	assert.Equal(t, 1, res.Statement.Skipped)

	// Amounts are stored as non-negative magnitudes; type carries the sign.
	txns, err := client.Transaction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	for _, tr := range txns {
		assert.GreaterOrEqual(t, tr.AmountCents, int64(0))
	}

	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), pos.CurrentAssetsCents)
	assert.Equal(t, int64(6000), pos.NetWorthCents)
}

func TestLedger_DuplicateChecksumRejected(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	up := Upload{
		OriginalName: "jan.csv",
		StoredName:   "stored-1.csv",
		Checksum:     checksum("cd"),
		Rows:         testRows(),
		Actor:        "tester",
	}
	_, err := l.Process(ctx, biz.ID, up)
	require.NoError(t, err)

	up.StoredName = "stored-2.csv"
	_, err = l.Process(ctx, biz.ID, up)
	require.ErrorIs(t, err, ErrDuplicateStatement)

	// The rejected upload must leave no trace.
	count, err := client.Statement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	txCount, err := client.Transaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, txCount)
}

func TestLedger_SameChecksumDifferentBusinesses(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	bizA := newTestBusiness(t, l, Baseline{})
	bizB, err := l.CreateBusiness(ctx, CreateBusinessParams{Name: "Other Co", Actor: "tester"})
	require.NoError(t, err)

	up := Upload{
		OriginalName: "jan.csv",
		StoredName:   "stored-a.csv",
		Checksum:     checksum("ef"),
		Rows:         testRows(),
		Actor:        "tester",
	}
	_, err = l.Process(ctx, bizA.ID, up)
	require.NoError(t, err)

	// Identity is scoped per business, not global.
	up.StoredName = "stored-b.csv"
	_, err = l.Process(ctx, bizB.ID, up)
	require.NoError(t, err)
}

func TestLedger_ForceReplacesPriorImport(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	up := Upload{
		OriginalName: "jan.csv",
		StoredName:   "stored-1.csv",
		Checksum:     checksum("12"),
		Rows:         testRows(),
		Actor:        "tester",
	}
	first, err := l.Process(ctx, biz.ID, up)
	require.NoError(t, err)

	up.StoredName = "stored-2.csv"
	up.Force = true
	second, err := l.Process(ctx, biz.ID, up)
	require.NoError(t, err)
	assert.NotEqual(t, first.Statement.ID, second.Statement.ID)

	// Exactly one statement and one set of transactions survive.
	count, err := client.Statement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	txCount, err := client.Transaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, txCount)

	// Position reflects a single import, not a doubled one.
	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), pos.NetWorthCents)
}

func TestLedger_EmptyStatementCompletes(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	res, err := l.Process(ctx, biz.ID, Upload{
		OriginalName: "empty.csv",
		StoredName:   "stored-empty.csv",
		Checksum:     checksum("34"),
		Skipped:      3,
		Actor:        "tester",
	})
	require.NoError(t, err)
	assert.Equal(t, statement.StatusCompleted, res.Statement.Status)
	assert.Equal(t, 0, res.TransactionsCreated)
	assert.Equal(t, 3, res.Skipped)
	assert.Equal(t, int64(0), res.BalanceCents)
}

func TestLedger_FailureLeavesFailedStatementAndNoTransactions(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	rows := testRows()
	rows[1].Category = "" // violates the schema, aborts the batch

	_, err := l.Process(ctx, biz.ID, Upload{
		OriginalName: "bad.csv",
		StoredName:   "stored-bad.csv",
		Checksum:     checksum("56"),
		Rows:         rows,
		Actor:        "tester",
	})
	require.Error(t, err)

	stmts, err := client.Statement.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	assert.Equal(t, statement.StatusFailed, stmts[0].Status)
	require.NotNil(t, stmts[0].FailureReason)
	assert.NotEmpty(t, *stmts[0].FailureReason)

	// The batch rolled back whole: no partial transactions.
	txCount, err := client.Transaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, txCount)

	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos.NetWorthCents)
}

func TestLedger_DeleteCascades(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{CurrentAssetsCents: 100_00})

	res, err := l.Process(ctx, biz.ID, Upload{
		OriginalName: "jan.csv",
		StoredName:   "stored-jan.csv",
		Checksum:     checksum("78"),
		Rows:         testRows(),
		Actor:        "tester",
	})
	require.NoError(t, err)

	deleted, removed, err := l.Delete(ctx, res.Statement.ID, "tester")
	require.NoError(t, err)
	assert.Equal(t, "stored-jan.csv", deleted.StoredName)
	assert.Equal(t, 2, removed)
	require.NotNil(t, deleted.Edges.Business)
	assert.Equal(t, biz.ID, deleted.Edges.Business.ID)

	count, err := client.Statement.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	txCount, err := client.Transaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, txCount)

	// Position falls back to the baseline alone.
	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100_00), pos.NetWorthCents)
}

func TestLedger_ImportedTransactionsNotDeletable(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	res, err := l.Process(ctx, biz.ID, Upload{
		OriginalName: "jan.csv",
		StoredName:   "stored-jan.csv",
		Checksum:     checksum("de"),
		Rows:         testRows(),
		Actor:        "tester",
	})
	require.NoError(t, err)
	require.Equal(t, int64(6000), res.Statement.BalanceCents)

	txns, err := client.Transaction.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// A completed statement's transaction set stays intact; only the
	// statement's own cascading delete may remove imported rows.
	for _, tr := range txns {
		err := l.DeleteEntry(ctx, tr.ID, "tester")
		require.ErrorIs(t, err, ErrImportedTransaction)
	}

	txCount, err := client.Transaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, txCount)

	var sum int64
	for _, tr := range txns {
		if tr.Type == transaction.TypeIncome {
			sum += tr.AmountCents
		} else {
			sum -= tr.AmountCents
		}
	}
	assert.Equal(t, res.Statement.BalanceCents, sum)

	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), pos.NetWorthCents)
}

func TestLedger_ManualEntries(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	tr, err := l.AddEntry(ctx, biz.ID, ManualEntry{
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Type:        TypeIncome,
		AmountCents: 2500,
		Category:    "Consulting",
		Actor:       "tester",
	})
	require.NoError(t, err)
	assert.Equal(t, transaction.SourceUser, tr.Source)
	assert.Equal(t, 1.0, tr.Confidence)

	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), pos.NetWorthCents)

	require.NoError(t, l.DeleteEntry(ctx, tr.ID, "tester"))

	pos, err = l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos.NetWorthCents)
}

func TestLedger_ManualEntryValidation(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	_, err := l.AddEntry(ctx, biz.ID, ManualEntry{
		Date: time.Now(), Type: "transfer", AmountCents: 100, Category: "X", Actor: "tester",
	})
	require.Error(t, err)

	_, err = l.AddEntry(ctx, biz.ID, ManualEntry{
		Date: time.Now(), Type: TypeIncome, AmountCents: -100, Category: "X", Actor: "tester",
	})
	require.Error(t, err)
}

func TestLedger_UpdateBaselineRecomputes(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})

	_, err := l.AddEntry(ctx, biz.ID, ManualEntry{
		Date: time.Now(), Type: TypeIncome, AmountCents: 1000, Category: "Sales", Actor: "tester",
	})
	require.NoError(t, err)

	_, err = l.UpdateBaseline(ctx, biz.ID, Baseline{
		CurrentAssetsCents:       50_00,
		FixedAssetsCents:         200_00,
		CurrentLiabilitiesCents:  30_00,
		LongTermLiabilitiesCents: 0,
		CommonStockCents:         20_00,
	}, "tester")
	require.NoError(t, err)

	pos, err := l.Position(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(60_00), pos.CurrentAssetsCents) // 50 baseline + 10 net
	assert.Equal(t, int64(260_00), pos.TotalAssetsCents)
	assert.Equal(t, int64(30_00), pos.TotalLiabilitiesCents)
	assert.Equal(t, int64(230_00), pos.NetWorthCents)
}

func TestRegistry_TransitionsAreForwardOnly(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})
	reg := NewRegistry(client)

	stmt, err := reg.Create(ctx, biz.ID, CreateParams{
		OriginalName: "jan.csv",
		StoredName:   "stored.csv",
		Checksum:     checksum("9a"),
		Currency:     biz.Currency,
		Actor:        "tester",
	})
	require.NoError(t, err)
	assert.Equal(t, statement.StatusPending, stmt.Status)

	stmt, err = reg.Transition(ctx, stmt, statement.StatusProcessing, "tester", nil)
	require.NoError(t, err)

	// Completed is terminal.
	stmt, err = reg.Transition(ctx, stmt, statement.StatusCompleted, "tester", nil)
	require.NoError(t, err)
	_, err = reg.Transition(ctx, stmt, statement.StatusProcessing, "tester", nil)
	require.Error(t, err)
	_, err = reg.Transition(ctx, stmt, statement.StatusFailed, "tester", nil)
	require.Error(t, err)
}

func TestRegistry_PendingCannotComplete(t *testing.T) {
	client := openTestClient(t)
	l := NewLedger(client)
	ctx := context.Background()

	biz := newTestBusiness(t, l, Baseline{})
	reg := NewRegistry(client)

	stmt, err := reg.Create(ctx, biz.ID, CreateParams{
		OriginalName: "jan.csv",
		StoredName:   "stored.csv",
		Checksum:     checksum("bc"),
		Currency:     biz.Currency,
		Actor:        "tester",
	})
	require.NoError(t, err)

	_, err = reg.Transition(ctx, stmt, statement.StatusCompleted, "tester", nil)
	require.Error(t, err)
}
